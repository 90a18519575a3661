/*
Package styledtree is a straightforward default implementation of a styled
document tree.

Overview

Styling connects an HTML parse tree with the stylesheets of a document:
cascading rules select raw property values per element (package cssom),
the typed adapter converts them (package computed) and inheritance
resolution completes them (package complete). Function Style performs the
whole pipeline for a document and hands back a tree of StyNodes, one per
element, each carrying the element's complete style.

Elements with style values outside of the supported CSS subset do not
abort the construction of the tree: the error is recorded on the node and
descendants resolve against the nearest styled ancestor.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
