/*
Package cssom provides functionality for CSS styling: stylesheet ingestion
and per-node selector matching.

Overview

CSS handling is de-coupled by introducing appropriate interfaces StyleSheet
and Rule; a concrete implementation backed by the douceur parser may be
found in sub-package douceuradapter.

Selector matching itself is not re-implemented here. There is not very much
open source Go code around for supporting us in implementing a styling
engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia.
Cascadia parses selectors, reports their specificity and evaluates them
against nodes of an HTML parse tree, which is everything the cascade needs.

The result of matching one node is a set of raw per-property values
("hints"), one per pseudo-element, which the typed adapter (package
computed) converts into typed style values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
