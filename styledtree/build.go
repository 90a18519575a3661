package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/cascade/style/complete"
	"github.com/npillmayer/cascade/style/cssom"
	"golang.org/x/net/html"
)

// ErrNoRootElement flags a document without a root element to style.
var ErrNoRootElement = errors.New("styledtree: document contains no element to style")

// Style builds the styled tree for an HTML document: it runs the cascade
// of ctx for every element, parent before child, and resolves inheritance
// along the way. doc is usually the document node of an HTML parse tree,
// but any element node works as a root.
//
// Elements with out-of-subset style values do not fail the whole tree: the
// error is recorded on their style node (see StyNode.Err) and their
// descendants inherit from the nearest styled ancestor.
func Style(doc *html.Node, ctx *cssom.SelectCtx) (*StyNode, error) {
	root := rootElement(doc)
	if root == nil {
		return nil, ErrNoRootElement
	}
	return buildNode(root, nil, nil, ctx), nil
}

// rootElement finds the element to start styling at.
func rootElement(h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := rootElement(ch); r != nil {
			return r
		}
	}
	return nil
}

// buildNode styles one element and recurses into its element children.
// inherit is the complete style of the nearest styled ancestor, nil at the
// root.
func buildNode(h *html.Node, parent *StyNode, inherit *complete.CompleteStyle, ctx *cssom.SelectCtx) *StyNode {
	sn := &StyNode{htmlNode: h, parent: parent}
	res := ctx.SelectStyle(h)
	sn.styles = res.Styles()
	cs, err := res.ComputedStyle()
	if err != nil {
		sn.err = err
		tracer().Errorf("cannot style <%s>: %v", h.Data, err)
	} else {
		sn.computed = cs
		sn.complete = complete.NewFromParent(cs, inherit)
	}
	next := inherit
	if sn.complete != nil {
		next = sn.complete
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		sn.children = append(sn.children, buildNode(ch, sn, next, ctx))
	}
	return sn
}
