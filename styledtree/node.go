package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/complete"
	"github.com/npillmayer/cascade/style/computed"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyNode is a style node, the building block of the styled tree. It links
// an HTML element to its style at every stage of the pipeline: the raw
// property map from the cascade, the typed style set and, unless styling
// failed for the element, the complete resolved style.
type StyNode struct {
	htmlNode *html.Node
	parent   *StyNode
	children []*StyNode
	styles   *style.PropertyMap
	computed *computed.ComputedStyle
	complete *complete.CompleteStyle
	err      error
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Styles returns the raw property values the cascade selected for this
// element.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.styles
}

// ComputedStyles returns the typed style set of this element, or nil if
// conversion failed (see Err).
func (sn *StyNode) ComputedStyles() *computed.ComputedStyle {
	return sn.computed
}

// CompleteStyles returns the fully resolved style of this element, or nil
// if styling failed (see Err).
func (sn *StyNode) CompleteStyles() *complete.CompleteStyle {
	return sn.complete
}

// Err returns the styling error for this element, usually a
// *computed.PropertyError. Descendants of a failed element resolve their
// styles against the nearest successfully styled ancestor.
func (sn *StyNode) Err() error {
	return sn.err
}

// --- Tree navigation ---------------------------------------------------------

// Parent returns the parent style node, nil for the root.
func (sn *StyNode) Parent() *StyNode {
	return sn.parent
}

// ChildCount returns the number of element children.
func (sn *StyNode) ChildCount() int {
	return len(sn.children)
}

// Child returns element child number i.
func (sn *StyNode) Child(i int) *StyNode {
	return sn.children[i]
}

// IsRoot is true for the root element of the styled tree.
func (sn *StyNode) IsRoot() bool {
	return sn.parent == nil
}

// --- Element capabilities ----------------------------------------------------

// The selector machinery and clients of the styled tree need a small set
// of capabilities per element: its name, id and classes, and navigation to
// named ancestors.

// NodeName returns the HTML element name, e.g. "div".
func (sn *StyNode) NodeName() string {
	return sn.htmlNode.Data
}

// NodeID returns the value of the element's id attribute, or "".
func (sn *StyNode) NodeID() string {
	return sn.attr("id")
}

// Classes returns the classes of the element.
func (sn *StyNode) Classes() []string {
	return strings.Fields(sn.attr("class"))
}

// HasClass checks if the element carries a given class.
func (sn *StyNode) HasClass(class string) bool {
	for _, c := range sn.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// HasID checks if the element carries a given id.
func (sn *StyNode) HasID(id string) bool {
	return id != "" && sn.NodeID() == id
}

// ParentNode returns the parent element, nil for the root. It is an alias
// for Parent, named for the capability set selectors operate on.
func (sn *StyNode) ParentNode() *StyNode {
	return sn.parent
}

// NamedAncestorNode walks up the tree and returns the nearest ancestor
// with the given element name, or nil.
func (sn *StyNode) NamedAncestorNode(name string) *StyNode {
	for p := sn.parent; p != nil; p = p.parent {
		if p.NodeName() == name {
			return p
		}
	}
	return nil
}

// IsLink is true for hyperlink source anchors: a, area or link elements
// carrying an href attribute.
func (sn *StyNode) IsLink() bool {
	switch sn.htmlNode.DataAtom {
	case atom.A, atom.Area, atom.Link:
		return sn.attr("href") != ""
	}
	return false
}

func (sn *StyNode) attr(key string) string {
	for _, a := range sn.htmlNode.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// --- Debugging ----------------------------------------------------------------

// TreePrint returns a textual representation of the styled tree rooted at
// this node, for debugging.
func (sn *StyNode) TreePrint() string {
	tp := treeprint.New()
	tp.SetValue(sn.describe())
	for _, ch := range sn.children {
		dump(tp, ch)
	}
	return tp.String()
}

func dump(branch treeprint.Tree, sn *StyNode) {
	if len(sn.children) == 0 {
		branch.AddNode(sn.describe())
		return
	}
	b := branch.AddBranch(sn.describe())
	for _, ch := range sn.children {
		dump(b, ch)
	}
}

func (sn *StyNode) describe() string {
	if sn.err != nil {
		return fmt.Sprintf("<%s> (unstyled: %v)", sn.NodeName(), sn.err)
	}
	c := sn.complete
	return fmt.Sprintf("<%s> display=%s font-size=%s color=%s", sn.NodeName(),
		c.Display(), c.FontSize(), c.Color())
}
