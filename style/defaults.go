package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"golang.org/x/net/html"
)

// isInherited lists the properties of our CSS 2.1 subset for which the
// standard behaviour is inheritance: with no winning declaration the
// property adopts the parent element's resolved value.
var isInherited = map[string]bool{
	"color":           true,
	"font-family":     true,
	"font-style":      true,
	"font-weight":     true,
	"font-size":       true,
	"line-height":     true,
	"text-align":      true,
	"text-decoration": false, // not inherited; it merely paints across descendants
}

// IsInherited returns wether the standard behaviour for a property is to
// be inherited from the parent element.
func IsInherited(key string) bool {
	return isInherited[key]
}

// initialValues holds the CSS 2.1 initial value per supported property.
// Property display is element-dependent and handled separately.
var initialValues = map[string]Property{
	"margin-top":          "0",
	"margin-left":         "0",
	"margin-right":        "0",
	"margin-bottom":       "0",
	"padding-top":         "0",
	"padding-left":        "0",
	"padding-right":       "0",
	"padding-bottom":      "0",
	"border-top-color":    "black",
	"border-left-color":   "black",
	"border-right-color":  "black",
	"border-bottom-color": "black",
	"border-top-width":    "medium",
	"border-left-width":   "medium",
	"border-right-width":  "medium",
	"border-bottom-width": "medium",
	"border-top-style":    "none",
	"border-left-style":   "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
	"width":               "auto",
	"height":              "auto",
	"line-height":         "normal",
	"vertical-align":      "baseline",
	"position":            "static",
	"float":               "none",
	"clear":               "none",
	"color":               "black",
	"background-color":    "transparent",
	"font-family":         "serif",
	"font-style":          "normal",
	"font-weight":         "normal",
	"font-size":           "medium",
	"text-align":          "left",
	"text-decoration":     "none",
}

// InitialValue returns the user-agent default ("initial") value for a
// property. For property display the default depends on the HTML element
// the style applies to.
func InitialValue(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	if p, ok := initialValues[key]; ok {
		return p
	}
	tracer().Infof("no initial value for property %s", key)
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default 'display' CSS property
// for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script", "title", "meta", "link":
		return "none"
	case "html", "address", "blockquote", "body", "div", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "hr", "ol", "p",
		"pre", "section", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "thead":
		return "table-header-group"
	case "tbody":
		return "table-row-group"
	case "tfoot":
		return "table-footer-group"
	case "caption":
		return "table-caption"
	case "col":
		return "table-column"
	case "colgroup":
		return "table-column-group"
	}
	// CSS 2.1 initial value for display is inline
	return "inline"
}
