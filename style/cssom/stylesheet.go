package cssom

import "github.com/npillmayer/cascade/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// cascade, we introduce an interface for CSS stylesheets. Clients for the
// styling engine will have to provide a concrete implementation of this
// interface (e.g., see package douceuradapter).
//
// Having this interface imposes a performance hit. However, this
// implementation of CSS-styling will never trade modularity and
// clarity for performance. Clients in need for a production grade
// browser engine (where performance is key) should opt for headless
// versions of the main browser projects.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Origin denotes the provenance of a stylesheet. The cascade ranks
// declarations by origin before it considers specificity and source order.
type Origin uint8

// Stylesheet origins, in ascending order of normal-declaration precedence.
const (
	OriginUA Origin = iota // user agent defaults
	OriginUser             // user preferences
	OriginAuthor           // document author
)

func (o Origin) String() string {
	switch o {
	case OriginUA:
		return "user-agent"
	case OriginUser:
		return "user"
	case OriginAuthor:
		return "author"
	}
	return "<unknown origin>"
}
