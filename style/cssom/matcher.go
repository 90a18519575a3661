package cssom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/color"
	"github.com/npillmayer/cascade/style/computed"
	"golang.org/x/net/html"
)

// SelectCtx collects the stylesheets participating in the cascade.
// Stylesheets are appended together with their origin; the origin
// determines the precedence level of every declaration of the sheet.
//
// A SelectCtx is not safe for concurrent use while sheets are being
// appended. Once all sheets are in, SelectStyle may be called from
// multiple goroutines.
type SelectCtx struct {
	sheets []originSheet
}

type originSheet struct {
	sheet  StyleSheet
	origin Origin
}

// NewSelectCtx creates an empty selection context.
func NewSelectCtx() *SelectCtx {
	return &SelectCtx{}
}

// AppendSheet adds a stylesheet to the cascade. Sheets of equal origin keep
// their append-order for source-order tie breaking.
func (ctx *SelectCtx) AppendSheet(sheet StyleSheet, origin Origin) {
	if sheet == nil || sheet.Empty() {
		tracer().Debugf("dropping empty stylesheet for origin %s", origin)
		return
	}
	ctx.sheets = append(ctx.sheets, originSheet{sheet: sheet, origin: origin})
}

// matchedValue is a candidate winner for a single property key.
type matchedValue struct {
	value     style.Property
	origin    Origin
	important bool
	spec      cascadia.Specificity
	seq       int
	set       bool
}

// level ranks a declaration according to CSS 2.1, section 6.4.1:
// normal declarations ascend UA < user < author, important declarations
// invert the order and outrank every normal one.
func (m matchedValue) level() int {
	if m.important {
		switch m.origin {
		case OriginAuthor:
			return 4
		case OriginUser:
			return 5
		default:
			return 6
		}
	}
	switch m.origin {
	case OriginUA:
		return 1
	case OriginUser:
		return 2
	default:
		return 3
	}
}

// beats decides if m wins over a previously matched value o.
// Later declarations win ties, therefore seq comparison is not strict.
func (m matchedValue) beats(o matchedValue) bool {
	if !o.set {
		return true
	}
	if l, ol := m.level(), o.level(); l != ol {
		return l > ol
	}
	if m.spec != o.spec {
		return o.spec.Less(m.spec)
	}
	return m.seq >= o.seq
}

// expandedDecl is a declaration after shorthand expansion, still carrying
// the importance flag of the shorthand it came from.
type expandedDecl struct {
	key       string
	value     style.Property
	important bool
}

// expandRule flattens the declarations of a rule into per-property
// declarations. Shorthands are distributed onto their constituent keys,
// unsupported keys and malformed color values are dropped.
func expandRule(rule Rule) []expandedDecl {
	var decls []expandedDecl
	for _, key := range rule.Properties() {
		value := rule.Value(key)
		important := rule.IsImportant(key)
		kvs, err := style.SplitCompoundProperty(key, value)
		if err != nil { // not a compound key
			kvs = []style.KeyValue{{Key: key, Value: value}}
		}
		for _, kv := range kvs {
			if !style.IsSupportedProperty(kv.Key) {
				tracer().Debugf("dropping unsupported property %q", kv.Key)
				continue
			}
			if !colorValueOk(kv.Key, kv.Value) {
				tracer().Debugf("dropping malformed color value %q for %q", kv.Value, kv.Key)
				continue
			}
			decls = append(decls, expandedDecl{key: kv.Key, value: kv.Value, important: important})
		}
	}
	return decls
}

// colorValueOk filters out declarations with unparsable color literals.
// Per CSS error recovery, an illegal value leaves the cascade untouched,
// it does not reset the property.
func colorValueOk(key string, value style.Property) bool {
	if !strings.HasSuffix(key, "color") {
		return true
	}
	if value.IsInherit() || value.IsInitial() {
		return true
	}
	v := strings.ToLower(string(value)) // keyword values are case-insensitive
	if v == "transparent" && key != "color" {
		return true
	}
	_, ok := color.Parse(v)
	return ok
}

// SelectStyle runs the cascade for a single HTML node: it matches every
// rule of every appended stylesheet against the node, ranks matching
// declarations by (origin/importance, specificity, source order) and
// returns the winning raw value for every supported property.
//
// Properties without a winning declaration are backfilled: inherited
// properties receive the "inherit" hint, all others their initial value.
// The returned results are grouped by pseudo-element; styles for the node
// itself are found under the empty pseudo-element key.
func (ctx *SelectCtx) SelectStyle(node *html.Node) *SelectResults {
	winners := map[string]map[string]matchedValue{
		"": make(map[string]matchedValue),
	}
	seq := 0
	for _, os := range ctx.sheets {
		for _, rule := range os.sheet.Rules() {
			seq++
			selectors, err := cascadia.ParseGroupWithPseudoElements(rule.Selector())
			if err != nil {
				tracer().Debugf("skipping rule with unparsable selector %q: %v", rule.Selector(), err)
				continue
			}
			var decls []expandedDecl // expanded lazily, most rules won't match
			for _, sel := range selectors {
				if !sel.Match(node) {
					continue
				}
				if decls == nil {
					decls = expandRule(rule)
				}
				pseudo := sel.PseudoElement()
				bucket := winners[pseudo]
				if bucket == nil {
					bucket = make(map[string]matchedValue)
					winners[pseudo] = bucket
				}
				for _, d := range decls {
					candidate := matchedValue{
						value:     d.value,
						origin:    os.origin,
						important: d.important,
						spec:      sel.Specificity(),
						seq:       seq,
						set:       true,
					}
					if candidate.beats(bucket[d.key]) {
						bucket[d.key] = candidate
					}
				}
			}
		}
	}
	results := &SelectResults{
		node:   node,
		styles: make(map[string]*style.PropertyMap, len(winners)),
	}
	for pseudo, bucket := range winners {
		pmap := style.NewPropertyMap()
		for _, key := range style.PropertyKeys() {
			if w, ok := bucket[key]; ok {
				pmap.Add(key, w.value)
				continue
			}
			if style.IsInherited(key) {
				pmap.Add(key, style.PropertyInherit)
			} else {
				pmap.Add(key, style.InitialValue(node, key))
			}
		}
		results.styles[pseudo] = pmap
	}
	return results
}

// SelectResults holds the outcome of the cascade for one node: a complete
// raw property map per pseudo-element.
type SelectResults struct {
	node   *html.Node
	styles map[string]*style.PropertyMap
}

// Styles returns the raw property map for the node itself (no
// pseudo-element selected).
func (r *SelectResults) Styles() *style.PropertyMap {
	return r.styles[""]
}

// PseudoStyles returns the raw property map for a pseudo-element of the
// node, e.g. "before". It returns nil if no rule addressed the
// pseudo-element.
func (r *SelectResults) PseudoStyles(pseudo string) *style.PropertyMap {
	if pseudo == "" {
		return r.Styles()
	}
	return r.styles[pseudo]
}

// ComputedStyle converts the node's raw styles into typed style values.
// The conversion fails with a *computed.PropertyError as soon as a
// property value falls outside of the supported CSS subset.
func (r *SelectResults) ComputedStyle() (*computed.ComputedStyle, error) {
	return computed.FromStyles(r.Styles(), r.node)
}
