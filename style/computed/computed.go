/*
Package computed turns the raw per-property hints produced by the cascade
into typed style values.

The cascade (package cssom) delivers, per node, a string value for every
supported property - either the "inherit" sentinel or a concrete CSS
literal. This package converts the complete set eagerly into one
ComputedStyle record of typed values: an out-of-subset value surfaces
immediately as a *PropertyError instead of lurking until some later field
access.

A ComputedStyle still carries "inherit" markers; resolving them against
the parent element's style is the concern of package complete.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package computed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/color"
	"github.com/npillmayer/cascade/style/unit"
	"github.com/npillmayer/cascade/style/values"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'cascade.computed'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.computed")
}

// PropertyError flags a property value which is legal CSS, but outside of
// the supported subset, e.g. 'display: run-in' or a font size in rem.
type PropertyError struct {
	Key   string // property key, e.g. "font-size"
	Value string // offending value, e.g. "1.5rem"
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("computed: unsupported value %q for property %q", e.Value, e.Key)
}

// ComputedStyle is the typed style set of one element. Every field is
// either a concrete value or the inherit-marker (the CSSValue zero value).
type ComputedStyle struct {
	// CSS 2.1, Section 8 - Box model
	MarginTop    values.CSSValue[values.Margin]
	MarginRight  values.CSSValue[values.Margin]
	MarginBottom values.CSSValue[values.Margin]
	MarginLeft   values.CSSValue[values.Margin]

	PaddingTop    values.CSSValue[values.Padding]
	PaddingRight  values.CSSValue[values.Padding]
	PaddingBottom values.CSSValue[values.Padding]
	PaddingLeft   values.CSSValue[values.Padding]

	BorderTopWidth    values.CSSValue[values.BorderWidth]
	BorderRightWidth  values.CSSValue[values.BorderWidth]
	BorderBottomWidth values.CSSValue[values.BorderWidth]
	BorderLeftWidth   values.CSSValue[values.BorderWidth]

	BorderTopStyle    values.CSSValue[values.BorderStyle]
	BorderRightStyle  values.CSSValue[values.BorderStyle]
	BorderBottomStyle values.CSSValue[values.BorderStyle]
	BorderLeftStyle   values.CSSValue[values.BorderStyle]

	BorderTopColor    values.CSSValue[values.BorderColor]
	BorderRightColor  values.CSSValue[values.BorderColor]
	BorderBottomColor values.CSSValue[values.BorderColor]
	BorderLeftColor   values.CSSValue[values.BorderColor]

	// CSS 2.1, Sections 9 & 10 - Visual formatting model
	Display       values.CSSValue[values.Display]
	Position      values.CSSValue[values.Position]
	Float         values.CSSValue[values.Float]
	Clear         values.CSSValue[values.Clear]
	Width         values.CSSValue[values.Width]
	Height        values.CSSValue[values.Height]
	LineHeight    values.CSSValue[values.LineHeight]
	VerticalAlign values.CSSValue[values.VerticalAlign]

	// CSS 2.1, Section 14 - Colors and backgrounds
	Color           values.CSSValue[color.Color]
	BackgroundColor values.CSSValue[values.BackgroundColor]

	// CSS 2.1, Section 15 - Fonts
	FontFamily values.CSSValue[[]values.FontFamily]
	FontStyle  values.CSSValue[values.FontStyle]
	FontWeight values.CSSValue[values.FontWeight]
	FontSize   values.CSSValue[values.FontSize]

	// CSS 2.1, Section 16 - Text
	TextAlign      values.CSSValue[values.TextAlign]
	TextDecoration values.CSSValue[values.TextDecoration]
}

// FromStyles converts a raw property map into a typed ComputedStyle. The
// node argument is needed for element-dependent defaults (display).
//
// Conversion is eager and complete: every supported property is converted,
// missing entries are backfilled from the UA defaults. A value outside of
// the supported CSS subset aborts the conversion with a *PropertyError;
// malformed values are traced and replaced by the property's initial value.
func FromStyles(pmap *style.PropertyMap, node *html.Node) (*ComputedStyle, error) {
	cs := &ComputedStyle{}
	for _, key := range style.PropertyKeys() {
		p := rawValue(pmap, node, key)
		if p.IsInherit() {
			continue // field stays at the inherit-marker
		}
		if p.IsInitial() {
			p = style.InitialValue(node, key)
		}
		if err := cs.set(key, p.String(), node); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

func rawValue(pmap *style.PropertyMap, node *html.Node, key string) style.Property {
	if pmap != nil {
		if p, ok := pmap.Property(key); ok && !p.IsEmpty() {
			return p
		}
	}
	if style.IsInherited(key) {
		return style.PropertyInherit
	}
	return style.InitialValue(node, key)
}

// set converts a single concrete value and stores it in its field.
func (cs *ComputedStyle) set(key, v string, node *html.Node) (err error) {
	switch key {
	case "margin-top":
		cs.MarginTop, err = convertMargin(key, v)
	case "margin-right":
		cs.MarginRight, err = convertMargin(key, v)
	case "margin-bottom":
		cs.MarginBottom, err = convertMargin(key, v)
	case "margin-left":
		cs.MarginLeft, err = convertMargin(key, v)
	case "padding-top":
		cs.PaddingTop, err = convertPadding(key, v)
	case "padding-right":
		cs.PaddingRight, err = convertPadding(key, v)
	case "padding-bottom":
		cs.PaddingBottom, err = convertPadding(key, v)
	case "padding-left":
		cs.PaddingLeft, err = convertPadding(key, v)
	case "border-top-width":
		cs.BorderTopWidth, err = convertBorderWidth(key, v)
	case "border-right-width":
		cs.BorderRightWidth, err = convertBorderWidth(key, v)
	case "border-bottom-width":
		cs.BorderBottomWidth, err = convertBorderWidth(key, v)
	case "border-left-width":
		cs.BorderLeftWidth, err = convertBorderWidth(key, v)
	case "border-top-style":
		cs.BorderTopStyle = convertBorderStyle(key, v)
	case "border-right-style":
		cs.BorderRightStyle = convertBorderStyle(key, v)
	case "border-bottom-style":
		cs.BorderBottomStyle = convertBorderStyle(key, v)
	case "border-left-style":
		cs.BorderLeftStyle = convertBorderStyle(key, v)
	case "border-top-color":
		cs.BorderTopColor = convertBorderColor(key, v)
	case "border-right-color":
		cs.BorderRightColor = convertBorderColor(key, v)
	case "border-bottom-color":
		cs.BorderBottomColor = convertBorderColor(key, v)
	case "border-left-color":
		cs.BorderLeftColor = convertBorderColor(key, v)
	case "display":
		cs.Display, err = convertDisplay(key, v, node)
	case "position":
		cs.Position, err = convertPosition(key, v)
	case "float":
		cs.Float = convertFloat(key, v)
	case "clear":
		cs.Clear = convertClear(key, v)
	case "width":
		cs.Width, err = convertWidth(key, v)
	case "height":
		cs.Height, err = convertHeight(key, v)
	case "line-height":
		cs.LineHeight, err = convertLineHeight(key, v)
	case "vertical-align":
		cs.VerticalAlign, err = convertVerticalAlign(key, v)
	case "color":
		cs.Color = convertColor(key, v)
	case "background-color":
		cs.BackgroundColor = convertBackgroundColor(key, v)
	case "font-family":
		cs.FontFamily = convertFontFamily(key, v)
	case "font-style":
		cs.FontStyle = convertFontStyle(key, v)
	case "font-weight":
		cs.FontWeight = convertFontWeight(key, v)
	case "font-size":
		cs.FontSize, err = convertFontSize(key, v)
	case "text-align":
		cs.TextAlign = convertTextAlign(key, v)
	case "text-decoration":
		cs.TextDecoration = convertTextDecoration(key, v)
	default:
		tracer().Infof("no conversion for property %s", key)
	}
	return err
}

// --- Length and percentage parsing -------------------------------------------

type lpKind uint8

const (
	lpLength lpKind = iota
	lpPercent
	lpBad
)

// unsupportedUnits are CSS length units outside of the px/pt/em subset.
// Encountering one is fatal, the value is legal CSS we cannot represent.
var unsupportedUnits = []string{
	"rem", "ex", "ch", "vw", "vh", "vmin", "vmax", "cm", "mm", "in", "pc", "q",
}

// lengthOrPercent parses a CSS length or percentage literal.
// Out-of-subset units yield a *PropertyError; a malformed literal yields
// lpBad and leaves error handling to the caller.
func lengthOrPercent(key, v string) (unit.Length, float64, lpKind, error) {
	if strings.HasSuffix(v, "%") {
		x, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return unit.Length{}, 0, lpBad, nil
		}
		return unit.Length{}, x, lpPercent, nil
	}
	if len(v) > 2 {
		num, u := v[:len(v)-2], v[len(v)-2:]
		if x, err := strconv.ParseFloat(num, 64); err == nil {
			switch u {
			case "px":
				return unit.Px(x), 0, lpLength, nil
			case "pt":
				return unit.Pt(x), 0, lpLength, nil
			case "em":
				return unit.Em(x), 0, lpLength, nil
			}
		}
	}
	if x, err := strconv.ParseFloat(v, 64); err == nil {
		if x == 0 { // a unit-less zero is a length of zero
			return unit.Px(0), 0, lpLength, nil
		}
		return unit.Length{}, 0, lpBad, nil
	}
	for _, u := range unsupportedUnits {
		if !strings.HasSuffix(v, u) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSuffix(v, u), 64); err == nil {
			return unit.Length{}, 0, lpBad, &PropertyError{Key: key, Value: v}
		}
	}
	return unit.Length{}, 0, lpBad, nil
}

func badValue(key, v string) {
	tracer().Debugf("malformed value %q for property %q, falling back to initial", v, key)
}

// --- Per-family conversions ---------------------------------------------------

func convertMargin(key, v string) (values.CSSValue[values.Margin], error) {
	if v == "auto" {
		return values.Specified(values.MarginAuto()), nil
	}
	l, pct, kind, err := lengthOrPercent(key, v)
	if err != nil {
		return values.CSSValue[values.Margin]{}, err
	}
	switch kind {
	case lpLength:
		return values.Specified(values.MarginLength(l)), nil
	case lpPercent:
		return values.Specified(values.MarginPercentage(pct)), nil
	}
	badValue(key, v)
	return values.Specified(values.MarginLength(unit.Px(0))), nil
}

func convertPadding(key, v string) (values.CSSValue[values.Padding], error) {
	l, pct, kind, err := lengthOrPercent(key, v)
	if err != nil {
		return values.CSSValue[values.Padding]{}, err
	}
	switch kind {
	case lpLength:
		return values.Specified(values.PaddingLength(l)), nil
	case lpPercent:
		return values.Specified(values.PaddingPercentage(pct)), nil
	}
	badValue(key, v)
	return values.Specified(values.PaddingLength(unit.Px(0))), nil
}

func convertBorderWidth(key, v string) (values.CSSValue[values.BorderWidth], error) {
	switch v {
	case "thin":
		return values.Specified(values.BorderWidthThin()), nil
	case "medium":
		return values.Specified(values.BorderWidthMedium()), nil
	case "thick":
		return values.Specified(values.BorderWidthThick()), nil
	}
	l, _, kind, err := lengthOrPercent(key, v)
	if err != nil {
		return values.CSSValue[values.BorderWidth]{}, err
	}
	if kind == lpLength {
		return values.Specified(values.BorderWidthLength(l)), nil
	}
	badValue(key, v) // border-width does not take percentages
	return values.Specified(values.BorderWidthMedium()), nil
}

var borderStyles = map[string]values.BorderStyle{
	"none":   values.BorderStyleNone,
	"hidden": values.BorderStyleHidden,
	"dotted": values.BorderStyleDotted,
	"dashed": values.BorderStyleDashed,
	"solid":  values.BorderStyleSolid,
	"double": values.BorderStyleDouble,
	"groove": values.BorderStyleGroove,
	"ridge":  values.BorderStyleRidge,
	"inset":  values.BorderStyleInset,
	"outset": values.BorderStyleOutset,
}

func convertBorderStyle(key, v string) values.CSSValue[values.BorderStyle] {
	if s, ok := borderStyles[v]; ok {
		return values.Specified(s)
	}
	badValue(key, v)
	return values.Specified(values.BorderStyleNone)
}

func convertBorderColor(key, v string) values.CSSValue[values.BorderColor] {
	if v == "transparent" {
		return values.Specified(values.BorderColorTransparent())
	}
	if c, ok := color.Parse(v); ok {
		return values.Specified(values.BorderColorColor(c))
	}
	badValue(key, v)
	return values.Specified(values.BorderColorColor(color.RGB(0, 0, 0)))
}

var displays = map[string]values.Display{
	"inline":             values.DisplayInline,
	"block":              values.DisplayBlock,
	"list-item":          values.DisplayListItem,
	"inline-block":       values.DisplayInlineBlock,
	"table":              values.DisplayTable,
	"inline-table":       values.DisplayInlineTable,
	"table-row-group":    values.DisplayTableRowGroup,
	"table-header-group": values.DisplayTableHeaderGroup,
	"table-footer-group": values.DisplayTableFooterGroup,
	"table-row":          values.DisplayTableRow,
	"table-column-group": values.DisplayTableColumnGroup,
	"table-column":       values.DisplayTableColumn,
	"table-cell":         values.DisplayTableCell,
	"table-caption":      values.DisplayTableCaption,
	"none":               values.DisplayNone,
}

// displaysOutOfSubset are display modes we recognize as legal CSS but do
// not support.
var displaysOutOfSubset = map[string]bool{
	"run-in":      true,
	"flex":        true,
	"inline-flex": true,
	"grid":        true,
	"inline-grid": true,
	"flow-root":   true,
	"contents":    true,
}

func convertDisplay(key, v string, node *html.Node) (values.CSSValue[values.Display], error) {
	if d, ok := displays[v]; ok {
		return values.Specified(d), nil
	}
	if displaysOutOfSubset[v] {
		return values.CSSValue[values.Display]{}, &PropertyError{Key: key, Value: v}
	}
	badValue(key, v)
	d := displays[style.DisplayPropertyForHTMLNode(node).String()]
	return values.Specified(d), nil
}

func convertPosition(key, v string) (values.CSSValue[values.Position], error) {
	switch v {
	case "static":
		return values.Specified(values.PositionStatic), nil
	case "relative":
		return values.Specified(values.PositionRelative), nil
	case "absolute":
		return values.Specified(values.PositionAbsolute), nil
	case "fixed":
		return values.Specified(values.PositionFixed), nil
	case "sticky":
		return values.CSSValue[values.Position]{}, &PropertyError{Key: key, Value: v}
	}
	badValue(key, v)
	return values.Specified(values.PositionStatic), nil
}

func convertFloat(key, v string) values.CSSValue[values.Float] {
	switch v {
	case "none":
		return values.Specified(values.FloatNone)
	case "left":
		return values.Specified(values.FloatLeft)
	case "right":
		return values.Specified(values.FloatRight)
	}
	badValue(key, v)
	return values.Specified(values.FloatNone)
}

func convertClear(key, v string) values.CSSValue[values.Clear] {
	switch v {
	case "none":
		return values.Specified(values.ClearNone)
	case "left":
		return values.Specified(values.ClearLeft)
	case "right":
		return values.Specified(values.ClearRight)
	case "both":
		return values.Specified(values.ClearBoth)
	}
	badValue(key, v)
	return values.Specified(values.ClearNone)
}

func convertWidth(key, v string) (values.CSSValue[values.Width], error) {
	if v == "auto" {
		return values.Specified(values.WidthAuto()), nil
	}
	l, pct, kind, err := lengthOrPercent(key, v)
	if err != nil {
		return values.CSSValue[values.Width]{}, err
	}
	switch kind {
	case lpLength:
		return values.Specified(values.WidthLength(l)), nil
	case lpPercent:
		return values.Specified(values.WidthPercentage(pct)), nil
	}
	badValue(key, v)
	return values.Specified(values.WidthAuto()), nil
}

func convertHeight(key, v string) (values.CSSValue[values.Height], error) {
	if v == "auto" {
		return values.Specified(values.HeightAuto()), nil
	}
	l, pct, kind, err := lengthOrPercent(key, v)
	if err != nil {
		return values.CSSValue[values.Height]{}, err
	}
	switch kind {
	case lpLength:
		return values.Specified(values.HeightLength(l)), nil
	case lpPercent:
		return values.Specified(values.HeightPercentage(pct)), nil
	}
	badValue(key, v)
	return values.Specified(values.HeightAuto()), nil
}

func convertLineHeight(key, v string) (values.CSSValue[values.LineHeight], error) {
	if v == "normal" {
		return values.Specified(values.LineHeightNormal()), nil
	}
	// a bare number, zero included, is a factor on the font size
	if x, err := strconv.ParseFloat(v, 64); err == nil {
		return values.Specified(values.LineHeightNumber(x)), nil
	}
	l, pct, kind, err := lengthOrPercent(key, v)
	if err != nil {
		return values.CSSValue[values.LineHeight]{}, err
	}
	switch kind {
	case lpLength:
		return values.Specified(values.LineHeightLength(l)), nil
	case lpPercent:
		return values.Specified(values.LineHeightPercentage(pct)), nil
	}
	badValue(key, v)
	return values.Specified(values.LineHeightNormal()), nil
}

var verticalAligns = map[string]values.VerticalAlignKind{
	"baseline":    values.VerticalAlignKindBaseline,
	"sub":         values.VerticalAlignKindSub,
	"super":       values.VerticalAlignKindSuper,
	"top":         values.VerticalAlignKindTop,
	"text-top":    values.VerticalAlignKindTextTop,
	"middle":      values.VerticalAlignKindMiddle,
	"bottom":      values.VerticalAlignKindBottom,
	"text-bottom": values.VerticalAlignKindTextBottom,
}

func convertVerticalAlign(key, v string) (values.CSSValue[values.VerticalAlign], error) {
	if k, ok := verticalAligns[v]; ok {
		return values.Specified(values.VerticalAlignKeyword(k)), nil
	}
	l, pct, kind, err := lengthOrPercent(key, v)
	if err != nil {
		return values.CSSValue[values.VerticalAlign]{}, err
	}
	switch kind {
	case lpLength:
		return values.Specified(values.VerticalAlignLength(l)), nil
	case lpPercent:
		return values.Specified(values.VerticalAlignPercentage(pct)), nil
	}
	badValue(key, v)
	return values.Specified(values.VerticalAlignKeyword(values.VerticalAlignKindBaseline)), nil
}

func convertColor(key, v string) values.CSSValue[color.Color] {
	if c, ok := color.Parse(v); ok {
		return values.Specified(c)
	}
	badValue(key, v)
	return values.Specified(color.RGB(0, 0, 0))
}

func convertBackgroundColor(key, v string) values.CSSValue[values.BackgroundColor] {
	if v == "transparent" {
		return values.Specified(values.BackgroundColorTransparent())
	}
	if c, ok := color.Parse(v); ok {
		return values.Specified(values.BackgroundColorColor(c))
	}
	badValue(key, v)
	return values.Specified(values.BackgroundColorTransparent())
}

var genericFamilies = map[string]unit.GenericFontFamily{
	"serif":      unit.Serif,
	"sans-serif": unit.SansSerif,
	"cursive":    unit.Cursive,
	"fantasy":    unit.Fantasy,
	"monospace":  unit.Monospace,
}

// convertFontFamily splits a font-family list, preserving source order.
// Quotes around family names are dropped, empty entries are skipped.
func convertFontFamily(key, v string) values.CSSValue[[]values.FontFamily] {
	var families []values.FontFamily
	for _, f := range strings.Split(v, ",") {
		f = strings.TrimSpace(f)
		f = strings.Trim(f, `"'`)
		if f == "" {
			continue
		}
		if g, ok := genericFamilies[strings.ToLower(f)]; ok {
			families = append(families, values.FontFamilyGeneric(g))
		} else {
			families = append(families, values.FontFamilyName(f))
		}
	}
	if len(families) == 0 {
		badValue(key, v)
		families = []values.FontFamily{values.FontFamilyGeneric(unit.Serif)}
	}
	return values.Specified(families)
}

func convertFontStyle(key, v string) values.CSSValue[values.FontStyle] {
	switch v {
	case "normal":
		return values.Specified(values.FontStyleNormal)
	case "italic":
		return values.Specified(values.FontStyleItalic)
	case "oblique":
		return values.Specified(values.FontStyleOblique)
	}
	badValue(key, v)
	return values.Specified(values.FontStyleNormal)
}

var fontWeights = map[string]values.FontWeight{
	"normal":  values.FontWeightNormal,
	"bold":    values.FontWeightBold,
	"bolder":  values.FontWeightBolder,
	"lighter": values.FontWeightLighter,
	"100":     values.FontWeight100,
	"200":     values.FontWeight200,
	"300":     values.FontWeight300,
	"400":     values.FontWeight400,
	"500":     values.FontWeight500,
	"600":     values.FontWeight600,
	"700":     values.FontWeight700,
	"800":     values.FontWeight800,
	"900":     values.FontWeight900,
}

func convertFontWeight(key, v string) values.CSSValue[values.FontWeight] {
	if w, ok := fontWeights[v]; ok {
		return values.Specified(w)
	}
	badValue(key, v)
	return values.Specified(values.FontWeightNormal)
}

var absoluteSizes = map[string]unit.AbsoluteSize{
	"xx-small": unit.XXSmall,
	"x-small":  unit.XSmall,
	"small":    unit.Small,
	"medium":   unit.Medium,
	"large":    unit.Large,
	"x-large":  unit.XLarge,
	"xx-large": unit.XXLarge,
}

func convertFontSize(key, v string) (values.CSSValue[values.FontSize], error) {
	if a, ok := absoluteSizes[v]; ok {
		return values.Specified(values.FontSizeAbsolute(a)), nil
	}
	switch v {
	case "larger":
		return values.Specified(values.FontSizeRelative(unit.Larger)), nil
	case "smaller":
		return values.Specified(values.FontSizeRelative(unit.Smaller)), nil
	}
	l, pct, kind, err := lengthOrPercent(key, v)
	if err != nil {
		return values.CSSValue[values.FontSize]{}, err
	}
	switch kind {
	case lpLength:
		return values.Specified(values.FontSizeLength(l)), nil
	case lpPercent:
		return values.Specified(values.FontSizePercentage(pct)), nil
	}
	badValue(key, v)
	return values.Specified(values.FontSizeAbsolute(unit.Medium)), nil
}

func convertTextAlign(key, v string) values.CSSValue[values.TextAlign] {
	switch v {
	case "left":
		return values.Specified(values.TextAlignLeft)
	case "right":
		return values.Specified(values.TextAlignRight)
	case "center":
		return values.Specified(values.TextAlignCenter)
	case "justify":
		return values.Specified(values.TextAlignJustify)
	}
	badValue(key, v)
	return values.Specified(values.TextAlignLeft)
}

func convertTextDecoration(key, v string) values.CSSValue[values.TextDecoration] {
	switch v {
	case "none":
		return values.Specified(values.TextDecorationNone)
	case "underline":
		return values.Specified(values.TextDecorationUnderline)
	case "overline":
		return values.Specified(values.TextDecorationOverline)
	case "line-through":
		return values.Specified(values.TextDecorationLineThrough)
	case "blink":
		return values.Specified(values.TextDecorationBlink)
	}
	badValue(key, v)
	return values.Specified(values.TextDecorationNone)
}
