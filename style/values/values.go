/*
Package values declares the typed representation of CSS property values.

Types are named after the property. Constructor functions carry the name of
the property plus the name of the value used in the CSS 2.1 spec. This leads
to some verbose names, e.g.: property 'background-color' and specified value
'<color>' lead to constructor BackgroundColorColor(…). At least it is
consistent.

Every property family is a closed set and compares structurally. A value is
wrapped into the generic CSSValue, which explicitly distinguishes
“inherit from the parent, not yet resolved” from “specified, concrete”.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package values

import (
	"github.com/npillmayer/cascade/style/color"
	"github.com/npillmayer/cascade/style/unit"
)

// CSSValue is a partial CSS value, before inheritance has been resolved.
// The zero value is Inherit.
type CSSValue[T any] struct {
	specified bool
	value     T
}

// Inherit creates a value carrying no concrete value yet; the cascade will
// substitute the ancestor's resolved value for it.
func Inherit[T any]() CSSValue[T] {
	return CSSValue[T]{}
}

// Specified wraps a concrete, pre-inheritance value.
func Specified[T any](v T) CSSValue[T] {
	return CSSValue[T]{specified: true, value: v}
}

// IsInherit is true as long as no concrete value is present.
func (v CSSValue[T]) IsInherit() bool {
	return !v.specified
}

// Value unwraps the concrete value. After cascade resolution every property
// carries one; observing Inherit here therefore indicates a resolver defect
// and is a programming error.
func (v CSSValue[T]) Value() T {
	if !v.specified {
		panic("values: unexpected 'inherit' value in complete style")
	}
	return v.value
}

// --- CSS 2.1, Section 8 – Box model -----------------------------------------

// MarginKind tags the variants of Margin.
type MarginKind uint8

// Margin variants.
const (
	MarginKindLength MarginKind = iota
	MarginKindPercentage
	MarginKindAuto
)

// Margin is a value for the margin-* properties:
// length, percentage or auto.
type Margin struct {
	Kind    MarginKind
	Length  unit.Length
	Percent float64
}

func MarginLength(l unit.Length) Margin {
	return Margin{Kind: MarginKindLength, Length: l}
}

func MarginPercentage(pct float64) Margin {
	return Margin{Kind: MarginKindPercentage, Percent: pct}
}

func MarginAuto() Margin {
	return Margin{Kind: MarginKindAuto}
}

// PaddingKind tags the variants of Padding.
type PaddingKind uint8

// Padding variants.
const (
	PaddingKindLength PaddingKind = iota
	PaddingKindPercentage
)

// Padding is a value for the padding-* properties: length or percentage.
type Padding struct {
	Kind    PaddingKind
	Length  unit.Length
	Percent float64
}

func PaddingLength(l unit.Length) Padding {
	return Padding{Kind: PaddingKindLength, Length: l}
}

func PaddingPercentage(pct float64) Padding {
	return Padding{Kind: PaddingKindPercentage, Percent: pct}
}

// BorderWidthKind tags the variants of BorderWidth.
type BorderWidthKind uint8

// BorderWidth variants.
const (
	BorderWidthKindThin BorderWidthKind = iota
	BorderWidthKindMedium
	BorderWidthKindThick
	BorderWidthKindLength
)

// BorderWidth is a value for the border-*-width properties.
type BorderWidth struct {
	Kind   BorderWidthKind
	Length unit.Length
}

func BorderWidthThin() BorderWidth {
	return BorderWidth{Kind: BorderWidthKindThin}
}

func BorderWidthMedium() BorderWidth {
	return BorderWidth{Kind: BorderWidthKindMedium}
}

func BorderWidthThick() BorderWidth {
	return BorderWidth{Kind: BorderWidthKindThick}
}

func BorderWidthLength(l unit.Length) BorderWidth {
	return BorderWidth{Kind: BorderWidthKindLength, Length: l}
}

// BorderColorKind tags the variants of BorderColor.
type BorderColorKind uint8

// BorderColor variants.
const (
	BorderColorKindColor BorderColorKind = iota
	BorderColorKindTransparent
)

// BorderColor is a value for the border-*-color properties.
type BorderColor struct {
	Kind  BorderColorKind
	Color color.Color
}

func BorderColorColor(c color.Color) BorderColor {
	return BorderColor{Kind: BorderColorKindColor, Color: c}
}

func BorderColorTransparent() BorderColor {
	return BorderColor{Kind: BorderColorKindTransparent}
}

// BorderStyle is a value for the border-*-style properties.
type BorderStyle uint8

// Border styles.
const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

func (b BorderStyle) String() string {
	return [...]string{"none", "hidden", "dotted", "dashed", "solid",
		"double", "groove", "ridge", "inset", "outset"}[b]
}

// --- CSS 2.1, Section 9 – Visual formatting model ----------------------------

// Display is a value for property display, restricted to the CSS 2.1
// keyword set.
type Display uint8

// Display keywords.
const (
	DisplayInline Display = iota
	DisplayBlock
	DisplayListItem
	DisplayInlineBlock
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCell
	DisplayTableCaption
	DisplayNone
)

func (d Display) String() string {
	return [...]string{"inline", "block", "list-item", "inline-block",
		"table", "inline-table", "table-row-group", "table-header-group",
		"table-footer-group", "table-row", "table-column-group",
		"table-column", "table-cell", "table-caption", "none"}[d]
}

// Position is a value for property position.
type Position uint8

// Position keywords.
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// Float is a value for property float.
type Float uint8

// Float keywords.
const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

// Clear is a value for property clear.
type Clear uint8

// Clear keywords.
const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

// --- CSS 2.1, Section 10 – Visual formatting model details -------------------

// WidthKind tags the variants of Width and Height.
type WidthKind uint8

// Width/Height variants.
const (
	WidthKindLength WidthKind = iota
	WidthKindPercentage
	WidthKindAuto
)

// Width is a value for property width: length, percentage or auto.
type Width struct {
	Kind    WidthKind
	Length  unit.Length
	Percent float64
}

func WidthLength(l unit.Length) Width {
	return Width{Kind: WidthKindLength, Length: l}
}

func WidthPercentage(pct float64) Width {
	return Width{Kind: WidthKindPercentage, Percent: pct}
}

func WidthAuto() Width {
	return Width{Kind: WidthKindAuto}
}

// Height is a value for property height: length, percentage or auto.
type Height struct {
	Kind    WidthKind
	Length  unit.Length
	Percent float64
}

func HeightLength(l unit.Length) Height {
	return Height{Kind: WidthKindLength, Length: l}
}

func HeightPercentage(pct float64) Height {
	return Height{Kind: WidthKindPercentage, Percent: pct}
}

func HeightAuto() Height {
	return Height{Kind: WidthKindAuto}
}

// LineHeightKind tags the variants of LineHeight.
type LineHeightKind uint8

// LineHeight variants.
const (
	LineHeightKindNormal LineHeightKind = iota
	LineHeightKindNumber
	LineHeightKindLength
	LineHeightKindPercentage
)

// LineHeight is a value for property line-height.
type LineHeight struct {
	Kind    LineHeightKind
	Length  unit.Length
	Scalar  float64 // number or percentage, depending on Kind
}

func LineHeightNormal() LineHeight {
	return LineHeight{Kind: LineHeightKindNormal}
}

func LineHeightNumber(n float64) LineHeight {
	return LineHeight{Kind: LineHeightKindNumber, Scalar: n}
}

func LineHeightLength(l unit.Length) LineHeight {
	return LineHeight{Kind: LineHeightKindLength, Length: l}
}

func LineHeightPercentage(pct float64) LineHeight {
	return LineHeight{Kind: LineHeightKindPercentage, Scalar: pct}
}

// VerticalAlignKind tags the variants of VerticalAlign.
type VerticalAlignKind uint8

// VerticalAlign variants.
const (
	VerticalAlignKindBaseline VerticalAlignKind = iota
	VerticalAlignKindSub
	VerticalAlignKindSuper
	VerticalAlignKindTop
	VerticalAlignKindTextTop
	VerticalAlignKindMiddle
	VerticalAlignKindBottom
	VerticalAlignKindTextBottom
	VerticalAlignKindPercentage
	VerticalAlignKindLength
)

// VerticalAlign is a value for property vertical-align.
type VerticalAlign struct {
	Kind    VerticalAlignKind
	Length  unit.Length
	Percent float64
}

func VerticalAlignKeyword(k VerticalAlignKind) VerticalAlign {
	return VerticalAlign{Kind: k}
}

func VerticalAlignLength(l unit.Length) VerticalAlign {
	return VerticalAlign{Kind: VerticalAlignKindLength, Length: l}
}

func VerticalAlignPercentage(pct float64) VerticalAlign {
	return VerticalAlign{Kind: VerticalAlignKindPercentage, Percent: pct}
}

// --- CSS 2.1, Section 14 – Colors and backgrounds ----------------------------

// BackgroundColorKind tags the variants of BackgroundColor.
type BackgroundColorKind uint8

// BackgroundColor variants.
const (
	BackgroundColorKindColor BackgroundColorKind = iota
	BackgroundColorKindTransparent
)

// BackgroundColor is a value for property background-color.
type BackgroundColor struct {
	Kind  BackgroundColorKind
	Color color.Color
}

func BackgroundColorColor(c color.Color) BackgroundColor {
	return BackgroundColor{Kind: BackgroundColorKindColor, Color: c}
}

func BackgroundColorTransparent() BackgroundColor {
	return BackgroundColor{Kind: BackgroundColorKindTransparent}
}

// Property color has no variants besides <color>; it is represented by
// color.Color directly.

// --- CSS 2.1, Section 15 – Fonts ---------------------------------------------

// FontFamilyKind tags the variants of FontFamily.
type FontFamilyKind uint8

// FontFamily variants.
const (
	FontFamilyKindGeneric FontFamilyKind = iota
	FontFamilyKindName
)

// FontFamily is one entry of a font-family list: a generic family keyword
// or a literal family name. The list preserves source order; first-match
// semantics are the concern of the font machinery, not of styling.
type FontFamily struct {
	Kind    FontFamilyKind
	Generic unit.GenericFontFamily
	Name    string
}

func FontFamilyGeneric(g unit.GenericFontFamily) FontFamily {
	return FontFamily{Kind: FontFamilyKindGeneric, Generic: g}
}

func FontFamilyName(name string) FontFamily {
	return FontFamily{Kind: FontFamilyKindName, Name: name}
}

// FontStyle is a value for property font-style.
type FontStyle uint8

// Font styles.
const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

// FontWeight is a value for property font-weight.
type FontWeight uint8

// Font weights.
const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
	FontWeightBolder
	FontWeightLighter
	FontWeight100
	FontWeight200
	FontWeight300
	FontWeight400
	FontWeight500
	FontWeight600
	FontWeight700
	FontWeight800
	FontWeight900
)

// FontSizeKind tags the variants of FontSize.
type FontSizeKind uint8

// FontSize variants.
const (
	FontSizeKindAbsolute FontSizeKind = iota
	FontSizeKindRelative
	FontSizeKindLength
	FontSizeKindPercentage
)

// FontSize is a value for property font-size: an absolute-size keyword,
// a relative-size keyword, a length or a percentage.
type FontSize struct {
	Kind     FontSizeKind
	Absolute unit.AbsoluteSize
	Relative unit.RelativeSize
	Length   unit.Length
	Percent  float64
}

func FontSizeAbsolute(a unit.AbsoluteSize) FontSize {
	return FontSize{Kind: FontSizeKindAbsolute, Absolute: a}
}

func FontSizeRelative(r unit.RelativeSize) FontSize {
	return FontSize{Kind: FontSizeKindRelative, Relative: r}
}

func FontSizeLength(l unit.Length) FontSize {
	return FontSize{Kind: FontSizeKindLength, Length: l}
}

func FontSizePercentage(pct float64) FontSize {
	return FontSize{Kind: FontSizeKindPercentage, Percent: pct}
}

// --- CSS 2.1, Section 16 – Text ----------------------------------------------

// TextAlign is a value for property text-align.
type TextAlign uint8

// Text alignments.
const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// TextDecoration is a value for property text-decoration.
type TextDecoration uint8

// Text decorations.
const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
	TextDecorationOverline
	TextDecorationLineThrough
	TextDecorationBlink
)
