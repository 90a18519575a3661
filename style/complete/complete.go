/*
Package complete resolves inheritance: it turns the per-element typed
styles of package computed, which may still carry inherit-markers, into
complete styles in which every property holds a concrete value.

Resolution walks parent before child. The root element resolves against
the user-agent defaults; every other element resolves against its parent's
already-complete style. Font size receives special treatment, since
relative font sizes (em, percentages, larger/smaller) resolve against the
parent's absolute font size; a complete style therefore always carries an
absolute font-size length. Other em-lengths stay relative, they are the
layout engine's business.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package complete

import (
	"github.com/npillmayer/cascade/style/color"
	"github.com/npillmayer/cascade/style/computed"
	"github.com/npillmayer/cascade/style/unit"
	"github.com/npillmayer/cascade/style/values"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.complete'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.complete")
}

// DefaultFontSize is the font size of the root element when no stylesheet
// says otherwise, in pixels. 16px is the de-facto browser default.
const DefaultFontSize = 16.0

// CompleteStyle is the fully resolved style of one element: no
// inherit-markers remain, font-size is an absolute length.
type CompleteStyle struct {
	inner computed.ComputedStyle
}

// NewRoot resolves the style of the root element, which has no parent to
// inherit from: inherited properties without a value fall back to the
// user-agent defaults.
func NewRoot(cs *computed.ComputedStyle) *CompleteStyle {
	return NewFromParent(cs, nil)
}

// NewFromParent resolves an element's style against its parent's complete
// style. A nil parent resolves like NewRoot.
func NewFromParent(cs *computed.ComputedStyle, parent *CompleteStyle) *CompleteStyle {
	var p *computed.ComputedStyle
	if parent != nil {
		p = &parent.inner
	}
	return &CompleteStyle{inner: resolve(cs, p)}
}

// cascade picks a concrete value for one property: the element's own if
// specified, otherwise the parent's resolved one, otherwise the initial
// value.
func cascade[T any](child, parent values.CSSValue[T], initial T) values.CSSValue[T] {
	if !child.IsInherit() {
		return child
	}
	if !parent.IsInherit() {
		return parent
	}
	return values.Specified(initial)
}

func resolve(cs *computed.ComputedStyle, parent *computed.ComputedStyle) computed.ComputedStyle {
	var p computed.ComputedStyle // zero fields act as inherit-markers
	if parent != nil {
		p = *parent
	}
	var r computed.ComputedStyle
	zeroMargin := values.MarginLength(unit.Px(0))
	r.MarginTop = cascade(cs.MarginTop, p.MarginTop, zeroMargin)
	r.MarginRight = cascade(cs.MarginRight, p.MarginRight, zeroMargin)
	r.MarginBottom = cascade(cs.MarginBottom, p.MarginBottom, zeroMargin)
	r.MarginLeft = cascade(cs.MarginLeft, p.MarginLeft, zeroMargin)

	zeroPadding := values.PaddingLength(unit.Px(0))
	r.PaddingTop = cascade(cs.PaddingTop, p.PaddingTop, zeroPadding)
	r.PaddingRight = cascade(cs.PaddingRight, p.PaddingRight, zeroPadding)
	r.PaddingBottom = cascade(cs.PaddingBottom, p.PaddingBottom, zeroPadding)
	r.PaddingLeft = cascade(cs.PaddingLeft, p.PaddingLeft, zeroPadding)

	medium := values.BorderWidthMedium()
	r.BorderTopWidth = cascade(cs.BorderTopWidth, p.BorderTopWidth, medium)
	r.BorderRightWidth = cascade(cs.BorderRightWidth, p.BorderRightWidth, medium)
	r.BorderBottomWidth = cascade(cs.BorderBottomWidth, p.BorderBottomWidth, medium)
	r.BorderLeftWidth = cascade(cs.BorderLeftWidth, p.BorderLeftWidth, medium)

	r.BorderTopStyle = cascade(cs.BorderTopStyle, p.BorderTopStyle, values.BorderStyleNone)
	r.BorderRightStyle = cascade(cs.BorderRightStyle, p.BorderRightStyle, values.BorderStyleNone)
	r.BorderBottomStyle = cascade(cs.BorderBottomStyle, p.BorderBottomStyle, values.BorderStyleNone)
	r.BorderLeftStyle = cascade(cs.BorderLeftStyle, p.BorderLeftStyle, values.BorderStyleNone)

	black := values.BorderColorColor(color.RGB(0, 0, 0))
	r.BorderTopColor = cascade(cs.BorderTopColor, p.BorderTopColor, black)
	r.BorderRightColor = cascade(cs.BorderRightColor, p.BorderRightColor, black)
	r.BorderBottomColor = cascade(cs.BorderBottomColor, p.BorderBottomColor, black)
	r.BorderLeftColor = cascade(cs.BorderLeftColor, p.BorderLeftColor, black)

	r.Display = cascade(cs.Display, p.Display, values.DisplayInline)
	r.Position = cascade(cs.Position, p.Position, values.PositionStatic)
	r.Float = cascade(cs.Float, p.Float, values.FloatNone)
	r.Clear = cascade(cs.Clear, p.Clear, values.ClearNone)
	r.Width = cascade(cs.Width, p.Width, values.WidthAuto())
	r.Height = cascade(cs.Height, p.Height, values.HeightAuto())
	r.LineHeight = cascade(cs.LineHeight, p.LineHeight, values.LineHeightNormal())
	r.VerticalAlign = cascade(cs.VerticalAlign, p.VerticalAlign,
		values.VerticalAlignKeyword(values.VerticalAlignKindBaseline))

	r.Color = cascade(cs.Color, p.Color, color.RGB(0, 0, 0))
	r.BackgroundColor = cascade(cs.BackgroundColor, p.BackgroundColor,
		values.BackgroundColorTransparent())

	serif := []values.FontFamily{values.FontFamilyGeneric(unit.Serif)}
	ff := cascade(cs.FontFamily, p.FontFamily, serif)
	r.FontFamily = values.Specified(copyFamilies(ff.Value()))
	r.FontStyle = cascade(cs.FontStyle, p.FontStyle, values.FontStyleNormal)
	r.FontWeight = cascade(cs.FontWeight, p.FontWeight, values.FontWeightNormal)

	var parentSize *unit.Length
	if parent != nil {
		l := parent.FontSize.Value().Length
		parentSize = &l
	}
	size := resolveFontSize(parentSize, cs.FontSize)
	tracer().Debugf("resolved font-size to %s", size)
	r.FontSize = values.Specified(values.FontSizeLength(size))

	r.TextAlign = cascade(cs.TextAlign, p.TextAlign, values.TextAlignLeft)
	r.TextDecoration = cascade(cs.TextDecoration, p.TextDecoration, values.TextDecorationNone)
	return r
}

// resolveFontSize resolves a font-size value against the parent's absolute
// font size (nil for the root element). The result is always an absolute
// length.
func resolveFontSize(parent *unit.Length, child values.CSSValue[values.FontSize]) unit.Length {
	base := unit.Px(DefaultFontSize)
	if parent != nil {
		base = *parent
	}
	if child.IsInherit() {
		return base
	}
	fs := child.Value()
	switch fs.Kind {
	case values.FontSizeKindAbsolute:
		return unit.Px(fs.Absolute.Px())
	case values.FontSizeKindRelative:
		return unit.Px(base.AsPx() * fs.Relative.Factor())
	case values.FontSizeKindPercentage:
		return unit.Px(base.AsPx() * fs.Percent / 100)
	}
	if fs.Length.IsRelative() {
		return unit.Px(base.AsPx() * fs.Length.Rel())
	}
	return unit.Px(fs.Length.AsPx())
}

func copyFamilies(families []values.FontFamily) []values.FontFamily {
	cp := make([]values.FontFamily, len(families))
	copy(cp, families)
	return cp
}

// --- Accessors ----------------------------------------------------------------

// The accessors strip the CSSValue wrapper. After resolution no
// inherit-marker may remain, therefore stripping panics if one does.

func (c *CompleteStyle) MarginTop() values.Margin       { return c.inner.MarginTop.Value() }
func (c *CompleteStyle) MarginRight() values.Margin     { return c.inner.MarginRight.Value() }
func (c *CompleteStyle) MarginBottom() values.Margin    { return c.inner.MarginBottom.Value() }
func (c *CompleteStyle) MarginLeft() values.Margin      { return c.inner.MarginLeft.Value() }
func (c *CompleteStyle) PaddingTop() values.Padding     { return c.inner.PaddingTop.Value() }
func (c *CompleteStyle) PaddingRight() values.Padding   { return c.inner.PaddingRight.Value() }
func (c *CompleteStyle) PaddingBottom() values.Padding  { return c.inner.PaddingBottom.Value() }
func (c *CompleteStyle) PaddingLeft() values.Padding    { return c.inner.PaddingLeft.Value() }

func (c *CompleteStyle) BorderTopWidth() values.BorderWidth    { return c.inner.BorderTopWidth.Value() }
func (c *CompleteStyle) BorderRightWidth() values.BorderWidth  { return c.inner.BorderRightWidth.Value() }
func (c *CompleteStyle) BorderBottomWidth() values.BorderWidth { return c.inner.BorderBottomWidth.Value() }
func (c *CompleteStyle) BorderLeftWidth() values.BorderWidth   { return c.inner.BorderLeftWidth.Value() }

func (c *CompleteStyle) BorderTopStyle() values.BorderStyle    { return c.inner.BorderTopStyle.Value() }
func (c *CompleteStyle) BorderRightStyle() values.BorderStyle  { return c.inner.BorderRightStyle.Value() }
func (c *CompleteStyle) BorderBottomStyle() values.BorderStyle { return c.inner.BorderBottomStyle.Value() }
func (c *CompleteStyle) BorderLeftStyle() values.BorderStyle   { return c.inner.BorderLeftStyle.Value() }

func (c *CompleteStyle) BorderTopColor() values.BorderColor    { return c.inner.BorderTopColor.Value() }
func (c *CompleteStyle) BorderRightColor() values.BorderColor  { return c.inner.BorderRightColor.Value() }
func (c *CompleteStyle) BorderBottomColor() values.BorderColor { return c.inner.BorderBottomColor.Value() }
func (c *CompleteStyle) BorderLeftColor() values.BorderColor   { return c.inner.BorderLeftColor.Value() }

func (c *CompleteStyle) Display() values.Display             { return c.inner.Display.Value() }
func (c *CompleteStyle) Position() values.Position           { return c.inner.Position.Value() }
func (c *CompleteStyle) Float() values.Float                 { return c.inner.Float.Value() }
func (c *CompleteStyle) Clear() values.Clear                 { return c.inner.Clear.Value() }
func (c *CompleteStyle) Width() values.Width                 { return c.inner.Width.Value() }
func (c *CompleteStyle) Height() values.Height               { return c.inner.Height.Value() }
func (c *CompleteStyle) LineHeight() values.LineHeight       { return c.inner.LineHeight.Value() }
func (c *CompleteStyle) VerticalAlign() values.VerticalAlign { return c.inner.VerticalAlign.Value() }

func (c *CompleteStyle) Color() color.Color { return c.inner.Color.Value() }
func (c *CompleteStyle) BackgroundColor() values.BackgroundColor {
	return c.inner.BackgroundColor.Value()
}

// FontFamily returns the resolved font-family list. The returned slice is
// a copy, callers may modify it.
func (c *CompleteStyle) FontFamily() []values.FontFamily {
	return copyFamilies(c.inner.FontFamily.Value())
}

func (c *CompleteStyle) FontStyle() values.FontStyle   { return c.inner.FontStyle.Value() }
func (c *CompleteStyle) FontWeight() values.FontWeight { return c.inner.FontWeight.Value() }

// FontSize returns the resolved font size, always an absolute length.
func (c *CompleteStyle) FontSize() unit.Length {
	return c.inner.FontSize.Value().Length
}

// FontSizePx is a convenience accessor for the resolved font size in
// pixels.
func (c *CompleteStyle) FontSizePx() float64 {
	return c.FontSize().AsPx()
}

func (c *CompleteStyle) TextAlign() values.TextAlign           { return c.inner.TextAlign.Value() }
func (c *CompleteStyle) TextDecoration() values.TextDecoration { return c.inner.TextDecoration.Value() }
