package computed

import (
	"testing"

	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/color"
	"github.com/npillmayer/cascade/style/unit"
	"github.com/npillmayer/cascade/style/values"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func div() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
}

func TestFromStylesDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.computed")
	defer teardown()
	cs, err := FromStyles(nil, div())
	if err != nil {
		t.Fatalf("conversion of empty styles failed: %v", err)
	}
	// inherited properties carry the inherit-marker
	assert.True(t, cs.Color.IsInherit(), "color should be marked as inherit")
	assert.True(t, cs.FontSize.IsInherit(), "font-size should be marked as inherit")
	assert.True(t, cs.FontFamily.IsInherit(), "font-family should be marked as inherit")
	// non-inherited properties carry their initial value
	assert.Equal(t, values.WidthAuto(), cs.Width.Value())
	assert.Equal(t, values.BorderWidthMedium(), cs.BorderTopWidth.Value())
	assert.Equal(t, values.MarginLength(unit.Px(0)), cs.MarginBottom.Value())
	assert.Equal(t, values.BackgroundColorTransparent(), cs.BackgroundColor.Value())
	assert.Equal(t, values.TextDecorationNone, cs.TextDecoration.Value())
	// display defaults to the element's display mode
	assert.Equal(t, values.DisplayBlock, cs.Display.Value())
}

func TestFromStylesLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.computed")
	defer teardown()
	pmap := style.NewPropertyMap()
	pmap.Add("margin-left", "auto")
	pmap.Add("margin-top", "10px")
	pmap.Add("padding-top", "5%")
	pmap.Add("border-top-width", "10pt")
	pmap.Add("font-size", "1.5em")
	pmap.Add("width", "80%")
	cs, err := FromStyles(pmap, div())
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	assert.Equal(t, values.MarginAuto(), cs.MarginLeft.Value())
	assert.Equal(t, values.MarginLength(unit.Px(10)), cs.MarginTop.Value())
	assert.Equal(t, values.PaddingPercentage(5), cs.PaddingTop.Value())
	assert.Equal(t, values.BorderWidthLength(unit.Pt(10)), cs.BorderTopWidth.Value())
	assert.Equal(t, values.FontSizeLength(unit.Em(1.5)), cs.FontSize.Value())
	assert.Equal(t, values.WidthPercentage(80), cs.Width.Value())
}

func TestFromStylesLineHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.computed")
	defer teardown()
	pmap := style.NewPropertyMap()
	pmap.Add("line-height", "1.2")
	cs, err := FromStyles(pmap, div())
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	assert.Equal(t, values.LineHeightNumber(1.2), cs.LineHeight.Value())

	pmap = style.NewPropertyMap()
	pmap.Add("line-height", "0")
	cs, err = FromStyles(pmap, div())
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	assert.Equal(t, values.LineHeightNumber(0), cs.LineHeight.Value(),
		"a bare zero is a number, not a length")
}

func TestFromStylesKeywordsAndColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.computed")
	defer teardown()
	pmap := style.NewPropertyMap()
	pmap.Add("display", "inline-block")
	pmap.Add("float", "left")
	pmap.Add("font-weight", "700")
	pmap.Add("color", "red")
	pmap.Add("border-top-color", "transparent")
	pmap.Add("background-color", "rgba(0,128,255,0.5)")
	pmap.Add("font-family", `"Helvetica Neue", Arial, sans-serif`)
	cs, err := FromStyles(pmap, div())
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	assert.Equal(t, values.DisplayInlineBlock, cs.Display.Value())
	assert.Equal(t, values.FloatLeft, cs.Float.Value())
	assert.Equal(t, values.FontWeight700, cs.FontWeight.Value())
	assert.Equal(t, color.RGB(255, 0, 0), cs.Color.Value())
	assert.Equal(t, values.BorderColorTransparent(), cs.BorderTopColor.Value())
	assert.Equal(t, values.BackgroundColorColor(color.RGBA(0, 128, 255, 0.5)), cs.BackgroundColor.Value())
	families := cs.FontFamily.Value()
	if assert.Len(t, families, 3) {
		assert.Equal(t, values.FontFamilyName("Helvetica Neue"), families[0])
		assert.Equal(t, values.FontFamilyName("Arial"), families[1])
		assert.Equal(t, values.FontFamilyGeneric(unit.SansSerif), families[2])
	}
}

func TestFromStylesOutOfSubset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.computed")
	defer teardown()
	pmap := style.NewPropertyMap()
	pmap.Add("display", "run-in")
	_, err := FromStyles(pmap, div())
	if err == nil {
		t.Fatalf("expected display:run-in to be flagged as unsupported")
	}
	perr, ok := err.(*PropertyError)
	if !ok {
		t.Fatalf("expected a *PropertyError, got %T", err)
	}
	assert.Equal(t, "display", perr.Key)
	assert.Equal(t, "run-in", perr.Value)

	pmap = style.NewPropertyMap()
	pmap.Add("font-size", "1.5rem")
	_, err = FromStyles(pmap, div())
	if assert.Error(t, err, "rem is outside of the px/pt/em subset") {
		assert.Equal(t, "font-size", err.(*PropertyError).Key)
	}
}

func TestFromStylesMalformedFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.computed")
	defer teardown()
	pmap := style.NewPropertyMap()
	pmap.Add("margin-top", "several")
	pmap.Add("float", "sideways")
	cs, err := FromStyles(pmap, div())
	if err != nil {
		t.Fatalf("malformed values must not abort the conversion: %v", err)
	}
	assert.Equal(t, values.MarginLength(unit.Px(0)), cs.MarginTop.Value())
	assert.Equal(t, values.FloatNone, cs.Float.Value())
}

func TestFromStylesInitialKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.computed")
	defer teardown()
	pmap := style.NewPropertyMap()
	pmap.Add("color", "initial")
	cs, err := FromStyles(pmap, div())
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	assert.Equal(t, color.RGB(0, 0, 0), cs.Color.Value())
}
