package complete

import (
	"testing"

	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/color"
	"github.com/npillmayer/cascade/style/computed"
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

func computedStyle(t *testing.T, props map[string]string) *computed.ComputedStyle {
	t.Helper()
	pmap := style.NewPropertyMap()
	for k, v := range props {
		pmap.Add(k, style.Property(v))
	}
	cs, err := computed.FromStyles(pmap, div())
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	return cs
}

func TestRootDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.complete")
	defer teardown()
	root := NewRoot(computedStyle(t, nil))
	assert.Equal(t, 16.0, root.FontSizePx())
	assert.Equal(t, color.RGB(0, 0, 0), root.Color())
	assert.Equal(t, values.BackgroundColorTransparent(), root.BackgroundColor())
	assert.Equal(t, values.MarginLength(unit.Px(0)), root.MarginTop())
	assert.Equal(t, values.DisplayBlock, root.Display())
	assert.Equal(t, []values.FontFamily{values.FontFamilyGeneric(unit.Serif)}, root.FontFamily())
}

func TestColorInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.complete")
	defer teardown()
	parent := NewRoot(computedStyle(t, map[string]string{"color": "blue"}))
	child := NewFromParent(computedStyle(t, nil), parent)
	assert.Equal(t, color.RGB(0, 0, 255), child.Color(), "child should inherit the parent's color")

	grandchild := NewFromParent(computedStyle(t, map[string]string{"color": "red"}), child)
	assert.Equal(t, color.RGB(255, 0, 0), grandchild.Color(), "own declaration beats inheritance")
}

func TestBackgroundColorDoesNotInherit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.complete")
	defer teardown()
	parent := NewRoot(computedStyle(t, map[string]string{"background-color": "blue"}))
	child := NewFromParent(computedStyle(t, nil), parent)
	// background-color is not inherited: the child falls back to the
	// initial value, which the typed adapter already filled in.
	assert.Equal(t, values.BackgroundColorTransparent(), child.BackgroundColor())
}

func TestFontSizeResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.complete")
	defer teardown()
	parent := NewRoot(computedStyle(t, map[string]string{"font-size": "20px"}))
	assert.Equal(t, 20.0, parent.FontSizePx())

	pct := NewFromParent(computedStyle(t, map[string]string{"font-size": "150%"}), parent)
	assert.Equal(t, 30.0, pct.FontSizePx())

	em := NewFromParent(computedStyle(t, map[string]string{"font-size": "2em"}), parent)
	assert.Equal(t, 40.0, em.FontSizePx())

	larger := NewFromParent(computedStyle(t, map[string]string{"font-size": "larger"}), parent)
	assert.InDelta(t, 24.0, larger.FontSizePx(), 0.0001)

	inherited := NewFromParent(computedStyle(t, nil), em)
	assert.Equal(t, 40.0, inherited.FontSizePx(), "font-size inherits as the resolved length")

	keyword := NewFromParent(computedStyle(t, map[string]string{"font-size": "medium"}), em)
	assert.Equal(t, 16.0, keyword.FontSizePx(), "absolute-size keywords ignore the parent size")
}

func TestMarginAuto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.complete")
	defer teardown()
	cs := NewRoot(computedStyle(t, map[string]string{"margin-left": "auto"}))
	assert.Equal(t, values.MarginAuto(), cs.MarginLeft())
	assert.Equal(t, values.MarginLength(unit.Px(0)), cs.MarginTop())
	assert.Equal(t, values.MarginLength(unit.Px(0)), cs.MarginRight())
	assert.Equal(t, values.MarginLength(unit.Px(0)), cs.MarginBottom())
}

func TestResolutionIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.complete")
	defer teardown()
	cs := computedStyle(t, map[string]string{
		"color":       "green",
		"font-size":   "12pt",
		"margin-left": "1em",
	})
	a := NewRoot(cs)
	b := NewRoot(cs)
	assert.Equal(t, a.inner, b.inner)
}

func TestFontFamilyListIsCopied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.complete")
	defer teardown()
	parent := NewRoot(computedStyle(t, map[string]string{"font-family": "Arial, sans-serif"}))
	child := NewFromParent(computedStyle(t, nil), parent)
	families := child.FontFamily()
	if assert.Len(t, families, 2) {
		families[0] = values.FontFamilyName("Mangled")
		assert.Equal(t, values.FontFamilyName("Arial"), child.FontFamily()[0],
			"mutating the returned slice must not affect the style")
	}
}
