package cssom_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/cssom"
	"github.com/npillmayer/cascade/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func makeDoc(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><head></head><body>" + body + "</body></html>"))
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	return doc
}

func query(t *testing.T, doc *html.Node, sel string) *html.Node {
	t.Helper()
	node := cascadia.Query(doc, cascadia.MustCompile(sel))
	if node == nil {
		t.Fatalf("no node matches %q in test document", sel)
	}
	return node
}

func makeCtx(t *testing.T, origin cssom.Origin, csstext string) *cssom.SelectCtx {
	t.Helper()
	ctx := cssom.NewSelectCtx()
	appendSheet(t, ctx, origin, csstext)
	return ctx
}

func appendSheet(t *testing.T, ctx *cssom.SelectCtx, origin cssom.Origin, csstext string) {
	t.Helper()
	sheet, err := douceuradapter.Parse(csstext)
	if err != nil {
		t.Fatalf("cannot parse test stylesheet: %v", err)
	}
	ctx.AppendSheet(sheet, origin)
}

func TestSpecificityWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p class="hl">Hello</p>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `
		p.hl { color: red; }
		p    { color: blue; }
	`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.Property("red"), c, "class selector should beat type selector")
}

func TestIDBeatsClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p id="intro" class="hl">Hello</p>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `
		#intro { color: navy; }
		p.hl   { color: red; }
	`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.Property("navy"), c, "id selector should beat class selector")
}

func TestSourceOrderBreaksTies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p>Hello</p>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `
		p { color: blue; }
		p { color: red; }
	`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.Property("red"), c, "the later of two equal declarations wins")
}

func TestDuplicateDeclarationInOneRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p>Hello</p>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `p { color: blue; color: red; }`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.Property("red"), c,
		"the later of two declarations of the same key within one rule wins")
}

func TestOriginOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p>Hello</p>`)
	ctx := cssom.NewSelectCtx()
	appendSheet(t, ctx, cssom.OriginUA, `p { color: black; font-size: 12px; }`)
	appendSheet(t, ctx, cssom.OriginAuthor, `p { color: green; }`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.Property("green"), c, "author declarations beat UA declarations")
	fs, _ := res.Styles().Property("font-size")
	assert.Equal(t, style.Property("12px"), fs, "unchallenged UA declarations survive")
}

func TestImportantInvertsOrigins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p>Hello</p>`)
	ctx := cssom.NewSelectCtx()
	appendSheet(t, ctx, cssom.OriginUser, `p { color: black !important; }`)
	appendSheet(t, ctx, cssom.OriginAuthor, `p { color: green !important; }`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.Property("black"), c,
		"important user declarations beat important author declarations")
}

func TestShorthandExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<div>Hello</div>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `div { margin: 10px 20px; }`)
	res := ctx.SelectStyle(query(t, doc, "div"))
	expect := map[string]style.Property{
		"margin-top":    "10px",
		"margin-right":  "20px",
		"margin-bottom": "10px",
		"margin-left":   "20px",
	}
	for key, want := range expect {
		got, _ := res.Styles().Property(key)
		assert.Equal(t, want, got, "expansion of %s", key)
	}
}

func TestBackfill(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<div>Hello</div>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `span { color: red; }`) // matches nothing
	res := ctx.SelectStyle(query(t, doc, "div"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.PropertyInherit, c, "inherited properties backfill with the inherit hint")
	w, _ := res.Styles().Property("width")
	assert.Equal(t, style.Property("auto"), w, "non-inherited properties backfill with their initial value")
	d, _ := res.Styles().Property("display")
	assert.Equal(t, style.Property("block"), d, "display backfills per element")
}

func TestMalformedColorIsDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p>Hello</p>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `
		p { color: green; }
		p { color: rbga(1,2,3); }
	`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.Property("green"), c,
		"an illegal color literal must not displace an earlier declaration")
}

func TestPseudoElementStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p>Hello</p>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `p::before { color: red; }`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.PropertyInherit, c, "the element itself is not affected")
	before := res.PseudoStyles("before")
	if before == nil {
		t.Fatalf("expected styles for pseudo-element ::before")
	}
	pc, _ := before.Property("color")
	assert.Equal(t, style.Property("red"), pc)
}

func TestAtRulesAreSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<p>Hello</p>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `
		@media print { p { color: black; } }
		p { color: green; }
	`)
	res := ctx.SelectStyle(query(t, doc, "p"))
	c, _ := res.Styles().Property("color")
	assert.Equal(t, style.Property("green"), c)
}

func TestComputedStyleFromSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	doc := makeDoc(t, `<div>Hello</div>`)
	ctx := makeCtx(t, cssom.OriginAuthor, `div { font-size: 12pt; }`)
	res := ctx.SelectStyle(query(t, doc, "div"))
	cs, err := res.ComputedStyle()
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	assert.False(t, cs.FontSize.IsInherit())
}
