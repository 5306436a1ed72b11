package sheet_test

import (
	"strings"
	"testing"

	"csskit/css"
	"csskit/sheet"
)

func TestSelector_String(t *testing.T) {
	blockquote := sheet.Tag("blockquote")

	tests := []struct {
		name string
		sel  sheet.Selector
		want string
	}{
		{"element", sheet.Tag("p"), "p"},
		{"class", sheet.Class("epigraph"), ".epigraph"},
		{"element with class", sheet.TagClass("p", "note"), "p.note"},
		{"root", sheet.Root(), ":root"},
		{"pseudo element", sheet.Tag("p").WithPseudo(sheet.PseudoFirstLine), "p::first-line"},
		{"class pseudo", sheet.Class("note").WithPseudo(sheet.PseudoBefore), ".note::before"},
		{"descendant", blockquote.Descendant(sheet.Class("cite")), "blockquote .cite"},
		{"nested descendant", blockquote.Descendant(sheet.Tag("p")).Descendant(sheet.Class("x")), "blockquote p .x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sel.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSelector_Predicates(t *testing.T) {
	if !sheet.Tag("p").IsSimple() {
		t.Error("element selector should be simple")
	}
	if (sheet.Selector{}).IsSimple() {
		t.Error("empty selector should not be simple")
	}
	d := sheet.Tag("blockquote").Descendant(sheet.Class("cite"))
	if !d.IsDescendant() {
		t.Error("expected descendant selector")
	}
	if sheet.Class("cite").IsDescendant() {
		t.Error("plain class selector should not be descendant")
	}
}

func TestDeclaration_String(t *testing.T) {
	d := sheet.Decl("color", css.Red)
	if got := d.String(); got != "color: red" {
		t.Errorf("got %q, want %q", got, "color: red")
	}
	if got := d.WithImportant().String(); got != "color: red !important" {
		t.Errorf("got %q, want %q", got, "color: red !important")
	}
	// WithImportant returns a copy
	if d.Important {
		t.Error("original declaration must stay unchanged")
	}
}

func buildSheet() *sheet.Stylesheet {
	s := &sheet.Stylesheet{}
	s.AddImport("reset.css")
	s.AddFontFace(sheet.FontFace{
		Family:  "Open Sans",
		Sources: []sheet.FontSource{{URL: "fonts/OpenSans.woff2", Format: "woff2"}},
		Style:   "normal",
		Weight:  "400",
	})
	s.AddRule(sheet.NewRule(sheet.Tag("p"),
		sheet.Decl("margin", css.Zero()),
		sheet.Decl("color", css.Red),
	))
	s.AddMedia(sheet.Media{
		Query: sheet.MinWidth(css.Px(768)),
		Rules: []sheet.Rule{
			sheet.NewRule(sheet.Class("wide"), sheet.Decl("max-width", css.Rem(60))),
		},
	})
	return s
}

func TestStylesheet_WriteTo(t *testing.T) {
	want := `@import url("reset.css");

@font-face {
  font-family: "Open Sans";
  src: url("fonts/OpenSans.woff2") format("woff2");
  font-style: normal;
  font-weight: 400;
}

p {
  margin: 0px;
  color: red;
}

@media screen and (min-width: 768px) {
  .wide {
    max-width: 60rem;
  }
}
`
	got := buildSheet().String()
	if got != want {
		t.Errorf("rendered stylesheet mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_DeclarationOrderPreserved(t *testing.T) {
	// Output must keep the authored order, not resort alphabetically.
	s := &sheet.Stylesheet{}
	s.AddRule(sheet.NewRule(sheet.Tag("h1"),
		sheet.Decl("z-index", css.Number(10)),
		sheet.Decl("color", css.Blue),
		sheet.Decl("background-color", css.Tomato),
	))

	got := s.String()
	want := "h1 {\n  z-index: 10;\n  color: blue;\n  background-color: tomato;\n}\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_WriteCompactTo(t *testing.T) {
	var sb strings.Builder
	if _, err := buildSheet().WriteCompactTo(&sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := sb.String()

	want := `@import url("reset.css");
@font-face{font-family:"Open Sans";src:url("fonts/OpenSans.woff2") format("woff2");font-style:normal;font-weight:400}
p{margin:0px;color:red}
@media screen and (min-width: 768px){.wide{max-width:60rem}}
`
	if got != want {
		t.Errorf("compact output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_Accessors(t *testing.T) {
	s := buildSheet()

	imports := s.Imports()
	if len(imports) != 1 || imports[0] != "reset.css" {
		t.Errorf("unexpected imports: %v", imports)
	}

	faces := s.FontFaces()
	if len(faces) != 1 || faces[0].Family != "Open Sans" {
		t.Errorf("unexpected font faces: %+v", faces)
	}

	rules := s.Rules()
	if len(rules) != 1 || rules[0].Selector.String() != "p" {
		t.Errorf("unexpected rules: %+v", rules)
	}

	if got := s.RulesBySelector("p"); len(got) != 1 {
		t.Errorf("expected one rule for 'p', got %d", len(got))
	}
	if got := s.RulesBySelector(".wide"); len(got) != 0 {
		t.Errorf("media rules must not surface as top-level, got %d", len(got))
	}
}

func TestStylesheet_RewriteURLs(t *testing.T) {
	s := &sheet.Stylesheet{}
	s.AddImport("reset.css")
	s.AddFontFace(sheet.FontFace{
		Family:  "Serif",
		Sources: []sheet.FontSource{{URL: "fonts/serif.woff", Format: "woff"}},
	})
	s.AddRule(sheet.NewRule(sheet.Class("hero"),
		sheet.Decl("background-image", css.URL("img/bg.png")),
		sheet.Decl("color", css.Red),
	))

	var seen []string
	s.RewriteURLs(func(u string) string {
		seen = append(seen, u)
		return "assets/" + u
	})

	if len(seen) != 3 {
		t.Fatalf("expected 3 rewritten URLs, got %d: %v", len(seen), seen)
	}

	out := s.String()
	for _, want := range []string{
		`@import url("assets/reset.css");`,
		`src: url("assets/fonts/serif.woff") format("woff");`,
		`background-image: url("assets/img/bg.png");`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Untouched values survive the rewrite.
	if !strings.Contains(out, "color: red;") {
		t.Errorf("unrelated declaration lost:\n%s", out)
	}
}

func TestRule_Add(t *testing.T) {
	r := sheet.NewRule(sheet.Tag("p"))
	r.Add(sheet.Decl("color", css.Red))
	r.Add(sheet.Decl("margin", css.Em(1)), sheet.Decl("padding", css.Zero()))
	if len(r.Declarations) != 3 {
		t.Errorf("expected 3 declarations, got %d", len(r.Declarations))
	}
}

func TestMediaQuery_String(t *testing.T) {
	tests := []struct {
		name string
		q    sheet.MediaQuery
		want string
	}{
		{"type only", sheet.MediaQuery{Type: "print"}, "print"},
		{"negated type", sheet.MediaQuery{Type: "screen", Negated: true}, "not screen"},
		{"min width", sheet.MinWidth(css.Px(480)), "screen and (min-width: 480px)"},
		{
			"boolean feature",
			sheet.MediaQuery{Features: []sheet.MediaFeature{{Name: "hover"}}},
			"(hover)",
		},
		{
			"negated feature",
			sheet.MediaQuery{Type: "screen", Features: []sheet.MediaFeature{{Name: "monochrome", Negated: true}}},
			"screen and not (monochrome)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChecker_ValidStylesheet(t *testing.T) {
	c := sheet.NewChecker(nil)
	if err := c.Check([]byte(buildSheet().String()), "test"); err != nil {
		t.Errorf("valid stylesheet flagged: %v", err)
	}
}

func TestChecker_InvalidCSS(t *testing.T) {
	c := sheet.NewChecker(nil)
	err := c.Check([]byte("p { color: red }\n.dangling"), "test")
	if err == nil {
		t.Fatal("expected error for dangling selector")
	}
	if !strings.Contains(err.Error(), "test") {
		t.Errorf("error should name the source, got: %v", err)
	}
}

func TestChecker_CheckSheet(t *testing.T) {
	c := sheet.NewChecker(nil)

	good := buildSheet()
	if err := c.CheckSheet(good, "good"); err != nil {
		t.Errorf("valid stylesheet flagged: %v", err)
	}

	bad := &sheet.Stylesheet{}
	bad.AddRule(sheet.NewRule(sheet.Tag("p"), sheet.Decl("color", css.Red)))
	bad.AddRule(sheet.NewRule(sheet.Tag("h1"), sheet.Decl("color", css.Raw("red } .dangling ("))))
	err := c.CheckSheet(bad, "bad")
	if err == nil {
		t.Fatal("expected error for broken raw value")
	}
	if !strings.Contains(err.Error(), "item 1") {
		t.Errorf("error should name the offending item, got: %v", err)
	}
}
