// Package sheet builds CSS stylesheets from typed values and renders them
// as text. Items keep their authored order, declarations keep their authored
// order - nothing is reshuffled on output.
package sheet

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"csskit/css"
)

// Declaration is a single "property: value" pair inside a rule.
type Declaration struct {
	Property  string
	Value     fmt.Stringer
	Important bool
}

// Decl builds a declaration for a typed value.
func Decl(property string, value fmt.Stringer) Declaration {
	return Declaration{Property: property, Value: value}
}

// WithImportant returns a copy of the declaration marked !important.
func (d Declaration) WithImportant() Declaration {
	d.Important = true
	return d
}

// String renders the declaration without the trailing semicolon.
func (d Declaration) String() string {
	s := d.Property + ": " + d.Value.String()
	if d.Important {
		s += " !important"
	}
	return s
}

// PseudoElement represents which pseudo-element a selector targets.
type PseudoElement int

const (
	PseudoNone        PseudoElement = iota // no pseudo-element
	PseudoBefore                           // ::before
	PseudoAfter                            // ::after
	PseudoFirstLine                        // ::first-line
	PseudoFirstLetter                      // ::first-letter
)

// String returns the CSS representation of the pseudo-element.
func (p PseudoElement) String() string {
	switch p {
	case PseudoBefore:
		return "::before"
	case PseudoAfter:
		return "::after"
	case PseudoFirstLine:
		return "::first-line"
	case PseudoFirstLetter:
		return "::first-letter"
	default:
		return ""
	}
}

// Selector is a simple selector, optionally qualified by an ancestor for
// descendant matching (e.g. "blockquote p.note::first-line").
type Selector struct {
	Element  string        // element name ("p", "h1") or empty for class-only
	Class    string        // class name without the leading dot, or empty
	Pseudo   PseudoElement // pseudo-element if present
	Ancestor *Selector     // ancestor selector for descendant selectors
}

// Tag returns a selector matching an element name.
func Tag(name string) Selector {
	return Selector{Element: name}
}

// Class returns a selector matching a class name (without the leading dot).
func Class(name string) Selector {
	return Selector{Class: name}
}

// TagClass returns a selector matching an element carrying a class.
func TagClass(element, class string) Selector {
	return Selector{Element: element, Class: class}
}

// Root returns the :root selector.
func Root() Selector {
	return Selector{Element: ":root"}
}

// WithPseudo returns a copy of the selector targeting a pseudo-element.
func (s Selector) WithPseudo(p PseudoElement) Selector {
	s.Pseudo = p
	return s
}

// Descendant returns child qualified so it matches only inside s.
func (s Selector) Descendant(child Selector) Selector {
	child.Ancestor = &s
	return child
}

// IsSimple returns true if the selector names an element or a class.
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

// IsDescendant returns true if this is a descendant selector.
func (s Selector) IsDescendant() bool {
	return s.Ancestor != nil
}

// String renders the selector as CSS text.
func (s Selector) String() string {
	var b strings.Builder
	if s.Ancestor != nil {
		b.WriteString(s.Ancestor.String())
		b.WriteByte(' ')
	}
	b.WriteString(s.Element)
	if s.Class != "" {
		b.WriteByte('.')
		b.WriteString(s.Class)
	}
	b.WriteString(s.Pseudo.String())
	return b.String()
}

// Rule is a selector with its declarations.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// NewRule builds a rule from a selector and declarations.
func NewRule(sel Selector, decls ...Declaration) Rule {
	return Rule{Selector: sel, Declarations: decls}
}

// Add appends declarations to the rule.
func (r *Rule) Add(decls ...Declaration) {
	r.Declarations = append(r.Declarations, decls...)
}

// MediaFeature is a single feature condition in a media query, e.g.
// "(min-width: 768px)" or "not (hover)". Value may be nil for boolean
// features.
type MediaFeature struct {
	Name    string
	Value   fmt.Stringer
	Negated bool
}

// String renders the feature as CSS text.
func (f MediaFeature) String() string {
	var b strings.Builder
	if f.Negated {
		b.WriteString("not ")
	}
	b.WriteByte('(')
	b.WriteString(f.Name)
	if f.Value != nil {
		b.WriteString(": ")
		b.WriteString(f.Value.String())
	}
	b.WriteByte(')')
	return b.String()
}

// MediaQuery is a media type with optional feature conditions joined by "and".
type MediaQuery struct {
	Type     string // media type ("screen", "print", "all") or empty
	Negated  bool   // true if "not" modifier applies to the whole query
	Features []MediaFeature
}

// MinWidth returns a screen query constrained to a minimum width.
func MinWidth(w css.Length) MediaQuery {
	return MediaQuery{
		Type:     "screen",
		Features: []MediaFeature{{Name: "min-width", Value: w}},
	}
}

// String renders the media query as CSS text.
func (q MediaQuery) String() string {
	var parts []string
	if q.Type != "" {
		t := q.Type
		if q.Negated {
			t = "not " + t
		}
		parts = append(parts, t)
	}
	for _, f := range q.Features {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, " and ")
}

// Media is a @media block with its query and nested rules.
type Media struct {
	Query MediaQuery
	Rules []Rule
}

// FontSource is a single src entry of an @font-face declaration.
type FontSource struct {
	URL    css.URL
	Format string // "woff2", "woff", "truetype", "opentype" or empty
}

// FontFace is an @font-face declaration.
type FontFace struct {
	Family       string
	Sources      []FontSource
	Style        string // font-style: normal, italic
	Weight       string // font-weight: normal, bold, 400, 700
	Display      string // font-display: auto, swap, block, fallback, optional
	UnicodeRange string
}

// srcValue renders the src property from the declared sources.
func (ff FontFace) srcValue() string {
	parts := make([]string, 0, len(ff.Sources))
	for _, src := range ff.Sources {
		s := src.URL.String()
		if src.Format != "" {
			s += " format(\"" + css.EscapeString(src.Format) + "\")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

// Item is a single top-level item in a stylesheet.
// Exactly one of Rule, Media, FontFace, or Import is non-nil.
type Item struct {
	Rule     *Rule
	Media    *Media
	FontFace *FontFace
	Import   *string
}

// Stylesheet is an ordered list of top-level items.
type Stylesheet struct {
	Items []Item
}

// AddRule appends a rule to the stylesheet.
func (s *Stylesheet) AddRule(r Rule) {
	s.Items = append(s.Items, Item{Rule: &r})
}

// AddMedia appends a @media block to the stylesheet.
func (s *Stylesheet) AddMedia(m Media) {
	s.Items = append(s.Items, Item{Media: &m})
}

// AddFontFace appends an @font-face declaration to the stylesheet.
func (s *Stylesheet) AddFontFace(ff FontFace) {
	s.Items = append(s.Items, Item{FontFace: &ff})
}

// AddImport appends an @import to the stylesheet.
func (s *Stylesheet) AddImport(url string) {
	s.Items = append(s.Items, Item{Import: &url})
}

// Imports returns all @import URLs in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// FontFaces returns all @font-face declarations in source order.
// Only font-faces with a non-empty Family are included.
func (s *Stylesheet) FontFaces() []FontFace {
	var faces []FontFace
	for _, item := range s.Items {
		if item.FontFace != nil && item.FontFace.Family != "" {
			faces = append(faces, *item.FontFace)
		}
	}
	return faces
}

// Rules returns all top-level rules in source order, media blocks excluded.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// RulesBySelector returns all top-level rules matching the given selector text.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector.String() == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Declarations keep their authored order.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", css.EscapeString(*item.Import))
		case item.FontFace != nil:
			n, err = writeFontFace(w, item.FontFace)
		case item.Media != nil:
			n, err = writeMedia(w, item.Media)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// WriteCompactTo writes the stylesheet without indentation or blank lines,
// one top-level item per line.
func (s *Stylesheet) WriteCompactTo(w io.Writer) (int64, error) {
	var total int64
	for _, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", css.EscapeString(*item.Import))
		case item.FontFace != nil:
			n, err = fmt.Fprintf(w, "@font-face{%s}\n", compactDeclarations(fontFaceDeclarations(item.FontFace)))
		case item.Media != nil:
			var b strings.Builder
			for _, rule := range item.Media.Rules {
				fmt.Fprintf(&b, "%s{%s}", rule.Selector, compactDeclarations(rule.Declarations))
			}
			n, err = fmt.Fprintf(w, "@media %s{%s}\n", item.Media.Query, b.String())
		case item.Rule != nil:
			n, err = fmt.Fprintf(w, "%s{%s}\n", item.Rule.Selector, compactDeclarations(item.Rule.Declarations))
		}

		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// compactDeclarations joins declarations with semicolons and no spaces
// around the separator.
func compactDeclarations(decls []Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		s := d.Property + ":" + d.Value.String()
		if d.Important {
			s += " !important"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ";")
}

// fontFaceDeclarations lists @font-face properties in their fixed output order.
func fontFaceDeclarations(ff *FontFace) []Declaration {
	var decls []Declaration
	if ff.Family != "" {
		decls = append(decls, Decl("font-family", css.Raw("\""+css.EscapeString(ff.Family)+"\"")))
	}
	if len(ff.Sources) > 0 {
		decls = append(decls, Decl("src", css.Raw(ff.srcValue())))
	}
	if ff.Style != "" {
		decls = append(decls, Decl("font-style", css.Raw(ff.Style)))
	}
	if ff.Weight != "" {
		decls = append(decls, Decl("font-weight", css.Raw(ff.Weight)))
	}
	if ff.Display != "" {
		decls = append(decls, Decl("font-display", css.Raw(ff.Display)))
	}
	if ff.UnicodeRange != "" {
		decls = append(decls, Decl("unicode-range", css.Raw(ff.UnicodeRange)))
	}
	return decls
}

// writeRule writes a single rule to w, indenting every line with prefix.
func writeRule(w io.Writer, rule *Rule, prefix string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", prefix, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s  %s;\n", prefix, d)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", prefix)
	total += n
	return total, err
}

// writeFontFace writes an @font-face block to w with properties in a
// stable order.
func writeFontFace(w io.Writer, ff *FontFace) (int, error) {
	var total int
	n, err := fmt.Fprint(w, "@font-face {\n")
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range fontFaceDeclarations(ff) {
		n, err = fmt.Fprintf(w, "  %s;\n", d)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeMedia writes a @media block to w with nested rules indented.
func writeMedia(w io.Writer, m *Media) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", m.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i := range m.Rules {
		n, err = writeRule(w, &m.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(m.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// urlRewritePattern matches url() references in CSS values for RewriteURLs.
// Handles: url("path"), url('path'), url(path)
var urlRewritePattern = regexp.MustCompile(`url\s*\(\s*(?:["']([^"']*)["']|([^)"]*))\s*\)`)

// RewriteURLs walks all URL references in the stylesheet and applies fn to
// each. This covers @import URLs, @font-face sources, and url() references
// inside declaration values. Rewritten declaration values become raw values.
func (s *Stylesheet) RewriteURLs(fn func(originalURL string) string) {
	for i := range s.Items {
		item := &s.Items[i]

		switch {
		case item.Import != nil:
			newURL := fn(*item.Import)
			item.Import = &newURL

		case item.FontFace != nil:
			for j := range item.FontFace.Sources {
				item.FontFace.Sources[j].URL = css.URL(fn(string(item.FontFace.Sources[j].URL)))
			}

		case item.Rule != nil:
			rewriteURLsInDeclarations(item.Rule.Declarations, fn)

		case item.Media != nil:
			for j := range item.Media.Rules {
				rewriteURLsInDeclarations(item.Media.Rules[j].Declarations, fn)
			}
		}
	}
}

// rewriteURLsInDeclarations rewrites url() references in declaration values.
func rewriteURLsInDeclarations(decls []Declaration, fn func(string) string) {
	for i := range decls {
		text := decls[i].Value.String()
		if !strings.Contains(text, "url(") {
			continue
		}
		decls[i].Value = css.Raw(rewriteURLsInValue(text, fn))
	}
}

// rewriteURLsInValue replaces url() references in a CSS value string.
func rewriteURLsInValue(value string, fn func(string) string) string {
	return urlRewritePattern.ReplaceAllStringFunc(value, func(match string) string {
		sub := urlRewritePattern.FindStringSubmatch(match)
		if len(sub) < 3 {
			return match
		}
		// Group 1 is quoted URL, group 2 is unquoted URL
		originalURL := sub[1]
		if originalURL == "" {
			originalURL = sub[2]
		}
		originalURL = strings.TrimSpace(originalURL)
		newURL := fn(originalURL)
		return fmt.Sprintf("url(\"%s\")", css.EscapeString(newURL))
	})
}
