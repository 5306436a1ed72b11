// Package inline applies stylesheet rules to documents as inline style
// attributes, the way HTML email pipelines do. Matching is exact: a rule
// applies when its selector's element and class both agree with the node.
// There is no cascade and no specificity; matching rules append their
// declarations in order, and descendant or pseudo selectors never match.
package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"

	"csskit/sheet"
)

// Apply walks an XHTML or SVG document and appends matching rule
// declarations to the style attribute of every matched element. It returns
// the number of elements touched.
func Apply(doc *etree.Document, rules []sheet.Rule) int {
	count := 0

	var visit func(e *etree.Element)
	visit = func(e *etree.Element) {
		var decls []sheet.Declaration
		for _, rule := range rules {
			if matches(rule.Selector, e.Tag, e.SelectAttrValue("class", "")) {
				decls = append(decls, rule.Declarations...)
			}
		}
		if len(decls) > 0 {
			style := styleText(decls)
			if existing := trimStyle(e.SelectAttrValue("style", "")); existing != "" {
				style = existing + "; " + style
			}
			e.CreateAttr("style", style)
			count++
		}
		for _, child := range e.ChildElements() {
			visit(child)
		}
	}

	if root := doc.Root(); root != nil {
		visit(root)
	}
	return count
}

// ApplyHTML is Apply for HTML5 documents that are not well-formed XML: it
// parses r, applies the rules, and renders the whole document to w.
func ApplyHTML(r io.Reader, w io.Writer, rules []sheet.Rule) error {
	root, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("unable to parse document: %w", err)
	}

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			var decls []sheet.Declaration
			for _, rule := range rules {
				if matches(rule.Selector, n.Data, attrValue(n, "class")) {
					decls = append(decls, rule.Declarations...)
				}
			}
			if len(decls) > 0 {
				setStyleAttr(n, styleText(decls))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("unable to render document: %w", err)
	}
	return nil
}

// matches reports whether a selector applies to an element with the given
// tag and class attribute value. Only simple element/class selectors can
// match; a selector with neither matches nothing.
func matches(sel sheet.Selector, tag, classAttr string) bool {
	if sel.IsDescendant() || sel.Pseudo != sheet.PseudoNone {
		return false
	}
	if sel.Element == "" && sel.Class == "" {
		return false
	}
	if sel.Element != "" && sel.Element != tag {
		return false
	}
	if sel.Class != "" && !hasClass(classAttr, sel.Class) {
		return false
	}
	return true
}

// hasClass reports whether the space-separated class attribute value
// contains the given token.
func hasClass(attr, class string) bool {
	for _, token := range strings.Fields(attr) {
		if token == class {
			return true
		}
	}
	return false
}

func styleText(decls []sheet.Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "; ")
}

func trimStyle(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ";")
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setStyleAttr(n *html.Node, style string) {
	for i, a := range n.Attr {
		if a.Key == "style" {
			if existing := trimStyle(a.Val); existing != "" {
				style = existing + "; " + style
			}
			n.Attr[i].Val = style
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: style})
}
