package inline_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"csskit/css"
	"csskit/inline"
	"csskit/sheet"
)

const pageXML = `<html><body>
<p class="lead intro">Hello</p>
<p>Plain</p>
<div class="lead">Box</div>
</body></html>`

func testRules() []sheet.Rule {
	return []sheet.Rule{
		sheet.NewRule(sheet.Tag("p"), sheet.Decl("color", css.NamedColor("red"))),
		sheet.NewRule(sheet.Class("lead"), sheet.Decl("font-weight", css.Raw("bold"))),
	}
}

func TestApply(t *testing.T) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(pageXML); err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}

	if got := inline.Apply(doc, testRules()); got != 3 {
		t.Errorf("Apply touched %d elements, want 3", got)
	}

	body := doc.Root().SelectElement("body")
	paras := body.SelectElements("p")
	if len(paras) != 2 {
		t.Fatalf("got %d p elements, want 2", len(paras))
	}

	if got := paras[0].SelectAttrValue("style", ""); got != "color: red; font-weight: bold" {
		t.Errorf("p.lead style: got %q", got)
	}
	if got := paras[1].SelectAttrValue("style", ""); got != "color: red" {
		t.Errorf("plain p style: got %q", got)
	}
	if got := body.SelectElement("div").SelectAttrValue("style", ""); got != "font-weight: bold" {
		t.Errorf("div.lead style: got %q", got)
	}
}

func TestApplyKeepsExistingStyle(t *testing.T) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(`<html><body><p style="margin: 0;">x</p></body></html>`); err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}

	rules := []sheet.Rule{
		sheet.NewRule(sheet.Tag("p"), sheet.Decl("color", css.NamedColor("red"))),
	}
	if got := inline.Apply(doc, rules); got != 1 {
		t.Errorf("Apply touched %d elements, want 1", got)
	}

	p := doc.Root().SelectElement("body").SelectElement("p")
	if got := p.SelectAttrValue("style", ""); got != "margin: 0; color: red" {
		t.Errorf("style: got %q", got)
	}
}

func TestApplySkipsComplexSelectors(t *testing.T) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(pageXML); err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}

	rules := []sheet.Rule{
		sheet.NewRule(sheet.Tag("div").Descendant(sheet.Tag("p")), sheet.Decl("color", css.Raw("red"))),
		sheet.NewRule(sheet.Tag("p").WithPseudo(sheet.PseudoBefore), sheet.Decl("content", css.Raw(`"*"`))),
		sheet.NewRule(sheet.Selector{}, sheet.Decl("color", css.Raw("blue"))),
	}
	if got := inline.Apply(doc, rules); got != 0 {
		t.Errorf("Apply touched %d elements, want 0", got)
	}
}

func TestApplyMatchesTagAndClassTogether(t *testing.T) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(pageXML); err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}

	rules := []sheet.Rule{
		sheet.NewRule(sheet.TagClass("div", "lead"), sheet.Decl("border", css.Raw("none"))),
	}
	if got := inline.Apply(doc, rules); got != 1 {
		t.Errorf("Apply touched %d elements, want 1", got)
	}
	if got := doc.Root().SelectElement("body").SelectElement("div").SelectAttrValue("style", ""); got != "border: none" {
		t.Errorf("div.lead style: got %q", got)
	}
}

func TestApplyHTML(t *testing.T) {
	// Unclosed tags: not well-formed XML, but legal HTML5.
	in := strings.NewReader(`<!DOCTYPE html><html><body><p class=lead>Hi<p>There</body></html>`)
	var out strings.Builder

	if err := inline.ApplyHTML(in, &out, testRules()); err != nil {
		t.Fatalf("ApplyHTML failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, `<p class="lead" style="color: red; font-weight: bold">Hi</p>`) {
		t.Errorf("styled p.lead missing:\n%s", got)
	}
	if !strings.Contains(got, `<p style="color: red">There</p>`) {
		t.Errorf("styled plain p missing:\n%s", got)
	}
}

func TestApplyHTMLBadInput(t *testing.T) {
	var out strings.Builder
	if err := inline.ApplyHTML(failingReader{}, &out, testRules()); err == nil {
		t.Error("ApplyHTML succeeded on failing reader")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken stream") }
