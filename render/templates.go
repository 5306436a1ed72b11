package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"csskit/config"
	"csskit/theme"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Theme      string
	Name       string
	ID         string
	Style      string
	SourceFile string
}

func expandTemplate(t *theme.Theme, name config.TemplateFieldName, field string, style config.RenderStyle, src string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Theme:      t.Name,
		Name:       slug.Make(t.Name),
		ID:         t.ID,
		Style:      style.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
