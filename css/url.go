package css

import (
	"fmt"
	"strings"
)

// URL is a CSS url() reference. The stored string is the bare target;
// String always renders the double-quoted, escaped form.
type URL string

// String renders `url("target")`.
func (u URL) String() string {
	return `url("` + EscapeString(string(u)) + `")`
}

func (URL) isImage() {}

// Var references a custom property: var(--name) or var(--name, fallback).
type Var struct {
	name     string
	fallback string
}

// NewVar builds a custom property reference. The name gains a "--" prefix
// when missing; an optional fallback renders after a comma.
func NewVar(name string, fallback ...fmt.Stringer) Var {
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	v := Var{name: name}
	if len(fallback) > 0 && fallback[0] != nil {
		v.fallback = fallback[0].String()
	}
	return v
}

// String renders the var() expression.
func (v Var) String() string {
	if v.fallback == "" {
		return "var(" + v.name + ")"
	}
	return "var(" + v.name + ", " + v.fallback + ")"
}

// Var can stand in wherever a color or image is expected.
func (Var) isColor() {}
func (Var) isImage() {}
