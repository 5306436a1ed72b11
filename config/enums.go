package config

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Specification of requested stylesheet serialization style.
type RenderStyle int

const (
	RenderStyleExpanded RenderStyle = iota
	RenderStyleCompact
)

var renderStyleNames = map[RenderStyle]string{
	RenderStyleExpanded: "expanded",
	RenderStyleCompact:  "compact",
}

// RenderStyleNames returns names of known styles in declaration order.
func RenderStyleNames() []string {
	return []string{
		renderStyleNames[RenderStyleExpanded],
		renderStyleNames[RenderStyleCompact],
	}
}

func (s RenderStyle) IsValid() bool {
	_, ok := renderStyleNames[s]
	return ok
}

func (s RenderStyle) String() string {
	if name, ok := renderStyleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("RenderStyle(%d)", int(s))
}

// ParseRenderStyle converts textual style name to its value.
func ParseRenderStyle(name string) (RenderStyle, error) {
	for style, n := range renderStyleNames {
		if n == name {
			return style, nil
		}
	}
	return RenderStyle(0), fmt.Errorf("%q is not a valid RenderStyle", name)
}

func (s RenderStyle) Ext() string {
	switch s {
	case RenderStyleExpanded:
		return ".css"
	case RenderStyleCompact:
		return ".min.css"
	default:
		// this should never happen
		panic("unsupported render style requested")
	}
}

func (s RenderStyle) MarshalYAML() (interface{}, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid RenderStyle(%d)", int(s))
	}
	return s.String(), nil
}

func (s *RenderStyle) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	style, err := ParseRenderStyle(name)
	if err != nil {
		return err
	}
	*s = style
	return nil
}
