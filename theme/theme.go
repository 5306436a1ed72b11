// Package theme loads design token definitions and compiles them into
// stylesheets: custom properties on :root, per-color utility classes and
// breakpoint media blocks.
package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rupor-github/gencfg"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

type (
	// Space is the spacing scale of a theme: step values in a single unit.
	Space struct {
		Unit  string    `yaml:"unit" validate:"omitempty,oneof=px rem em pt"`
		Scale []float64 `yaml:"scale"`
	}

	// Theme is a design token set. Color values are hex strings or CSS named
	// colors; everything else is numeric in the declared unit.
	Theme struct {
		Name        string              `yaml:"name" validate:"required"`
		ID          string              `yaml:"id"`
		Prefix      string              `yaml:"prefix"`
		Colors      map[string]string   `yaml:"colors"`
		Space       Space               `yaml:"space"`
		Fonts       map[string][]string `yaml:"fonts"`
		Breakpoints map[string]int      `yaml:"breakpoints" validate:"omitempty,dive,gt=0"`
		Radius      map[string]float64  `yaml:"radius"`
	}
)

// Decode parses a theme definition. Unknown fields are rejected so typos in
// token group names fail loudly instead of dropping tokens.
func Decode(data []byte) (*Theme, error) {
	var t Theme
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode theme data: %w", err)
	}
	if err := gencfg.Sanitize(&t); err != nil {
		return nil, err
	}
	if err := gencfg.Validate(&t); err != nil {
		return nil, err
	}
	if t.Space.Unit == "" {
		t.Space.Unit = "px"
	}
	return &t, nil
}

// Load reads and decodes a theme definition file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read theme file: %w", err)
	}
	t, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("unable to load theme %s: %w", path, err)
	}
	return t, nil
}

// Prepare fills derived fields: a valid ID and a non-empty prefix. Themes
// without a usable UUID get a fresh time-ordered one.
func (t *Theme) Prepare(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	var refID uuid.UUID
	if _, err := uuid.Parse(t.ID); err != nil {
		if refID, err = uuid.NewV7(); err != nil {
			return fmt.Errorf("unable to generate new theme UUID: %w", err)
		}
		if t.ID != "" {
			log.Warn("Theme has invalid ID, correcting", zap.String("old_id", t.ID), zap.Stringer("new_id", refID))
		} else {
			log.Debug("Assigning theme ID", zap.Stringer("id", refID))
		}
	}
	if refID != uuid.Nil {
		t.ID = refID.String()
	}

	if t.Prefix == "" {
		t.Prefix = slug.Make(t.Name)
	}
	return nil
}
