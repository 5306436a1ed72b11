package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"csskit/css"
	"csskit/sheet"
	"csskit/style"
)

// Build compiles a theme into a stylesheet: one :root rule declaring every
// token as a custom property, .text-/.bg- utility classes per color token,
// and a @media block per breakpoint exposing the active breakpoint name.
// Output order is deterministic: token names sort naturally (space-2 before
// space-10), breakpoints sort by width.
func Build(t *Theme, log *zap.Logger) (*sheet.Stylesheet, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("theme")

	prefix := t.Prefix
	if prefix == "" {
		prefix = slug.Make(t.Name)
	}
	prop := func(kind, name string) string {
		return "--" + prefix + "-" + kind + "-" + name
	}

	var errs error

	// :root custom properties: colors, space scale, radii, font stacks.
	root := sheet.NewRule(sheet.Root())

	colorProps := make(map[string]css.Color, len(t.Colors))
	colorSlugs := make([]string, 0, len(t.Colors))
	for name, value := range t.Colors {
		c, err := resolveColor(value, log)
		if err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("color %q: %w", name, err))
			continue
		}
		s := slug.Make(name)
		if _, dup := colorProps[s]; dup {
			multierr.AppendInto(&errs, fmt.Errorf("color %q: slug %q already taken", name, s))
			continue
		}
		colorProps[s] = c
		colorSlugs = append(colorSlugs, s)
	}
	sort.Sort(natural.StringSlice(colorSlugs))
	for _, s := range colorSlugs {
		root.Add(sheet.Decl(prop("color", s), colorProps[s]))
	}

	for i, step := range t.Space.Scale {
		root.Add(sheet.Decl(prop("space", strconv.Itoa(i)), spaceValue(step, t.Space.Unit)))
	}

	radiusSlugs := make([]string, 0, len(t.Radius))
	radiusProps := make(map[string]css.Length, len(t.Radius))
	for name, v := range t.Radius {
		s := slug.Make(name)
		radiusProps[s] = css.Px(v)
		radiusSlugs = append(radiusSlugs, s)
	}
	sort.Sort(natural.StringSlice(radiusSlugs))
	for _, s := range radiusSlugs {
		root.Add(sheet.Decl(prop("radius", s), radiusProps[s]))
	}

	fontSlugs := make([]string, 0, len(t.Fonts))
	fontProps := make(map[string]style.FamilyList, len(t.Fonts))
	for name, stack := range t.Fonts {
		s := slug.Make(name)
		fontProps[s] = style.Families(stack...)
		fontSlugs = append(fontSlugs, s)
	}
	sort.Sort(natural.StringSlice(fontSlugs))
	for _, s := range fontSlugs {
		root.Add(sheet.Decl(prop("font", s), fontProps[s]))
	}

	if errs != nil {
		return nil, fmt.Errorf("theme %q has invalid tokens: %w", t.Name, errs)
	}

	out := &sheet.Stylesheet{}
	out.AddRule(root)

	// Utility classes referencing the color custom properties.
	for _, s := range colorSlugs {
		out.AddRule(sheet.NewRule(sheet.Class("text-"+s),
			style.Color(css.NewVar(prop("color", s)))))
		out.AddRule(sheet.NewRule(sheet.Class("bg-"+s),
			style.BackgroundColor(css.NewVar(prop("color", s)))))
	}

	// Breakpoint blocks, narrowest first.
	type breakpoint struct {
		name string
		px   int
	}
	bps := make([]breakpoint, 0, len(t.Breakpoints))
	for name, px := range t.Breakpoints {
		bps = append(bps, breakpoint{name: slug.Make(name), px: px})
	}
	sort.Slice(bps, func(i, j int) bool {
		if bps[i].px != bps[j].px {
			return bps[i].px < bps[j].px
		}
		return bps[i].name < bps[j].name
	})
	for _, bp := range bps {
		out.AddMedia(sheet.Media{
			Query: sheet.MediaQuery{
				Features: []sheet.MediaFeature{{Name: "min-width", Value: css.Px(float64(bp.px))}},
			},
			Rules: []sheet.Rule{
				sheet.NewRule(sheet.Root(),
					style.Custom(prefix+"-breakpoint", css.Raw(bp.name))),
			},
		})
	}

	log.Debug("Theme compiled",
		zap.String("name", t.Name),
		zap.Int("colors", len(colorSlugs)),
		zap.Int("space_steps", len(t.Space.Scale)),
		zap.Int("radii", len(radiusSlugs)),
		zap.Int("fonts", len(fontSlugs)),
		zap.Int("breakpoints", len(bps)),
		zap.Int("items", len(out.Items)))

	return out, nil
}

// resolveColor turns a token value into a typed color. Hex forms are taken
// as written (a malformed hex is only a warning, matching the advisory
// IsValid contract); anything else must be an exact CSS named color.
func resolveColor(value string, log *zap.Logger) (css.Color, error) {
	if strings.HasPrefix(value, "#") {
		h := css.Hex(value)
		if !h.IsValid() {
			log.Warn("Suspicious hex color", zap.String("value", value))
		}
		return h, nil
	}
	n := css.NamedColor(value)
	if _, ok := n.RGBA(); !ok {
		return nil, fmt.Errorf("%q is not a hex value or CSS named color", value)
	}
	return n, nil
}

// spaceValue renders one spacing step in the scale unit.
func spaceValue(v float64, unit string) css.Length {
	switch unit {
	case "rem":
		return css.Rem(v)
	case "em":
		return css.Em(v)
	case "pt":
		return css.Pt(v)
	default:
		return css.Px(v)
	}
}
