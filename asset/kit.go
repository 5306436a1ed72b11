package asset

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"csskit/sheet"
)

// KitFont is a single font extracted from a kit archive.
type KitFont struct {
	Filename string // base entry name, extension ensured
	Family   string // slugged family inferred from the file name
	Style    string // "italic"/"oblique", empty for normal
	Weight   string // numeric CSS weight, empty for normal
	MIME     string
	Data     []byte
}

// Kit is a set of fonts loaded from a zip archive. Fonts keep a stable
// order: natural sort by filename.
type Kit struct {
	Path  string
	Fonts []KitFont
}

// OpenKit loads every usable font from the zip archive at path. Since zip
// "standard" does not define file name encoding, entry names not marked
// UTF-8 are decoded with cp when given. Entries that are not fonts or
// whose payload fails magic byte validation are skipped with a log entry;
// a kit without a single usable font is an error.
func OpenKit(path string, cp encoding.Encoding, log *zap.Logger) (*Kit, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("asset")

	kit := &Kit{Path: path}
	err := Walk(path, func(_ string, f *zip.File) error {
		name := entryName(f, cp, log)

		data, err := readZipEntry(f)
		if err != nil {
			log.Warn("Unable to read kit entry", zap.String("entry", name), zap.Error(err))
			return nil
		}

		mime := MIMEByExt(filepath.Ext(name))
		if mime == "" {
			if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
				mime = kind.MIME.Value
			}
		}
		if !IsFontMIME(mime) {
			log.Debug("Skipping kit entry, not a font", zap.String("entry", name), zap.String("mime", mime))
			return nil
		}
		if !validFontData(mime, data) {
			log.Warn("Skipping kit entry, payload does not match its type",
				zap.String("entry", name), zap.String("mime", mime))
			return nil
		}

		filename := filepath.Base(name)
		if filepath.Ext(filename) == "" {
			filename += ExtByMIME(mime)
		}
		family, style, weight := fontTraits(strings.TrimSuffix(filename, filepath.Ext(filename)))

		kit.Fonts = append(kit.Fonts, KitFont{
			Filename: filename,
			Family:   family,
			Style:    style,
			Weight:   weight,
			MIME:     mime,
			Data:     data,
		})
		log.Debug("Loaded kit font",
			zap.String("entry", name),
			zap.String("family", family),
			zap.String("style", style),
			zap.String("weight", weight),
			zap.String("mime", mime),
			zap.Int("bytes", len(data)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read font kit %q: %w", path, err)
	}
	if len(kit.Fonts) == 0 {
		return nil, fmt.Errorf("font kit %q contains no usable fonts", path)
	}

	sort.Slice(kit.Fonts, func(i, j int) bool {
		return natural.Less(kit.Fonts[i].Filename, kit.Fonts[j].Filename)
	})
	return kit, nil
}

// FontFaces renders the kit as @font-face entries with data URI sources,
// ready to prepend to a stylesheet.
func (k *Kit) FontFaces() []sheet.FontFace {
	faces := make([]sheet.FontFace, 0, len(k.Fonts))
	for _, f := range k.Fonts {
		faces = append(faces, sheet.FontFace{
			Family: f.Family,
			Sources: []sheet.FontSource{{
				URL:    encodeDataURI(f.MIME, f.Data),
				Format: formatByMIME(f.MIME),
			}},
			Style:  f.Style,
			Weight: f.Weight,
		})
	}
	return faces
}

// Families returns the distinct font families in the kit, natural-sorted.
func (k *Kit) Families() []string {
	seen := make(map[string]bool, len(k.Fonts))
	var families []string
	for _, f := range k.Fonts {
		if !seen[f.Family] {
			seen[f.Family] = true
			families = append(families, f.Family)
		}
	}
	sort.Sort(natural.StringSlice(families))
	return families
}

// entryName decodes the entry name of f, forcing the given code page for
// names the archiver did not mark as UTF-8.
func entryName(f *zip.File, cp encoding.Encoding, log *zap.Logger) string {
	name := f.FileHeader.Name
	if cp == nil || !f.FileHeader.NonUTF8 {
		return name
	}
	n, err := cp.NewDecoder().String(name)
	if err != nil {
		cs, _ := ianaindex.IANA.Name(cp)
		log.Warn("Unable to convert kit entry name from specified encoding",
			zap.String("charset", cs), zap.String("entry", name), zap.Error(err))
		return name
	}
	return n
}

func readZipEntry(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

var fontWeights = map[string]string{
	"thin":       "100",
	"hairline":   "100",
	"extralight": "200",
	"ultralight": "200",
	"light":      "300",
	"regular":    "400",
	"normal":     "400",
	"book":       "400",
	"medium":     "500",
	"semibold":   "600",
	"demibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"ultrabold":  "800",
	"black":      "900",
	"heavy":      "900",
}

// fontTraits infers family, style and weight from a font file name stem
// like "OpenSans-BoldItalic". Trailing tokens name the variant; everything
// in front of them forms the family.
func fontTraits(stem string) (family, style, weight string) {
	tokens := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})

	n := len(tokens)
scan:
	for n > 1 {
		t := strings.ToLower(tokens[n-1])
		if rest, ok := strings.CutSuffix(t, "italic"); ok {
			style = "italic"
			t = rest
		} else if rest, ok := strings.CutSuffix(t, "oblique"); ok {
			style = "oblique"
			t = rest
		}
		switch {
		case t == "":
			// token was pure style
		case fontWeights[t] != "":
			weight = fontWeights[t]
		default:
			break scan
		}
		n--
	}

	family = slug.Make(strings.Join(tokens[:n], " "))
	return family, style, weight
}

// formatByMIME maps a font MIME type to its CSS format() hint.
func formatByMIME(mime string) string {
	switch mime {
	case "font/woff", "application/font-woff":
		return "woff"
	case "font/woff2", "application/font-woff2":
		return "woff2"
	case "font/ttf", "application/x-font-ttf", "application/font-sfnt":
		return "truetype"
	case "font/otf", "application/x-font-otf":
		return "opentype"
	case "application/vnd.ms-fontobject":
		return "embedded-opentype"
	case "image/svg+xml":
		return "svg"
	default:
		return ""
	}
}
