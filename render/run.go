// Package render drives theme rendering: it resolves sources and
// destinations, compiles every theme definition it finds into a stylesheet
// and writes the results, optionally packing them into bundles.
package render

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"csskit/asset"
	"csskit/bundle"
	"csskit/config"
	"csskit/sheet"
	"csskit/state"
	"csskit/theme"
)

//go:embed base.css
var baseStylesheet []byte

// defaultThemeName is used as a source name when rendering the built-in theme.
const defaultThemeName = "starter.theme.yaml"

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) != 0 {
		if src, err = filepath.Abs(src); err != nil {
			return err
		}
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if s := cmd.String("style"); len(s) > 0 {
		style, err := config.ParseRenderStyle(s)
		if err != nil {
			log.Warn("Unknown render style requested, keeping configured one",
				zap.Stringer("configured", env.Cfg.Render.Style), zap.Error(err))
		} else {
			env.Cfg.Render.Style = style
		}
	}
	if cmd.Bool("bundle") {
		env.Cfg.Render.Bundle = true
	}

	env.BaseCSS = baseStylesheet
	if env.Cfg.Render.StylesheetPath != "" {
		data, err := os.ReadFile(env.Cfg.Render.StylesheetPath)
		if err != nil {
			return fmt.Errorf("unable to read base css from %q: %w", env.Cfg.Render.StylesheetPath, err)
		}
		env.BaseCSS = data
	}

	env.NoDirs, env.Overwrite, env.Check = cmd.Bool("nodirs"), cmd.Bool("overwrite"), cmd.Bool("check")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old font kits
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	var kit *asset.Kit
	if kitPath := cmd.String("fonts"); len(kitPath) > 0 {
		if kit, err = asset.OpenKit(kitPath, env.CodePage, log); err != nil {
			return fmt.Errorf("unable to open font kit (%s): %w", kitPath, err)
		}
		log.Debug("Font kit loaded", zap.String("kit", kitPath), zap.Strings("families", kit.Families()))
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("style", env.Cfg.Render.Style))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, kit, log)
}

// process handles the core rendering logic independently of CLI framework. It
// determines the input type (directory or single theme file) and processes
// accordingly. Without a source the built-in theme is rendered.
func process(ctx context.Context, src, dst string, kit *asset.Kit, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	if len(src) == 0 {
		log.Info("No source given, rendering built-in theme")
		return processTheme(ctx, env.DefaultTheme, defaultThemeName, dst, kit, log)
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, kit, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read theme file: %w", err)
	}
	return processTheme(ctx, data, filepath.Base(src), dst, kit, log)
}

// processDir walks directory tree finding theme definitions and processes
// them. Individual failures are logged and do not stop the walk.
func processDir(ctx context.Context, dir, dst string, kit *asset.Kit, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !isThemeFile(path) {
			log.Debug("Skipping file, not recognized as theme definition", zap.String("file", path))
			return nil
		}

		count++

		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processTheme(ctx, data, src, dst, kit, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// isThemeFile matches theme definition files by name.
func isThemeFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return strings.HasSuffix(name, ".theme.yaml") || strings.HasSuffix(name, ".theme.yml")
}

// processTheme renders a single theme definition. "src" is part of the source
// path (always including file name) relative to the original path. When actual
// file was specified it will be just base file name without a path. When
// walking a directory it will be relative path inside that directory. "dst" is
// the destination directory where the rendered stylesheet should be written.
func processTheme(ctx context.Context, data []byte, src, dst string, kit *asset.Kit, log *zap.Logger) (rerr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Render starting", zap.String("from", src))
	defer func(start time.Time) {
		// NOTE: when multiple themes are being processed we do not want to stop.
		if r := recover(); r != nil {
			log.Error("Render ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("render panic: %v", r)
		} else {
			log.Info("Render completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	t, err := theme.Decode(data)
	if err != nil {
		return fmt.Errorf("unable to parse theme source (%s): %w", src, err)
	}
	if err := t.Prepare(log); err != nil {
		return err
	}
	refID = t.ID

	s, err := theme.Build(t, log)
	if err != nil {
		return fmt.Errorf("unable to build stylesheet: %w", err)
	}
	if kit != nil {
		s = withFontFaces(s, kit)
	}

	rendered := renderSheet(s, env.Cfg.Render.Style, env.BaseCSS)

	if env.Check {
		checker := sheet.NewChecker(log)
		if err := checker.CheckSheet(s, src); err != nil {
			return fmt.Errorf("stylesheet failed check: %w", err)
		}
		if len(env.BaseCSS) > 0 {
			if err := checker.Check(env.BaseCSS, "base.css"); err != nil {
				return fmt.Errorf("base stylesheet failed check: %w", err)
			}
		}
	}

	// Determine output file name and path based on input and configuration.
	outputName = buildOutputPath(t, src, dst, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, rendered, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	if env.Cfg.Render.Bundle {
		if err := writeBundle(outputName, rendered, src, data, kit, env, log); err != nil {
			return fmt.Errorf("unable to write bundle: %w", err)
		}
	}

	// Store render result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, filepath.Ext(outputName)), outputName)
	}

	return nil
}

// withFontFaces returns a stylesheet with @font-face rules for every kit font
// prepended, faces must come before rules which may reference the families.
func withFontFaces(s *sheet.Stylesheet, kit *asset.Kit) *sheet.Stylesheet {
	out := &sheet.Stylesheet{}
	for _, face := range kit.FontFaces() {
		out.AddFontFace(face)
	}
	out.Items = append(out.Items, s.Items...)
	return out
}

// renderSheet serializes the stylesheet in the requested style with the base
// css prepended.
func renderSheet(s *sheet.Stylesheet, style config.RenderStyle, base []byte) []byte {
	buf := new(bytes.Buffer)
	if len(base) > 0 {
		buf.Write(bytes.TrimRight(base, "\n"))
		buf.WriteString("\n\n")
	}
	switch style {
	case config.RenderStyleCompact:
		_, _ = s.WriteCompactTo(buf)
	default:
		_, _ = s.WriteTo(buf)
	}
	return buf.Bytes()
}

// writeBundle packs the rendered stylesheet, its source definition and any
// kit fonts next to the rendered output.
func writeBundle(outputName string, rendered []byte, src string, source []byte, kit *asset.Kit, env *state.LocalEnv, log *zap.Logger) error {
	dest := strings.TrimSuffix(outputName, env.Cfg.Render.Style.Ext()) + ".zip"

	w := bundle.NewWriter(dest, env.Cfg.Render.FixZip, log)
	if err := w.Add(filepath.Base(outputName), rendered); err != nil {
		return err
	}
	if err := w.Add(filepath.Base(src), source); err != nil {
		return err
	}
	if kit != nil {
		for _, f := range kit.Fonts {
			if err := w.Add(path.Join("fonts", f.Filename), f.Data); err != nil {
				log.Warn("Skipping font in bundle", zap.String("font", f.Filename), zap.Error(err))
			}
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	log.Info("Bundle written", zap.String("to", dest))
	if env.Rpt != nil {
		env.Rpt.Store("bundle-"+filepath.Base(dest), dest)
	}
	return nil
}
