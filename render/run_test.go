package render

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"csskit/asset"
	"csskit/config"
	"csskit/css"
	"csskit/sheet"
	"csskit/state"
)

const sampleTheme = `name: Midnight Ocean
prefix: mo
colors:
  ink: "#1A1A2E"
  paper: ivory
space:
  unit: rem
  scale: [0.5, 1, 2]
breakpoints:
  sm: 640
  md: 768
radius:
  pill: 999
`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg := &config.Config{
		Version: 1,
		Render: config.RenderConfig{
			Style:  config.RenderStyleExpanded,
			FixZip: true,
		},
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func writeThemeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sampleTheme), 0644); err != nil {
		t.Fatalf("Failed to create theme file: %v", err)
	}
	return path
}

func TestProcess_NonExistentPath(t *testing.T) {
	ctx, env := setupTestEnv(t)

	err := process(ctx, "/nonexistent/path/dark.theme.yaml", "/tmp", nil, env.Log)
	if err == nil {
		t.Fatal("Expected error for non-existent path, got nil")
	}
	expectedMsg := "input source was not found"
	if !strings.Contains(err.Error(), expectedMsg) {
		t.Errorf("Expected error containing '%s', got: %v", expectedMsg, err)
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, env := setupTestEnv(t)
	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	tmpDir := t.TempDir()
	err := process(cancelCtx, tmpDir, tmpDir, nil, env.Log)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestProcess_SingleFile(t *testing.T) {
	ctx, env := setupTestEnv(t)

	tmpDir := t.TempDir()
	dstDir := t.TempDir()
	testFile := writeThemeFile(t, tmpDir, "ocean.theme.yaml")

	if err := process(ctx, testFile, dstDir, nil, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	out := filepath.Join(dstDir, "ocean.css")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "--mo-color-ink: #1A1A2E;") {
		t.Errorf("output missing ink custom property:\n%s", content)
	}
	if !strings.Contains(content, "--mo-color-paper: ivory;") {
		t.Errorf("output missing paper custom property:\n%s", content)
	}
	if !strings.Contains(content, "@media (min-width: 640px)") {
		t.Errorf("output missing breakpoint block:\n%s", content)
	}
}

func TestProcess_SingleFile_BadTheme(t *testing.T) {
	ctx, env := setupTestEnv(t)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "broken.theme.yaml")
	if err := os.WriteFile(testFile, []byte("name: X\nnot_a_token_group: 1\n"), 0644); err != nil {
		t.Fatalf("Failed to create theme file: %v", err)
	}

	err := process(ctx, testFile, t.TempDir(), nil, env.Log)
	if err == nil {
		t.Fatal("Expected error for broken theme, got nil")
	}
	if !strings.Contains(err.Error(), "unable to parse theme source") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, env := setupTestEnv(t)

	tmpDir := t.TempDir()
	dstDir := t.TempDir()
	writeThemeFile(t, tmpDir, "first.theme.yaml")
	writeThemeFile(t, tmpDir, "second.theme.yml")
	if err := os.WriteFile(filepath.Join(tmpDir, "README.txt"), []byte("not a theme"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := process(ctx, tmpDir, dstDir, nil, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	for _, name := range []string{"first.css", "second.css"} {
		if _, err := os.Stat(filepath.Join(dstDir, name)); err != nil {
			t.Errorf("expected output %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dstDir, "README.css")); err == nil {
		t.Error("non-theme file should not produce output")
	}
}

func TestProcess_EmptyDirectory(t *testing.T) {
	ctx, env := setupTestEnv(t)

	if err := process(ctx, t.TempDir(), t.TempDir(), nil, env.Log); err != nil {
		t.Errorf("process() should handle empty directory, got error: %v", err)
	}
}

func TestProcess_BuiltInTheme(t *testing.T) {
	ctx, env := setupTestEnv(t)

	dstDir := t.TempDir()
	if err := process(ctx, "", dstDir, nil, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dstDir, "starter.css"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "--kit-color-ink:") {
		t.Errorf("built-in theme output missing expected token:\n%s", string(data))
	}
}

func TestProcessDir_WithCancelledContext(t *testing.T) {
	ctx, env := setupTestEnv(t)
	cancelCtx, cancel := context.WithCancel(ctx)

	tmpDir := t.TempDir()
	writeThemeFile(t, tmpDir, "ocean.theme.yaml")
	cancel()

	err := processDir(cancelCtx, tmpDir, tmpDir, nil, env.Log)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestProcessTheme_OverwriteBehavior(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dstDir := t.TempDir()

	if err := processTheme(ctx, []byte(sampleTheme), "ocean.theme.yaml", dstDir, nil, env.Log); err != nil {
		t.Fatalf("processTheme() error = %v", err)
	}

	err := processTheme(ctx, []byte(sampleTheme), "ocean.theme.yaml", dstDir, nil, env.Log)
	if err == nil {
		t.Fatal("Expected error for existing output, got nil")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected overwrite refusal, got: %v", err)
	}

	env.Overwrite = true
	if err := processTheme(ctx, []byte(sampleTheme), "ocean.theme.yaml", dstDir, nil, env.Log); err != nil {
		t.Errorf("processTheme() with overwrite error = %v", err)
	}
}

func TestProcessTheme_CompactStyle(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Render.Style = config.RenderStyleCompact
	dstDir := t.TempDir()

	if err := processTheme(ctx, []byte(sampleTheme), "ocean.theme.yaml", dstDir, nil, env.Log); err != nil {
		t.Fatalf("processTheme() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dstDir, "ocean.min.css"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), ":root{") {
		t.Errorf("compact output should not pad braces:\n%s", string(data))
	}
}

func TestProcessTheme_WithBase(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.BaseCSS = []byte("body { margin: 0; }\n")
	dstDir := t.TempDir()

	if err := processTheme(ctx, []byte(sampleTheme), "ocean.theme.yaml", dstDir, nil, env.Log); err != nil {
		t.Fatalf("processTheme() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dstDir, "ocean.css"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "body { margin: 0; }\n\n") {
		t.Errorf("output should start with base css:\n%s", string(data))
	}
}

func TestProcessTheme_Check(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Check = true
	env.BaseCSS = []byte("body { margin: 0; }\n")
	dstDir := t.TempDir()

	if err := processTheme(ctx, []byte(sampleTheme), "ocean.theme.yaml", dstDir, nil, env.Log); err != nil {
		t.Errorf("processTheme() with check error = %v", err)
	}
}

func TestProcessTheme_Bundle(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Render.Bundle = true
	dstDir := t.TempDir()

	if err := processTheme(ctx, []byte(sampleTheme), "ocean.theme.yaml", dstDir, nil, env.Log); err != nil {
		t.Fatalf("processTheme() error = %v", err)
	}

	zr, err := zip.OpenReader(filepath.Join(dstDir, "ocean.zip"))
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"MANIFEST", "ocean.css", "ocean.theme.yaml"} {
		if !names[want] {
			t.Errorf("bundle missing entry %q, have %v", want, names)
		}
	}
}

func TestIsThemeFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"dark.theme.yaml", true},
		{"dark.theme.yml", true},
		{"DARK.THEME.YAML", true},
		{"themes/brand/dark.theme.yaml", true},
		{"dark.yaml", false},
		{"dark.theme.json", false},
		{"theme.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isThemeFile(tt.path); got != tt.want {
				t.Errorf("isThemeFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRenderSheet(t *testing.T) {
	s := &sheet.Stylesheet{}
	s.AddRule(sheet.NewRule(sheet.Root(), sheet.Decl("--x", css.Raw("1"))))

	expanded := string(renderSheet(s, config.RenderStyleExpanded, nil))
	if expanded != ":root {\n  --x: 1;\n}\n" {
		t.Errorf("renderSheet() expanded = %q", expanded)
	}

	compact := string(renderSheet(s, config.RenderStyleCompact, nil))
	if compact != ":root{--x:1}\n" {
		t.Errorf("renderSheet() compact = %q", compact)
	}

	withBase := string(renderSheet(s, config.RenderStyleCompact, []byte("body{margin:0}\n")))
	if withBase != "body{margin:0}\n\n:root{--x:1}\n" {
		t.Errorf("renderSheet() with base = %q", withBase)
	}
}

func TestWithFontFaces(t *testing.T) {
	s := &sheet.Stylesheet{}
	s.AddRule(sheet.NewRule(sheet.Root(), sheet.Decl("--x", css.Raw("1"))))

	kit := &asset.Kit{
		Fonts: []asset.KitFont{
			{Filename: "inter-bold.woff2", Family: "inter", Weight: "700", MIME: "font/woff2", Data: []byte("wOF2fake")},
		},
	}

	out := withFontFaces(s, kit)
	if len(out.Items) != 2 {
		t.Fatalf("withFontFaces() items = %d, want 2", len(out.Items))
	}
	if out.Items[0].FontFace == nil {
		t.Error("withFontFaces() should place font faces first")
	}
	if out.Items[1].Rule == nil {
		t.Error("withFontFaces() should keep original rules after faces")
	}

	faces := out.FontFaces()
	if len(faces) != 1 || faces[0].Family != "inter" {
		t.Errorf("FontFaces() = %+v, want one inter face", faces)
	}
}
