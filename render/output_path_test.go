package render

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"csskit/config"
	"csskit/state"
	"csskit/theme"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs bool, transliterate bool, style config.RenderStyle, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg := &config.Config{
		Version: 1,
		Render: config.RenderConfig{
			OutputNameTemplate:    template,
			Style:                 style,
			FileNameTransliterate: transliterate,
		},
	}

	env := &state.LocalEnv{
		Log:    logger,
		Cfg:    cfg,
		NoDirs: noDirs,
	}
	return env
}

func setupTestThemeForPath(t *testing.T) *theme.Theme {
	t.Helper()
	return &theme.Theme{
		Name: "Test Theme",
		ID:   "test-theme-id",
	}
}

func TestBuildOutputPath_SimpleCase_NoDirs(t *testing.T) {
	tm := setupTestThemeForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, config.RenderStyleExpanded, "")

	result := buildOutputPath(tm, "themes/brand/dark.theme.yaml", "/output", env)
	expected := filepath.Join("/output", "dark.css")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_SimpleCase_WithDirs(t *testing.T) {
	tm := setupTestThemeForPath(t)
	env := setupTestEnvForOutputPath(t, false, false, config.RenderStyleExpanded, "")

	result := buildOutputPath(tm, "themes/brand/dark.theme.yaml", "/output", env)
	expected := filepath.Join("/output", "themes", "brand", "dark.css")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_DifferentStyles(t *testing.T) {
	tests := []struct {
		name  string
		style config.RenderStyle
		ext   string
	}{
		{"expanded", config.RenderStyleExpanded, ".css"},
		{"compact", config.RenderStyleCompact, ".min.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestThemeForPath(t)
			env := setupTestEnvForOutputPath(t, true, false, tt.style, "")

			result := buildOutputPath(tm, "dark.theme.yaml", "/output", env)
			expected := filepath.Join("/output", "dark"+tt.ext)

			if result != expected {
				t.Errorf("buildOutputPath() = %q, want %q", result, expected)
			}
		})
	}
}

func TestBuildOutputPath_Transliterate(t *testing.T) {
	tm := setupTestThemeForPath(t)
	env := setupTestEnvForOutputPath(t, true, true, config.RenderStyleExpanded, "")

	result := buildOutputPath(tm, "Тема.theme.yaml", "/output", env)
	expected := filepath.Join("/output", "tema.css")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_Template(t *testing.T) {
	tm := setupTestThemeForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, config.RenderStyleExpanded, "{{ .Name }}-{{ .Style }}")

	result := buildOutputPath(tm, "dark.theme.yaml", "/output", env)
	expected := filepath.Join("/output", "test-theme-expanded.css")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_TemplateWithSubdirs(t *testing.T) {
	tm := setupTestThemeForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, config.RenderStyleExpanded, "{{ .Name }}/{{ .SourceFile }}")

	result := buildOutputPath(tm, "dark.theme.yaml", "/output", env)
	expected := filepath.Join("/output", "test-theme", "dark.theme.css")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_TemplateFallback(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"parse error", "{{ .Name "},
		{"missing field", "{{ .Bogus }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestThemeForPath(t)
			env := setupTestEnvForOutputPath(t, true, false, config.RenderStyleExpanded, tt.template)

			result := buildOutputPath(tm, "dark.theme.yaml", "/output", env)
			expected := filepath.Join("/output", "dark.css")

			if result != expected {
				t.Errorf("buildOutputPath() = %q, want %q", result, expected)
			}
		})
	}
}

func TestDetermineOutputDir_NoDirs(t *testing.T) {
	env := setupTestEnvForOutputPath(t, true, false, config.RenderStyleExpanded, "")

	result := determineOutputDir("themes/brand/dark.theme.yaml", "/output", env)
	expected := "/output"

	if result != expected {
		t.Errorf("determineOutputDir() = %q, want %q", result, expected)
	}
}

func TestDetermineOutputDir_WithDirs(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, config.RenderStyleExpanded, "")

	result := determineOutputDir("themes/brand/dark.theme.yaml", "/output", env)
	expected := filepath.Join("/output", "themes", "brand")

	if result != expected {
		t.Errorf("determineOutputDir() = %q, want %q", result, expected)
	}
}

func TestBuildDefaultFileName(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		transliterate bool
		style         config.RenderStyle
		expected      string
	}{
		{"simple", "dark.theme.yaml", false, config.RenderStyleExpanded, "dark.css"},
		{"with path", "path/to/dark.theme.yaml", false, config.RenderStyleExpanded, "dark.css"},
		{"yml variant", "dark.theme.yml", false, config.RenderStyleExpanded, "dark.css"},
		{"no theme marker", "dark.yaml", false, config.RenderStyleExpanded, "dark.css"},
		{"compact style", "dark.theme.yaml", false, config.RenderStyleCompact, "dark.min.css"},
		{"transliterate", "Тема.theme.yaml", true, config.RenderStyleExpanded, "tema.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, tt.style, "")

			result := buildDefaultFileName(tt.src, env)
			if result != tt.expected {
				t.Errorf("buildDefaultFileName() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{"simple path", "brand/dark", []string{"brand", "dark"}},
		{"single segment", "dark", []string{"dark"}},
		{"with trailing slash", "brand/dark/", []string{"brand", "dark"}},
		{"three levels", "site/brand/dark", []string{"site", "brand", "dark"}},
		{"empty path", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndCleanPath(tt.path)
			if len(result) != len(tt.expected) {
				t.Errorf("splitAndCleanPath() length = %d, want %d", len(result), len(tt.expected))
				return
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndCleanPath()[%d] = %q, want %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCleanPathSegment(t *testing.T) {
	tests := []struct {
		name          string
		segment       string
		transliterate bool
		expected      string
	}{
		{"simple segment", "brand", false, "brand"},
		{"with spaces", "My Theme", false, "My Theme"},
		{"transliterate cyrillic", "Тема", true, "tema"},
		{"special chars", "dark:mode", false, "darkmode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, config.RenderStyleExpanded, "")

			result := cleanPathSegment(tt.segment, env)
			if result != tt.expected {
				t.Errorf("cleanPathSegment() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestAssemblePathWithSubdirs(t *testing.T) {
	tests := []struct {
		name          string
		outDir        string
		expandedName  string
		transliterate bool
		style         config.RenderStyle
		expected      string
	}{
		{
			"simple template",
			"/output",
			"brand/dark",
			false,
			config.RenderStyleExpanded,
			filepath.Join("/output", "brand", "dark.css"),
		},
		{
			"single level",
			"/output",
			"dark",
			false,
			config.RenderStyleExpanded,
			filepath.Join("/output", "dark.css"),
		},
		{
			"with transliterate",
			"/output",
			"Бренд/Тема",
			true,
			config.RenderStyleExpanded,
			filepath.Join("/output", "brend", "tema.css"),
		},
		{
			"compact style",
			"/output",
			"brand/dark",
			false,
			config.RenderStyleCompact,
			filepath.Join("/output", "brand", "dark.min.css"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, tt.style, "")

			result := assemblePathWithSubdirs(tt.outDir, tt.expandedName, env)
			if result != tt.expected {
				t.Errorf("assemblePathWithSubdirs() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestAssemblePathWithSubdirs_EmptyPath(t *testing.T) {
	env := setupTestEnvForOutputPath(t, true, false, config.RenderStyleExpanded, "")

	result := assemblePathWithSubdirs("/output", "", env)
	expected := "/output"

	if result != expected {
		t.Errorf("assemblePathWithSubdirs() with empty path = %q, want %q", result, expected)
	}
}
