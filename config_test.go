package tint

import (
	"errors"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/708u/tint/internal/testutil"
)

func TestLoadConfig_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if result.Config.Mode != "" || result.Config.Console != "" {
		t.Errorf("Config = %+v, want empty settings", result.Config)
	}
	if len(result.Config.StyleNames()) != 0 {
		t.Errorf("StyleNames() = %v, want none", result.Config.StyleNames())
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
}

func TestLoadConfig_LocalOverridesProject(t *testing.T) {
	t.Parallel()

	t.Run("Scalars", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		testutil.WriteConfig(t, tmpDir, configFileName, `mode = "always"
console = "absent"
`)
		testutil.WriteConfig(t, tmpDir, localConfigFileName, `mode = "never"
`)

		result, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		if result.Config.Mode != "never" {
			t.Errorf("Mode = %q, want %q", result.Config.Mode, "never")
		}
		// Not set locally, project value kept
		if result.Config.Console != "absent" {
			t.Errorf("Console = %q, want %q", result.Config.Console, "absent")
		}
	})

	t.Run("Styles", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		testutil.WriteConfig(t, tmpDir, configFileName, `[styles]
error = ["bold", "red"]
muted = ["fg:244"]
`)
		testutil.WriteConfig(t, tmpDir, localConfigFileName, `[styles]
error = ["bright-red"]
`)

		result, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatal(err)
		}

		errStyle, ok := result.Config.Style("error")
		if !ok {
			t.Fatal("Style(error) not found")
		}
		if !slices.Equal(errStyle, []Element{BrightRed}) {
			t.Errorf("Style(error) = %v, want [BrightRed]", errStyle)
		}

		muted, ok := result.Config.Style("muted")
		if !ok {
			t.Fatal("Style(muted) not found")
		}
		if !slices.Equal(muted, []Element{MustForeground8Bit(244)}) {
			t.Errorf("Style(muted) = %v, want [fg:244]", muted)
		}

		if got, want := result.Config.StyleNames(), []string{"error", "muted"}; !reflect.DeepEqual(got, want) {
			t.Errorf("StyleNames() = %v, want %v", got, want)
		}
	})
}

func TestLoadConfig_Include(t *testing.T) {
	t.Parallel()

	t.Run("GlobbedFilesContributeStyles", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		testutil.WriteConfig(t, tmpDir, configFileName, `include = ["themes/**/*.toml"]

[styles]
title = ["bold"]
`)
		testutil.WriteConfig(t, tmpDir, filepath.Join("themes", "base.toml"), `[styles]
title = ["underline"]
ok = ["green"]
`)
		testutil.WriteConfig(t, tmpDir, filepath.Join("themes", "dark", "extra.toml"), `[styles]
warn = ["bg:52", "yellow"]
`)

		result, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			style string
			want  []Element
		}{
			{"title", []Element{Underline}}, // include overrides the file that includes it
			{"ok", []Element{Green}},
			{"warn", []Element{MustBackground8Bit(52), Yellow}},
		}
		for _, tt := range tests {
			got, ok := result.Config.Style(tt.style)
			if !ok {
				t.Errorf("Style(%q) not found", tt.style)
				continue
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Style(%q) = %v, want %v", tt.style, got, tt.want)
			}
		}
	})

	t.Run("NoMatchWarns", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		testutil.WriteConfig(t, tmpDir, configFileName, `include = ["missing/*.toml"]
`)

		result, err := LoadConfig(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], `"missing/*.toml" matched no files`) {
			t.Errorf("Warnings = %v, want a no-match warning", result.Warnings)
		}
	})

	t.Run("MockFS", func(t *testing.T) {
		t.Parallel()

		base := filepath.Join("/proj", configDir)
		mockFS := testutil.NewMockFSFromFiles(map[string]string{
			filepath.Join(base, configFileName):      `include = ["*.toml"]`,
			filepath.Join(base, "a.toml"):            `styles = { a = ["red"] }`,
			filepath.Join(base, localConfigFileName): `mode = "auto"`,
		})
		mockFS.GlobFunc = func(dir, pattern string) ([]string, error) {
			if dir != base || pattern != "*.toml" {
				t.Errorf("Glob(%q, %q) unexpected", dir, pattern)
			}
			return []string{"a.toml"}, nil
		}

		result, err := LoadConfig("/proj", WithConfigFS(mockFS))
		if err != nil {
			t.Fatal(err)
		}
		if result.Config.Mode != "auto" {
			t.Errorf("Mode = %q, want %q", result.Config.Mode, "auto")
		}
		if got, _ := result.Config.Style("a"); !slices.Equal(got, []Element{Red}) {
			t.Errorf("Style(a) = %v, want [Red]", got)
		}
	})
}

func TestLoadConfig_UnknownElementWarns(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testutil.WriteConfig(t, tmpDir, configFileName, `[styles]
error = ["bold", "chartreuse", "fg:999"]
`)

	result, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	got, ok := result.Config.Style("error")
	if !ok {
		t.Fatal("Style(error) not found")
	}
	if !slices.Equal(got, []Element{Bold}) {
		t.Errorf("Style(error) = %v, want [Bold]", got)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("Warnings = %v, want 2", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "chartreuse") {
		t.Errorf("Warnings[0] = %q, should name the unknown element", result.Warnings[0])
	}
	if !strings.Contains(result.Warnings[1], "out of range") {
		t.Errorf("Warnings[1] = %q, should report the range error", result.Warnings[1])
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings string
		wantErr  error
		wantMsg  string
	}{
		{
			name:     "invalid_mode",
			settings: `mode = "sometimes"`,
			wantErr:  ErrInvalidMode,
		},
		{
			name:     "invalid_console",
			settings: `console = "maybe"`,
			wantErr:  ErrInvalidConsole,
		},
		{
			name:     "invalid_toml",
			settings: `mode = `,
			wantMsg:  "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			testutil.WriteConfig(t, tmpDir, configFileName, tt.settings)

			_, err := LoadConfig(tmpDir)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestConfig_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         Config
		wantMode    Mode
		wantConsole Console
	}{
		{
			name:        "empty_keeps_defaults",
			cfg:         Config{},
			wantMode:    ModeDetect,
			wantConsole: ConsoleUnset,
		},
		{
			name:        "mode_and_console",
			cfg:         Config{Mode: "always", Console: "present"},
			wantMode:    ModeAlways,
			wantConsole: ConsolePresent,
		},
		{
			name:        "auto_alias",
			cfg:         Config{Mode: "auto"},
			wantMode:    ModeDetect,
			wantConsole: ConsoleUnset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := New(WithEnvironment(testutil.NewMockEnvironment(false, "Linux")))
			if err := tt.cfg.Apply(out); err != nil {
				t.Fatal(err)
			}
			if out.Mode() != tt.wantMode {
				t.Errorf("Mode() = %q, want %q", out.Mode(), tt.wantMode)
			}
			if out.Console() != tt.wantConsole {
				t.Errorf("Console() = %v, want %v", out.Console(), tt.wantConsole)
			}
		})
	}

	t.Run("invalid_mode", func(t *testing.T) {
		t.Parallel()

		out := New(WithEnvironment(testutil.NewMockEnvironment(false, "Linux")))
		cfg := Config{Mode: "sometimes"}
		if err := cfg.Apply(out); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("Apply() error = %v, want ErrInvalidMode", err)
		}
	})
}
