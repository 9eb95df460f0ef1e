package tint

import (
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

const (
	configDir           = ".tint"
	configFileName      = "settings.toml"
	localConfigFileName = "settings.local.toml"
)

// Config holds the merged styling settings of a project.
type Config struct {
	// Mode is "detect" (or "auto"), "always" or "never". Empty keeps the default.
	Mode string `toml:"mode"`
	// Console is "unset", "present" or "absent". Empty keeps the default.
	Console string `toml:"console"`
	// Include lists glob patterns, relative to the config directory, of
	// extra files contributing [styles].
	Include []string `toml:"include"`
	// Styles maps a style name to the element names composing it.
	Styles map[string][]string `toml:"styles"`

	styles map[string][]Element
}

// styleFile is the shape of an included file.
type styleFile struct {
	Styles map[string][]string `toml:"styles"`
}

// LoadConfigResult holds the merged config and any non-fatal problems.
type LoadConfigResult struct {
	Config   *Config
	Warnings []string
}

type configLoader struct {
	fs  FileSystem
	log *slog.Logger
}

// ConfigOption configures LoadConfig.
type ConfigOption func(*configLoader)

// WithConfigFS sets the FileSystem used to read configuration.
func WithConfigFS(fsys FileSystem) ConfigOption {
	return func(l *configLoader) {
		l.fs = fsys
	}
}

// WithConfigLogger sets the logger used for configuration tracing.
func WithConfigLogger(log *slog.Logger) ConfigOption {
	return func(l *configLoader) {
		l.log = log
	}
}

// LoadConfig reads .tint/settings.toml and .tint/settings.local.toml under dir.
//
// Scalar settings from the local file override the project file. Styles are
// merged in order project, project includes, local, local includes, later
// definitions replacing earlier ones with the same name. Style entries naming
// unknown elements are dropped with a warning.
func LoadConfig(dir string, opts ...ConfigOption) (*LoadConfigResult, error) {
	l := &configLoader{fs: osFS{}, log: NewNopLogger()}
	for _, opt := range opts {
		opt(l)
	}
	return l.load(dir)
}

func (l *configLoader) load(dir string) (*LoadConfigResult, error) {
	log := l.log.With(LogAttrKeyCategory.Attr(LogCategoryConfig))
	base := filepath.Join(dir, configDir)

	cfg := &Config{Styles: make(map[string][]string)}
	var warnings []string

	for _, name := range []string{configFileName, localConfigFileName} {
		path := filepath.Join(base, name)
		fileCfg, err := l.loadConfigFile(path)
		if err != nil {
			return nil, err
		}
		if fileCfg == nil {
			continue
		}
		log.Debug("loaded " + path)

		if fileCfg.Mode != "" {
			cfg.Mode = fileCfg.Mode
		}
		if fileCfg.Console != "" {
			cfg.Console = fileCfg.Console
		}
		cfg.Include = append(cfg.Include, fileCfg.Include...)
		maps.Copy(cfg.Styles, fileCfg.Styles)

		included, warns, err := l.loadIncludes(base, fileCfg.Include)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, warns...)
		maps.Copy(cfg.Styles, included)
	}

	if cfg.Mode != "" {
		if _, err := ParseMode(cfg.Mode); err != nil {
			return nil, fmt.Errorf("%s: %w", configFileName, err)
		}
	}
	if _, err := ParseConsole(cfg.Console); err != nil {
		return nil, fmt.Errorf("%s: %w", configFileName, err)
	}

	cfg.styles = make(map[string][]Element, len(cfg.Styles))
	for _, name := range slices.Sorted(maps.Keys(cfg.Styles)) {
		var elements []Element
		for _, elemName := range cfg.Styles[name] {
			e, err := ParseElement(elemName)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("style %q: %v", name, err))
				continue
			}
			elements = append(elements, e)
		}
		cfg.styles[name] = elements
	}

	return &LoadConfigResult{Config: cfg, Warnings: warnings}, nil
}

func (l *configLoader) loadConfigFile(path string) (*Config, error) {
	if _, err := l.fs.Stat(path); l.fs.IsNotExist(err) {
		return nil, nil
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var config Config
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &config, nil
}

func (l *configLoader) loadIncludes(base string, patterns []string) (map[string][]string, []string, error) {
	styles := make(map[string][]string)
	var warnings []string

	for _, pattern := range patterns {
		matches, err := l.fs.Glob(base, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			warnings = append(warnings, fmt.Sprintf("include %q matched no files", pattern))
			continue
		}
		slices.Sort(matches)
		for _, match := range matches {
			path := filepath.Join(base, match)
			data, err := l.fs.ReadFile(path)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			var f styleFile
			if _, err := toml.Decode(string(data), &f); err != nil {
				return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			l.log.Debug("included "+path, LogAttrKeyCategory.Attr(LogCategoryGlob))
			maps.Copy(styles, f.Styles)
		}
	}

	return styles, warnings, nil
}

// Apply sets the mode and console override of out from the config.
// Empty settings leave out unchanged.
func (c *Config) Apply(out *Output) error {
	if c.Mode != "" {
		mode, err := ParseMode(c.Mode)
		if err != nil {
			return err
		}
		out.SetMode(mode)
	}
	if c.Console != "" {
		console, err := ParseConsole(c.Console)
		if err != nil {
			return err
		}
		out.SetConsole(console)
	}
	return nil
}

// Style returns the elements of the named style.
func (c *Config) Style(name string) ([]Element, bool) {
	elements, ok := c.styles[name]
	return elements, ok
}

// StyleNames returns the defined style names in sorted order.
func (c *Config) StyleNames() []string {
	return slices.Sorted(maps.Keys(c.styles))
}
