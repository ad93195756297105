package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/dshills/notepad/internal/config/loader"
)

// Config is the decoded notepad configuration.
type Config struct {
	Search    SearchConfig    `mapstructure:"search"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Highlight HighlightConfig `mapstructure:"highlight"`
	Editor    EditorConfig    `mapstructure:"editor"`

	// Source is the file the configuration was read from, if any.
	Source string `mapstructure:"-"`
	// Unused lists setting paths that were present but not recognized.
	Unused []string `mapstructure:"-"`
}

// SearchConfig holds the matching policy of the find/replace engine.
type SearchConfig struct {
	// WholeWord is the initial state of the whole-word toggle.
	WholeWord bool `mapstructure:"wholeWord"`
	// LegacySpaceBoundary requires a literal space before whole-word matches.
	LegacySpaceBoundary bool `mapstructure:"legacySpaceBoundary"`
	// WholeWordReplace makes replace honor the whole-word toggle.
	WholeWordReplace bool `mapstructure:"wholeWordReplace"`
	// NormalizeTerm converts search terms to NFC.
	NormalizeTerm bool `mapstructure:"normalizeTerm"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// HighlightConfig holds the colors of the two match states.
type HighlightConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Found   TagStyle `mapstructure:"found"`
	Focus   TagStyle `mapstructure:"focus"`
}

// TagStyle is a foreground/background color pair. Colors are hex values
// ("#C0C0C0") or ANSI color numbers ("7").
type TagStyle struct {
	Foreground string `mapstructure:"foreground"`
	Background string `mapstructure:"background"`
}

// EditorConfig holds document settings.
type EditorConfig struct {
	TabWidth int `mapstructure:"tabWidth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := decode(defaultMap())
	if err != nil {
		panic(err)
	}
	return cfg
}

// defaultMap returns the default configuration values.
func defaultMap() map[string]any {
	return map[string]any{
		"search": map[string]any{
			"wholeWord":           false,
			"legacySpaceBoundary": false,
			"wholeWordReplace":    false,
			"normalizeTerm":       false,
		},
		"logging": map[string]any{
			"level": "info",
		},
		"highlight": map[string]any{
			"enabled": true,
			"found": map[string]any{
				"foreground": "#000000",
				"background": "#C0C0C0",
			},
			"focus": map[string]any{
				"foreground": "#FFFFFF",
				"background": "#0078D7",
			},
		},
		"editor": map[string]any{
			"tabWidth": 4,
		},
	}
}

// loadOptions collects Load options.
type loadOptions struct {
	fs      afero.Fs
	file    string
	userDir string
	environ func() []string
}

// Option configures Load.
type Option func(*loadOptions)

// WithFS reads configuration files from fs.
func WithFS(fs afero.Fs) Option {
	return func(o *loadOptions) {
		o.fs = fs
	}
}

// WithFile reads configuration from path, which must exist. The format is
// chosen by extension.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// WithUserConfigDir sets the directory searched for settings.toml,
// settings.yaml or settings.yml when no file is given.
func WithUserConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.userDir = dir
	}
}

// WithEnviron replaces the process environment.
func WithEnviron(environ func() []string) Option {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// userFileNames are tried in order inside the user configuration directory.
var userFileNames = []string{"settings.toml", "settings.yaml", "settings.yml"}

// Load builds the configuration from defaults, one settings file and
// NOTEPAD_* environment variables, each overriding the previous.
func Load(ctx context.Context, opts ...Option) (*Config, error) {
	o := loadOptions{
		fs:      loader.DefaultFS(),
		userDir: defaultUserConfigDir(),
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := defaultMap()

	path, err := o.resolveFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, errors.Errorf("loading %s: %w", path, err)
		}
		fileMap, err := l.Load()
		if err != nil {
			return nil, errors.Errorf("loading %s: %w", path, err)
		}
		merged = loader.DeepMerge(merged, fileMap)
	}

	env := loader.NewEnvLoader(loader.EnvPrefix)
	env.SetEnviron(o.environ)
	envMap, err := env.Load()
	if err != nil {
		return nil, errors.Errorf("loading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, envMap)

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("source", cfg.Source).
		Strs("unused", cfg.Unused).
		Msg("configuration loaded")

	return cfg, nil
}

// resolveFile returns the settings file to read, or "" for none.
func (o *loadOptions) resolveFile() (string, error) {
	if o.file != "" {
		exists, err := afero.Exists(o.fs, o.file)
		if err != nil {
			return "", errors.Errorf("checking %s: %w", o.file, err)
		}
		if !exists {
			return "", errors.WithDetails(ErrFileNotFound, "path", o.file)
		}
		return o.file, nil
	}

	if o.userDir == "" {
		return "", nil
	}
	for _, name := range userFileNames {
		path := filepath.Join(o.userDir, name)
		if exists, _ := afero.Exists(o.fs, path); exists {
			return path, nil
		}
	}
	return "", nil
}

// decode converts a merged settings map into a Config.
func decode(m map[string]any) (*Config, error) {
	cfg := &Config{}
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		Metadata:         &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidValue, err)
	}

	cfg.Unused = md.Unused
	sort.Strings(cfg.Unused)
	return cfg, nil
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notepad")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "notepad")
}
