package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/term"

	"github.com/dshills/notepad/internal/config"
	"github.com/dshills/notepad/internal/renderer/highlight"
	"github.com/dshills/notepad/internal/search"
)

// rootOptions holds the global flags and what they resolve to.
type rootOptions struct {
	configPath string
	logLevel   string
	noColor    bool

	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	logger   zerolog.Logger
	finder   *search.Finder
	renderer *highlight.Renderer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "notepad",
		Short: "Find and replace text the way the notepad editor does",
		Long: `notepad runs the editor's find/replace engine on a file.

find highlights every occurrence of a term and steps a cursor through them.
replace substitutes the next occurrence after a position, or all of them.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (.toml, .yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newFindCmd(opts))
	cmd.AddCommand(newReplaceCmd(opts))

	return cmd
}

// setup loads configuration and builds the logger, finder and renderer.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	o.logger = zerolog.New(zerolog.ConsoleWriter{Out: o.stderr, NoColor: o.noColor}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
	ctx := o.logger.WithContext(cmd.Context())

	var loadOpts []config.Option
	if o.configPath != "" {
		loadOpts = append(loadOpts, config.WithFile(o.configPath))
	}
	cfg, err := config.Load(ctx, loadOpts...)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	o.cfg = cfg

	level := cfg.LogLevel()
	if o.logLevel != "" {
		level, err = zerolog.ParseLevel(o.logLevel)
		if err != nil {
			return errors.Errorf("invalid log level %q: %w", o.logLevel, err)
		}
	}
	o.logger = o.logger.Level(level)
	cmd.SetContext(o.logger.WithContext(ctx))

	for _, key := range cfg.Unused {
		o.logger.Warn().Str("setting", key).Str("source", cfg.Source).Msg("unknown setting ignored")
	}

	if o.noColor || !cfg.Highlight.Enabled || !isTerminal(o.stdout) {
		color.NoColor = true
	}

	theme := highlight.NewTheme(cfg.Highlight)
	if color.NoColor {
		theme = highlight.PlainTheme()
	}
	o.renderer = highlight.NewRenderer(theme, cfg.Editor.TabWidth)
	o.finder = search.New(append(cfg.SearchOptions(), search.WithLogger(o.logger))...)

	return nil
}

// isTerminal reports whether w is a terminal. Colors are only written to
// terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
