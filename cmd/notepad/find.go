package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/dshills/notepad/internal/search"
)

type findOptions struct {
	term      string
	wholeWord bool
	next      int
	full      bool
}

func newFindCmd(root *rootOptions) *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find FILE",
		Short: "Highlight every occurrence of a term",
		Long: `find scans FILE for a literal, case-sensitive term and highlights every
occurrence. The cursor starts on the first match; --next N moves it N-1
more times, wrapping from the last match back to the first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("whole-word") {
				opts.wholeWord = root.cfg.Search.WholeWord
			}
			return root.runFind(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.term, "term", "t", "", "text to find")
	cmd.Flags().BoolVarP(&opts.wholeWord, "whole-word", "w", false, "match whole words only")
	cmd.Flags().IntVarP(&opts.next, "next", "n", 1, "number of find-next steps")
	cmd.Flags().BoolVar(&opts.full, "full", false, "print the whole document, not only matching lines")
	_ = cmd.MarkFlagRequired("term")

	return cmd
}

func (o *rootOptions) runFind(cmd *cobra.Command, path string, opts *findOptions) error {
	log := zerolog.Ctx(cmd.Context())
	out := cmd.OutOrStdout()

	doc, err := openDocument(path, o.cfg)
	if err != nil {
		return err
	}

	q, err := search.NewQuery(opts.term, opts.wholeWord)
	if err != nil {
		return err
	}

	cursor := o.finder.NewCursor()
	steps := max(opts.next, 1)
	for i := 0; i < steps; i++ {
		r, err := cursor.Resubmit(doc, q)
		if err != nil {
			if errors.Is(err, search.ErrNoMatches) {
				printWarn(out, "no matches for %s in %s", q, path)
			}
			return err
		}
		log.Debug().Int("step", i+1).Int64("start", int64(r.Start)).Int64("end", int64(r.End)).Msg("focus")
	}

	focus, _ := cursor.Focus()
	printHeader(out, "%s: %d matches for %s", path, cursor.Len(), q)
	printOK(out, "match %d/%d at %s", cursor.FocusIndex()+1, cursor.Len(), o.position(doc, focus.Start))

	if opts.full {
		return o.renderer.Render(out, doc, doc.Tags())
	}
	return o.renderer.RenderMatches(out, doc, doc.Tags(), lineNumber)
}
