package main

import (
	"io"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/dshills/notepad/internal/engine/buffer"
	"github.com/dshills/notepad/internal/search"
)

type replaceOptions struct {
	term      string
	with      string
	wholeWord bool
	all       bool
	at        int64
	write     bool
	diff      bool
}

func newReplaceCmd(root *rootOptions) *cobra.Command {
	opts := &replaceOptions{}

	cmd := &cobra.Command{
		Use:   "replace FILE",
		Short: "Replace the next or every occurrence of a term",
		Long: `replace substitutes occurrences of a literal term in FILE.

Without --all only the first occurrence at or after --at (a byte offset,
default 0) is replaced. The replaced text runs to the end of the word the
occurrence starts, so replacing "foo" in "foobar" replaces "foobar".

The result is printed unless --write is given, in which case FILE is
updated in place. --diff prints a unified diff instead of the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("whole-word") {
				opts.wholeWord = root.cfg.Search.WholeWord
			}
			return root.runReplace(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.term, "term", "t", "", "text to replace")
	cmd.Flags().StringVarP(&opts.with, "with", "r", "", "replacement text")
	cmd.Flags().BoolVarP(&opts.wholeWord, "whole-word", "w", false, "match whole words only (needs search.wholeWordReplace)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "replace every occurrence")
	cmd.Flags().Int64Var(&opts.at, "at", 0, "byte offset to search from")
	cmd.Flags().BoolVar(&opts.write, "write", false, "write the result back to FILE")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "print a unified diff of the change")
	_ = cmd.MarkFlagRequired("term")
	cmd.MarkFlagsMutuallyExclusive("write", "diff")

	return cmd
}

func (o *rootOptions) runReplace(cmd *cobra.Command, path string, opts *replaceOptions) error {
	out := cmd.OutOrStdout()

	doc, err := openDocument(path, o.cfg)
	if err != nil {
		return err
	}

	q, err := search.NewQuery(opts.term, opts.wholeWord)
	if err != nil {
		return err
	}
	original := doc.contents()

	// Status lines go to stderr when the document itself is printed.
	status := out
	if !opts.write {
		status = cmd.ErrOrStderr()
	}

	if opts.all {
		n, err := o.finder.ReplaceAll(doc, q, opts.with)
		if err != nil {
			return err
		}
		if n == 0 {
			printWarn(status, "no occurrences of %s in %s", q, path)
		} else {
			printOK(status, "replaced %d occurrences of %s", n, q)
		}
	} else {
		doc.SetInsertionPoint(buffer.ByteOffset(opts.at))
		cursor := o.finder.NewCursor()
		r, err := o.finder.ReplaceNext(doc, cursor, q, opts.with)
		if err != nil {
			if errors.Is(err, search.ErrNotFound) {
				printWarn(status, "no occurrence of %s after offset %d", q, opts.at)
			}
			return err
		}
		printOK(status, "replaced at %s", o.position(doc, r.Start))
		if focus, ok := cursor.Focus(); ok {
			printOK(status, "next match at %s (offset %d)", o.position(doc, focus.Start), focus.Start)
		}
	}

	switch {
	case opts.write:
		return doc.save()
	case opts.diff:
		diff, err := unifiedDiff(path, original, doc.contents())
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, diff)
		return err
	default:
		_, err = io.WriteString(out, doc.contents())
		return err
	}
}

// unifiedDiff renders the change to path as a unified diff with three lines
// of context.
func unifiedDiff(path, before, after string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (replaced)",
		Context:  3,
	})
	if err != nil {
		return "", errors.Errorf("diff %s: %w", path, err)
	}
	return diff, nil
}
