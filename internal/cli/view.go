package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/diffwin/internal/diffview"
	"github.com/interpretive-systems/diffwin/internal/gitx"
	"github.com/interpretive-systems/diffwin/internal/picker"
)

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view LEFT RIGHT",
		Short: "Show two text files side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.viewFiles(cmd.Context(), args[0], args[1])
		},
	}
}

func (a *app) viewFiles(ctx context.Context, leftPath, rightPath string) error {
	left, err := picker.ReadTextFile(leftPath)
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	right, err := picker.ReadTextFile(rightPath)
	if err != nil {
		return fmt.Errorf("right: %w", err)
	}
	return a.show(ctx, left, right)
}

func newRevCmd(a *app) *cobra.Command {
	var rev string
	var unified bool
	cmd := &cobra.Command{
		Use:   "rev FILE",
		Short: "Compare a file at a git revision with the working tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right, err := revPanes(args[0], rev, unified)
			if err != nil {
				return err
			}
			return a.show(cmd.Context(), left, right)
		},
	}
	cmd.Flags().StringVar(&rev, "rev", "HEAD", "Revision to compare against")
	cmd.Flags().BoolVarP(&unified, "unified", "u", false, "Show the changed hunks only")
	return cmd
}

func revPanes(file, rev string, unified bool) (left, right []string, err error) {
	root, err := gitx.RepoRoot(filepath.Dir(file))
	if err != nil {
		return nil, nil, fmt.Errorf("not a git repo: %w", err)
	}
	rel, err := gitx.RelPath(root, file)
	if err != nil {
		return nil, nil, err
	}
	if unified {
		d, err := gitx.Diff(root, rev, rel)
		if err != nil {
			return nil, nil, err
		}
		left, right = diffview.SplitUnified(d)
		if len(left) == 0 {
			return nil, nil, fmt.Errorf("%s: no changes against %s", rel, rev)
		}
		return left, right, nil
	}
	old, err := gitx.ShowFile(root, rev, rel)
	if err != nil {
		return nil, nil, err
	}
	cur, err := picker.ReadTextFile(file)
	var empty *picker.EmptyFileError
	if err != nil && !errors.As(err, &empty) {
		return nil, nil, err
	}
	return strings.Split(old, "\n"), cur, nil
}

func newPatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "patch FILE|-",
		Short: "Show a unified diff as side-by-side panes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			var err error
			if args[0] == "-" {
				a.ttyInput = true
				text, err = readAll(cmd.InOrStdin(), "stdin")
			} else {
				var b []byte
				b, err = os.ReadFile(args[0])
				text = string(b)
			}
			if err != nil {
				return err
			}
			left, right := diffview.SplitUnified(text)
			if len(left) == 0 {
				return errors.New("patch: no diff content found")
			}
			return a.show(cmd.Context(), left, right)
		},
	}
}
