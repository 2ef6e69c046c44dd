package cli

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/diffwin/internal/harness"
	"github.com/interpretive-systems/diffwin/internal/term"
	"github.com/interpretive-systems/diffwin/internal/tui"
)

func newTestCmd(a *app) *cobra.Command {
	var testPath, testExt, expPath, expExt, program string
	var noViewer bool
	cmd := &cobra.Command{
		Use:   "test --testpath DIR --program PROG [-- ARGS...]",
		Short: "Run a program over test inputs and compare with expected output",
		Long: "Runs PROG once per file in --testpath ending in --testext.\n" +
			"An argument of @in is replaced by the input path; otherwise the\n" +
			"input is fed on stdin. Output is compared with the file of the same\n" +
			"name in --exppath ending in --expext.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if testPath == "" || program == "" {
				return errors.New("--testpath and --program are required")
			}
			cases, err := harness.Collect(testPath, testExt, expPath, expExt)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			r := &harness.Runner{
				Program: program,
				Args:    args,
				Out:     cmd.OutOrStdout(),
				In:      cmd.InOrStdin(),
			}
			if !noViewer {
				r.View = func(left, right []string) error {
					return a.openWindow(ctx, func(w *tui.Window) error {
						return w.ShowDiff(left, right)
					})
				}
			}
			sum, err := r.RunAll(ctx, cases)
			if errors.Is(err, term.ErrInterrupted) {
				log.Printf("cli: test run interrupted")
				fmt.Fprintln(cmd.OutOrStdout(), "~~ interrupted")
				err = nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "~~ passed %d, failed %d, crashed %d, unchecked %d\n",
				sum.Passed, sum.Failed, sum.Crashed, sum.Unchecked)
			return err
		},
	}
	cmd.Flags().StringVar(&testPath, "testpath", "", "Directory containing test input files")
	cmd.Flags().StringVar(&testExt, "testext", "", "Extension of test input files")
	cmd.Flags().StringVar(&expPath, "exppath", "", "Directory containing expected output files")
	cmd.Flags().StringVar(&expExt, "expext", "", "Extension of expected output files")
	cmd.Flags().StringVar(&program, "program", "", "Program to test")
	cmd.Flags().BoolVar(&noViewer, "no-viewer", false, "Never offer the side-by-side viewer")
	return cmd
}
