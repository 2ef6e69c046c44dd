package harness

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// ViewFunc shows two line buffers side by side.
type ViewFunc func(left, right []string) error

// Summary counts case outcomes.
type Summary struct {
	Passed    int
	Failed    int
	Crashed   int
	Unchecked int
}

// Runner runs Program over test cases and reports to Out.
type Runner struct {
	Program string
	Args    []string
	Out     io.Writer
	// In answers the "open in viewer" prompts. Without View no prompt is
	// shown and mismatches are printed as a line diff.
	In   io.Reader
	View ViewFunc

	answers *bufio.Reader
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}

// section prints text under a "~~ name:" header when it is not blank.
func (r *Runner) section(name, text string) {
	text = strings.TrimRight(text, " \t\r\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	r.printf("~~ %s:\n%s\n\n", name, text)
}

// confirm asks whether to open test in the viewer.
func (r *Runner) confirm(test string) (bool, error) {
	if r.View == nil {
		return false, nil
	}
	if r.answers == nil {
		in := r.In
		if in == nil {
			in = os.Stdin
		}
		r.answers = bufio.NewReader(in)
	}
	r.printf("Open %s in viewer? (y/n): ", test)
	line, err := r.answers.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return false, err
	}
	return strings.TrimSpace(line) == "y", nil
}

// RunAll runs every case in order. It stops early when ctx is done or the
// prompt input ends.
func (r *Runner) RunAll(ctx context.Context, cases []Case) (Summary, error) {
	var sum Summary
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		err := r.runCase(ctx, c, &sum)
		if errors.Is(err, io.EOF) {
			r.printf("< EOF\n")
			return sum, nil
		}
		if err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func (r *Runner) runCase(ctx context.Context, c Case, sum *Summary) error {
	r.printf("~~~~~\n~~ Test %s:\n", c.Name)
	cmd, feed := Command(r.Program, r.Args, c.Input)

	var stdin *string
	input, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if feed {
		s := string(input)
		stdin = &s
	}

	res, err := Run(ctx, cmd, stdin)
	log.Printf("harness: %s: %q exit=%d", c.Name, cmd, res.ExitCode)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.printf("~~ error: %v\n", err)
	}
	if res.ExitCode != 0 {
		sum.Crashed++
		r.printf("~~ cmd: %s\n\n", cmd)
		r.section("stdout", res.Stdout)
		r.section("stderr", res.Stderr)
		if res.Signaled() {
			r.printf("~~ %s terminated with signal %s\n", r.Program, res.SignalName())
		} else {
			r.printf("~~ %s terminated with exception\n", r.Program)
		}
		return nil
	}

	if c.Expected != "" {
		return r.compare(c, res, sum)
	}
	return r.showUnchecked(c, res, string(input), sum)
}

func (r *Runner) compare(c Case, res Result, sum *Summary) error {
	data, err := os.ReadFile(c.Expected)
	if err != nil {
		return fmt.Errorf("read expected output: %w", err)
	}
	out, exp := Normalize(res.Stdout), Normalize(string(data))
	if Match(out, exp) {
		sum.Passed++
		r.printf("Actual output matches expected output\n\n")
		return nil
	}
	sum.Failed++
	open, err := r.confirm(c.Name)
	if err != nil {
		return err
	}
	if open {
		return r.View(out, exp)
	}
	r.printf("%s", LineDiff(out, exp))
	return nil
}

// showUnchecked presents the output next to the input for a case without
// expected output.
func (r *Runner) showUnchecked(c Case, res Result, input string, sum *Summary) error {
	sum.Unchecked++
	open, err := r.confirm(c.Name)
	if err != nil {
		return err
	}
	inputHeader := fmt.Sprintf("input (%s)", c.Name)
	if !open {
		r.section("stderr", res.Stderr)
		r.section("stdout", res.Stdout)
		r.printf("~~ %s:\n%s\n\n", inputHeader, input)
		return nil
	}
	var left []string
	if errLines := Normalize(res.Stderr); len(errLines) > 0 {
		left = append(append(left, "~~ stderr:"), errLines...)
	}
	if outLines := Normalize(res.Stdout); len(outLines) > 0 {
		left = append(append(left, "~~ stdout:"), outLines...)
	}
	right := append([]string{"~~ " + inputHeader + ":"}, Normalize(input)...)
	return r.View(left, right)
}
