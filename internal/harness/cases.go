package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// InputPlaceholder in the program arguments is replaced by the input path.
const InputPlaceholder = "@in"

// Case is one test input and, if present, its expected output file.
type Case struct {
	Name     string
	Input    string
	Expected string
}

// caseName is the file name up to its first dot.
func caseName(file string) string {
	base := filepath.Base(file)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}

// Collect finds the regular files in testPath ending in testExt. For each
// one, expPath/<name><expExt> is used as the expected output when it
// exists. An empty expPath means no case has expected output.
func Collect(testPath, testExt, expPath, expExt string) ([]Case, error) {
	des, err := os.ReadDir(testPath)
	if err != nil {
		return nil, fmt.Errorf("read test directory: %w", err)
	}
	var cases []Case
	for _, de := range des {
		if de.IsDir() || !strings.HasSuffix(de.Name(), testExt) {
			continue
		}
		c := Case{Name: caseName(de.Name()), Input: filepath.Join(testPath, de.Name())}
		if expPath != "" {
			exp := filepath.Join(expPath, c.Name+expExt)
			if fi, err := os.Stat(exp); err == nil && fi.Mode().IsRegular() {
				c.Expected = exp
			}
		}
		cases = append(cases, c)
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Input < cases[j].Input })
	return cases, nil
}

// Command builds the shell command for input. The first InputPlaceholder
// in the joined command line is replaced by input; without one the input
// is fed on standard input instead.
func Command(program string, args []string, input string) (cmd string, feedStdin bool) {
	line := strings.Join(append([]string{program}, args...), " ")
	if !strings.Contains(line, InputPlaceholder) {
		return line, true
	}
	return strings.Replace(line, InputPlaceholder, input, 1), false
}
