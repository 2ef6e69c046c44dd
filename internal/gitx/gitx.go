// Package gitx reads file revisions and diffs from a git repository by
// running the git command.
package gitx

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrBinary is returned for files git considers binary.
var ErrBinary = errors.New("binary file")

// RepoRoot resolves the git repository root from a given path (or current dir).
func RepoRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	cmd := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("rev-parse: %w", err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New("empty git root")
	}
	return root, nil
}

// RelPath returns path relative to repoRoot in the slash form git expects.
func RelPath(repoRoot, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	root, err := filepath.EvalSymlinks(repoRoot)
	if err != nil {
		return "", err
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside repository %s", path, repoRoot)
	}
	return filepath.ToSlash(rel), nil
}

// ShowFile returns the content of path (relative to repoRoot) at rev.
func ShowFile(repoRoot, rev, path string) (string, error) {
	cmd := exec.Command("git", "-C", repoRoot, "show", rev+":"+path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git show %s:%s: %w: %s", rev, path, err, strings.TrimSpace(stderr.String()))
	}
	if isBinary(out) {
		return "", fmt.Errorf("git show %s:%s: %w", rev, path, ErrBinary)
	}
	return string(out), nil
}

// Diff returns a unified diff between rev and the working tree for a single
// file. Untracked files are diffed against /dev/null.
func Diff(repoRoot, rev, path string) (string, error) {
	var args []string
	if isTracked(repoRoot, path) {
		args = []string{"-C", repoRoot, "diff", "--no-color", "--text", rev, "--", path}
	} else {
		args = []string{"-C", repoRoot, "diff", "--no-color", "--no-index", "--text", "/dev/null", path}
	}
	cmd := exec.Command("git", args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		// --no-index exits 1 when the files differ
		if len(b) == 0 {
			return "", fmt.Errorf("git diff: %w", err)
		}
	}
	return string(b), nil
}

// isBinary uses git's heuristic: a NUL byte in the first 8000 bytes.
func isBinary(b []byte) bool {
	return bytes.IndexByte(b[:min(len(b), 8000)], 0) >= 0
}

func isTracked(repoRoot, path string) bool {
	cmd := exec.Command("git", "-C", repoRoot, "ls-files", "--error-unmatch", "--", path)
	return cmd.Run() == nil
}
