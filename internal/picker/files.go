// Package picker lists directories, loads text files and runs the
// interactive file selection menu.
package picker

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	opList = "list directory"
	opRead = "read file"
)

// Entry is one readable item of a directory.
type Entry struct {
	Name  string
	IsDir bool
}

// AccessError reports a directory that could not be listed or a file that
// could not be read.
type AccessError struct {
	Op   string // "list directory" or "read file"
	Path string
	Err  error
}

func (e *AccessError) Error() string { return "cannot " + e.Op + ": " + e.Err.Error() }
func (e *AccessError) Unwrap() error { return e.Err }

// NotTextError reports a file that is not valid UTF-8 text.
type NotTextError struct {
	Name string
}

func (e *NotTextError) Error() string { return fmt.Sprintf("File %q not printable", e.Name) }

// EmptyFileError reports a file without content.
type EmptyFileError struct {
	Name string
}

func (e *EmptyFileError) Error() string { return fmt.Sprintf("File %q appears empty", e.Name) }

// ListDirectory returns the directories and regular files in path, each
// group sorted by name. Symlinks are classified by their target; other
// kinds of entries are skipped.
func ListDirectory(path string) ([]Entry, error) {
	des, err := os.ReadDir(path)
	if err != nil {
		return nil, &AccessError{Op: opList, Path: path, Err: err}
	}
	var dirs, files []Entry
	for _, de := range des {
		mode := de.Type()
		if mode&os.ModeSymlink != 0 {
			fi, err := os.Stat(filepath.Join(path, de.Name()))
			if err != nil {
				continue
			}
			mode = fi.Mode().Type()
		}
		switch {
		case mode.IsDir():
			dirs = append(dirs, Entry{Name: de.Name(), IsDir: true})
		case mode.IsRegular():
			files = append(files, Entry{Name: de.Name()})
		}
	}
	byName := func(es []Entry) {
		sort.Slice(es, func(i, j int) bool { return es[i].Name < es[j].Name })
	}
	byName(dirs)
	byName(files)
	return append(dirs, files...), nil
}

// ReadTextFile reads path and splits it into lines without their line
// terminators.
func ReadTextFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AccessError{Op: opRead, Path: path, Err: err}
	}
	name := filepath.Base(path)
	if len(data) == 0 {
		return nil, &EmptyFileError{Name: name}
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return nil, &NotTextError{Name: name}
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.Split(text, "\n"), nil
}
