package picker

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/interpretive-systems/diffwin/internal/term"
	"github.com/interpretive-systems/diffwin/internal/viewport"
)

const parentEntry = "../"

// File is a text file chosen in the picker.
type File struct {
	Name  string
	Path  string
	Lines []string
}

// choices returns the menu labels for dir. The parent entry is always
// present except at the filesystem root, even when dir cannot be listed.
func choices(dir string) ([]string, error) {
	var names []string
	if dir != filepath.Dir(dir) {
		names = append(names, parentEntry)
	}
	entries, err := ListDirectory(dir)
	for _, e := range entries {
		if e.IsDir {
			names = append(names, e.Name+"/")
		} else {
			names = append(names, e.Name)
		}
	}
	return names, err
}

// Pick browses from dir until the user opens a text file or cancels. A nil
// File with a nil error means the user cancelled. Errors are only returned
// when the surface fails.
func Pick(s term.Surface, title, dir string) (*File, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	var st viewport.ScrollState
	var errLines []string
	for {
		names, lerr := choices(dir)
		if lerr != nil && errLines == nil {
			log.Printf("picker: %v", lerr)
			errLines = viewport.ErrorLines(lerr)
		}
		c := viewport.Content{
			Title:   title,
			Body:    [][]string{{"Select a text file"}, {"Path: " + dir}},
			Error:   errLines,
			Choices: names,
		}
		sel, err := viewport.Show(s, c, st, viewport.ModeList)
		if err != nil {
			return nil, err
		}
		if sel.Cancelled {
			return nil, nil
		}
		st, errLines = sel.State, nil

		name := names[st.Selected]
		switch {
		case name == parentEntry:
			dir = filepath.Dir(dir)
			st = viewport.ScrollState{}
		case strings.HasSuffix(name, "/"):
			next := filepath.Join(dir, strings.TrimSuffix(name, "/"))
			if _, err := ListDirectory(next); err != nil {
				log.Printf("picker: %v", err)
				errLines = viewport.ErrorLines(err)
				continue
			}
			dir = next
			st = viewport.ScrollState{}
		default:
			path := filepath.Join(dir, name)
			lines, err := ReadTextFile(path)
			if err != nil {
				log.Printf("picker: %v", err)
				errLines = viewport.ErrorLines(err)
				continue
			}
			return &File{Name: name, Path: path, Lines: lines}, nil
		}
	}
}
