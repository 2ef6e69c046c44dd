package picker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/diffwin/internal/term"
)

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("a.txt", "hello\nworld\n")
	write("empty.txt", "")
	write("bin.dat", "\x00\x01\x02")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("b\r\n"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "link")))
	return dir
}

func down(n int) []term.Key {
	out := make([]term.Key, n)
	for i := range out {
		out[i] = term.Code(term.KeyDown)
	}
	return out
}

func script(parts ...[]term.Key) []term.Key {
	var out []term.Key
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var (
	enter = []term.Key{term.Code(term.KeyEnter)}
	esc   = []term.Key{term.Code(term.KeyEsc)}
)

// find locates the choice row showing name in the last frame.
func find(m *term.Memory, name string) (row, col int) {
	for i, line := range m.LastFrame() {
		if strings.TrimSpace(line) == name {
			return i, strings.Index(line, name)
		}
	}
	return -1, -1
}

func frameText(m *term.Memory) string {
	return strings.Join(m.LastFrame(), "\n")
}

func TestListDirectory(t *testing.T) {
	dir := fixture(t)
	got, err := ListDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "link", IsDir: true},
		{Name: "sub", IsDir: true},
		{Name: "a.txt"},
		{Name: "bin.dat"},
		{Name: "empty.txt"},
	}, got)
}

func TestListDirectory_AccessError(t *testing.T) {
	_, err := ListDirectory(filepath.Join(t.TempDir(), "missing"))
	var ae *AccessError
	require.True(t, errors.As(err, &ae))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "cannot list directory")
}

func TestReadTextFile_AccessError(t *testing.T) {
	dir := fixture(t)
	for _, path := range []string{filepath.Join(dir, "missing.txt"), filepath.Join(dir, "sub")} {
		_, err := ReadTextFile(path)
		var ae *AccessError
		require.True(t, errors.As(err, &ae), "path %s: %v", path, err)
		assert.Equal(t, path, ae.Path)
		assert.True(t, strings.HasPrefix(err.Error(), "cannot read file: "), err.Error())
	}
	_, err := ReadTextFile(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadTextFile(t *testing.T) {
	dir := fixture(t)

	lines, err := ReadTextFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, lines)

	_, err = ReadTextFile(filepath.Join(dir, "empty.txt"))
	var ee *EmptyFileError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, `File "empty.txt" appears empty`, err.Error())

	_, err = ReadTextFile(filepath.Join(dir, "bin.dat"))
	var ne *NotTextError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, "bin.dat", ne.Name)

	_, err = ReadTextFile(filepath.Join(dir, "nope"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestPick_OpensFile(t *testing.T) {
	dir := fixture(t)
	// ../ link/ sub/ a.txt bin.dat empty.txt
	m := term.NewMemory(20, 300, script(down(3), enter)...)
	f, err := Pick(m, "Title", dir)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "a.txt", f.Name)
	assert.Equal(t, filepath.Join(dir, "a.txt"), f.Path)
	assert.Equal(t, []string{"hello", "world"}, f.Lines)

	first := strings.Join(m.Frames[0], "\n")
	assert.Contains(t, first, "Select a text file")
	assert.Contains(t, first, "Path: "+dir)
	assert.Contains(t, first, "../")
	assert.Contains(t, first, "sub/")
}

func TestPick_EntersSubdirectory(t *testing.T) {
	dir := fixture(t)
	m := term.NewMemory(20, 300, script(down(2), enter, down(1), enter)...)
	f, err := Pick(m, "", dir)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "b.txt", f.Name)
	assert.Equal(t, []string{"b\r"}, f.Lines)
	assert.Contains(t, frameText(m), "Path: "+filepath.Join(dir, "sub"))
}

func TestPick_ParentDirectory(t *testing.T) {
	dir := fixture(t)
	m := term.NewMemory(20, 300, script(enter, esc)...)
	f, err := Pick(m, "", dir)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Contains(t, frameText(m), "Path: "+filepath.Dir(dir))
}

func TestPick_RootHasNoParentEntry(t *testing.T) {
	m := term.NewMemory(200, 300, esc...)
	_, err := Pick(m, "", "/")
	require.NoError(t, err)
	assert.NotContains(t, frameText(m), "../")
}

func TestPick_FileErrorsStayInMenu(t *testing.T) {
	dir := fixture(t)
	// empty.txt is the last entry; the selection survives the error
	m := term.NewMemory(20, 300, script(down(5), enter, esc)...)
	f, err := Pick(m, "", dir)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Contains(t, frameText(m), `File "empty.txt" appears empty`)
	row, col := find(m, "empty.txt")
	require.GreaterOrEqual(t, row, 0)
	assert.Equal(t, term.StyleEmphasis, m.StyleAt(row, col))
}

func TestPick_UnreadableStartDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	m := term.NewMemory(20, 300, esc...)
	f, err := Pick(m, "", missing)
	require.NoError(t, err)
	assert.Nil(t, f)
	text := frameText(m)
	assert.Contains(t, text, "cannot list directory")
	assert.Contains(t, text, "../")
}

func TestPick_SurfaceError(t *testing.T) {
	m := term.NewMemory(20, 60)
	_, err := Pick(m, "", fixture(t))
	assert.ErrorIs(t, err, term.ErrClosed)
}
