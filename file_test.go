package khat

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadPreservesContent(t *testing.T) {
	content := "first\r\n  second\t\n\nlast\n"
	f := FromPath(writeTemp(t, "a.txt", content))

	require.NoError(t, f.Load())
	assert.True(t, f.Loaded())

	got, err := f.Content()
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadWithoutPath(t *testing.T) {
	err := NewFile().Load()
	assert.ErrorIs(t, err, ErrPathNotSpecified)

	err = FromPath("").Load()
	assert.ErrorIs(t, err, ErrPathNotSpecified)
}

func TestLoadMissingFile(t *testing.T) {
	f := FromPath(filepath.Join(t.TempDir(), "nope.txt"))
	err := f.Load()

	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, f.Loaded())
	assert.NotEmpty(t, HintFor(err))
}

func TestLoadDirectory(t *testing.T) {
	err := FromPath(t.TempDir()).Load()
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	f := FromPath(writeTemp(t, "bin.txt", "ab\xffcd"))
	err := f.Load()

	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, errNotUTF8)
	assert.False(t, f.Loaded())

	_, err = f.Render(FullReverse)
	assert.ErrorIs(t, err, ErrEmptyContent)

	err = NewFile().LoadFrom(strings.NewReader("ab\xffcd"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadDashIsAFileName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, StdinPath), []byte("dash"), 0644))

	f := FromPath(StdinPath)
	require.NoError(t, f.Load())
	got, err := f.Content()
	require.NoError(t, err)
	assert.Equal(t, "dash", got)
}

func TestSetPath(t *testing.T) {
	f := NewFile()
	_, ok := f.Path()
	assert.False(t, ok)

	p := writeTemp(t, "b.txt", kenobi)
	f.SetPath(p)
	got, ok := f.Path()
	assert.True(t, ok)
	assert.Equal(t, p, got)

	require.NoError(t, f.Load())
	out, err := f.Render(LineReverse)
	require.NoError(t, err)
	assert.Equal(t, "General Kenobi\nHello there!", out)
}

func TestContentBeforeLoad(t *testing.T) {
	f := FromPath("whatever.txt")

	_, err := f.Content()
	assert.ErrorIs(t, err, ErrEmptyContent)

	for _, m := range []Mode{Plain, FullReverse, LineReverse, CharsWithinLineReverse} {
		_, err := f.Render(m)
		assert.ErrorIs(t, err, ErrEmptyContent)
	}
}

func TestFileString(t *testing.T) {
	assert.Equal(t, "The file has no path", NewFile().String())

	f := FromPath("x.txt")
	assert.Equal(t, "The file has the x.txt path, but has no content", f.String())

	f.setContent("hi")
	assert.Equal(t, "The file x.txt has the following content:\n\nhi", f.String())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Can't use more than one flag", errMultipleFlags().Error())
	assert.Equal(t, "Don't use multiple flags. It doesn't make sense.", HintFor(errMultipleFlags()))
	assert.Equal(t, "Run `khat --help` for usage.", HintFor(errors.New("boom")))

	err := errFileNotFound(errors.New("permission denied"))
	assert.Equal(t, "Didn't found any file: permission denied", err.Error())
	assert.NotErrorIs(t, err, ErrPathNotSpecified)
}
