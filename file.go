package khat

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// StdinPath makes SourceProvider read standard input instead of a file.
const StdinPath = "-"

var errNotUTF8 = errors.New("content is not valid UTF-8")

// File holds a path and, once loaded, the text found there. Content is only
// set by a successful Load or LoadFrom.
type File struct {
	path    *string
	content *string
}

func NewFile() *File {
	return &File{}
}

func FromPath(path string) *File {
	return &File{path: &path}
}

func (f *File) SetPath(path string) {
	f.path = &path
}

func (f *File) Path() (string, bool) {
	if f.path == nil {
		return "", false
	}
	return *f.path, true
}

func (f *File) Loaded() bool { return f.content != nil }

func (f *File) Load() error {
	if f.path == nil || *f.path == "" {
		return errPathNotSpecified()
	}

	data, err := os.ReadFile(*f.path)
	if err != nil {
		return errFileNotFound(err)
	}
	return f.store(data)
}

func (f *File) LoadFrom(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errFileNotFound(err)
	}
	return f.store(data)
}

// store keeps data as the content. Anything that is not UTF-8 text counts as
// an unreadable file.
func (f *File) store(data []byte) error {
	if !utf8.Valid(data) {
		return errFileNotFound(errNotUTF8)
	}
	f.setContent(string(data))
	return nil
}

func (f *File) setContent(c string) {
	f.content = &c
}

func (f *File) Content() (string, error) {
	if f.content == nil {
		return "", errEmptyContent()
	}
	return *f.content, nil
}

// Render returns the loaded content transformed by mode.
func (f *File) Render(mode Mode) (string, error) {
	c, err := f.Content()
	if err != nil {
		return "", err
	}
	return Apply(c, mode), nil
}

func (f *File) String() string {
	if f.path == nil {
		return "The file has no path"
	}
	if f.content == nil {
		return fmt.Sprintf("The file has the %s path, but has no content", *f.path)
	}
	return fmt.Sprintf("The file %s has the following content:\n\n%s", *f.path, *f.content)
}
