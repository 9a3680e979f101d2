package khat

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// SourceProvider fills a File from wherever the user pointed khat at: a
// path, stdin via "-", or the system clipboard.
type SourceProvider struct {
	stdin          io.Reader
	readClipboard  func() (string, error)
	writeClipboard func(string) error
}

func NewSourceProvider() *SourceProvider {
	return &SourceProvider{
		stdin:          os.Stdin,
		readClipboard:  clipboard.ReadAll,
		writeClipboard: clipboard.WriteAll,
	}
}

func (sp *SourceProvider) Load(f *File, fromClipboard bool) error {
	if fromClipboard {
		c, err := sp.readClipboard()
		if err != nil {
			return errFileNotFound(err)
		}
		return f.LoadFrom(strings.NewReader(c))
	}

	if p, ok := f.Path(); ok && p == StdinPath {
		return f.LoadFrom(sp.stdin)
	}
	return f.Load()
}

func (sp *SourceProvider) Copy(text string) error {
	return sp.writeClipboard(text)
}

func (sp *SourceProvider) Describe(f *File, fromClipboard bool) string {
	if fromClipboard {
		return "clipboard"
	}
	p, ok := f.Path()
	switch {
	case !ok || p == "":
		return "none"
	case p == StdinPath:
		return "stdin"
	default:
		return p
	}
}
