package khat

import (
	"errors"
	"fmt"
)

type Kind int

const (
	PathNotSpecified Kind = iota + 1
	FileNotFound
	EmptyContent
	MultipleFlags
	InvalidConfig
)

func (k Kind) String() string {
	switch k {
	case PathNotSpecified:
		return "The path attribute is empty!"
	case FileNotFound:
		return "Didn't found any file"
	case EmptyContent:
		return "The file has no content"
	case MultipleFlags:
		return "Can't use more than one flag"
	case InvalidConfig:
		return "The configuration file is invalid"
	default:
		return "Unknown error"
	}
}

// Error is the only error type returned by khat operations. Hint tells the
// user how to recover.
type Error struct {
	Kind Kind
	Hint string
	Err  error
}

var (
	ErrPathNotSpecified = &Error{Kind: PathNotSpecified}
	ErrFileNotFound     = &Error{Kind: FileNotFound}
	ErrEmptyContent     = &Error{Kind: EmptyContent}
	ErrMultipleFlags    = &Error{Kind: MultipleFlags}
	ErrInvalidConfig    = &Error{Kind: InvalidConfig}
)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the package sentinels work with
// errors.Is regardless of hint or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func errPathNotSpecified() error {
	return &Error{
		Kind: PathNotSpecified,
		Hint: "You must specify a path in order to get the content.\nPass it as an argument, use `-` for stdin or --clipboard.",
	}
}

func errFileNotFound(cause error) error {
	return &Error{
		Kind: FileNotFound,
		Hint: "Ensure you introduce a correct path. If you use Tab it can help you autocomplete the name of the file.",
		Err:  cause,
	}
}

func errEmptyContent() error {
	return &Error{
		Kind: EmptyContent,
		Hint: "The file has no content. Load the file before printing it.",
	}
}

func errMultipleFlags() error {
	return &Error{
		Kind: MultipleFlags,
		Hint: "Don't use multiple flags. It doesn't make sense.",
	}
}

func errInvalidConfig(cause error) error {
	return &Error{
		Kind: InvalidConfig,
		Hint: "Fix or remove the configuration file. Valid modes are plain, full, lines and chars.",
		Err:  cause,
	}
}

// HintFor returns the remediation hint carried by err, or a generic one for
// errors that did not originate in khat.
func HintFor(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Hint != "" {
		return e.Hint
	}
	return "Run `khat --help` for usage."
}
