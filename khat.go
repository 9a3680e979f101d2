package khat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
)

type Options struct {
	Path      string
	FullRev   bool
	LineRev   bool
	CharsRev  bool
	Code      string
	Clipboard bool
	Copy      bool
	Pager     bool
}

type App struct {
	opts   *Options
	cfg    *Config
	source *SourceProvider
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	pager  func(ctx context.Context, title, content string) error
}

type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

func (e *DetailedError) Unwrap() error { return e.Err }

func NewApp(opts *Options, cfg *Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = newLogger(io.Discard, false)
	}
	a := &App{
		opts:   opts,
		cfg:    cfg,
		source: NewSourceProvider(),
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	a.pager = func(ctx context.Context, title, content string) error {
		return runPager(ctx, title, content, a.pagerInput(), a.stdout)
	}
	return a
}

// Execute loads the selected source and returns it transformed. Nothing is
// loaded when the reversal flags conflict.
func (a *App) Execute() (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()

	mode, err := a.mode()
	if err != nil {
		return "", err
	}

	f := NewFile()
	if a.opts.Path != "" {
		f.SetPath(a.opts.Path)
	}

	src := a.source.Describe(f, a.opts.Clipboard)
	if err := a.source.Load(f, a.opts.Clipboard); err != nil {
		a.logger.Debug("load failed", "source", src, "error", err)
		return "", err
	}

	content, err := f.Content()
	if err != nil {
		return "", err
	}
	a.logger.Debug("loaded", "source", src, "bytes", len(content))

	if a.opts.Code != "" {
		content, err = CodeOnly(content, a.opts.Code)
		if err != nil {
			return "", fmt.Errorf("extract code blocks: %w", err)
		}
		a.logger.Debug("extracted code blocks", "bytes", len(content))
	}

	a.logger.Debug("transform", "mode", mode)
	return Apply(content, mode), nil
}

// Run executes and emits the result to stdout, the clipboard or the pager.
func (a *App) Run(ctx context.Context) error {
	out, err := a.Execute()
	if err != nil {
		return err
	}

	if a.opts.Copy || a.cfg.Copy {
		if err := a.source.Copy(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.logger.Debug("copied to clipboard", "bytes", len(out))
	}

	if a.opts.Pager || a.cfg.Pager {
		title := a.source.Describe(FromPath(a.opts.Path), a.opts.Clipboard)
		return a.pager(ctx, title, out)
	}

	_, err = fmt.Fprintln(a.stdout, out)
	return err
}

// pagerInput is nil when stdin already carried the content, so the pager
// reads keys from the terminal instead.
func (a *App) pagerInput() io.Reader {
	if a.opts.Path == StdinPath && !a.opts.Clipboard {
		return nil
	}
	return a.stdin
}

func (a *App) mode() (Mode, error) {
	mode, err := ResolveMode(a.opts.FullRev, a.opts.LineRev, a.opts.CharsRev)
	if err != nil {
		return mode, err
	}
	if a.opts.FullRev || a.opts.LineRev || a.opts.CharsRev {
		return mode, nil
	}
	return a.cfg.DefaultMode()
}
