package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/leonardinius/govalue/internal/literrors"
)

type appOpts struct {
	stdout   io.Writer
	stderr   io.Writer
	colored  bool
	reporter literrors.ErrReporter
}

var defaultAppOpts = appOpts{
	stdout: os.Stdout,
	stderr: os.Stderr,
}

type AppOption func(*appOpts)

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

// WithColor forces colored output on or off. By default output is colored
// only when stdout is a terminal.
func WithColor(colored bool) AppOption {
	return func(opts *appOpts) {
		opts.colored = colored
	}
}

func WithErrorReporter(r literrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = r
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	opts.colored = isTerminal(opts.stdout)
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = literrors.NewErrReporter(opts.stderr, opts.colored)
	}

	return &opts
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
