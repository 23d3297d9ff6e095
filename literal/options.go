package literal

import (
	"github.com/leonardinius/govalue/convert"
	"github.com/leonardinius/govalue/value"
)

// Converter turns a bound argument that is not a native primitive into a
// Value. It may fail, which fails the whole literal.
type Converter func(x any) (value.Value, error)

type literalOpts struct {
	args      []any
	vars      map[string]any
	converter Converter
}

var defaultLiteralOpts = literalOpts{
	converter: convert.ToValue,
}

type Option func(*literalOpts)

// WithArgs binds positional arguments, referenced as $1, $2, ...
func WithArgs(args ...any) Option {
	return func(opts *literalOpts) {
		opts.args = append(opts.args, args...)
	}
}

// WithVar binds a value to a bare identifier.
func WithVar(name string, x any) Option {
	return func(opts *literalOpts) {
		if opts.vars == nil {
			opts.vars = map[string]any{}
		}
		opts.vars[name] = x
	}
}

// WithVars binds every entry of vars as if by WithVar.
func WithVars(vars map[string]any) Option {
	return func(opts *literalOpts) {
		for name, x := range vars {
			WithVar(name, x)(opts)
		}
	}
}

// WithConverter replaces convert.ToValue as the fallback conversion.
func WithConverter(c Converter) Option {
	return func(opts *literalOpts) {
		opts.converter = c
	}
}

func newLiteralOpts(options ...Option) *literalOpts {
	opts := defaultLiteralOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.converter == nil {
		opts.converter = convert.ToValue
	}

	return &opts
}
