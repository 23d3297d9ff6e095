package literal

import (
	"github.com/leonardinius/govalue/internal/parser"
	"github.com/leonardinius/govalue/internal/scanner"
	"github.com/leonardinius/govalue/value"
)

// Parse builds the Value described by the literal src.
//
// Either the whole literal is built or an error is returned; no partial
// tree is ever produced.
func Parse(src string, options ...Option) (value.Value, error) {
	opts := newLiteralOpts(options...)

	tokens, err := scanner.NewScanner(src).Scan()
	if err != nil {
		return nil, err
	}

	p := parser.NewParser(tokens, parser.Bindings{
		Args:    opts.args,
		Vars:    opts.vars,
		Convert: parser.Converter(opts.converter),
	})
	return p.Parse()
}

// Of is Parse with positional arguments.
func Of(src string, args ...any) (value.Value, error) {
	return Parse(src, WithArgs(args...))
}

// Must is like Parse but panics on error. It suits literals fixed at
// compile time, where a failure is a programming error.
func Must(src string, options ...Option) value.Value {
	v, err := Parse(src, options...)
	if err != nil {
		panic(err)
	}
	return v
}
