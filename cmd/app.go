package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/leonardinius/govalue/literal"
	"github.com/leonardinius/govalue/value"
)

// ValueApp reads literals and prints the tree each one builds, once in
// literal syntax and once as the equivalent Go constructor expression.
type ValueApp struct {
	err  error
	opts *appOpts

	literalColor func(a ...any) string
	goColor      func(a ...any) string
}

func NewValueApp(options ...AppOption) *ValueApp {
	opts := newAppOpts(options...)
	return &ValueApp{
		opts:         opts,
		literalColor: paint(opts.colored, color.FgCyan),
		goColor:      paint(opts.colored, color.Faint),
	}
}

func paint(colored bool, attrs ...color.Attribute) func(a ...any) string {
	if !colored {
		return fmt.Sprint
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

func (app *ValueApp) reportError(err error) {
	app.opts.reporter.ReportError(err)
	app.err = err
}

func (app *ValueApp) Main(args []string) int {

	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = fmt.Errorf("Usage: govalue [file]")
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return 64
	}

	return 0
}

func (app *ValueApp) resetError() {
	app.err = nil
}

func (app *ValueApp) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
		Stdout: app.opts.stdout,
		Stderr: app.opts.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}

		err = app.run(line)
		if err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *ValueApp) runFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return app.run(string(bytes))
}

func (app *ValueApp) run(input string) error {
	v, err := literal.Parse(input)
	if err != nil {
		return err
	}

	return app.print(v)
}

func (app *ValueApp) print(v value.Value) error {
	_, err := fmt.Fprintf(app.opts.stdout, "%s\n%s\n",
		app.literalColor(value.Format(v)),
		app.goColor(value.GoFormat(v)),
	)
	return err
}
