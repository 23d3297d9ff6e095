package literrors

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type ErrReporter interface {
	ReportError(err error)
}

type errReporter struct {
	w     io.Writer
	label func(a ...any) string
}

// NewErrReporter reports to w, highlighting the severity label when colored is set.
func NewErrReporter(w io.Writer, colored bool) *errReporter {
	label := fmt.Sprint
	if colored {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		label = c.SprintFunc()
	}
	return &errReporter{w: w, label: label}
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	fmt.Fprintf(e.w, "%s %v\n", e.label("ERROR"), err)
}

var _ ErrReporter = (*errReporter)(nil)
