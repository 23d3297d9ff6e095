package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/govalue/cmd"
	"github.com/leonardinius/govalue/internal/literrors"
)

func runApp(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := cmd.NewValueApp(cmd.WithStdout(&stdout), cmd.WithStderr(&stderr), cmd.WithColor(false))
	code := app.Main(args)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.val")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		code     int
		expected string
		err      string
	}{
		{
			name:     "seq",
			input:    "[1, 2u8, \"x\"]\n",
			expected: "[1, 2u8, \"x\"]\nvalue.Seq{value.I32(1), value.U8(2), value.String(\"x\")}\n",
		},
		{
			name:     "bytes",
			input:    "[[7]]",
			expected: "[[0x07]]\nvalue.Bytes{0x07}\n",
		},
		{
			name:     "map",
			input:    `{"b": null, "a": 'c'}`,
			expected: "{\"a\": 'c', \"b\": null}\nvalue.NewMap(value.Entry{Key: value.String(\"a\"), Value: value.Char('c')}, value.Entry{Key: value.String(\"b\"), Value: value.Unit{}})\n",
		},
		{
			name:  "parse error",
			input: `{"a":}`,
			code:  64,
			err:   "ERROR [line 1] parse error at '}': missing value.\n",
		},
		{
			name:  "scan error",
			input: "\n\n#",
			code:  64,
			err:   "ERROR [line 3] syntax error: unexpected character. '#'\n",
		},
		{
			name:  "unbound placeholder",
			input: `[$1]`,
			code:  64,
			err:   "ERROR [line 1] parse error at '$1': argument index out of range: $1 with 0 arguments.\n",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			code, stdout, stderr := runApp(tt, writeFile(tt, tc.input))
			assert.Equal(tt, tc.code, code)
			assert.Equal(tt, tc.expected, stdout)
			assert.Equal(tt, tc.err, stderr)
		})
	}
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runApp(t, filepath.Join(t.TempDir(), "absent.val"))
	assert.Equal(t, 64, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "ERROR open ")
}

func TestUsage(t *testing.T) {
	t.Parallel()

	code, _, stderr := runApp(t, "a", "b")
	assert.Equal(t, 64, code)
	assert.Equal(t, "ERROR Usage: govalue [file]\n", stderr)
}

func TestColoredOutput(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	app := cmd.NewValueApp(cmd.WithStdout(&stdout), cmd.WithStderr(&stderr), cmd.WithColor(true))
	code := app.Main([]string{writeFile(t, `true`)})

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "\x1b[36mtrue")
	assert.Contains(t, stdout.String(), "value.Bool(true)")
}

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) ReportError(err error) {
	r.errs = append(r.errs, err)
}

func TestCustomErrorReporter(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	reporter := &recordingReporter{}
	app := cmd.NewValueApp(cmd.WithStdout(&stdout), cmd.WithStderr(&stderr), cmd.WithErrorReporter(reporter))
	code := app.Main([]string{writeFile(t, `[1,`)})

	assert.Equal(t, 64, code)
	assert.Empty(t, stderr.String())
	require.Len(t, reporter.errs, 1)
	assert.ErrorIs(t, reporter.errs[0], literrors.ErrParseExpectedRightBracket)
}
