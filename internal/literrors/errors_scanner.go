package literrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("unexpected character.")
	ErrScanUnterminatedString  = errors.New("unterminated string.")
	ErrScanUnterminatedChar    = errors.New("unterminated character literal.")
	ErrScanUnterminatedComment = errors.New("unterminated comment.")
	ErrScanInvalidEscape       = errors.New("invalid escape sequence.")
	ErrScanMalformedNumber     = errors.New("malformed number.")
	ErrScanInvalidPlaceholder  = errors.New("expect argument index after '$'.")
)

type ScannerError struct {
	line    int
	cause   error
	details string
}

func NewScanError(line int, cause error, details string) *ScannerError {
	return &ScannerError{line, cause, details}
}

// Line returns the 1-based source line of the error.
func (s *ScannerError) Line() int {
	return s.line
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[line %d] syntax error: %v%s", s.line, s.cause, details)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
