package literrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonardinius/govalue/internal/token"
)

var (
	ErrParseUnexpectedToken      = errors.New("unexpected token.")
	ErrParseMissingValue         = errors.New("missing value.")
	ErrParseMisplacedColon       = errors.New("misplaced colon.")
	ErrParseCommaInsideKey       = errors.New("comma inside key.")
	ErrParseExpectedColon        = errors.New("expect ':' after key.")
	ErrParseExpectedExpression   = errors.New("expected expression.")
	ErrParseExpectedRightBracket = errors.New("expect ']' after elements.")
	ErrParseExpectedRightBrace   = errors.New("expect '}' after entries.")
	ErrParseExpectedRightParen   = errors.New("expected ')' after expression.")
	ErrParseExpectedByte         = errors.New("expect byte value.")
	ErrParseUndefinedName        = errors.New("undefined name")
	ErrParseArgumentIndex        = errors.New("argument index out of range")
	ErrParseNumberOutOfRange     = errors.New("literal out of range")
	ErrParseInvalidSuffix        = errors.New("invalid literal suffix")
	ErrParseNegatedNonNumber     = errors.New("only numbers can be negated.")
	ErrParseConversion           = errors.New("cannot convert to value")
	ErrParseUnsignedNegation     = errors.New("unsigned literal cannot be negated.")
	ErrParseFloatIntegerSuffix   = errors.New("float literal with integer suffix.")
)

// ErrParseUndefinedNameError lists the names that are defined, if any.
func ErrParseUndefinedNameError(name string, defined ...string) error {
	if len(defined) == 0 {
		return fmt.Errorf("%w '%s'.", ErrParseUndefinedName, name)
	}
	return fmt.Errorf("%w '%s', defined: %s.", ErrParseUndefinedName, name, strings.Join(defined, ", "))
}

func ErrParseArgumentIndexError(index, count int) error {
	return fmt.Errorf("%w: $%d with %d arguments.", ErrParseArgumentIndex, index, count)
}

func ErrParseNumberOutOfRangeError(kind string) error {
	return fmt.Errorf("%w for %s.", ErrParseNumberOutOfRange, kind)
}

func ErrParseInvalidSuffixError(suffix string) error {
	return fmt.Errorf("%w '%s'.", ErrParseInvalidSuffix, suffix)
}

func ErrParseConversionError(cause error) error {
	return fmt.Errorf("%w: %w", ErrParseConversion, cause)
}

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Line returns the 1-based source line of the offending token.
func (p *ParserError) Line() int {
	return p.tok.Line
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] parse error %s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
