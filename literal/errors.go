package literal

import "github.com/leonardinius/govalue/internal/literrors"

// Errors returned by Parse wrap one of these; test with errors.Is.
var (
	ErrUnexpectedToken    = literrors.ErrParseUnexpectedToken
	ErrMissingValue       = literrors.ErrParseMissingValue
	ErrMisplacedColon     = literrors.ErrParseMisplacedColon
	ErrCommaInsideKey     = literrors.ErrParseCommaInsideKey
	ErrExpectedColon      = literrors.ErrParseExpectedColon
	ErrExpectedExpression = literrors.ErrParseExpectedExpression
	ErrUnclosedSeq        = literrors.ErrParseExpectedRightBracket
	ErrUnclosedMap        = literrors.ErrParseExpectedRightBrace
	ErrUnclosedGroup      = literrors.ErrParseExpectedRightParen
	ErrInvalidByte        = literrors.ErrParseExpectedByte
	ErrUndefinedName      = literrors.ErrParseUndefinedName
	ErrArgumentIndex      = literrors.ErrParseArgumentIndex
	ErrOutOfRange         = literrors.ErrParseNumberOutOfRange
	ErrInvalidSuffix      = literrors.ErrParseInvalidSuffix
	ErrConversion         = literrors.ErrParseConversion

	ErrUnexpectedCharacter = literrors.ErrScanUnexpectedCharacter
	ErrUnterminatedString  = literrors.ErrScanUnterminatedString
)

// ParserError is a grammar violation located at a token.
type ParserError = literrors.ParserError

// ScannerError is a lexical error located at a source line.
type ScannerError = literrors.ScannerError
