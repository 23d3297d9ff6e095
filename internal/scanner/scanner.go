package scanner

import (
	"strconv"
	"strings"

	"github.com/leonardinius/govalue/internal/literrors"
	"github.com/leonardinius/govalue/internal/token"
)

// Scanner turns literal source text into tokens.
type Scanner interface {
	Scan() ([]token.Token, error)
}

var reservedKeywords = map[string]token.TokenType{
	"null":  token.NULL,
	"true":  token.TRUE,
	"false": token.FALSE,
}

type scanner struct {
	source               []rune
	tokens               []token.Token
	start, current, line int
	err                  error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0, line: 1}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	if s.err != nil {
		return nil, s.err
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.line))
	return s.tokens, nil
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '[':
		s.addToken(token.LEFT_BRACKET)
	case ']':
		s.addToken(token.RIGHT_BRACKET)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case ',':
		s.addToken(token.COMMA)
	case ':':
		s.addToken(token.COLON)
	case '-':
		s.addToken(token.MINUS)
	case '/':
		if s.match('/') {
			s.comment()
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.reportUnexpectedCharater(c)
		}
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace.
	case '"':
		s.string()
	case '`':
		s.rawString()
	case '\'':
		s.char()
	case '$':
		s.placeholder()
	default:
		if s.isDigit(c) {
			s.number(c)
		} else if s.isAlpha(c) {
			s.reservedOrIdentifier()
		} else {
			s.reportUnexpectedCharater(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *scanner) advance() rune {
	if s.source[s.current] == '\n' {
		s.line++
	}
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) match(expected rune) bool {
	if !s.isAtEnd() && expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal any) {
	s.tokens = append(s.tokens, token.NewToken(t, s.lexeme(), literal, s.line))
}

func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) blockComment() {
	depth := 1

	for !s.isAtEnd() && depth > 0 {
		if s.peek() == '*' && s.peekNext() == '/' {
			depth--
			s.advance()
			s.advance()
		} else if s.peek() == '/' && s.peekNext() == '*' {
			depth++
			s.advance()
			s.advance()
		} else {
			s.advance()
		}
	}

	if depth > 0 {
		s.reportError(literrors.ErrScanUnterminatedComment)
	}
}

// quoted consumes up to the closing quote, skipping backslash escapes.
func (s *scanner) quoted(quote rune) bool {
	for !s.isAtEnd() && s.peek() != quote && s.peek() != '\n' {
		if s.advance() == '\\' && !s.isAtEnd() {
			s.advance()
		}
	}

	return s.match(quote)
}

func (s *scanner) string() {
	if !s.quoted('"') {
		s.reportError(literrors.ErrScanUnterminatedString)
		return
	}

	value, err := strconv.Unquote(s.lexeme())
	if err != nil {
		s.reportErrorDetails(literrors.ErrScanInvalidEscape, s.lexeme())
		return
	}
	s.addTokenLiteral(token.STRING, value)
}

func (s *scanner) rawString() {
	for !s.isAtEnd() && s.peek() != '`' {
		s.advance()
	}

	if !s.match('`') {
		s.reportError(literrors.ErrScanUnterminatedString)
		return
	}

	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.STRING, strings.ReplaceAll(string(value), "\r", ""))
}

func (s *scanner) char() {
	if !s.quoted('\'') {
		s.reportError(literrors.ErrScanUnterminatedChar)
		return
	}

	lexeme := s.lexeme()
	value, _, tail, err := strconv.UnquoteChar(lexeme[1:len(lexeme)-1], '\'')
	if err != nil || tail != "" {
		s.reportErrorDetails(literrors.ErrScanInvalidEscape, lexeme)
		return
	}
	s.addTokenLiteral(token.CHAR, value)
}

func (s *scanner) placeholder() {
	for s.isDigit(s.peek()) {
		s.advance()
	}

	index, err := strconv.Atoi(string(s.source[s.start+1 : s.current]))
	if err != nil || index < 1 {
		s.reportErrorDetails(literrors.ErrScanInvalidPlaceholder, s.lexeme())
		return
	}
	s.addTokenLiteral(token.PLACEHOLDER, index)
}

func (s *scanner) number(first rune) {
	num := token.Number{Base: 10}

	if first == '0' {
		switch s.peek() {
		case 'x', 'X':
			num.Base = 16
		case 'o', 'O':
			num.Base = 8
		case 'b', 'B':
			num.Base = 2
		}
		if num.Base != 10 {
			s.advance()
		}
	}

	digitsStart := s.current
	if num.Base == 10 {
		digitsStart = s.start
	}
	s.digits(num.Base)

	if num.Base == 10 {
		if s.peek() == '.' && s.isDigit(s.peekNext()) {
			num.Float = true
			s.advance()
			s.digits(10)
		}

		if s.isExponent() {
			num.Float = true
			s.advance()
			if s.peek() == '+' || s.peek() == '-' {
				s.advance()
			}
			s.digits(10)
		}
	}
	num.Digits = strings.ReplaceAll(string(s.source[digitsStart:s.current]), "_", "")

	if s.isAlpha(s.peek()) {
		suffixStart := s.current
		for s.isAlphaNumeric(s.peek()) {
			s.advance()
		}
		num.Suffix = string(s.source[suffixStart:s.current])
	}

	if num.Digits == "" {
		s.reportErrorDetails(literrors.ErrScanMalformedNumber, s.lexeme())
		return
	}
	s.addTokenLiteral(token.NUMBER, num)
}

func (s *scanner) digits(base int) {
	for s.isDigitInBase(s.peek(), base) || (s.peek() == '_' && s.isDigitInBase(s.peekNext(), base)) {
		s.advance()
	}
	// A separator may also introduce the suffix, as in 1_u8.
	if s.peek() == '_' && s.isAlpha(s.peekNext()) {
		s.advance()
	}
}

func (s *scanner) isExponent() bool {
	if s.peek() != 'e' && s.peek() != 'E' {
		return false
	}
	next := s.peekNext()
	if next == '+' || next == '-' {
		if s.current+2 >= len(s.source) {
			return false
		}
		next = s.source[s.current+2]
	}
	return s.isDigit(next)
}

func (s *scanner) reservedOrIdentifier() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	tokenType := token.IDENTIFIER
	name := s.lexeme()
	if _type, ok := s.reserved(name); ok {
		tokenType = _type
	}
	s.addToken(tokenType)
}

func (s *scanner) reserved(identifier string) (tokenType token.TokenType, ok bool) {
	tokenType, ok = reservedKeywords[identifier]
	return
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isDigitInBase(c rune, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return s.isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return s.isDigit(c)
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || s.isDigit(c)
}

func (s *scanner) reportUnexpectedCharater(c rune) {
	s.err = literrors.NewScanError(s.line, literrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

func (s *scanner) reportError(err error) {
	s.err = literrors.NewScanError(s.line, err, "")
}

func (s *scanner) reportErrorDetails(err error, details string) {
	s.err = literrors.NewScanError(s.line, err, details)
}

var _ Scanner = (*scanner)(nil)
