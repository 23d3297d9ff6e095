package token

import "fmt"

type TokenType int

const (
	// Single-character tokens.
	LEFT_BRACKET TokenType = iota
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_PAREN
	RIGHT_PAREN
	COMMA
	COLON
	MINUS

	// Literals.
	NUMBER
	STRING
	CHAR
	IDENTIFIER
	PLACEHOLDER

	// Keywords.
	NULL
	TRUE
	FALSE

	EOF
)

var tokenTypeNames = [...]string{
	LEFT_BRACKET:  "LEFT_BRACKET",
	RIGHT_BRACKET: "RIGHT_BRACKET",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	COMMA:         "COMMA",
	COLON:         "COLON",
	MINUS:         "MINUS",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	CHAR:          "CHAR",
	IDENTIFIER:    "IDENTIFIER",
	PLACEHOLDER:   "PLACEHOLDER",
	NULL:          "NULL",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	EOF:           "EOF",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var _ fmt.Stringer = TokenType(0)
