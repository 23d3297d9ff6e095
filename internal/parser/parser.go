package parser

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/govalue/internal/literrors"
	"github.com/leonardinius/govalue/internal/token"
	"github.com/leonardinius/govalue/value"
)

var nilValue value.Value = nil

// Converter is the fallback used for bound arguments that are not native
// primitives.
type Converter func(x any) (value.Value, error)

// Bindings supplies the values referenced from a literal: positional
// arguments ($1, $2, ...) and named variables.
type Bindings struct {
	Args    []any
	Vars    map[string]any
	Convert Converter
}

type Parser interface {
	Parse() (value.Value, error)
}

type parser struct {
	tokens   []token.Token
	current  int
	err      error
	bindings Bindings
}

func NewParser(tokens []token.Token, bindings Bindings) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:   tokens,
		current:  0,
		bindings: bindings,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
//
// The whole input must be a single value. On error no value is returned.
func (p *parser) Parse() (value.Value, error) {
	v := p.value()

	if p.err == nil && !p.isAtEnd() {
		p.reportError(literrors.ErrParseUnexpectedToken)
	}

	if p.err != nil {
		return nilValue, p.err
	}
	return v, nil
}

func (p *parser) value() value.Value {
	if p.match(token.NULL) {
		return value.Null
	}
	if p.match(token.TRUE) {
		return value.Bool(true)
	}
	if p.match(token.FALSE) {
		return value.Bool(false)
	}
	if p.match(token.LEFT_BRACKET) {
		return p.array()
	}
	if p.match(token.LEFT_BRACE) {
		return p.object()
	}

	return p.expression()
}

func (p *parser) array() value.Value {
	if p.match(token.RIGHT_BRACKET) {
		return value.Seq{}
	}
	if p.isBytes() {
		return p.bytes()
	}

	elems := value.Seq{}
	for !p.isDone() {
		elems = append(elems, p.value())

		if p.match(token.COMMA) {
			if p.match(token.RIGHT_BRACKET) {
				return elems
			}
			continue
		}
		if p.match(token.RIGHT_BRACKET) {
			return elems
		}
		return p.reportCloseError(literrors.ErrParseExpectedRightBracket)
	}

	return p.reportCloseError(literrors.ErrParseExpectedRightBracket)
}

// isBytes reports whether the group opened by the previous '[' holds exactly
// one bracketed group, which is the [[b1, b2, ...]] byte blob form.
func (p *parser) isBytes() bool {
	if !p.check(token.LEFT_BRACKET) {
		return false
	}

	depth := 0
	for i := p.current; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case token.LEFT_BRACKET:
			depth++
		case token.RIGHT_BRACKET:
			depth--
			if depth == 0 {
				return p.tokens[i+1].Type == token.RIGHT_BRACKET
			}
		case token.EOF:
			return false
		}
	}
	return false
}

func (p *parser) bytes() value.Value {
	p.advance()

	blob := value.Bytes{}
	for !p.check(token.RIGHT_BRACKET) && !p.isDone() {
		tok := p.peek()
		v := p.expression()
		if p.err != nil {
			return nilValue
		}

		n, ok := value.AsUint64(v)
		if !ok || n > math.MaxUint8 {
			return p.reportTokenError(tok, literrors.ErrParseExpectedByte)
		}
		blob = append(blob, byte(n))

		if !p.match(token.COMMA) {
			break
		}
	}

	if !p.match(token.RIGHT_BRACKET) || !p.match(token.RIGHT_BRACKET) {
		return p.reportCloseError(literrors.ErrParseExpectedRightBracket)
	}
	return blob
}

func (p *parser) object() value.Value {
	var entries value.MapBuilder
	if p.match(token.RIGHT_BRACE) {
		return entries.Map()
	}

	for !p.isDone() {
		if p.check(token.COLON) {
			return p.reportError(literrors.ErrParseMisplacedColon)
		}

		key := p.value()
		if p.check(token.COMMA) {
			return p.reportError(literrors.ErrParseCommaInsideKey)
		}
		if !p.match(token.COLON) {
			if p.isAtEnd() || p.check(token.RIGHT_BRACE) {
				return p.reportError(literrors.ErrParseExpectedColon)
			}
			return p.reportError(literrors.ErrParseUnexpectedToken)
		}

		if p.isAtEnd() || p.check(token.RIGHT_BRACE) || p.check(token.COMMA) {
			return p.reportError(literrors.ErrParseMissingValue)
		}
		val := p.value()
		if p.err != nil {
			return nilValue
		}
		entries.Insert(key, val)

		if p.match(token.COMMA) {
			if p.match(token.RIGHT_BRACE) {
				return entries.Map()
			}
			continue
		}
		if p.match(token.RIGHT_BRACE) {
			return entries.Map()
		}
		return p.reportCloseError(literrors.ErrParseExpectedRightBrace)
	}

	return p.reportCloseError(literrors.ErrParseExpectedRightBrace)
}

func (p *parser) expression() value.Value {
	if p.match(token.MINUS) {
		if !p.match(token.NUMBER) {
			return p.reportError(literrors.ErrParseNegatedNonNumber)
		}
		return p.number(p.previous(), true)
	}

	if p.match(token.NUMBER) {
		return p.number(p.previous(), false)
	}

	if p.match(token.STRING) {
		return value.String(p.previous().Literal.(string))
	}

	if p.match(token.CHAR) {
		return value.Char(p.previous().Literal.(rune))
	}

	if p.match(token.PLACEHOLDER) {
		return p.placeholder(p.previous())
	}

	if p.match(token.IDENTIFIER) {
		return p.variable(p.previous())
	}

	return p.grouping()
}

func (p *parser) grouping() value.Value {
	if p.match(token.LEFT_PAREN) {
		v := p.value()
		if !p.match(token.RIGHT_PAREN) {
			return p.reportError(literrors.ErrParseExpectedRightParen)
		}
		return v
	}

	if p.isAtEnd() {
		return p.reportError(literrors.ErrParseMissingValue)
	}
	return p.reportError(literrors.ErrParseExpectedExpression)
}

var suffixKinds = map[string]value.Kind{
	"u8":    value.U8Kind,
	"u16":   value.U16Kind,
	"u32":   value.U32Kind,
	"u64":   value.U64Kind,
	"usize": value.U64Kind,
	"i8":    value.I8Kind,
	"i16":   value.I16Kind,
	"i32":   value.I32Kind,
	"i64":   value.I64Kind,
	"isize": value.I64Kind,
	"f32":   value.F32Kind,
	"f64":   value.F64Kind,
}

var kindBits = map[value.Kind]int{
	value.U8Kind:  8,
	value.U16Kind: 16,
	value.U32Kind: 32,
	value.U64Kind: 64,
	value.I8Kind:  8,
	value.I16Kind: 16,
	value.I32Kind: 32,
	value.I64Kind: 64,
	value.F32Kind: 32,
	value.F64Kind: 64,
}

// number builds the variant named by the literal's suffix. Unsuffixed
// integers are I32 and unsuffixed floats are F64.
func (p *parser) number(tok *token.Token, negative bool) value.Value {
	num := tok.Literal.(token.Number)

	kind := value.I32Kind
	if num.Float {
		kind = value.F64Kind
	}
	if num.Suffix != "" {
		k, ok := suffixKinds[num.Suffix]
		if !ok || (k.IsFloat() && num.Base != 10) {
			return p.reportTokenError(tok, literrors.ErrParseInvalidSuffixError(num.Suffix))
		}
		kind = k
	}
	if num.Float && !kind.IsFloat() {
		return p.reportTokenError(tok, literrors.ErrParseFloatIntegerSuffix)
	}

	bits := kindBits[kind]
	switch {
	case kind.IsFloat():
		f, err := strconv.ParseFloat(num.Digits, bits)
		if err != nil {
			return p.reportTokenError(tok, literrors.ErrParseNumberOutOfRangeError(kind.String()))
		}
		if negative {
			f = -f
		}
		if kind == value.F32Kind {
			return value.F32(f)
		}
		return value.F64(f)

	case kind.IsUnsigned():
		if negative {
			return p.reportTokenError(tok, literrors.ErrParseUnsignedNegation)
		}
		n, err := strconv.ParseUint(num.Digits, num.Base, bits)
		if err != nil {
			return p.reportTokenError(tok, literrors.ErrParseNumberOutOfRangeError(kind.String()))
		}
		return unsignedOf(kind, n)
	}

	n, err := strconv.ParseUint(num.Digits, num.Base, 64)
	limit := uint64(1)<<(bits-1) - 1
	if negative {
		limit++
	}
	if err != nil || n > limit {
		return p.reportTokenError(tok, literrors.ErrParseNumberOutOfRangeError(kind.String()))
	}
	i := int64(n)
	if negative {
		i = -i
	}
	return signedOf(kind, i)
}

func unsignedOf(kind value.Kind, n uint64) value.Value {
	switch kind {
	case value.U8Kind:
		return value.U8(n)
	case value.U16Kind:
		return value.U16(n)
	case value.U32Kind:
		return value.U32(n)
	}
	return value.U64(n)
}

func signedOf(kind value.Kind, n int64) value.Value {
	switch kind {
	case value.I8Kind:
		return value.I8(n)
	case value.I16Kind:
		return value.I16(n)
	case value.I32Kind:
		return value.I32(n)
	}
	return value.I64(n)
}

func (p *parser) placeholder(tok *token.Token) value.Value {
	index := tok.Literal.(int)
	if index > len(p.bindings.Args) {
		return p.reportTokenError(tok, literrors.ErrParseArgumentIndexError(index, len(p.bindings.Args)))
	}
	return p.convert(tok, p.bindings.Args[index-1])
}

func (p *parser) variable(tok *token.Token) value.Value {
	x, ok := p.bindings.Vars[tok.Lexeme]
	if !ok {
		names := maps.Keys(p.bindings.Vars)
		slices.Sort(names)
		return p.reportTokenError(tok, literrors.ErrParseUndefinedNameError(tok.Lexeme, names...))
	}
	return p.convert(tok, x)
}

// convert is the leaf rule for bound values: exact primitive types map
// directly, everything else, named types included, goes through the
// configured converter.
func (p *parser) convert(tok *token.Token, x any) value.Value {
	if x == nil {
		return value.Null
	}
	if v, ok := value.FromPrimitive(x); ok {
		return v
	}

	if p.bindings.Convert == nil {
		return p.reportTokenError(tok, literrors.ErrParseConversionError(fmt.Errorf("no converter for %T", x)))
	}
	v, err := p.bindings.Convert(x)
	if err != nil {
		return p.reportTokenError(tok, literrors.ErrParseConversionError(err))
	}
	return v
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// isAtEnd does not check for parse errors, use isDone for that.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

// reportCloseError reports a missing closing token at the end of input and
// an unexpected token anywhere else.
func (p *parser) reportCloseError(atEnd error) value.Value {
	if p.isAtEnd() {
		return p.reportError(atEnd)
	}
	return p.reportError(literrors.ErrParseUnexpectedToken)
}

func (p *parser) reportError(err error) value.Value {
	return p.reportTokenError(p.peek(), err)
}

func (p *parser) reportTokenError(tok *token.Token, err error) value.Value {
	if p.err != nil {
		return nilValue
	}
	p.err = literrors.NewParseError(tok, err)
	return nilValue
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
