// Package reader implements the single-pass source-text-to-Value reader
// (§4.1): a lookahead scanner (lexer.go) feeding a recursive-descent parser
// that never evaluates, in the shape of a manual recursive-descent parser
// (NewParser(src) / consume-current-token-and-advance) but producing a
// homoiconic types.Value tree directly rather than a separate AST.
package reader

import (
	"strings"

	"github.com/mongoosemoo/lumisp/types"
)

// Parser turns a token stream into Value trees.
type Parser struct {
	lexer *Lexer
	buf   []Token // lookahead buffer; buf[0] is the current token
}

func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.ensure(0)
	return p
}

// ensure fills the lookahead buffer so that buf[n] is valid.
func (p *Parser) ensure(n int) {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lexer.NextToken())
	}
}

func (p *Parser) peekAt(n int) Token {
	p.ensure(n)
	return p.buf[n]
}

func (p *Parser) cur() Token { return p.peekAt(0) }

// advance consumes the current token and returns it.
func (p *Parser) advance() Token {
	p.ensure(0)
	tok := p.buf[0]
	p.buf = p.buf[1:]
	return tok
}

// AtEOF reports whether the parser has consumed every token up to end of
// input, used by Read to detect empty input and by ReadAll to know when
// every datum has been consumed.
func (p *Parser) AtEOF() bool {
	return p.cur().Type == TOKEN_EOF
}

// Read parses the first top-level datum in input. Any text after that
// datum is not read and is not checked.
func Read(input string) (types.Value, *ParseError) {
	p := NewParser(input)
	if p.AtEOF() {
		return nil, newUnterminatedError(p.cur().Position, "unexpected end of input")
	}
	return p.parseDatum()
}

// ReadAll parses every top-level datum in input, convenient for feeding a
// whole file (§6).
func ReadAll(input string) ([]types.Value, *ParseError) {
	p := NewParser(input)
	var data []types.Value
	for !p.AtEOF() {
		d, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		data = append(data, d)
	}
	return data, nil
}

// parseDatum parses one datum: atom | list | array | map | quoted (§4.1).
func (p *Parser) parseDatum() (types.Value, *ParseError) {
	tok := p.cur()
	switch tok.Type {
	case TOKEN_LPAREN:
		return p.parseList()
	case TOKEN_LBRACKET:
		return p.parseArray()
	case TOKEN_LBRACE:
		return p.parseMap()
	case TOKEN_QUOTE:
		p.advance()
		inner, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		return types.NewList(types.NewSymbol("quote"), inner), nil
	case TOKEN_STRING:
		p.advance()
		return types.NewStr(tok.Value), nil
	case TOKEN_INTEGER:
		p.advance()
		return parseIntegerToken(tok), nil
	case TOKEN_BOOLEAN:
		p.advance()
		return types.NewBool(tok.Value == "#t"), nil
	case TOKEN_SYMBOL:
		return p.parseSymbolAtom(), nil
	case TOKEN_RPAREN, TOKEN_RBRACKET, TOKEN_RBRACE:
		return nil, newParseError(tok.Position, "unexpected closing delimiter %q", tok.Value)
	case TOKEN_EOF:
		return nil, newUnterminatedError(tok.Position, "unexpected end of input")
	case TOKEN_ILLEGAL:
		if strings.Contains(tok.Value, "unterminated") {
			return nil, newUnterminatedError(tok.Position, "%s", tok.Value)
		}
		return nil, newParseError(tok.Position, "%s", tok.Value)
	default:
		return nil, newParseError(tok.Position, "unexpected token %q", tok.Value)
	}
}

func parseIntegerToken(tok Token) types.Value {
	neg := false
	s := tok.Value
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var n int64
	for i := 0; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return types.NewInt(n)
}

// parseSymbolAtom consumes a SYMBOL token and, per the `:` open question
// (§4.1, resolved in DESIGN.md), re-glues an immediately-adjacent
// `SYMBOL ':' SYMBOL` run into a single symbol so that `foo:bar` reads as
// one identifier outside of a map entry's key position. Map-entry keys are
// read with parseMapKey instead, which never reglues, so `{name: "Bob"}`
// still splits on the first `:`.
func (p *Parser) parseSymbolAtom() types.Value {
	tok := p.advance()
	name := tok.Value
	for {
		colon := p.cur()
		if colon.Type != TOKEN_COLON || colon.Position.Offset != tok.end() {
			break
		}
		next := p.peekAt(1)
		if next.Type != TOKEN_SYMBOL || next.Position.Offset != colon.end() {
			break
		}
		p.advance() // colon
		next = p.advance()
		name = name + ":" + next.Value
		tok = next
	}
	return types.NewSymbol(name)
}

func (p *Parser) parseList() (types.Value, *ParseError) {
	open := p.advance() // '('
	var elements []types.Value
	for {
		if p.cur().Type == TOKEN_EOF {
			return nil, newUnterminatedError(open.Position, "unterminated list")
		}
		if p.cur().Type == TOKEN_RPAREN {
			p.advance()
			return types.NewList(elements...), nil
		}
		d, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		elements = append(elements, d)
	}
}

// parseArray parses `[` (datum (',' datum)* ','?)? `]` (§4.1), producing a
// fresh Array handle.
func (p *Parser) parseArray() (types.Value, *ParseError) {
	open := p.advance() // '['
	var elements []types.Value
	if p.cur().Type == TOKEN_RBRACKET {
		p.advance()
		return types.NewArray(elements), nil
	}
	for {
		if p.cur().Type == TOKEN_EOF {
			return nil, newUnterminatedError(open.Position, "unterminated array literal")
		}
		d, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		elements = append(elements, d)

		switch p.cur().Type {
		case TOKEN_COMMA:
			p.advance()
			if p.cur().Type == TOKEN_RBRACKET {
				p.advance()
				return types.NewArray(elements), nil
			}
		case TOKEN_RBRACKET:
			p.advance()
			return types.NewArray(elements), nil
		case TOKEN_EOF:
			return nil, newUnterminatedError(open.Position, "unterminated array literal")
		default:
			return nil, newParseError(p.cur().Position, "expected ',' or ']' in array literal, got %q", p.cur().Value)
		}
	}
}

// parseMap parses `{` (entry (',' entry)* ','?)? `}` where entry is
// `symbol ':' datum` (§4.1), producing a fresh Map handle.
func (p *Parser) parseMap() (types.Value, *ParseError) {
	open := p.advance() // '{'
	m := types.NewMap()
	if p.cur().Type == TOKEN_RBRACE {
		p.advance()
		return m, nil
	}
	for {
		if p.cur().Type == TOKEN_EOF {
			return nil, newUnterminatedError(open.Position, "unterminated map literal")
		}
		key, err := p.parseMapKey()
		if err != nil {
			return nil, err
		}
		if p.cur().Type == TOKEN_EOF {
			return nil, newUnterminatedError(open.Position, "unterminated map literal")
		}
		if p.cur().Type != TOKEN_COLON {
			return nil, newParseError(p.cur().Position, "expected ':' in map entry, got %q", p.cur().Value)
		}
		p.advance() // ':'
		val, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		m.Set(key, val)

		switch p.cur().Type {
		case TOKEN_COMMA:
			p.advance()
			if p.cur().Type == TOKEN_RBRACE {
				p.advance()
				return m, nil
			}
		case TOKEN_RBRACE:
			p.advance()
			return m, nil
		case TOKEN_EOF:
			return nil, newUnterminatedError(open.Position, "unterminated map literal")
		default:
			return nil, newParseError(p.cur().Position, "expected ',' or '}' in map literal, got %q", p.cur().Value)
		}
	}
}

// parseMapKey reads exactly one SYMBOL token as a map-entry key, without
// the `:` reglue parseSymbolAtom performs, so the entry's own separating
// `:` is never swallowed. Any symbol token is accepted as a key (§9's map
// key grammar open question).
func (p *Parser) parseMapKey() (types.SymbolValue, *ParseError) {
	tok := p.cur()
	if tok.Type != TOKEN_SYMBOL {
		return types.SymbolValue{}, newParseError(tok.Position, "expected symbol in map entry key position, got %q", tok.Value)
	}
	p.advance()
	return types.NewSymbol(tok.Value), nil
}
