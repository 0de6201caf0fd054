package reader

import "testing"

func TestLexerBasicTokens(t *testing.T) {
	l := NewLexer(`(+ 1 -2 "a\"b" #t foo:bar [1,2] {a: 1})`)
	want := []TokenType{
		TOKEN_LPAREN, TOKEN_SYMBOL, TOKEN_INTEGER, TOKEN_INTEGER, TOKEN_STRING,
		TOKEN_BOOLEAN, TOKEN_SYMBOL, TOKEN_COLON, TOKEN_SYMBOL,
		TOKEN_LBRACKET, TOKEN_INTEGER, TOKEN_COMMA, TOKEN_INTEGER, TOKEN_RBRACKET,
		TOKEN_LBRACE, TOKEN_SYMBOL, TOKEN_COLON, TOKEN_INTEGER, TOKEN_RBRACE,
		TOKEN_RPAREN, TOKEN_EOF,
	}
	for i, wantType := range want {
		tok := l.NextToken()
		if tok.Type != wantType {
			t.Fatalf("token %d: got %v (%q), want %v", i, tok.Type, tok.Value, wantType)
		}
	}
}

func TestLexerSkipsLineComments(t *testing.T) {
	l := NewLexer("; a comment\n42")
	tok := l.NextToken()
	if tok.Type != TOKEN_INTEGER || tok.Value != "42" {
		t.Fatalf("expected INTEGER 42 after comment, got %v %q", tok.Type, tok.Value)
	}
}

func TestLexerStringEscapes(t *testing.T) {
	l := NewLexer(`"a\nb\t\"c\\d"`)
	tok := l.NextToken()
	if tok.Type != TOKEN_STRING {
		t.Fatalf("expected STRING, got %v", tok.Type)
	}
	want := "a\nb\t\"c\\d"
	if tok.Value != want {
		t.Errorf("got %q, want %q", tok.Value, want)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != TOKEN_ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %v", tok.Type)
	}
}
