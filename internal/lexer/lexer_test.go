package lexer

import (
	"testing"

	"github.com/maximvlas/flsgo/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `var x = 5;
	x = x + 10;
	print "hi" + "!";
	`

	tests := []struct {
		expectedLexeme string
		expectedType   token.Type
	}{
		{"var", token.VAR},
		{"x", token.IDENT},
		{"=", token.EQUAL},
		{"5", token.NUMBER},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.EQUAL},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.NUMBER},
		{";", token.SEMICOLON},
		{"print", token.PRINT},
		{"hi", token.STRING},
		{"+", token.PLUS},
		{"!", token.STRING},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `and else false fun if nil or print return true var while`

	tests := []token.Type{
		token.AND, token.ELSE, token.FALSE, token.FUN, token.IF, token.NIL,
		token.OR, token.PRINT, token.RETURN, token.TRUE, token.VAR, token.WHILE,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected=%s, got=%s", i, want, tok.Type)
		}
	}
}

func TestLineTracking(t *testing.T) {
	input := "var a = 1;\nvar b = 2;\n"
	l := New(input)

	var lastLine int
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		lastLine = tok.Line
	}
	if lastLine != 2 {
		t.Fatalf("expected final token on line 2, got %d", lastLine)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "// a comment\nvar x = 1; // trailing\n"
	l := New(input)
	tokens := l.ScanTokens()

	if len(tokens) != 6 { // var x = 1 ; EOF
		t.Fatalf("expected 6 tokens, got %d: %+v", len(tokens), tokens)
	}
}

func TestUnterminatedStringReportsError(t *testing.T) {
	l := New(`"unterminated`)
	l.ScanTokens()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexer error, got %d", len(l.Errors()))
	}
}
