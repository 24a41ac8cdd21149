package token

import (
	"errors"
	"testing"

	"github.com/bodmaslab/bodmas-master/internal/apperr"
)

func TestExprTokenizer_Tokenize(t *testing.T) {
	tokenizer := NewExprTokenizer()
	tokens, err := tokenizer.Tokenize("(3 + 4) * 2.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedTypes := []Type{
		LPAREN, NUMBER, OPERATOR, NUMBER, RPAREN, OPERATOR, NUMBER, EOF,
	}

	if len(tokens) != len(expectedTypes) {
		t.Fatalf("expected %d tokens, got %d", len(expectedTypes), len(tokens))
	}
	for i, want := range expectedTypes {
		if tokens[i].Type != want {
			t.Errorf("token %d: expected %s, got %s", i, want, tokens[i].Type)
		}
	}

	if tokens[6].Value != 2.5 {
		t.Errorf("expected value 2.5, got %v", tokens[6].Value)
	}
	if tokens[6].Literal != "2.5" {
		t.Errorf("expected literal \"2.5\", got %q", tokens[6].Literal)
	}
}

func TestExprTokenizer_Tokenize_Positions(t *testing.T) {
	tokenizer := NewExprTokenizer()
	tokens, err := tokenizer.Tokenize("10 / 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[0].Pos != 0 {
		t.Errorf("expected position 0, got %d", tokens[0].Pos)
	}
	if tokens[1].Pos != 3 {
		t.Errorf("expected position 3, got %d", tokens[1].Pos)
	}
	if tokens[2].Pos != 5 {
		t.Errorf("expected position 5, got %d", tokens[2].Pos)
	}
}

func TestExprTokenizer_Tokenize_LeadingDot(t *testing.T) {
	tokenizer := NewExprTokenizer()
	tokens, err := tokenizer.Tokenize(".5 + 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Type != NUMBER || tokens[0].Value != 0.5 {
		t.Errorf("expected NUMBER 0.5, got %s %v", tokens[0].Type, tokens[0].Value)
	}
}

func TestExprTokenizer_Tokenize_InvalidCharacter(t *testing.T) {
	tokenizer := NewExprTokenizer()
	_, err := tokenizer.Tokenize("3 + x")
	if err == nil {
		t.Fatal("expected error for invalid character")
	}

	var se *apperr.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %T", err)
	}
}

func TestExprTokenizer_Tokenize_MalformedNumber(t *testing.T) {
	tokenizer := NewExprTokenizer()
	_, err := tokenizer.Tokenize("1.2.3 + 4")
	if err == nil {
		t.Fatal("expected error for malformed number")
	}

	var se *apperr.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %T", err)
	}
}

func TestExprTokenizer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "3 + 4 * 2", false},
		{"parenthesized", "(3 + 4) * 2", false},
		{"nested", "((1 + 2) * 3) - 4", false},
		{"single number", "42", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"adjacent operators", "3 + * 2", true},
		{"unclosed parenthesis", "(2 + 3", true},
		{"unexpected closing", "2 + 3)", true},
		{"empty parentheses", "3 + ()", true},
		{"leading operator", "* 2 + 3", true},
		{"leading minus", "-3 + 2", true},
		{"trailing operator", "3 +", true},
		{"implicit multiplication", "2(3 + 4)", true},
		{"adjacent numbers", "3 4", true},
		{"adjacent groups", "(1 + 2)(3 + 4)", true},
		{"dangling operator in group", "(3 +) * 2", true},
	}

	tokenizer := NewExprTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenizer.Tokenize(tt.input)
			if err == nil {
				err = tokenizer.Validate(tokens)
			}

			if tt.wantErr && err == nil {
				t.Errorf("expected error for %q, got none", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.input, err)
			}
			if tt.wantErr {
				var se *apperr.SyntaxError
				if !errors.As(err, &se) {
					t.Errorf("expected SyntaxError for %q, got %T", tt.input, err)
				}
			}
		})
	}
}
