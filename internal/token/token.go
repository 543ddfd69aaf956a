package token

import (
	"gqlgrammar/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// Is reports whether the token has kind k and, when text is non-empty,
// exactly that text. Is(Name, "null") matches the keyword-like name null.
func (t Token) Is(k Kind, text string) bool {
	if t.Kind != k {
		return false
	}
	return text == "" || t.Text == text
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntValue, BigIntValue, FloatValue, StringValue, BlockString:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is a punctuator.
func (t Token) IsPunct() bool {
	_, ok := punctText[t.Kind]
	return ok
}

// IsName reports whether the token is a GraphQL name.
func (t Token) IsName() bool {
	return t.Kind == Name
}

// Describe renders the token for diagnostics: punctuators and names by their
// text, literals by kind and text, EOF as "end of input".
func (t Token) Describe() string {
	switch {
	case t.Kind == EOF:
		return "end of input"
	case t.IsPunct(), t.Kind == Name:
		return "'" + t.Text + "'"
	case t.Kind == Invalid:
		return "invalid token '" + t.Text + "'"
	default:
		return t.Kind.Describe() + " " + t.Text
	}
}
