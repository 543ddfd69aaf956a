package token

import "gqlgrammar/internal/source"

// TriviaKind classifies ignored source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaComma
	TriviaComment
	TriviaBOM
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComma:
		return "Comma"
	case TriviaComment:
		return "Comment"
	case TriviaBOM:
		return "BOM"
	default:
		return "Trivia(?)"
	}
}

// Trivia is a run of ignored text attached to the following token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
