package parser

import (
	"gqlgrammar/internal/literal"
	"gqlgrammar/internal/token"
)

// StringLit parses a quoted or block string and returns its decoded text,
// as used for descriptions.
func StringLit(s *Stream) (string, error) {
	return attempt(s, func(s *Stream) (string, error) {
		return choice(s, "string",
			stringToken(token.StringValue, literal.Unquote),
			stringToken(token.BlockString, literal.UnquoteBlock),
		)
	})
}

func stringToken(k token.Kind, decode func(string) (string, error)) production[string] {
	return func(s *Stream) (string, error) {
		at := s.Pos()
		tok, err := s.expect(k, k.Describe())
		if err != nil {
			return "", err
		}
		str, err := decode(tok.Text)
		if err != nil {
			return "", badLiteral(tok, at, err)
		}
		return str, nil
	}
}
