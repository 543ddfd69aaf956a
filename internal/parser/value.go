package parser

import (
	"gqlgrammar/internal/ast"
	"gqlgrammar/internal/literal"
	"gqlgrammar/internal/text"
	"gqlgrammar/internal/token"
)

// Value parses an input value where variables are allowed: a literal, an
// enum name, $variable, a list or an object.
func Value[T text.Text[T]](s *Stream) (ast.Value[T], error) {
	return attempt(s, func(s *Stream) (ast.Value[T], error) {
		return value[T](s, true)
	})
}

// DefaultValue parses a constant value. There is no production for '$', so a
// variable is an unexpected token.
func DefaultValue[T text.Text[T]](s *Stream) (ast.Value[T], error) {
	return attempt(s, func(s *Stream) (ast.Value[T], error) {
		return value[T](s, false)
	})
}

func value[T text.Text[T]](s *Stream, vars bool) (ast.Value[T], error) {
	alts := make([]production[ast.Value[T]], 0, 4)
	alts = append(alts, plainValue[T])
	if vars {
		alts = append(alts, variable[T])
	}
	alts = append(alts,
		func(s *Stream) (ast.Value[T], error) { return list[T](s, vars) },
		func(s *Stream) (ast.Value[T], error) { return object[T](s, vars) },
	)
	return choice(s, "value", alts...)
}

// plainValue holds the non-recursive alternatives shared by Value and
// DefaultValue. Keywords come before enum names so true/false/null are never
// enums.
func plainValue[T text.Text[T]](s *Stream) (ast.Value[T], error) {
	return choice(s, "value",
		keywordValue[T],
		enumValue[T],
		literalValue(token.IntValue, func(tok token.Token) (ast.Value[T], error) {
			n, err := literal.ParseInt(tok.Text)
			return ast.IntValue[T](n), err
		}),
		literalValue(token.FloatValue, func(tok token.Token) (ast.Value[T], error) {
			f, err := literal.ParseFloat(tok.Text)
			return ast.FloatValue[T](f), err
		}),
		literalValue(token.BigIntValue, func(tok token.Token) (ast.Value[T], error) {
			n, err := literal.ParseBigInt(tok.Text)
			return ast.BigIntValue[T](n), err
		}),
		literalValue(token.StringValue, func(tok token.Token) (ast.Value[T], error) {
			str, err := literal.Unquote(tok.Text)
			return ast.StringValue(text.Make[T](str)), err
		}),
		literalValue(token.BlockString, func(tok token.Token) (ast.Value[T], error) {
			str, err := literal.UnquoteBlock(tok.Text)
			return ast.StringValue(text.Make[T](str)), err
		}),
	)
}

func keywordValue[T text.Text[T]](s *Stream) (ast.Value[T], error) {
	tok := s.Peek()
	if tok.Kind == token.Name {
		switch tok.Text {
		case "true", "false":
			s.Next()
			return ast.BooleanValue[T](tok.Text == "true"), nil
		case "null":
			s.Next()
			return ast.NullValue[T](), nil
		}
	}
	return ast.Value[T]{}, s.unexpected("'true', 'false' or 'null'")
}

func enumValue[T text.Text[T]](s *Stream) (ast.Value[T], error) {
	tok, err := s.expect(token.Name, "enum value")
	if err != nil {
		return ast.Value[T]{}, err
	}
	return ast.EnumValue(text.Make[T](tok.Text)), nil
}

// literalValue matches one token of kind k and decodes it. A decode failure
// is committed: the token kind already selected this alternative.
func literalValue[T text.Text[T]](k token.Kind, decode func(token.Token) (ast.Value[T], error)) production[ast.Value[T]] {
	return func(s *Stream) (ast.Value[T], error) {
		at := s.Pos()
		tok, err := s.expect(k, k.Describe())
		if err != nil {
			return ast.Value[T]{}, err
		}
		v, err := decode(tok)
		if err != nil {
			return ast.Value[T]{}, badLiteral(tok, at, err)
		}
		return v, nil
	}
}

func variable[T text.Text[T]](s *Stream) (ast.Value[T], error) {
	if _, err := s.expect(token.Dollar, "'$'"); err != nil {
		return ast.Value[T]{}, err
	}
	name, err := s.expect(token.Name, "variable name")
	if err != nil {
		return ast.Value[T]{}, err
	}
	return ast.VariableValue(text.Make[T](name.Text)), nil
}

func list[T text.Text[T]](s *Stream, vars bool) (ast.Value[T], error) {
	if _, err := s.expect(token.LBracket, "'['"); err != nil {
		return ast.Value[T]{}, err
	}
	if err := s.enter(); err != nil {
		return ast.Value[T]{}, err
	}
	defer s.leave()

	items := []ast.Value[T]{}
	for !s.at(token.RBracket) {
		if s.AtEOF() {
			return ast.Value[T]{}, s.unexpected("']'")
		}
		item, err := value[T](s, vars)
		if err != nil {
			return ast.Value[T]{}, err
		}
		items = append(items, item)
	}
	s.Next()
	return ast.ListValue(items), nil
}

func object[T text.Text[T]](s *Stream, vars bool) (ast.Value[T], error) {
	if _, err := s.expect(token.LBrace, "'{'"); err != nil {
		return ast.Value[T]{}, err
	}
	if err := s.enter(); err != nil {
		return ast.Value[T]{}, err
	}
	defer s.leave()

	var fields []ast.Field[T]
	for !s.at(token.RBrace) {
		name, err := s.expect(token.Name, "object field name or '}'")
		if err != nil {
			return ast.Value[T]{}, err
		}
		if _, err := s.expect(token.Colon, "':'"); err != nil {
			return ast.Value[T]{}, err
		}
		v, err := value[T](s, vars)
		if err != nil {
			return ast.Value[T]{}, err
		}
		fields = append(fields, ast.Field[T]{Name: text.Make[T](name.Text), Value: v})
	}
	s.Next()
	return ast.ObjectValue(ast.NewObject(fields...)), nil
}
