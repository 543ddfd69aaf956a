package parser

import (
	"gqlgrammar/internal/ast"
	"gqlgrammar/internal/text"
	"gqlgrammar/internal/token"
)

// Type parses a type reference: Name, [Type], either followed by an
// optional '!'. The '!' binds to the type right before it, so a non-null
// type never wraps another non-null type.
func Type[T text.Text[T]](s *Stream) (ast.Type[T], error) {
	return attempt(s, typeRef[T])
}

func typeRef[T text.Text[T]](s *Stream) (ast.Type[T], error) {
	var t ast.Type[T]
	switch tok := s.Peek(); tok.Kind {
	case token.Name:
		s.Next()
		t = ast.NamedType(text.Make[T](tok.Text))
	case token.LBracket:
		inner, err := listType[T](s)
		if err != nil {
			return ast.Type[T]{}, err
		}
		t = inner
	default:
		return ast.Type[T]{}, s.unexpected("type")
	}
	if _, ok := s.eat(token.Bang); ok {
		t = ast.NonNullType(t)
	}
	return t, nil
}

func listType[T text.Text[T]](s *Stream) (ast.Type[T], error) {
	s.Next() // '['
	if err := s.enter(); err != nil {
		return ast.Type[T]{}, err
	}
	defer s.leave()

	elem, err := typeRef[T](s)
	if err != nil {
		return ast.Type[T]{}, err
	}
	if _, err := s.expect(token.RBracket, "']'"); err != nil {
		return ast.Type[T]{}, err
	}
	return ast.ListType(elem), nil
}
