package parser

import (
	"gqlgrammar/internal/ast"
	"gqlgrammar/internal/text"
	"gqlgrammar/internal/token"
)

// Arguments parses an optional (name: value ...) list. Without a leading
// '(' it returns no arguments. Names are neither sorted nor deduplicated.
func Arguments[T text.Text[T]](s *Stream) ([]ast.Argument[T], error) {
	return attempt(s, func(s *Stream) ([]ast.Argument[T], error) {
		return arguments[T](s, true)
	})
}

// ConstArguments is Arguments with constant values only.
func ConstArguments[T text.Text[T]](s *Stream) ([]ast.Argument[T], error) {
	return attempt(s, func(s *Stream) ([]ast.Argument[T], error) {
		return arguments[T](s, false)
	})
}

// Directives parses zero or more @name(arguments). Each directive's Pos is
// the span of its '@'.
func Directives[T text.Text[T]](s *Stream) ([]ast.Directive[T], error) {
	return attempt(s, func(s *Stream) ([]ast.Directive[T], error) {
		return directives[T](s, true)
	})
}

// ConstDirectives is Directives with constant argument values.
func ConstDirectives[T text.Text[T]](s *Stream) ([]ast.Directive[T], error) {
	return attempt(s, func(s *Stream) ([]ast.Directive[T], error) {
		return directives[T](s, false)
	})
}

func arguments[T text.Text[T]](s *Stream, vars bool) ([]ast.Argument[T], error) {
	if _, ok := s.eat(token.LParen); !ok {
		return nil, nil
	}
	var args []ast.Argument[T]
	for {
		name, err := s.expect(token.Name, "argument name")
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(token.Colon, "':'"); err != nil {
			return nil, err
		}
		v, err := value[T](s, vars)
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Argument[T]{Name: text.Make[T](name.Text), Value: v})
		if _, ok := s.eat(token.RParen); ok {
			return args, nil
		}
		if !s.at(token.Name) {
			return nil, s.unexpected("argument name or ')'")
		}
	}
}

func directives[T text.Text[T]](s *Stream, vars bool) ([]ast.Directive[T], error) {
	var out []ast.Directive[T]
	for s.at(token.At) {
		at := s.Next()
		name, err := s.expect(token.Name, "directive name")
		if err != nil {
			return nil, err
		}
		args, err := arguments[T](s, vars)
		if err != nil {
			return nil, err
		}
		out = append(out, ast.Directive[T]{
			Pos:       at.Span,
			Span:      at.Span.Cover(s.prevSpan()),
			Name:      text.Make[T](name.Text),
			Arguments: args,
		})
	}
	return out, nil
}
