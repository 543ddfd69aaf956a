package ast

import (
	"strings"

	"gqlgrammar/internal/source"
	"gqlgrammar/internal/text"
)

// Argument is one name: value pair. Argument lists keep source order and
// may hold repeated names.
type Argument[T text.Text[T]] struct {
	Name  T
	Value Value[T]
}

// Directive is an @name(args) annotation. Pos is the span of the '@' token;
// Span covers the whole directive.
type Directive[T text.Text[T]] struct {
	Pos       source.Span
	Span      source.Span
	Name      T
	Arguments []Argument[T]
}

func (d Directive[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('@')
	sb.WriteString(string(d.Name))
	sb.WriteString(FormatArguments(d.Arguments))
	return sb.String()
}

// FormatArguments renders args as (a: 1, b: 2), or "" when empty.
func FormatArguments[T text.Text[T]](args []Argument[T]) string {
	if len(args) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(a.Name))
		sb.WriteString(": ")
		a.Value.write(&sb)
	}
	sb.WriteByte(')')
	return sb.String()
}
