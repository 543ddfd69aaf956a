package ast

import (
	"strconv"

	"gqlgrammar/internal/text"
)

// TypeKind discriminates the variants of Type.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeNamed
	TypeList
	TypeNonNull
)

func (k TypeKind) String() string {
	switch k {
	case TypeNamed:
		return "Named"
	case TypeList:
		return "List"
	case TypeNonNull:
		return "NonNull"
	case TypeInvalid:
		return "Invalid"
	default:
		return "TypeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Type is a GraphQL type reference: a named type, a list of a type, or a
// non-null wrapper. Wrappers own exactly one inner type.
type Type[T text.Text[T]] struct {
	kind TypeKind
	name T
	elem *Type[T]
}

func NamedType[T text.Text[T]](name T) Type[T] {
	return Type[T]{kind: TypeNamed, name: name}
}

func ListType[T text.Text[T]](elem Type[T]) Type[T] {
	return Type[T]{kind: TypeList, elem: &elem}
}

// NonNullType wraps elem. The parser never wraps a non-null type twice, but
// programmatic construction is not checked.
func NonNullType[T text.Text[T]](elem Type[T]) Type[T] {
	return Type[T]{kind: TypeNonNull, elem: &elem}
}

func (t Type[T]) Kind() TypeKind { return t.kind }

// Name returns the name of a named type.
func (t Type[T]) Name() (T, bool) {
	return t.name, t.kind == TypeNamed
}

// Elem returns the wrapped type of a list or non-null type.
func (t Type[T]) Elem() (Type[T], bool) {
	if t.elem == nil {
		return Type[T]{}, false
	}
	return *t.elem, true
}

// Innermost returns the name under all wrappers.
func (t Type[T]) Innermost() T {
	for t.elem != nil {
		t = *t.elem
	}
	return t.name
}

func (t Type[T]) IsNonNull() bool { return t.kind == TypeNonNull }

// String renders t in GraphQL syntax, e.g. [String!]!.
func (t Type[T]) String() string {
	switch t.kind {
	case TypeNamed:
		return string(t.name)
	case TypeList:
		return "[" + t.elem.String() + "]"
	case TypeNonNull:
		return t.elem.String() + "!"
	default:
		return "<invalid>"
	}
}
