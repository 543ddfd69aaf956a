package ast

import (
	"gqlgrammar/internal/text"
)

// Walk visits v and its nested values depth first, list items in order and
// object fields in key order. Children are skipped when visit returns false.
func Walk[T text.Text[T]](v Value[T], visit func(Value[T]) bool) {
	if !visit(v) {
		return
	}
	switch v.kind {
	case ValueList:
		for _, item := range v.list {
			Walk(item, visit)
		}
	case ValueObject:
		for _, f := range v.obj.fields {
			Walk(f.Value, visit)
		}
	}
}

// Variables returns the names of all variables referenced in v, in walk
// order, duplicates included.
func Variables[T text.Text[T]](v Value[T]) []T {
	var names []T
	Walk(v, func(n Value[T]) bool {
		if name, ok := n.Variable(); ok {
			names = append(names, name)
		}
		return true
	})
	return names
}
