package ast

import (
	"cmp"
	"iter"
	"slices"

	"gqlgrammar/internal/text"
)

// Field is one entry of an Object.
type Field[T text.Text[T]] struct {
	Name  T
	Value Value[T]
}

// Object maps field names to values. Keys are unique and kept in
// lexicographic order, not insertion order.
type Object[T text.Text[T]] struct {
	fields []Field[T]
}

// NewObject builds an object from fields in order; a repeated name replaces
// the earlier entry.
func NewObject[T text.Text[T]](fields ...Field[T]) Object[T] {
	var o Object[T]
	for _, f := range fields {
		o.put(f.Name, f.Value)
	}
	return o
}

// Set stores v under name, replacing any existing entry. The fields are
// copied first, so objects sharing storage with o are left untouched.
func (o *Object[T]) Set(name T, v Value[T]) {
	o.fields = slices.Clone(o.fields)
	o.put(name, v)
}

// put writes in place; o must own its fields.
func (o *Object[T]) put(name T, v Value[T]) {
	i, found := o.search(name)
	if found {
		o.fields[i].Value = v
		return
	}
	o.fields = slices.Insert(o.fields, i, Field[T]{Name: name, Value: v})
}

func (o Object[T]) search(name T) (int, bool) {
	return slices.BinarySearchFunc(o.fields, name, func(f Field[T], n T) int {
		return cmp.Compare(f.Name, n)
	})
}

// Get returns the value stored under name.
func (o Object[T]) Get(name T) (Value[T], bool) {
	i, found := o.search(name)
	if !found {
		return Value[T]{}, false
	}
	return o.fields[i].Value, true
}

func (o Object[T]) Len() int { return len(o.fields) }

// Keys returns the field names in key order.
func (o Object[T]) Keys() []T {
	keys := make([]T, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Name
	}
	return keys
}

// Fields returns a copy of the entries in key order.
func (o Object[T]) Fields() []Field[T] {
	return slices.Clone(o.fields)
}

// All iterates the entries in key order.
func (o Object[T]) All() iter.Seq2[T, Value[T]] {
	return func(yield func(T, Value[T]) bool) {
		for _, f := range o.fields {
			if !yield(f.Name, f.Value) {
				return
			}
		}
	}
}
