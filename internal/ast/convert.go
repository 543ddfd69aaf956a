package ast

import (
	"gqlgrammar/internal/text"
)

// ConvertValue rebuilds v with text policy To. The input is not modified.
func ConvertValue[To text.Text[To], From text.Text[From]](v Value[From]) Value[To] {
	out := Value[To]{
		kind: v.kind,
		str:  text.Convert[To](v.str),
		num:  v.num,
		big:  v.big,
		f:    v.f,
		b:    v.b,
	}
	if v.list != nil {
		out.list = make([]Value[To], len(v.list))
		for i, item := range v.list {
			out.list[i] = ConvertValue[To](item)
		}
	}
	if v.obj.fields != nil {
		out.obj.fields = make([]Field[To], len(v.obj.fields))
		for i, f := range v.obj.fields {
			out.obj.fields[i] = Field[To]{Name: text.Convert[To](f.Name), Value: ConvertValue[To](f.Value)}
		}
	}
	return out
}

// ConvertType rebuilds t with text policy To.
func ConvertType[To text.Text[To], From text.Text[From]](t Type[From]) Type[To] {
	out := Type[To]{kind: t.kind, name: text.Convert[To](t.name)}
	if t.elem != nil {
		elem := ConvertType[To](*t.elem)
		out.elem = &elem
	}
	return out
}

// ConvertArguments rebuilds args with text policy To.
func ConvertArguments[To text.Text[To], From text.Text[From]](args []Argument[From]) []Argument[To] {
	if args == nil {
		return nil
	}
	out := make([]Argument[To], len(args))
	for i, a := range args {
		out[i] = Argument[To]{Name: text.Convert[To](a.Name), Value: ConvertValue[To](a.Value)}
	}
	return out
}

// ConvertDirective rebuilds d with text policy To.
func ConvertDirective[To text.Text[To], From text.Text[From]](d Directive[From]) Directive[To] {
	return Directive[To]{
		Pos:       d.Pos,
		Span:      d.Span,
		Name:      text.Convert[To](d.Name),
		Arguments: ConvertArguments[To](d.Arguments),
	}
}

// OwnValue deep-copies v into owned text so it outlives the source buffer.
func OwnValue[T text.Text[T]](v Value[T]) Value[text.Owned] {
	return ConvertValue[text.Owned](v)
}

func OwnType[T text.Text[T]](t Type[T]) Type[text.Owned] {
	return ConvertType[text.Owned](t)
}

func OwnArguments[T text.Text[T]](args []Argument[T]) []Argument[text.Owned] {
	return ConvertArguments[text.Owned](args)
}

func OwnDirective[T text.Text[T]](d Directive[T]) Directive[text.Owned] {
	return ConvertDirective[text.Owned](d)
}

// OwnDirectives deep-copies a directive list.
func OwnDirectives[T text.Text[T]](ds []Directive[T]) []Directive[text.Owned] {
	if ds == nil {
		return nil
	}
	out := make([]Directive[text.Owned], len(ds))
	for i, d := range ds {
		out[i] = OwnDirective(d)
	}
	return out
}

// EqualValues compares two values structurally, ignoring the text policy.
func EqualValues[A text.Text[A], B text.Text[B]](a Value[A], b Value[B]) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case ValueVariable, ValueString, ValueEnum:
		return string(a.str) == string(b.str)
	case ValueInt:
		return a.num == b.num
	case ValueBigInt:
		return a.big == b.big
	case ValueFloat:
		return a.f == b.f
	case ValueBoolean:
		return a.b == b.b
	case ValueList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !EqualValues(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case ValueObject:
		if len(a.obj.fields) != len(b.obj.fields) {
			return false
		}
		for i := range a.obj.fields {
			fa, fb := a.obj.fields[i], b.obj.fields[i]
			if string(fa.Name) != string(fb.Name) || !EqualValues(fa.Value, fb.Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// EqualTypes compares two types structurally, ignoring the text policy.
func EqualTypes[A text.Text[A], B text.Text[B]](a Type[A], b Type[B]) bool {
	for {
		if a.kind != b.kind {
			return false
		}
		if a.elem == nil || b.elem == nil {
			return a.elem == nil && b.elem == nil && string(a.name) == string(b.name)
		}
		a, b = *a.elem, *b.elem
	}
}

// EqualArguments compares argument lists in order.
func EqualArguments[A text.Text[A], B text.Text[B]](a []Argument[A], b []Argument[B]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if string(a[i].Name) != string(b[i].Name) || !EqualValues(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

// EqualDirectives compares directives including their positions.
func EqualDirectives[A text.Text[A], B text.Text[B]](a Directive[A], b Directive[B]) bool {
	return a.Pos == b.Pos && a.Span == b.Span &&
		string(a.Name) == string(b.Name) &&
		EqualArguments(a.Arguments, b.Arguments)
}
