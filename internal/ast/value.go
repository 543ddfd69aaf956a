package ast

import (
	"strconv"
	"strings"

	"gqlgrammar/internal/text"
)

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueVariable
	ValueBigInt
	ValueInt
	ValueFloat
	ValueString
	ValueBoolean
	ValueNull
	ValueEnum
	ValueList
	ValueObject
)

var valueKindNames = [...]string{
	ValueInvalid:  "Invalid",
	ValueVariable: "Variable",
	ValueBigInt:   "BigInt",
	ValueInt:      "Int",
	ValueFloat:    "Float",
	ValueString:   "String",
	ValueBoolean:  "Boolean",
	ValueNull:     "Null",
	ValueEnum:     "Enum",
	ValueList:     "List",
	ValueObject:   "Object",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a GraphQL input value. Exactly one variant is active, selected by
// Kind. The zero Value has kind ValueInvalid.
type Value[T text.Text[T]] struct {
	kind ValueKind
	str  T // variable name, decoded string or enum name
	num  Number
	big  BigNumber
	f    float64
	b    bool
	list []Value[T]
	obj  Object[T]
}

// VariableValue takes the name without the '$' sigil.
func VariableValue[T text.Text[T]](name T) Value[T] {
	return Value[T]{kind: ValueVariable, str: name}
}

// IntValue, BigIntValue and FloatValue wrap decoded numeric literals.
func IntValue[T text.Text[T]](n Number) Value[T] {
	return Value[T]{kind: ValueInt, num: n}
}

func BigIntValue[T text.Text[T]](n BigNumber) Value[T] {
	return Value[T]{kind: ValueBigInt, big: n}
}

func FloatValue[T text.Text[T]](f float64) Value[T] {
	return Value[T]{kind: ValueFloat, f: f}
}

// StringValue holds decoded text; EnumValue holds a bare name.
func StringValue[T text.Text[T]](s T) Value[T] {
	return Value[T]{kind: ValueString, str: s}
}

func BooleanValue[T text.Text[T]](b bool) Value[T] {
	return Value[T]{kind: ValueBoolean, b: b}
}

func NullValue[T text.Text[T]]() Value[T] {
	return Value[T]{kind: ValueNull}
}

func EnumValue[T text.Text[T]](name T) Value[T] {
	return Value[T]{kind: ValueEnum, str: name}
}

// ListValue takes ownership of items.
func ListValue[T text.Text[T]](items []Value[T]) Value[T] {
	return Value[T]{kind: ValueList, list: items}
}

// ObjectValue wraps obj; later Set calls on obj do not affect the value.
func ObjectValue[T text.Text[T]](obj Object[T]) Value[T] {
	return Value[T]{kind: ValueObject, obj: obj}
}

// Kind reports the active variant.
func (v Value[T]) Kind() ValueKind { return v.kind }

// Variable returns the variable name without the '$' sigil.
func (v Value[T]) Variable() (T, bool) {
	return v.str, v.kind == ValueVariable
}

// Int, BigInt, Float and Bool return the payload of the matching kind.
func (v Value[T]) Int() (Number, bool) {
	return v.num, v.kind == ValueInt
}

func (v Value[T]) BigInt() (BigNumber, bool) {
	return v.big, v.kind == ValueBigInt
}

func (v Value[T]) Float() (float64, bool) {
	return v.f, v.kind == ValueFloat
}

// Str returns the decoded string of a ValueString.
func (v Value[T]) Str() (T, bool) {
	return v.str, v.kind == ValueString
}

func (v Value[T]) Bool() (value, ok bool) {
	return v.b, v.kind == ValueBoolean
}

func (v Value[T]) IsNull() bool { return v.kind == ValueNull }

// Enum returns the name of an enum value.
func (v Value[T]) Enum() (T, bool) {
	return v.str, v.kind == ValueEnum
}

// List returns the items of a list value. The slice must not be modified.
func (v Value[T]) List() ([]Value[T], bool) {
	return v.list, v.kind == ValueList
}

// Object returns the fields of an object value. Set on the result copies
// before writing, so the tree is left unchanged.
func (v Value[T]) Object() (Object[T], bool) {
	return v.obj, v.kind == ValueObject
}

// String renders v in GraphQL-like syntax for debugging.
func (v Value[T]) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value[T]) write(sb *strings.Builder) {
	switch v.kind {
	case ValueVariable:
		sb.WriteByte('$')
		sb.WriteString(string(v.str))
	case ValueInt:
		sb.WriteString(v.num.String())
	case ValueBigInt:
		sb.WriteString(v.big.String())
	case ValueFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case ValueString:
		sb.WriteString(strconv.Quote(string(v.str)))
	case ValueBoolean:
		sb.WriteString(strconv.FormatBool(v.b))
	case ValueNull:
		sb.WriteString("null")
	case ValueEnum:
		sb.WriteString(string(v.str))
	case ValueList:
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case ValueObject:
		sb.WriteByte('{')
		for i, f := range v.obj.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(string(f.Name))
			sb.WriteString(": ")
			f.Value.write(sb)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("<invalid>")
	}
}
