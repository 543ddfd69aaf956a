package ast

import (
	"testing"
)

func TestTypeShape(t *testing.T) {
	ty := NonNullType(ListType(NonNullType(NamedType[B]("String"))))
	if ty.String() != "[String!]!" {
		t.Fatalf("String() = %s", ty.String())
	}
	if !ty.IsNonNull() {
		t.Fatal("outer type must be non-null")
	}
	if ty.Innermost() != "String" {
		t.Fatalf("Innermost() = %s", ty.Innermost())
	}
	list, ok := ty.Elem()
	if !ok || list.Kind() != TypeList {
		t.Fatalf("Elem() = %v, %v", list, ok)
	}
	named := NamedType[B]("ID")
	if _, ok := named.Elem(); ok {
		t.Fatal("named type has no element")
	}
	if name, ok := named.Name(); !ok || name != "ID" {
		t.Fatalf("Name() = %q, %v", name, ok)
	}
}

func TestTypeKindString(t *testing.T) {
	if TypeNonNull.String() != "NonNull" || TypeKind(9).String() != "TypeKind(9)" {
		t.Fatal("unexpected TypeKind names")
	}
}
