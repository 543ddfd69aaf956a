package text

import (
	"cmp"
	"testing"
	"unsafe"
)

func TestBorrowedSharesStorage(t *testing.T) {
	src := "query Hero"
	got := Make[Borrowed](src[6:])
	if string(got) != "Hero" {
		t.Fatalf("Make = %q", got)
	}
	if unsafe.StringData(string(got)) != unsafe.StringData(src[6:]) {
		t.Fatal("borrowed text must alias the source")
	}
}

func TestOwnedCopies(t *testing.T) {
	src := "query Hero"
	got := Make[Owned](src[6:])
	if string(got) != "Hero" {
		t.Fatalf("Make = %q", got)
	}
	if unsafe.StringData(string(got)) == unsafe.StringData(src[6:]) {
		t.Fatal("owned text must not alias the source")
	}
}

func TestOrdering(t *testing.T) {
	if cmp.Compare(Borrowed("a"), Borrowed("b")) >= 0 || Owned("b") < Owned("a") {
		t.Fatal("policies must order lexicographically")
	}
	if Convert[Owned](Borrowed("x")) != Owned("x") {
		t.Fatal("Convert must preserve content")
	}
}
