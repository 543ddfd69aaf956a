package ast

import (
	"math"
	"testing"
)

func TestNumberInt64(t *testing.T) {
	tests := []struct {
		name string
		num  Number
		want int64
		ok   bool
	}{
		{"zero", NewNumber(0, false), 0, true},
		{"max", NewNumber(math.MaxInt64, false), math.MaxInt64, true},
		{"above max", NewNumber(math.MaxInt64+1, false), 0, false},
		{"uint64 max", NewNumber(math.MaxUint64, false), 0, false},
		{"negative", NewNumber(42, true), -42, true},
		{"min", NewNumber(math.MaxInt64+1, true), math.MinInt64, true},
		{"below min", NewNumber(math.MaxInt64+2, true), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.num.Int64()
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Int64() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNumberNegativeZero(t *testing.T) {
	n := NewNumber(0, true)
	if n.Negative() {
		t.Fatal("negative zero must be normalised")
	}
	if n.String() != "0" {
		t.Fatalf("String() = %q", n.String())
	}
}

func TestBigNumberNarrowing(t *testing.T) {
	tests := []struct {
		name string
		num  BigNumber
		want uint64
		ok   bool
	}{
		{"fits", NewBigNumber(Uint128{Lo: 7}, false), 7, true},
		{"two pow 64", NewBigNumber(Uint128{Hi: 1}, false), 0, false},
		{"max", NewBigNumber(Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}, false), 0, false},
		{"negative", NewBigNumber(Uint128{Lo: 7}, true), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.num.Uint64()
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Uint64() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBigNumberString(t *testing.T) {
	tests := []struct {
		num  BigNumber
		want string
	}{
		{NewBigNumber(Uint128{Hi: 1}, false), "18446744073709551616"},
		{NewBigNumber(Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}, false), "340282366920938463463374607431768211455"},
		{NewBigNumber(Uint128{Hi: 1, Lo: 1}, true), "-18446744073709551617"},
	}
	for _, tt := range tests {
		if got := tt.num.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.num.Big().String(); got != tt.want {
			t.Errorf("Big() = %s, want %s", got, tt.want)
		}
	}
}

func TestUint128Cmp(t *testing.T) {
	a := Uint128{Hi: 1, Lo: 0}
	b := Uint128{Hi: 0, Lo: math.MaxUint64}
	if a.Cmp(b) != 1 || b.Cmp(a) != -1 || a.Cmp(a) != 0 {
		t.Fatalf("unexpected ordering")
	}
}
