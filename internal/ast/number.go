package ast

import (
	"math"
	"math/big"
	"strconv"
)

// Uint128 is an unsigned 128-bit magnitude split into two words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// Big returns u as a new big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	return u.Big().String()
}

// Number is an integer literal whose magnitude fits 64 bits.
// Narrowing to a signed value happens on request, never while parsing.
type Number struct {
	mag uint64
	neg bool
}

// NewNumber builds a Number. A negative zero is stored as zero.
func NewNumber(mag uint64, neg bool) Number {
	return Number{mag: mag, neg: neg && mag != 0}
}

// Uint64 returns the magnitude.
func (n Number) Uint64() uint64 { return n.mag }

// Negative reports whether the literal carried a minus sign.
func (n Number) Negative() bool { return n.neg }

// Int64 narrows to int64; ok is false when the value does not fit.
func (n Number) Int64() (int64, bool) {
	if n.neg {
		if n.mag > uint64(math.MaxInt64)+1 {
			return 0, false
		}
		return int64(-n.mag), true //nolint:gosec // two's complement of a checked magnitude
	}
	if n.mag > math.MaxInt64 {
		return 0, false
	}
	return int64(n.mag), true
}

func (n Number) String() string {
	if n.neg {
		return "-" + strconv.FormatUint(n.mag, 10)
	}
	return strconv.FormatUint(n.mag, 10)
}

// BigNumber is an integer literal whose magnitude needs up to 128 bits.
type BigNumber struct {
	mag Uint128
	neg bool
}

// NewBigNumber builds a BigNumber. A negative zero is stored as zero.
func NewBigNumber(mag Uint128, neg bool) BigNumber {
	return BigNumber{mag: mag, neg: neg && !mag.IsZero()}
}

// Uint128 returns the magnitude.
func (n BigNumber) Uint128() Uint128 { return n.mag }

// Negative reports whether the literal carried a minus sign.
func (n BigNumber) Negative() bool { return n.neg }

// Uint64 narrows to uint64; ok is false for negative values and for
// magnitudes of 2^64 and above.
func (n BigNumber) Uint64() (uint64, bool) {
	if n.neg || n.mag.Hi != 0 {
		return 0, false
	}
	return n.mag.Lo, true
}

// Big returns the signed value as a new big.Int.
func (n BigNumber) Big() *big.Int {
	b := n.mag.Big()
	if n.neg {
		b.Neg(b)
	}
	return b
}

func (n BigNumber) String() string {
	if n.neg {
		return "-" + n.mag.String()
	}
	return n.mag.String()
}
