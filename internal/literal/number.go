package literal

import (
	"errors"
	"math/bits"
	"strconv"

	"gqlgrammar/internal/ast"
)

// ParseInt decodes an integer literal whose magnitude fits 64 bits.
func ParseInt(s string) (ast.Number, error) {
	digits, neg, err := splitSign(s)
	if err != nil {
		return ast.Number{}, err
	}
	var mag uint64
	for i := range len(digits) {
		d, err := digit(s, digits, i)
		if err != nil {
			return ast.Number{}, err
		}
		hi, lo := bits.Mul64(mag, 10)
		lo, carry := bits.Add64(lo, d, 0)
		if hi != 0 || carry != 0 {
			return ast.Number{}, errorf(0, len(s), "integer literal %s does not fit 64 bits", s)
		}
		mag = lo
	}
	return ast.NewNumber(mag, neg), nil
}

// ParseBigInt decodes an integer literal whose magnitude fits 128 bits.
func ParseBigInt(s string) (ast.BigNumber, error) {
	digits, neg, err := splitSign(s)
	if err != nil {
		return ast.BigNumber{}, err
	}
	var mag ast.Uint128
	for i := range len(digits) {
		d, err := digit(s, digits, i)
		if err != nil {
			return ast.BigNumber{}, err
		}
		next, ok := mulAdd128(mag, 10, d)
		if !ok {
			return ast.BigNumber{}, errorf(0, len(s), "integer literal %s does not fit 128 bits", s)
		}
		mag = next
	}
	return ast.NewBigNumber(mag, neg), nil
}

// ParseFloat decodes a float literal as a double. Magnitudes beyond the
// float64 range become ±Inf and tiny ones round to zero.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, errorf(0, len(s), "invalid float literal %q", s)
	}
	return f, nil
}

func splitSign(s string) (digits string, neg bool, err error) {
	digits = s
	if len(digits) > 0 && digits[0] == '-' {
		digits, neg = digits[1:], true
	}
	if digits == "" {
		return "", false, errorf(0, len(s), "integer literal %q has no digits", s)
	}
	return digits, neg, nil
}

func digit(s, digits string, i int) (uint64, error) {
	c := digits[i]
	if c < '0' || c > '9' {
		off := len(s) - len(digits) + i
		return 0, errorf(off, 1, "unexpected character %q in integer literal", rune(c))
	}
	return uint64(c - '0'), nil
}

// mulAdd128 returns u*m + a and whether it fits 128 bits.
func mulAdd128(u ast.Uint128, m, a uint64) (ast.Uint128, bool) {
	hiHi, hiLo := bits.Mul64(u.Hi, m)
	loHi, loLo := bits.Mul64(u.Lo, m)
	hi, carry := bits.Add64(hiLo, loHi, 0)
	if hiHi != 0 || carry != 0 {
		return ast.Uint128{}, false
	}
	lo, carry := bits.Add64(loLo, a, 0)
	hi, carry = bits.Add64(hi, 0, carry)
	if carry != 0 {
		return ast.Uint128{}, false
	}
	return ast.Uint128{Hi: hi, Lo: lo}, true
}
