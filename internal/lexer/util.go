package lexer

// ===== Classifiers =====
// GraphQL names are ASCII-only, so every check works on bytes.

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isNameContinue(b byte) bool {
	return isNameStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// maxUint64Digits is math.MaxUint64 in decimal; integer literals whose
// magnitude compares greater are classified as BigIntValue.
const maxUint64Digits = "18446744073709551615"

// exceedsUint64 compares a run of decimal digits without leading zeros
// against math.MaxUint64.
func exceedsUint64(digits string) bool {
	if len(digits) != len(maxUint64Digits) {
		return len(digits) > len(maxUint64Digits)
	}
	return digits > maxUint64Digits
}
