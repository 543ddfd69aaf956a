package literal

import (
	"strings"
	"unicode/utf8"
)

// Unquote decodes a quoted string token, quotes included.
//
// Each \u escape is decoded on its own: two escapes forming a UTF-16
// surrogate pair are not combined, and a lone surrogate half is rejected.
func Unquote(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", errorf(0, len(raw), "string literal must be enclosed in quotes")
	}
	body := raw[1 : len(raw)-1]
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' {
			sb.WriteByte(ch)
			continue
		}
		start := i + 1 // offset in raw
		if i+1 >= len(body) {
			return "", errorf(start, 1, "unterminated escape sequence")
		}
		i++
		switch body[i] {
		case '"', '\\', '/':
			sb.WriteByte(body[i])
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, err := decodeHex4(body[i+1:], start)
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += 4
		default:
			r, _ := utf8.DecodeRuneInString(body[i:])
			return "", errorf(start, 1+utf8.RuneLen(r), "bad escaped char %q", r)
		}
	}
	return sb.String(), nil
}

// decodeHex4 reads exactly four hex digits from s. off is the raw offset of
// the backslash, used for error positions.
func decodeHex4(s string, off int) (rune, error) {
	if len(s) < 4 {
		return 0, errorf(off, 2+len(s), "\\u must have 4 characters after it, only found %q", s)
	}
	var r rune
	for j := range 4 {
		d, ok := hexDigit(s[j])
		if !ok {
			return 0, errorf(off, 6, "%q is not a valid unicode code point", s[:4])
		}
		r = r<<4 | rune(d)
	}
	if !utf8.ValidRune(r) {
		return 0, errorf(off, 6, "%q is not a valid unicode code point", s[:4])
	}
	return r, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
