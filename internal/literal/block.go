package literal

import (
	"strings"
	"unicode"
)

const blockQuote = `"""`

// UnquoteBlock decodes a block string token, delimiters included.
//
// The first line is trimmed and kept when non-blank. Later lines lose the
// common indentation of the non-blank lines after the first and have \"""
// unescaped. Every emitted line ends in '\n'. Trailing blank lines are
// dropped.
func UnquoteBlock(raw string) (string, error) {
	if len(raw) < 2*len(blockQuote) || !strings.HasPrefix(raw, blockQuote) || !strings.HasSuffix(raw, blockQuote) {
		return "", errorf(0, len(raw), "block string must be enclosed in %s", blockQuote)
	}
	lines := splitLines(raw[len(blockQuote) : len(raw)-len(blockQuote)])
	if len(lines) == 0 {
		return "", nil
	}
	indent := commonIndent(lines[1:])

	var sb strings.Builder
	sb.Grow(len(raw))
	if first := strings.TrimSpace(lines[0]); first != "" {
		sb.WriteString(first)
		sb.WriteByte('\n')
	}

	rest := lines[1:]
	for len(rest) > 0 && isBlank(rest[len(rest)-1]) {
		rest = rest[:len(rest)-1]
	}
	for _, line := range rest {
		if len(line) > indent {
			sb.WriteString(strings.ReplaceAll(line[indent:], `\"""`, blockQuote))
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// splitLines splits on '\n', drops a '\r' before it and yields no empty
// final line when s ends with a newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// commonIndent is the smallest leading-whitespace width among non-blank
// lines, or 0 when every line is blank.
func commonIndent(lines []string) int {
	indent := -1
	for _, line := range lines {
		rest := strings.TrimLeftFunc(line, unicode.IsSpace)
		if rest == "" {
			continue
		}
		if w := len(line) - len(rest); indent < 0 || w < indent {
			indent = w
		}
	}
	return max(indent, 0)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
