package source

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func removeBOM(content []byte) ([]byte, bool) {
	return bytes.CutPrefix(content, utf8BOM)
}

// normalizeCRLF rewrites every \r\n pair to \n. Lone \r is kept; it is
// still a line terminator for the lexer and the line index.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")), true
}

// buildLineIndex records the offset of every \n and every lone \r.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32+1)
	for i, b := range content {
		switch {
		case b == '\n':
		case b == '\r' && (i+1 == len(content) || content[i+1] != '\n'):
		default:
			continue
		}
		out = append(out, uint32(i)) // #nosec G115 -- Add rejects content over 4 GiB
	}
	return out
}

// toLineCol maps a byte offset to its position. A terminator belongs to the
// line it ends.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	line, _ := slices.BinarySearch(lineIdx, off)
	lineStart := uint32(0)
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1} // #nosec G115 -- line <= len(lineIdx)
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// relativePath falls back to the absolute path when p lies outside base.
func relativePath(p, base string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
