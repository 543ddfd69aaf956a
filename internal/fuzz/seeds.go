package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16
	maxSeedBytes = 64 << 10
)

var builtinSeeds = []string{
	``,
	`null`,
	`-0`,
	`18446744073709551616`,
	`1.5e-3`,
	`"aé\n"`,
	`"""  block\n  """`,
	`[1, [2, [3]]]`,
	`{a: {b: $c}}`,
	`[Int!]!`,
	`(a: 1, b: "x")`,
	`@skip(if: true) @a`,
	`0x1`,
	`1.`,
	`"unterminated`,
	`[[[[[[[[[[`,
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".graphql", ".gql":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(b []byte, limit int) []byte {
	if len(b) > limit {
		b = b[:limit]
	}
	return append([]byte(nil), b...)
}
