package fuzztests

import (
	"testing"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/lexer"
	"gqlgrammar/internal/literal"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/testkit"
	"gqlgrammar/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.graphql", clamp(input, maxFuzzInput)))

		bag := diag.NewBag(64)
		tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err := testkit.CheckTokenInvariants(tokens, file); err != nil {
			t.Fatal(err)
		}
	})
}

// FuzzLiteralDecoders feeds every string token the lexer accepts through
// the literal decoders; they may fail but must not panic.
func FuzzLiteralDecoders(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.graphql", clamp(input, maxFuzzInput)))
		for _, tok := range lexer.Tokenize(file, lexer.Options{}) {
			switch tok.Kind {
			case token.StringValue:
				_, _ = literal.Unquote(tok.Text)
			case token.BlockString:
				_, _ = literal.UnquoteBlock(tok.Text)
			case token.IntValue:
				_, _ = literal.ParseInt(tok.Text)
			case token.BigIntValue:
				_, _ = literal.ParseBigInt(tok.Text)
			case token.FloatValue:
				_, _ = literal.ParseFloat(tok.Text)
			}
		}
	})
}
