package parser

import (
	"fmt"
	"slices"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/text"
	"gqlgrammar/internal/token"
)

// Production names an entry point of the grammar.
type Production uint8

const (
	ProdValue Production = iota
	ProdDefaultValue
	ProdType
	ProdArguments
	ProdConstArguments
	ProdDirectives
	ProdConstDirectives
	ProdString
)

var productionNames = [...]string{
	ProdValue:           "value",
	ProdDefaultValue:    "default-value",
	ProdType:            "type",
	ProdArguments:       "arguments",
	ProdConstArguments:  "const-arguments",
	ProdDirectives:      "directives",
	ProdConstDirectives: "const-directives",
	ProdString:          "string",
}

func (p Production) String() string {
	if int(p) < len(productionNames) {
		return productionNames[p]
	}
	return fmt.Sprintf("Production(%d)", p)
}

// Productions lists every production name, in declaration order.
func Productions() []string {
	return slices.Clone(productionNames[:])
}

// ParseProduction maps a name such as "default-value" to its Production.
func ParseProduction(name string) (Production, bool) {
	for i, n := range productionNames {
		if n == name {
			return Production(i), true
		}
	}
	return 0, false
}

// Parse runs prod over toks and requires the whole stream to be consumed.
// The node is an ast.Value[T], ast.Type[T], []ast.Argument[T],
// []ast.Directive[T] or string depending on prod.
func Parse[T text.Text[T]](toks []token.Token, prod Production, opts Options) (any, error) {
	s := NewStream(toks, opts)
	node, err := run[T](s, prod)
	if err != nil {
		return nil, err
	}
	if !s.AtEOF() {
		tok := s.Peek()
		return node, &Error{
			Code:    diag.SynTrailingTokens,
			Span:    tok.Span,
			Message: fmt.Sprintf("unexpected %s after %s", tok.Describe(), prod),
			at:      s.Pos(),
		}
	}
	return node, nil
}

func run[T text.Text[T]](s *Stream, prod Production) (any, error) {
	switch prod {
	case ProdValue:
		return Value[T](s)
	case ProdDefaultValue:
		return DefaultValue[T](s)
	case ProdType:
		return Type[T](s)
	case ProdArguments:
		return Arguments[T](s)
	case ProdConstArguments:
		return ConstArguments[T](s)
	case ProdDirectives:
		return Directives[T](s)
	case ProdConstDirectives:
		return ConstDirectives[T](s)
	case ProdString:
		return StringLit(s)
	default:
		return nil, fmt.Errorf("unknown production %d", prod)
	}
}
