package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Name represents a GraphQL name: /[_A-Za-z][_0-9A-Za-z]*/.
	Name

	// IntValue represents an integer literal that fits an unsigned 64-bit magnitude.
	IntValue
	// BigIntValue represents an integer literal wider than 64 bits.
	BigIntValue
	// FloatValue represents a float literal.
	FloatValue
	// StringValue represents a quoted string literal, quotes included.
	StringValue
	// BlockString represents a triple-quoted string literal, delimiters included.
	BlockString

	// Bang represents the bang punctuator.
	Bang // !
	// Dollar represents the dollar punctuator.
	Dollar // $
	// Amp represents the ampersand punctuator.
	Amp // &
	// LParen represents the left parenthesis punctuator.
	LParen // (
	// RParen represents the right parenthesis punctuator.
	RParen // )
	// Spread represents the spread punctuator.
	Spread // ...
	// Colon represents the colon punctuator.
	Colon // :
	// Equals represents the equals punctuator.
	Equals // =
	// At represents the at punctuator.
	At // @
	// LBracket represents the left bracket punctuator.
	LBracket // [
	// RBracket represents the right bracket punctuator.
	RBracket // ]
	// LBrace represents the left brace punctuator.
	LBrace // {
	// Pipe represents the pipe punctuator.
	Pipe // |
	// RBrace represents the right brace punctuator.
	RBrace // }
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Name:        "Name",
	IntValue:    "IntValue",
	BigIntValue: "BigIntValue",
	FloatValue:  "FloatValue",
	StringValue: "StringValue",
	BlockString: "BlockString",
	Bang:        "Bang",
	Dollar:      "Dollar",
	Amp:         "Amp",
	LParen:      "LParen",
	RParen:      "RParen",
	Spread:      "Spread",
	Colon:       "Colon",
	Equals:      "Equals",
	At:          "At",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	LBrace:      "LBrace",
	Pipe:        "Pipe",
	RBrace:      "RBrace",
}

var punctText = map[Kind]string{
	Bang:     "!",
	Dollar:   "$",
	Amp:      "&",
	LParen:   "(",
	RParen:   ")",
	Spread:   "...",
	Colon:    ":",
	Equals:   "=",
	At:       "@",
	LBracket: "[",
	RBracket: "]",
	LBrace:   "{",
	Pipe:     "|",
	RBrace:   "}",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe returns the form used in "expected ..." messages: the literal
// text for punctuators and the kind name otherwise.
func (k Kind) Describe() string {
	if s, ok := punctText[k]; ok {
		return "'" + s + "'"
	}
	switch k {
	case EOF:
		return "end of input"
	case Name:
		return "name"
	case IntValue, BigIntValue:
		return "integer"
	case FloatValue:
		return "float"
	case StringValue:
		return "string"
	case BlockString:
		return "block string"
	default:
		return k.String()
	}
}

// PunctFor maps a punctuator's text to its kind.
func PunctFor(text string) (Kind, bool) {
	for k, s := range punctText {
		if s == text {
			return k, true
		}
	}
	return Invalid, false
}
