package diag

import (
	"fmt"
)

type Code uint16

const (
	// Unknown error
	UnknownCode Code = 0
	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockString  Code = 1003
	LexBadNumber                Code = 1004
	LexNotNormalized            Code = 1005
	LexUnterminatedBlockComment Code = 1006 // reserved

	// Syntax
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynBadLiteral      Code = 2002
	SynTooDeep         Code = 2003
	SynTrailingTokens  Code = 2004

	// I/O and configuration
	IOLoadFileError Code = 4001
	ConfigInvalid   Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockString:  "Unterminated block string",
	LexBadNumber:                "Bad number",
	LexNotNormalized:            "Source is not NFC-normalized",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynBadLiteral:               "Invalid literal",
	SynTooDeep:                  "Nesting too deep",
	SynTrailingTokens:           "Unexpected tokens after the parsed production",
	IOLoadFileError:             "Failed to load file",
	ConfigInvalid:               "Invalid configuration",
}

// ID returns the stable short identifier, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	default:
		return fmt.Sprintf("E%04d", ic)
	}
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
