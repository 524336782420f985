package diag

import (
	"fmt"
)

// Code identifies a diagnostic category with a stable numeric ID.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (fatal for the file)
	LexUnknownChar          Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedComment  Code = 1003
	LexUnterminatedDocBlock Code = 1004
	LexBadNumber            Code = 1005

	// Structural (fatal for the file)
	StructUnmatchedCloser Code = 2001
	StructUnclosedOpener  Code = 2002

	// Engine
	EngineNonConvergence Code = 3001
	IOLoadFileError      Code = 3002

	// Rule violations
	RuleTypeOrder     Code = 4001
	RuleDuplicateType Code = 4002
	RuleQualifiedType Code = 4003
	RuleParamMatch    Code = 4004
	RuleSingleUse     Code = 4005
	RuleBlankLine     Code = 4006
)

var codeDescription = map[Code]string{
	UnknownCode:             "unknown diagnostic",
	LexUnknownChar:          "unknown character",
	LexUnterminatedString:   "unterminated string literal",
	LexUnterminatedComment:  "unterminated block comment",
	LexUnterminatedDocBlock: "unterminated doc-block",
	LexBadNumber:            "malformed numeric literal",
	StructUnmatchedCloser:   "unmatched closing bracket",
	StructUnclosedOpener:    "unclosed bracket",
	EngineNonConvergence:    "fixer did not converge within the pass ceiling",
	IOLoadFileError:         "failed to load file",
	RuleTypeOrder:           "doc-block union types in wrong order",
	RuleDuplicateType:       "duplicate type in doc-block union",
	RuleQualifiedType:       "doc-block type should be fully qualified",
	RuleParamMatch:          "doc-block params do not match signature",
	RuleSingleUse:           "multiple imports in one use statement",
	RuleBlankLine:           "blank line between use statements",
}

// ID renders the code as a short stable identifier, e.g. LEX1002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("ENG%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("RULE%04d", ic)
	}
	return "E0000"
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
