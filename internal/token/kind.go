package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// InlineHTML is raw text outside the open/close tags.
	InlineHTML
	// OpenTag is the '<?php' marker.
	OpenTag
	// CloseTag is the '?>' marker.
	CloseTag

	// Ident represents an identifier token.
	Ident
	// Variable represents a '$name' variable token.
	Variable
	// NsSep represents the '\' namespace separator.
	NsSep

	// KwFunction represents the 'function' keyword.
	KwFunction
	// KwFn represents the 'fn' arrow-function keyword.
	KwFn
	// KwClass represents the 'class' keyword.
	KwClass
	// KwInterface represents the 'interface' keyword.
	KwInterface
	// KwTrait represents the 'trait' keyword.
	KwTrait
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace
	// KwUse represents the 'use' keyword.
	KwUse
	// KwAs represents the 'as' keyword.
	KwAs
	// KwConst represents the 'const' keyword.
	KwConst
	// KwPublic represents the 'public' keyword.
	KwPublic
	// KwPrivate represents the 'private' keyword.
	KwPrivate
	// KwProtected represents the 'protected' keyword.
	KwProtected
	// KwStatic represents the 'static' keyword.
	KwStatic
	// KwAbstract represents the 'abstract' keyword.
	KwAbstract
	// KwFinal represents the 'final' keyword.
	KwFinal
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwIf represents the 'if' keyword.
	KwIf
	// KwElse represents the 'else' keyword.
	KwElse
	// KwElseif represents the 'elseif' keyword.
	KwElseif
	// KwWhile represents the 'while' keyword.
	KwWhile
	// KwFor represents the 'for' keyword.
	KwFor
	// KwForeach represents the 'foreach' keyword.
	KwForeach
	// KwNew represents the 'new' keyword.
	KwNew
	// KwEcho represents the 'echo' keyword.
	KwEcho
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof
	// KwExtends represents the 'extends' keyword.
	KwExtends
	// KwImplements represents the 'implements' keyword.
	KwImplements
	// KwTrue represents the 'true' keyword.
	KwTrue
	// KwFalse represents the 'false' keyword.
	KwFalse
	// KwNull represents the 'null' keyword.
	KwNull

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a float literal.
	FloatLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit

	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Percent represents '%'.
	Percent
	// Concat represents the '.' concatenation operator.
	Concat
	// Assign represents '='.
	Assign
	// PlusAssign represents '+='.
	PlusAssign
	// MinusAssign represents '-='.
	MinusAssign
	// StarAssign represents '*='.
	StarAssign
	// SlashAssign represents '/='.
	SlashAssign
	// ConcatAssign represents '.='.
	ConcatAssign
	// NullAssign represents '??='.
	NullAssign
	// EqEq represents '=='.
	EqEq
	// EqEqEq represents '==='.
	EqEqEq
	// Bang represents '!'.
	Bang
	// BangEq represents '!='.
	BangEq
	// BangEqEq represents '!=='.
	BangEqEq
	// Lt represents '<'.
	Lt
	// LtEq represents '<='.
	LtEq
	// Gt represents '>'.
	Gt
	// GtEq represents '>='.
	GtEq
	// Spaceship represents '<=>'.
	Spaceship
	// Amp represents '&'.
	Amp
	// AmpAmp represents '&&'.
	AmpAmp
	// Pipe represents '|'.
	Pipe
	// PipePipe represents '||'.
	PipePipe
	// Caret represents '^'.
	Caret
	// Tilde represents '~'.
	Tilde
	// Shl represents '<<'.
	Shl
	// Shr represents '>>'.
	Shr
	// Question represents '?'.
	Question
	// QuestionQuestion represents '??'.
	QuestionQuestion
	// Colon represents ':'.
	Colon
	// DoubleColon represents '::'.
	DoubleColon
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Arrow represents '->'.
	Arrow
	// NullArrow represents '?->'.
	NullArrow
	// DoubleArrow represents '=>'.
	DoubleArrow
	// Ellipsis represents '...'.
	Ellipsis
	// At represents '@'.
	At
	// Dollar represents a bare '$'.
	Dollar
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket

	// Whitespace is a run of spaces or tabs within one line.
	Whitespace
	// Newline is a single '\n'.
	Newline
	// LineComment is a '//' or '#' comment, excluding the newline.
	LineComment
	// BlockComment is a '/* ... */' comment that is not a doc-block.
	BlockComment

	// DocOpen is the '/**' doc-block opener.
	DocOpen
	// DocClose is the '*/' doc-block closer.
	DocClose
	// DocStar is a leading '*' on a doc-block line.
	DocStar
	// DocTag is a '@name' tag inside a doc-block.
	DocTag
	// DocString is free text inside a doc-block.
	DocString
	// DocWhitespace is whitespace (including newlines) inside a doc-block.
	DocWhitespace
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	InlineHTML:       "InlineHTML",
	OpenTag:          "OpenTag",
	CloseTag:         "CloseTag",
	Ident:            "Ident",
	Variable:         "Variable",
	NsSep:            "NsSep",
	KwFunction:       "KwFunction",
	KwFn:             "KwFn",
	KwClass:          "KwClass",
	KwInterface:      "KwInterface",
	KwTrait:          "KwTrait",
	KwNamespace:      "KwNamespace",
	KwUse:            "KwUse",
	KwAs:             "KwAs",
	KwConst:          "KwConst",
	KwPublic:         "KwPublic",
	KwPrivate:        "KwPrivate",
	KwProtected:      "KwProtected",
	KwStatic:         "KwStatic",
	KwAbstract:       "KwAbstract",
	KwFinal:          "KwFinal",
	KwReturn:         "KwReturn",
	KwIf:             "KwIf",
	KwElse:           "KwElse",
	KwElseif:         "KwElseif",
	KwWhile:          "KwWhile",
	KwFor:            "KwFor",
	KwForeach:        "KwForeach",
	KwNew:            "KwNew",
	KwEcho:           "KwEcho",
	KwInstanceof:     "KwInstanceof",
	KwExtends:        "KwExtends",
	KwImplements:     "KwImplements",
	KwTrue:           "KwTrue",
	KwFalse:          "KwFalse",
	KwNull:           "KwNull",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	StringLit:        "StringLit",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	Percent:          "Percent",
	Concat:           "Concat",
	Assign:           "Assign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	SlashAssign:      "SlashAssign",
	ConcatAssign:     "ConcatAssign",
	NullAssign:       "NullAssign",
	EqEq:             "EqEq",
	EqEqEq:           "EqEqEq",
	Bang:             "Bang",
	BangEq:           "BangEq",
	BangEqEq:         "BangEqEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	Spaceship:        "Spaceship",
	Amp:              "Amp",
	AmpAmp:           "AmpAmp",
	Pipe:             "Pipe",
	PipePipe:         "PipePipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	Shl:              "Shl",
	Shr:              "Shr",
	Question:         "Question",
	QuestionQuestion: "QuestionQuestion",
	Colon:            "Colon",
	DoubleColon:      "DoubleColon",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Arrow:            "Arrow",
	NullArrow:        "NullArrow",
	DoubleArrow:      "DoubleArrow",
	Ellipsis:         "Ellipsis",
	At:               "At",
	Dollar:           "Dollar",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	Whitespace:       "Whitespace",
	Newline:          "Newline",
	LineComment:      "LineComment",
	BlockComment:     "BlockComment",
	DocOpen:          "DocOpen",
	DocClose:         "DocClose",
	DocStar:          "DocStar",
	DocTag:           "DocTag",
	DocString:        "DocString",
	DocWhitespace:    "DocWhitespace",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
