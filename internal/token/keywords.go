package token

import "strings"

var keywords = map[string]Kind{
	"function":   KwFunction,
	"fn":         KwFn,
	"class":      KwClass,
	"interface":  KwInterface,
	"trait":      KwTrait,
	"namespace":  KwNamespace,
	"use":        KwUse,
	"as":         KwAs,
	"const":      KwConst,
	"public":     KwPublic,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"static":     KwStatic,
	"abstract":   KwAbstract,
	"final":      KwFinal,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"elseif":     KwElseif,
	"while":      KwWhile,
	"for":        KwFor,
	"foreach":    KwForeach,
	"new":        KwNew,
	"echo":       KwEcho,
	"instanceof": KwInstanceof,
	"extends":    KwExtends,
	"implements": KwImplements,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-insensitive in the target language.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}
