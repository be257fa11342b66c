package format

import (
	"strings"

	"ponyfmt/internal/token"
)

// Spacing is the whitespace a token wants in front of it.
type Spacing uint8

const (
	// SpaceNone keeps the token glued to the previous output unless a space is already pending.
	SpaceNone Spacing = iota
	// SpaceOne requests a single space.
	SpaceOne
	// SpaceNewline requests a line break.
	SpaceNewline
)

func (s Spacing) String() string {
	switch s {
	case SpaceOne:
		return "space"
	case SpaceNewline:
		return "newline"
	default:
		return "none"
	}
}

// SpacingFor decides the whitespace before a token of kind tok given the last emitted byte.
// last is 0 when nothing was emitted yet.
func SpacingFor(tok token.Kind, last byte) Spacing {
	if last == 0 {
		return SpaceNone
	}
	switch {
	case tok == token.KwEnd:
		return SpaceNewline
	case tok == token.KwThen:
		return SpaceOne
	case tok.IsPunct():
		return SpaceNone
	case tok.IsBinaryOp(), tok == token.Assign, tok == token.FatArrow, tok == token.Pipe, tok == token.Amp:
		return SpaceOne
	case tok.IsKeyword():
		if strings.IndexByte("([.@~", last) >= 0 {
			return SpaceNone
		}
		return SpaceOne
	case tok == token.Ident, tok.IsLiteral():
		if isWordByte(last) || strings.IndexByte(",=+-*/", last) >= 0 {
			return SpaceOne
		}
		return SpaceNone
	case tok.IsComment():
		return SpaceOne
	}
	return SpaceNone
}

// spaceAfter reports whether a space is requested right after a token of kind tok.
func spaceAfter(tok token.Kind) bool {
	switch tok {
	case token.Assign, token.Comma, token.Pipe, token.Amp, token.Semicolon, token.Colon, token.FatArrow:
		return true
	case token.KwUse, token.KwTrait, token.KwClass, token.KwActor, token.KwPrimitive,
		token.KwInterface, token.KwStruct, token.KwType, token.KwNew, token.KwFun, token.KwBe,
		token.KwLet, token.KwVar, token.KwEmbed, token.KwIs, token.KwIsnt, token.KwIf,
		token.KwIfdef, token.KwElseif, token.KwWhile, token.KwUntil, token.KwFor, token.KwIn,
		token.KwMatch, token.KwReturn, token.KwConsume, token.KwNot, token.KwAnd, token.KwOr,
		token.KwXor, token.KwAs, token.KwWhere, token.KwWith, token.KwBreak,
		token.KwDigestof, token.KwAddressof:
		return true
	}
	return tok.IsBinaryOp()
}

// newlinesAfter returns the line breaks a comment leaves behind it.
func newlinesAfter(tok token.Kind) int {
	switch tok {
	case token.LineComment:
		return 1
	case token.BlockComment:
		return 2
	}
	return 0
}

// unarySpacing is the keyword rule applied to prefix operators, symbolic ones included.
func unarySpacing(last byte) Spacing {
	if last == 0 || strings.IndexByte("([{.@~", last) >= 0 {
		return SpaceNone
	}
	return SpaceOne
}

func isWordByte(b byte) bool {
	return b == '_' || b == '\'' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
