package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedParen      Code = 2002
	SynUnclosedBracket    Code = 2003
	SynUnclosedBrace      Code = 2004
	SynMissingEnd         Code = 2005
	SynMissingThen        Code = 2006
	SynMissingDo          Code = 2007
	SynExpectIdentifier   Code = 2008
	SynExpectType         Code = 2009
	SynExpectExpression   Code = 2010
	SynExpectFatArrow     Code = 2011
	SynUnexpectedTopLevel Code = 2012
	SynUnexpectedMember   Code = 2013
	SynStrayKeyword       Code = 2014
	SynExpectIn           Code = 2015
	SynExpectUntil        Code = 2016
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Invalid number literal",
	LexUnterminatedChar:         "Unterminated character literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBracket:          "Unclosed square bracket",
	SynUnclosedBrace:            "Unclosed curly brace",
	SynMissingEnd:               "Missing 'end'",
	SynMissingThen:              "Missing 'then'",
	SynMissingDo:                "Missing 'do'",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type",
	SynExpectExpression:         "Expected expression",
	SynExpectFatArrow:           "Expected '=>'",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynUnexpectedMember:         "Unexpected member",
	SynStrayKeyword:             "Keyword without matching construct",
	SynExpectIn:                 "Expected 'in'",
	SynExpectUntil:              "Expected 'until'",
}

// ID returns the stable identifier of the code, e.g. "SYN2005".
func (c Code) ID() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	}
	return "E0000"
}

func (c Code) Title() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
