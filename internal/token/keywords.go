package token

var keywords = map[string]Kind{
	"use":       KwUse,
	"type":      KwType,
	"interface": KwInterface,
	"trait":     KwTrait,
	"primitive": KwPrimitive,
	"struct":    KwStruct,
	"class":     KwClass,
	"actor":     KwActor,
	"is":        KwIs,
	"isnt":      KwIsnt,
	"new":       KwNew,
	"fun":       KwFun,
	"be":        KwBe,
	"let":       KwLet,
	"var":       KwVar,
	"embed":     KwEmbed,
	"if":        KwIf,
	"ifdef":     KwIfdef,
	"then":      KwThen,
	"elseif":    KwElseif,
	"else":      KwElse,
	"end":       KwEnd,
	"while":     KwWhile,
	"do":        KwDo,
	"for":       KwFor,
	"in":        KwIn,
	"match":     KwMatch,
	"try":       KwTry,
	"with":      KwWith,
	"repeat":    KwRepeat,
	"until":     KwUntil,
	"recover":   KwRecover,
	"consume":   KwConsume,
	"return":    KwReturn,
	"break":     KwBreak,
	"continue":  KwContinue,
	"error":     KwError,
	"where":     KwWhere,
	"as":        KwAs,
	"object":    KwObject,
	"this":      KwThis,
	"true":      KwTrue,
	"false":     KwFalse,
	"and":       KwAnd,
	"or":        KwOr,
	"xor":       KwXor,
	"not":       KwNot,
	"digestof":  KwDigestof,
	"addressof": KwAddressof,
	"iso":       KwIso,
	"trn":       KwTrn,
	"ref":       KwRef,
	"val":       KwVal,
	"box":       KwBox,
	"tag":       KwTag,
}

var spellings = func() map[Kind]string {
	m := map[Kind]string{
		LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
		Comma: ",", Semicolon: ";", Colon: ":", Dot: ".", Chain: ".>", Arrow: "->",
		FatArrow: "=>", Assign: "=", Plus: "+", Minus: "-", Star: "*", Slash: "/",
		Percent: "%", PercentPercent: "%%", Shl: "<<", Shr: ">>", EqEq: "==", BangEq: "!=",
		Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=", Bang: "!", Pipe: "|", Amp: "&",
		Caret: "^", Question: "?", At: "@", Tilde: "~", Hash: "#", Backslash: "\\",
	}
	for word, k := range keywords {
		m[k] = word
	}
	return m
}()

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
