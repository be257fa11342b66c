package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal (decimal, hex or binary).
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StringLit represents a string literal, including triple-quoted strings.
	StringLit
	// CharLit represents a character literal.
	CharLit

	// LineComment is a `//` comment promoted to a syntax leaf.
	LineComment
	// BlockComment is a `/* */` comment promoted to a syntax leaf.
	BlockComment

	KwUse       // use
	KwType      // type
	KwInterface // interface
	KwTrait     // trait
	KwPrimitive // primitive
	KwStruct    // struct
	KwClass     // class
	KwActor     // actor
	KwIs        // is
	KwIsnt      // isnt
	KwNew       // new
	KwFun       // fun
	KwBe        // be
	KwLet       // let
	KwVar       // var
	KwEmbed     // embed
	KwIf        // if
	KwIfdef     // ifdef
	KwThen      // then
	KwElseif    // elseif
	KwElse      // else
	KwEnd       // end
	KwWhile     // while
	KwDo        // do
	KwFor       // for
	KwIn        // in
	KwMatch     // match
	KwTry       // try
	KwWith      // with
	KwRepeat    // repeat
	KwUntil     // until
	KwRecover   // recover
	KwConsume   // consume
	KwReturn    // return
	KwBreak     // break
	KwContinue  // continue
	KwError     // error
	KwWhere     // where
	KwAs        // as
	KwObject    // object
	KwThis      // this
	KwTrue      // true
	KwFalse     // false
	KwAnd       // and
	KwOr        // or
	KwXor       // xor
	KwNot       // not
	KwDigestof  // digestof
	KwAddressof // addressof
	KwIso       // iso
	KwTrn       // trn
	KwRef       // ref
	KwVal       // val
	KwBox       // box
	KwTag       // tag

	LParen         // (
	RParen         // )
	LBracket       // [
	RBracket       // ]
	LBrace         // {
	RBrace         // }
	Comma          // ,
	Semicolon      // ;
	Colon          // :
	Dot            // .
	Chain          // .>
	Arrow          // ->
	FatArrow       // =>
	Assign         // =
	Plus           // +
	Minus          // -
	Star           // *
	Slash          // /
	Percent        // %
	PercentPercent // %%
	Shl            // <<
	Shr            // >>
	EqEq           // ==
	BangEq         // !=
	Lt             // <
	LtEq           // <=
	Gt             // >
	GtEq           // >=
	Bang           // !
	Pipe           // |
	Amp            // &
	Caret          // ^
	Question       // ?
	At             // @
	Tilde          // ~
	Hash           // #
	Backslash      // \

	kindCount
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	IntLit:       "IntLit",
	FloatLit:     "FloatLit",
	StringLit:    "StringLit",
	CharLit:      "CharLit",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
}

// String returns the spelling for keywords and punctuation and a name otherwise.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	if s, ok := spellings[k]; ok {
		return s
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word (capabilities included).
func (k Kind) IsKeyword() bool {
	return k >= KwUse && k <= KwTag
}

// IsCapability reports whether k is one of the reference capabilities.
func (k Kind) IsCapability() bool {
	return k >= KwIso && k <= KwTag
}

// IsLiteral reports whether k is an identifier-like atom: a name or a literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsComment reports whether k is a comment leaf kind.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}

// IsBinaryOp reports whether k is a symbolic binary operator.
// Keyword operators (and, or, xor, is) are reported by IsKeyword.
func (k Kind) IsBinaryOp() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent, PercentPercent, Shl, Shr,
		EqEq, BangEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}

// IsPunct reports whether k is punctuation that never takes a leading space.
func (k Kind) IsPunct() bool {
	switch k {
	case LParen, RParen, LBracket, RBracket, Comma, Semicolon, Dot, Chain, Colon,
		Arrow, Caret, Bang:
		return true
	default:
		return false
	}
}

// Precedence of a value-level binary operator; 0 for everything else.
// '|' and '&' only appear in types and have no precedence here.
func (k Kind) Precedence() int {
	switch k {
	case KwOr, KwXor:
		return 1
	case KwAnd:
		return 2
	case EqEq, BangEq, Lt, LtEq, Gt, GtEq, KwIs, KwIsnt:
		return 3
	case Shl, Shr:
		return 5
	case Plus, Minus:
		return 6
	case Star, Slash, Percent, PercentPercent:
		return 7
	default:
		return 0
	}
}
