package lexer

import "unicode/utf8"

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// В Pony идентификатор может заканчиваться штрихами: x'
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '\''
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

// bumpRune съедает одну руну целиком (невалидный байт считается руной длины 1)
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	_, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
	lx.cursor.Off += uint32(size) //nolint:gosec // size <= utf8.UTFMax
}
