package source

import (
	"bytes"
	"path/filepath"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// normalizeCRLF заменяет все \r\n на \n, одиночные \r не трогает.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if bytes.IndexByte(content, '\r') < 0 {
		return content, false
	}
	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			changed = true
			continue
		}
		out = append(out, content[i])
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bom) {
		return content[len(bom):], true
	}
	return content, false
}

// Normalize strips a UTF-8 BOM and converts CRLF line endings to LF.
func Normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return content, flags
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) //nolint:gosec // размер проверен в Add
		}
	}
	return out
}

// toLineCol ищет строку бинпоиском по позициям переводов строк.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	// lo == число переводов строк строго до off
	var lineStart uint32
	if lo > 0 {
		lineStart = lineIdx[lo-1] + 1
	}
	return LineCol{Line: uint32(lo) + 1, Col: off - lineStart + 1} //nolint:gosec // lo <= len(lineIdx)
}

func normalizePath(p string) string {
	if p == "" || p == "-" {
		return p
	}
	return filepath.ToSlash(filepath.Clean(p))
}
