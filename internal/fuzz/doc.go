// Package fuzztests houses Go fuzz harnesses for the ponyfmt pipeline
// (source -> lexer -> parser -> format). Its goal is to catch panics, hangs
// and broken output invariants on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер и
// форматтер и проверять, что вывод всегда завершён ровно одним переводом строки.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/format.

package fuzztests
