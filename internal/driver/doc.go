// Package driver formats batches of Pony files.
//
// Назначение: сбор путей (.pony, каталоги, "-" для stdin, исключения), параллельное
// форматирование через errgroup, режимы stdout/write/check, дисковый кэш уже
// канонических файлов, трассировка партии и отдельных файлов, события прогресса
// (ProgressSink) и замеры стадий (observ.Timer).
// Не делает: разбора флагов и печати результатов (это cmd/ponyfmt).
// Зависимости: internal/format, internal/parser, internal/source, internal/trace,
// internal/observ, golang.org/x/sync/errgroup, golang.org/x/text/unicode/norm, msgpack.
package driver
