// Package diagfmt renders parse diagnostics for people and tools.
//
// Назначение: текстовый вывод с контекстом исходника и подчёркиванием ^~~~, JSON-вывод.
// Не делает: сбора диагностик (это internal/diag) и решения, что показывать.
package diagfmt
