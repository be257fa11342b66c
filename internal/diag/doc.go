// Package diag defines the diagnostic model shared by the lexer and parser.
//
// # Назначение
//
//   - Deterministic records (Diagnostic) for findings of the lexer and parser:
//     severity, stable numeric code, short message and primary span.
//   - Light-weight sinks (Reporter, Bag) so producers never depend on storage.
//
// # Не делает
//
// Diagnostics never stop formatting: the parser recovers into Error nodes and
// the formatter prints them best-effort. Diagnostics are surfaced only by the
// debug command and by trace output.
//
// # Codes
//
// Lexical codes live in the 1000s (LEX%04d), syntax codes in the 2000s
// (SYN%04d). Codes are append-only.
package diag
