// Package syntax holds the concrete syntax tree consumed by the formatter.
//
// Назначение: a small immutable tree model (Node, Kind) plus helpers to read
// node text, walk the tree and dump it for debugging.
//
// Не делает: parsing (internal/parser) or formatting (internal/format).
//
// Invariants expected from producers:
//   - children are ordered by source position and do not overlap;
//   - a child span lies inside its parent span;
//   - leaves (Kind Token, LineComment, BlockComment) correspond to one token.
//
// Consumers must still tolerate trees that break these rules: Text clamps
// spans to the source and kinds outside the enumeration behave like Other.
package syntax
