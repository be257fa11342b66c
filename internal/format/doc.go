// Package format renders a concrete syntax tree of a Pony source file as canonical text.
//
// Назначение: обход дерева internal/syntax, расстановка пробелов и переводов строк,
// отступы составных конструкций, схлопывание коротких тел и списков аргументов,
// восстановление вокруг Error-узлов и перенос комментариев, оставшихся в trivia.
// Не делает: чтения файлов, кэширования и параллельной обработки (это internal/driver),
// проверки корректности программы.
// Зависимости: internal/syntax, internal/token, internal/parser, internal/source,
// go-runewidth (ширина inline-тел).
package format
