package parser

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"ponyfmt/internal/diag"
	"ponyfmt/internal/lexer"
	"ponyfmt/internal/source"
	"ponyfmt/internal/syntax"
	"ponyfmt/internal/token"
)

var (
	// ErrInvalidUTF8 is returned for sources that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("source is not valid UTF-8")
	// ErrBinaryInput is returned for sources containing NUL bytes.
	ErrBinaryInput = errors.New("source contains NUL bytes")
	// ErrTooLarge is returned when spans cannot address the whole source.
	ErrTooLarge = errors.New("source too large")
)

type Options struct {
	MaxErrors uint // 0 — без ограничения
	Reporter  diag.Reporter
}

type Result struct {
	Root   *syntax.Node
	Errors uint // число синтаксических ошибок (включая отброшенные лимитом)
}

// Parser — состояние парсера на один файл
type Parser struct {
	file    *source.File
	toks    []token.Token
	pos     int
	taken   int // сколько leading trivia текущего токена уже стали комментариями-листьями
	closers map[token.Kind]int
	opts    Options
	errs    uint
}

// ParseFile разбирает один файл целиком. Ошибки синтаксиса не фатальны:
// они превращаются в узлы Error. Фатальны только бинарные/слишком большие входы.
func ParseFile(sf *source.File, opts Options) (Result, error) {
	if sf == nil {
		return Result{}, errors.New("parser: nil source file")
	}
	if err := checkInput(sf.Content); err != nil {
		return Result{}, fmt.Errorf("%s: %w", sf.Path, err)
	}

	lx := lexer.New(sf, lexer.Options{Reporter: opts.Reporter})
	p := Parser{
		file:    sf,
		toks:    lx.All(),
		closers: make(map[token.Kind]int),
		opts:    opts,
	}
	root := p.parseSourceFile()
	return Result{Root: root, Errors: p.errs}, nil
}

func checkInput(content []byte) error {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, len(content))
	}
	if bytes.IndexByte(content, 0) >= 0 {
		return ErrBinaryInput
	}
	if !utf8.Valid(content) {
		return ErrInvalidUTF8
	}
	return nil
}

// parseSourceFile — основной цикл верхнего уровня.
func (p *Parser) parseSourceFile() *syntax.Node {
	var items []*syntax.Node
	for {
		items = append(items, p.takeComments()...)
		if p.at(token.EOF) {
			break
		}
		items = append(items, p.parseItem())
	}
	root := syntax.Branch(syntax.SourceFile, items...)
	// корень покрывает весь файл, включая хвостовые trivia
	root.Span = source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))} //nolint:gosec // checkInput
	return root
}

// parseItem выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *Parser) parseItem() *syntax.Node {
	switch p.peek().Kind {
	case token.KwUse:
		return p.parseUse()
	case token.KwType:
		return p.parseTypeAlias()
	case token.KwActor, token.KwClass, token.KwTrait, token.KwInterface, token.KwPrimitive, token.KwStruct:
		return p.parseTypeDef()
	case token.KwFun, token.KwNew, token.KwBe:
		// метод вне типа: разбираем как есть, чтобы фрагменты тоже форматировались
		return p.parseMethod()
	}
	if stmt := p.parseStatement(); stmt != nil {
		return stmt
	}
	return p.junk(diag.SynUnexpectedTopLevel, "unexpected top-level construct")
}
