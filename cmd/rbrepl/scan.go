package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories of command lines.
const (
	WORD = iota + 1 // command names and set names
	NUM             // integer keys
)

// token is a lexeme of a command line.
type token struct {
	kind   int
	lexeme string
	col    int
}

func (t token) String() string {
	return t.lexeme
}

// number converts a NUM token to a key.
func (t token) number() (int64, error) {
	if t.kind != NUM {
		return 0, fmt.Errorf("column %d: expected a number, found '%s'", t.col, t.lexeme)
	}
	return strconv.ParseInt(t.lexeme, 10, 64)
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

// commandLexer creates the lexmachine lexer for command lines on first use.
func commandLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`;[^\n]*\n?`), skip) // skip comments
		lexer.Add([]byte(`[\+\-]?[0-9]+`), makeToken(NUM))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*`), makeToken(WORD))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), skip)
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// scan splits a command line into tokens. Unrecognized input is an error.
func scan(line string) ([]token, error) {
	lx, err := commandLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("unexpected input at column %d", ui.StartColumn)
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, token{kind: t.Type, lexeme: string(t.Lexeme), col: t.StartColumn})
	}
	tracer().Debugf("scanned %d tokens: %v", len(toks), toks)
	return toks, nil
}
