// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jxml

import (
	"fmt"
	"io"
	"strings"
)

// EventKind is the type of a structural event reported by a Parser.
type EventKind byte

// Constants defining the valid EventKind values.
const (
	EventInvalid EventKind = iota // invalid event
	BeginObject                   // the opening of an object: "{"
	EndObject                     // the closing of an object: "}"
	BeginArray                    // the opening of an array: "["
	EndArray                      // the closing of an array: "]"
	Key                           // the key of an object member
	Value                         // a scalar value
)

var eventStr = [...]string{
	EventInvalid: "invalid event",
	BeginObject:  "BeginObject",
	EndObject:    "EndObject",
	BeginArray:   "BeginArray",
	EndArray:     "EndArray",
	Key:          "Key",
	Value:        "Value",
}

func (k EventKind) String() string {
	v := int(k)
	if v >= len(eventStr) {
		return eventStr[EventInvalid]
	}
	return eventStr[v]
}

// An Event is a single structural unit of a JSON document: the opening or
// closing of a container, the key of an object member, or a scalar value.
type Event struct {
	Kind EventKind

	// For Key and Value events, Token records the lexical type of the
	// payload: String for keys; one of String, Integer, Number, True, False,
	// or Null for values. It is zero for container events.
	Token Token

	// For Key and Value events, the decoded text of the payload: keys and
	// string values have their quotes removed and escapes undone, numbers are
	// verbatim, and the constants are their literal spellings.
	Text string
}

func (e Event) String() string {
	switch e.Kind {
	case Key, Value:
		return fmt.Sprintf("%s %s <%s>", e.Kind, e.Token, e.Text)
	}
	return e.Kind.String()
}

// An EventSource is a pull-based producer of structural events. After Next
// reports false, Err reports why iteration stopped: nil at a normal end of
// the sequence, otherwise the error that terminated it.
//
// A Parser is an EventSource over JSON text.
type EventSource interface {
	Next() bool
	Event() Event
	Err() error
}

// Parser states. The parser tracks the state of the innermost open container
// directly, and keeps a stack of suspended states to resume when each
// container closes.
type pstate byte

const (
	pValue    pstate = iota // expecting the top-level value
	pDone                   // top-level value complete, expecting end of input
	pObjFirst               // object opened, expecting first key or "}"
	pObjKey                 // expecting a key after ","
	pObjColon               // expecting ":" after a key
	pObjValue               // expecting a member value after ":"
	pObjNext                // expecting "," or "}" after a member value
	pArrFirst               // array opened, expecting first value or "]"
	pArrValue               // expecting a value after ","
	pArrNext                // expecting "," or "]" after a value
)

// A Parser reads a JSON document from an input stream and reports its
// structure as a sequence of events.  Each call to Next advances the parser
// to the next event, or reports an error.
//
// The event sequence is well-nested: every BeginObject or BeginArray event is
// matched by exactly one EndObject or EndArray at the same depth, and exactly
// one top-level value is accepted. Like a Scanner, a Parser is one-shot.
type Parser struct {
	s      *Scanner
	stk    []pstate // suspended states of enclosing containers
	cur    pstate
	tcomma bool // allow trailing commas in objects and arrays

	evt  Event
	err  error
	done bool
}

// NewParser constructs a new Parser that consumes input from r.
func NewParser(r io.Reader) *Parser { return &Parser{s: NewScanner(r)} }

// NewParserWithScanner constructs a new Parser that consumes input from s.
func NewParserWithScanner(s *Scanner) *Parser { return &Parser{s: s} }

// AllowComments configures the scanner associated with p to recognize (true)
// or reject (false) comment tokens. The parser discards any comments.
func (p *Parser) AllowComments(ok bool) { p.s.AllowComments(ok) }

// AllowTrailingCommas configures the parser to allow (true) or reject (false)
// trailing commas in objects and arrays.
func (p *Parser) AllowTrailingCommas(ok bool) { p.tcomma = ok }

// Next advances p to the next event of the input and reports whether one is
// available. Once Next returns false, check Err to distinguish the end of the
// document from an error.
func (p *Parser) Next() bool {
	if p.err != nil || p.done {
		return false
	}
	for {
		if !p.s.Next() {
			if err := p.s.Err(); err != nil {
				p.err = err
			} else if p.cur == pDone {
				p.done = true
			} else {
				p.err = &SyntaxError{
					Location: p.s.Location().First,
					Message:  "unexpected end of input",
					err:      io.EOF,
				}
			}
			return false
		}
		tok := p.s.Token()
		if tok == LineComment || tok == BlockComment {
			continue // comments are not part of the document structure
		}
		evt, ok := p.apply(tok)
		if p.err != nil {
			return false
		} else if ok {
			p.evt = evt
			return true
		}
		// The token advanced the state without producing an event (a colon
		// or a comma); keep going.
	}
}

// Event returns the current event.
func (p *Parser) Event() Event { return p.evt }

// Err returns the error, if any, that terminated parsing. It returns nil if
// parsing stopped after a complete document.
func (p *Parser) Err() error { return p.err }

// Depth reports the number of currently open containers.
func (p *Parser) Depth() int { return len(p.stk) }

// Location returns the location of the current token, for diagnostics.
func (p *Parser) Location() Location { return p.s.Location() }

// apply feeds tok to the state machine. It reports the event the token
// produced, if any. On an unexpected token it records a *SyntaxError in
// p.err.
func (p *Parser) apply(tok Token) (Event, bool) {
	switch p.cur {
	case pValue:
		return p.beginValue(tok, pDone)

	case pObjFirst:
		if tok == RBrace {
			return p.endContainer(EndObject), true
		}
		return p.keyEvent(tok, RBrace, String)

	case pObjKey:
		if tok == RBrace && p.tcomma {
			return p.endContainer(EndObject), true
		}
		return p.keyEvent(tok, String)

	case pObjColon:
		if tok != Colon {
			return p.unexpected(tok, Colon)
		}
		p.cur = pObjValue
		return Event{}, false

	case pObjValue:
		return p.beginValue(tok, pObjNext)

	case pObjNext:
		switch tok {
		case Comma:
			p.cur = pObjKey
			return Event{}, false
		case RBrace:
			return p.endContainer(EndObject), true
		}
		return p.unexpected(tok, Comma, RBrace)

	case pArrFirst:
		if tok == RSquare {
			return p.endContainer(EndArray), true
		}
		return p.beginValue(tok, pArrNext)

	case pArrValue:
		if tok == RSquare && p.tcomma {
			return p.endContainer(EndArray), true
		}
		return p.beginValue(tok, pArrNext)

	case pArrNext:
		switch tok {
		case Comma:
			p.cur = pArrValue
			return Event{}, false
		case RSquare:
			return p.endContainer(EndArray), true
		}
		return p.unexpected(tok, Comma, RSquare)

	case pDone:
		p.err = p.failf(nil, "unexpected %v after top-level value", tok)
		return Event{}, false
	}
	panic("jxml: parser in invalid state")
}

// beginValue handles a token in value position. For scalars the parser moves
// directly to next; for containers next is suspended until the container
// closes.
func (p *Parser) beginValue(tok Token, next pstate) (Event, bool) {
	switch tok {
	case LBrace:
		p.stk = append(p.stk, next)
		p.cur = pObjFirst
		return Event{Kind: BeginObject}, true
	case LSquare:
		p.stk = append(p.stk, next)
		p.cur = pArrFirst
		return Event{Kind: BeginArray}, true
	case String:
		text, err := Unquote(p.s.Text())
		if err != nil {
			p.err = p.failf(nil, "invalid string: %v", err)
			return Event{}, false
		}
		p.cur = next
		return Event{Kind: Value, Token: String, Text: string(text)}, true
	case Integer, Number, True, False, Null:
		p.cur = next
		return Event{Kind: Value, Token: tok, Text: string(p.s.Text())}, true
	}
	p.err = p.failf(valueTokens, "expected a value, got %v", tok)
	return Event{}, false
}

// keyEvent handles a token in key position, with expect naming the tokens
// acceptable there for error reporting.
func (p *Parser) keyEvent(tok Token, expect ...Token) (Event, bool) {
	if tok != String {
		return p.unexpected(tok, expect...)
	}
	text, err := Unquote(p.s.Text())
	if err != nil {
		p.err = p.failf(nil, "invalid key: %v", err)
		return Event{}, false
	}
	p.cur = pObjColon
	return Event{Kind: Key, Token: String, Text: string(text)}, true
}

// endContainer pops the enclosing state and reports the closing event.
func (p *Parser) endContainer(kind EventKind) Event {
	p.cur = p.stk[len(p.stk)-1]
	p.stk = p.stk[:len(p.stk)-1]
	return Event{Kind: kind}
}

func (p *Parser) unexpected(tok Token, expect ...Token) (Event, bool) {
	p.err = p.failf(expect, "%s", tokLabel(expect, tok))
	return Event{}, false
}

func (p *Parser) failf(expect []Token, msg string, args ...any) error {
	return &SyntaxError{
		Location: p.s.Location().First,
		Message:  fmt.Sprintf(msg, args...),
		Expected: expect,
	}
}

// valueTokens are the tokens that may begin a JSON value.
var valueTokens = []Token{LBrace, LSquare, String, Integer, Number, True, False, Null}

// A SyntaxError reports a token arriving in a state of the grammar that does
// not permit it, and the position of the offending token.
type SyntaxError struct {
	Location LineCol
	Message  string
	Expected []Token // the token kinds acceptable at the error, if known

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, len(tokens)-1)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
