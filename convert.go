// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jxml

import (
	"fmt"
	"io"
	"strings"
)

// Options control the XML rendering of a Converter. A nil *Options is ready
// to use and provides default values as described.
type Options struct {
	// If set, emit this line verbatim before any other output, e.g. an XML
	// declaration.
	Header string

	// The tag of the root element, along with the element for the top-level
	// value of the document. If empty, use "root".
	Root string

	// The element tag for array members. If empty, use "li".
	ListItem string

	// Annotate each element with a type attribute recording the JSON type of
	// its value: "object", "array", "string", "number", "boolean" or "null".
	Typed bool

	// Indent each line by two spaces per nesting depth. Indentation can
	// substantially increase the size of the output for large documents.
	Formatted bool
}

func (o *Options) header() string {
	if o != nil {
		return o.Header
	}
	return ""
}

func (o *Options) root() string {
	if o != nil && o.Root != "" {
		return o.Root
	}
	return "root"
}

func (o *Options) listItem() string {
	if o != nil && o.ListItem != "" {
		return o.ListItem
	}
	return "li"
}

func (o *Options) typed() bool     { return o != nil && o.Typed }
func (o *Options) formatted() bool { return o != nil && o.Formatted }

// A Converter renders the events of a JSON document as lines of XML text.
// Each call to Next produces the next line of output, pulling as many events
// from the source as that line requires and no more.
//
// The converter holds only its stack of open tags between lines, so the
// memory needed for a conversion is bounded by the nesting depth of the
// document, not its size. Like its upstream stages, a Converter is one-shot.
//
// A well-nested event sequence, as produced by a Parser, cannot fail to
// render. If the source violates the nesting contract the Converter panics
// with a *ConsistencyError; see Walk for validating hand-built sequences.
type Converter struct {
	src  EventSource
	opts *Options

	tags    []openTag
	key     string // pending member key
	haveKey bool
	closed  bool // the document element has been completed
	line    string
	err     error
	started bool
	done    bool
}

// An openTag records one element of the open-tag stack.
type openTag struct {
	name    string
	isArray bool
}

// NewConverter constructs a Converter that parses JSON text from r and
// renders it using opts.
func NewConverter(r io.Reader, opts *Options) *Converter {
	return NewConverterWithSource(NewParser(r), opts)
}

// NewConverterWithSource constructs a Converter that renders the events
// produced by src using opts.
func NewConverterWithSource(src EventSource, opts *Options) *Converter {
	return &Converter{src: src, opts: opts}
}

// Next advances c to the next line of output and reports whether one is
// available. Once Next returns false, Err reports nil if the whole document
// was rendered, otherwise the scan or syntax error that ended conversion.
func (c *Converter) Next() bool {
	if c.err != nil || c.done {
		return false
	}
	if !c.started {
		c.started = true
		if h := c.opts.header(); h != "" {
			c.line = h
			return true
		}
	}
	for {
		if !c.src.Next() {
			if err := c.src.Err(); err != nil {
				c.err = err
			} else {
				if len(c.tags) != 0 {
					panic(&ConsistencyError{Message: fmt.Sprintf(
						"event source ended with %d open elements", len(c.tags))})
				}
				c.done = true
			}
			return false
		}
		if line, ok := c.apply(c.src.Event()); ok {
			c.line = line
			return true
		}
	}
}

// Line returns the current line of output, without a line terminator.
func (c *Converter) Line() string { return c.line }

// Err returns the error, if any, that terminated conversion.
func (c *Converter) Err() error { return c.err }

// WriteTo renders all remaining output to w, one newline-terminated line per
// pull. It implements io.WriterTo, and makes the total number of bytes
// written available even if conversion fails partway.
func (c *Converter) WriteTo(w io.Writer) (int64, error) {
	var nw int64
	for c.Next() {
		n, err := io.WriteString(w, c.Line())
		nw += int64(n)
		if err != nil {
			return nw, err
		}
		n, err = io.WriteString(w, "\n")
		nw += int64(n)
		if err != nil {
			return nw, err
		}
	}
	return nw, c.Err()
}

// apply updates the converter state for evt, and reports the line of output
// it produced, if any. A Key event produces no output until its value
// arrives.
func (c *Converter) apply(evt Event) (string, bool) {
	if c.closed {
		panic(&ConsistencyError{Message: fmt.Sprintf("event %v after the document element closed", evt.Kind)})
	}
	switch evt.Kind {
	case Key:
		if c.haveKey {
			panic(&ConsistencyError{Message: "key event with a key already pending"})
		} else if len(c.tags) == 0 || c.tags[len(c.tags)-1].isArray {
			panic(&ConsistencyError{Message: "key event outside an object"})
		}
		c.key = evt.Text
		c.haveKey = true
		return "", false

	case BeginObject, BeginArray:
		tag := XMLEscape(c.nextTag())
		depth := len(c.tags)
		c.tags = append(c.tags, openTag{name: tag, isArray: evt.Kind == BeginArray})
		return c.format(depth, "<"+tag+c.typeAttr(evt)+">"), true

	case EndObject, EndArray:
		if len(c.tags) == 0 {
			panic(&ConsistencyError{Message: "end event with no open element"})
		}
		tag := c.tags[len(c.tags)-1].name
		c.tags = c.tags[:len(c.tags)-1]
		c.closed = len(c.tags) == 0
		return c.format(len(c.tags), "</"+tag+">"), true

	case Value:
		tag := c.nextTag()
		c.closed = len(c.tags) == 0
		return c.format(len(c.tags), valueLine(tag, c.typeAttr(evt), evt)), true
	}
	panic(&ConsistencyError{Message: fmt.Sprintf("invalid event %v", evt.Kind)})
}

// nextTag chooses the element tag for a value or container arriving in the
// current context: the pending key inside an object, the list-item tag
// inside an array, or the root tag at top level.
func (c *Converter) nextTag() string {
	if len(c.tags) == 0 {
		return c.opts.root()
	} else if c.tags[len(c.tags)-1].isArray {
		return c.opts.listItem()
	} else if !c.haveKey {
		panic(&ConsistencyError{Message: "value event in object with no pending key"})
	}
	c.haveKey = false
	return c.key
}

// typeAttr renders the type attribute for evt in typed mode, or "".
func (c *Converter) typeAttr(evt Event) string {
	if !c.opts.typed() {
		return ""
	}
	var name string
	switch evt.Kind {
	case BeginObject:
		name = "object"
	case BeginArray:
		name = "array"
	default:
		switch evt.Token {
		case String:
			name = "string"
		case Integer, Number:
			name = "number"
		case True, False:
			name = "boolean"
		case Null:
			name = "null"
		default:
			panic(&ConsistencyError{Message: fmt.Sprintf("invalid value token %v", evt.Token)})
		}
	}
	return ` type="` + name + `"`
}

func (c *Converter) format(depth int, line string) string {
	if c.opts.formatted() {
		return strings.Repeat("  ", depth) + line
	}
	return line
}

func valueLine(tag, attr string, evt Event) string {
	etag := XMLEscape(tag)
	if evt.Text == "" && evt.Token == String {
		// An empty string renders as a self-closing element.
		return "<" + etag + attr + "/>"
	}
	return "<" + etag + attr + ">" + XMLEscape(evt.Text) + "</" + etag + ">"
}

// A ConsistencyError reports an event sequence that violates the nesting
// contract: unbalanced begin/end events, a key outside an object, or a value
// in an object with no key. It indicates a bug in the event producer rather
// than a problem with user input, so the Converter panics with it instead of
// returning it.
type ConsistencyError struct {
	Message string
}

// Error satisfies the error interface.
func (c *ConsistencyError) Error() string { return "inconsistent event stream: " + c.Message }
