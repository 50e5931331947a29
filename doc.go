// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jxml converts JSON documents to XML as a stream, without
// materializing the parsed document in memory.
//
// The conversion is a pipeline of three pull-based stages. Each stage
// produces one unit of output per pull, reading only as much of its input as
// that unit requires, so the memory needed for a conversion is bounded by
// the nesting depth of the document rather than its size.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON per RFC 8259.
// Construct a scanner from an io.Reader and call its Next method to iterate
// over the input. Next advances to the next token and reports whether one is
// available:
//
//	s := jxml.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns false when the input is exhausted or an error occurs; Err
// returns nil in the former case and a *jxml.ScanError describing the
// position and nature of the failure in the latter.
//
// # Parsing
//
// The Parser type turns the token stream into a sequence of structural
// events: the opening and closing of objects and arrays, member keys, and
// scalar values. It verifies the grammar as it goes, so the event sequence
// it delivers is always well-nested:
//
//	p := jxml.NewParser(input)
//	for p.Next() {
//	   log.Printf("Next event: %v", p.Event())
//	}
//	if p.Err() != nil {
//	   log.Fatalf("Parse failed: %v", p.Err())
//	}
//
// A grammar violation stops the parse with a *jxml.SyntaxError recording the
// position of the offending token and the token kinds that were acceptable
// there. To process events with callbacks rather than a pull loop, use Walk
// with a Handler.
//
// # Converting
//
// The Converter type renders an event sequence as lines of XML text, one
// line per pull. Use Next and Line to drain it incrementally, or WriteTo to
// copy the whole rendering to an io.Writer:
//
//	c := jxml.NewConverter(input, &jxml.Options{Typed: true})
//	if _, err := c.WriteTo(os.Stdout); err != nil {
//	   log.Fatalf("Convert failed: %v", err)
//	}
//
// Options select the root and list-item element tags, an optional header
// line, type attributes, and indentation. Values and attribute text are
// escaped with XML entities. If conversion fails partway, the lines already
// produced are not a complete XML document and the caller should discard
// them.
//
// Scanners, Parsers, and Converters are one-shot: a single instance can be
// driven to completion exactly once, and processing the same input again
// means constructing a fresh instance over a fresh reader.
package jxml
