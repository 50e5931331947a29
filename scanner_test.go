// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jxml_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jxml"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jxml.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jxml.Token{jxml.True, jxml.False, jxml.Null}},

		// Punctuation
		{"{ [ ] } , :", []jxml.Token{
			jxml.LBrace, jxml.LSquare, jxml.RSquare, jxml.RBrace, jxml.Comma, jxml.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jxml.Token{jxml.String, jxml.String, jxml.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jxml.Token{jxml.String}},
		{`"\u0000\u01fc\uAA9c"`, []jxml.Token{jxml.String}},
		{`"😀"`, []jxml.Token{jxml.String}}, // surrogate pair

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jxml.Token{
			jxml.Integer, jxml.Integer, jxml.Integer,
			jxml.Number, jxml.Number, jxml.Number, jxml.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jxml.Token{
			jxml.LBrace, jxml.True, jxml.Comma, jxml.String, jxml.Colon,
			jxml.Integer, jxml.Null, jxml.LSquare, jxml.RSquare, jxml.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jxml.Token{
			jxml.LBrace,
			jxml.String, jxml.Colon, jxml.True, jxml.Comma,
			jxml.String, jxml.Colon,
			jxml.LSquare,
			jxml.Null, jxml.Comma, jxml.Integer, jxml.Comma, jxml.Number,
			jxml.RSquare,
			jxml.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jxml.Token{
			jxml.String, jxml.Comma, jxml.Integer, jxml.Comma, jxml.True,
			jxml.False, jxml.LSquare, jxml.String, jxml.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jxml.Token
		s := jxml.NewScanner(strings.NewReader(test.input))
		for s.Next() {
			got = append(got, s.Token())
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		estr  string
	}{
		// Unmatched literal keywords.
		{`tru`, `at 1:0: unknown constant "tru"`},
		{`{"a": tru}`, `at 1:6: unknown constant "tru"`},
		{`nil`, `at 1:0: unknown constant "nil"`},
		{`falsey`, `at 1:0: unknown constant "falsey"`},

		// Malformed strings.
		{`"abc`, `at 1:4: unterminated string: EOF`},
		{`"a\qb"`, `at 1:4: invalid 'q' after escape`},
		{`"a\u12g4"`, `at 1:7: invalid Unicode escape: not a hex digit: 'g'`},
		{"\"a\tb\"", `at 1:3: unescaped control '\t'`},
		{`"\ud83d"`, `at 1:8: missing low surrogate: got '"'`},
		{`"\ud83d\n"`, `at 1:9: missing low surrogate: got 'n'`},
		{`"\ud83d\u0020"`, `at 1:13: invalid low surrogate 0020`},
		{`"\ude00"`, `at 1:7: unpaired low surrogate de00`},

		// Malformed numbers.
		{`01`, `at 1:0: extra leading zeroes`},
		{`-01.5`, `at 1:0: extra leading zeroes`},
		{`1.`, `at 1:2: no digits after decimal point`},
		{`1.e5`, `at 1:3: no digits after decimal point`},
		{`1e+`, `at 1:3: missing exponent digits`},
		{`-x`, `at 1:1: got 'x', want digit`},

		// Stray characters.
		{`@`, `at 1:1: unexpected '@'`},
		{"[1, \x01]", `at 1:5: unexpected '\x01'`},

		// Comments are rejected unless enabled.
		{`// nope`, `at 1:1: unexpected '/'`},
	}

	for _, test := range tests {
		s := jxml.NewScanner(strings.NewReader(test.input))
		for s.Next() {
		}
		if s.Err() == nil {
			t.Errorf("Input: %#q: scan did not report an error", test.input)
			continue
		}
		if got := s.Err().Error(); got != test.estr {
			t.Errorf("Input: %#q\nError: got %q, want %q", test.input, got, test.estr)
		}
	}
}

func TestScanner_withComments(t *testing.T) {
	tests := []struct {
		input string
		want  []jxml.Token
		coms  []string
	}{
		{"/* block comment */\n\n\n", []jxml.Token{jxml.BlockComment},
			[]string{"/* block comment */"}},
		{"// line 1\n\n// line 2\n", []jxml.Token{jxml.LineComment, jxml.LineComment},
			[]string{"// line 1\n", "// line 2\n"}}, // N.B. includes terminating newline, if present
		{"// line at EOF", []jxml.Token{jxml.LineComment},
			[]string{"// line at EOF"}},
		{`{
 "x": 1, // howdy do
 "y" /* hide me */ : 2.0 }`, []jxml.Token{
			jxml.LBrace, jxml.String, jxml.Colon, jxml.Integer, jxml.Comma, jxml.LineComment,
			jxml.String, jxml.BlockComment, jxml.Colon, jxml.Number, jxml.RBrace,
		}, []string{
			"// howdy do\n", "/* hide me */",
		}},
	}

	for _, test := range tests {
		var got []jxml.Token
		var coms []string
		s := jxml.NewScanner(strings.NewReader(test.input))
		s.AllowComments(true)
		for s.Next() {
			got = append(got, s.Token())
			if tok := s.Token(); tok == jxml.LineComment || tok == jxml.BlockComment {
				coms = append(coms, string(s.Text()))
			}
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
		if diff := cmp.Diff(test.coms, coms); diff != "" {
			t.Errorf("Input: %#q\nComments: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerLoc(t *testing.T) {
	type tokPos struct {
		Tok jxml.Token
		Pos string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", nil},
		{"{ }", []tokPos{{jxml.LBrace, "1:0-1"}, {jxml.RBrace, "1:2-3"}}},
		{`"foo" 15`, []tokPos{{jxml.String, "1:0-5"}, {jxml.Integer, "1:6-8"}}},
		{"true\n false\n", []tokPos{{jxml.True, "1:0-4"}, {jxml.False, "2:1-6"}}},
		{"[1,\n 2]", []tokPos{
			{jxml.LSquare, "1:0-1"}, {jxml.Integer, "1:1-2"}, {jxml.Comma, "1:2-3"},
			{jxml.Integer, "2:1-2"}, {jxml.RSquare, "2:2-3"},
		}},
	}
	for _, tc := range tests {
		var got []tokPos
		s := jxml.NewScanner(strings.NewReader(tc.input))
		for s.Next() {
			got = append(got, tokPos{s.Token(), s.Location().String()})
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestScannerText(t *testing.T) {
	const input = `{"key": "a\tb c", "n": -3.25e2}`
	want := []string{`{`, `"key"`, `:`, `"a\tb c"`, `,`, `"n"`, `:`, `-3.25e2`, `}`}

	var got []string
	s := jxml.NewScanner(strings.NewReader(input))
	for s.Next() {
		got = append(got, string(s.Text()))
	}
	if s.Err() != nil {
		t.Fatalf("Next failed: %v", s.Err())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Input: %#q\nText: (-want, +got)\n%s", input, diff)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},               // missing quotes
		{`"missing quote`, ``, true}, // missing quotes
		{`missing quote"`, ``, true}, // missing quotes
		{`""`, "", false},
		{`"a b c"`, "a b c", false},
		{`"a\tb\nc"`, "a\tb\nc", false},
		{`"\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t", false},
		{`"a b"`, "a b", false},
		{`"Ǽ"`, "Ǽ", false},
		{`"𝄞"`, "\U0001d11e", false}, // surrogate pair combined
		{`"😀"`, "\U0001f600", false},
		{`"trailing\"`, "", true}, // incomplete escape
	}
	for _, test := range tests {
		got, err := jxml.Unquote([]byte(test.input))
		if test.fail {
			if err == nil {
				t.Errorf("Unquote %#q: got %#q, wanted error", test.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unquote %#q: unexpected error: %v", test.input, err)
		} else if string(got) != test.want {
			t.Errorf("Unquote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestXMLEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a & b", "a &amp; b"},
		{"<tag>", "&lt;tag&gt;"},
		{`say "cheese"`, "say &quot;cheese&quot;"},
		{"it's", "it&apos;s"},
		{"&<>\"'", "&amp;&lt;&gt;&quot;&apos;"},
		{"números sãø", "números sãø"}, // multibyte text passes through
	}
	unescape := strings.NewReplacer(
		"&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'",
	)
	for _, test := range tests {
		got := jxml.XMLEscape(test.input)
		if got != test.want {
			t.Errorf("XMLEscape %#q: got %#q, want %#q", test.input, got, test.want)
		}
		if back := unescape.Replace(got); back != test.input {
			t.Errorf("Unescape %#q: got %#q, want %#q", got, back, test.input)
		}
	}
}
