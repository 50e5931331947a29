// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jxml converts a JSON document to XML, reading and writing as a
// stream so that arbitrarily large inputs can be processed in bounded
// memory.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jxml"
	"github.com/tailscale/hujson"
)

var cli struct {
	Header    string `help:"Header line to prepend to the output, e.g. an XML declaration." aliases:"hd" placeholder:"LINE"`
	Root      string `help:"Root element tag name." short:"r" default:"root"`
	ListItem  string `help:"Element tag for array members." aliases:"li" default:"li" placeholder:"TAG"`
	Typed     bool   `help:"Annotate elements with a type attribute." short:"t"`
	Formatted bool   `help:"Indent output (may substantially increase its size)." short:"f"`
	Loose     bool   `help:"Accept comments and trailing commas in the input. This buffers the whole input in memory."`

	Infile  string `arg:"" optional:"" help:"Input JSON file (default: stdin)." type:"path"`
	Outfile string `arg:"" optional:"" help:"Output XML file (default: stdout)." type:"path"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("jxml"),
		kong.Description("Convert a JSON document to XML."),
		kong.UsageOnError(),
	)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jxml: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in, err := openInput(cli.Infile)
	if err != nil {
		return err
	}
	defer in.Close()

	if cli.Loose {
		in, err = standardize(in)
		if err != nil {
			return err
		}
	}

	out, err := openOutput(cli.Outfile)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	c := jxml.NewConverter(in, &jxml.Options{
		Header:    cli.Header,
		Root:      cli.Root,
		ListItem:  cli.ListItem,
		Typed:     cli.Typed,
		Formatted: cli.Formatted,
	})
	if _, err := c.WriteTo(w); err != nil {
		w.Flush()
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Close()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// standardize reads all of r and rewrites it as standard JSON, erasing
// comments and trailing commas. This trades the bounded-memory property for
// laxity, which is why it is opt-in.
func standardize(r io.ReadCloser) (io.ReadCloser, error) {
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(std)), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
