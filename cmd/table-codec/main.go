// Package main provides the CLI entrypoint for table-codec.
//
// table-codec shows how typed values travel on the table-storage wire:
//   - Encodes properties from a YAML file for write-request bodies
//   - Encodes the same properties as query-filter literals
//   - Decodes a single filter literal back into its native value
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"table-codec/edm"
	"table-codec/internal/propfile"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		propsPath string
		mode      string
		decode    bool
		typeName  string
		text      string
	)

	flagSet := pflag.NewFlagSet("table-codec", pflag.ContinueOnError)
	flagSet.StringVar(&propsPath, "props", "", "path to a YAML property file")
	flagSet.StringVar(&mode, "mode", "body", "encoding to produce: body or query")
	flagSet.BoolVar(&decode, "decode", false, "decode one filter literal instead of encoding")
	flagSet.StringVar(&typeName, "type", "", "EDM wire identifier for --decode (empty means Edm.String)")
	flagSet.StringVar(&text, "text", "", "literal text for --decode, stripped of its decoration")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	if decode {
		return runDecode(typeName, text)
	}

	if propsPath == "" {
		return fmt.Errorf("either --props or --decode is required")
	}

	return runEncode(propsPath, mode)
}

func runEncode(path, mode string) error {
	if mode != "body" && mode != "query" {
		return fmt.Errorf("unknown mode %q: want body or query", mode)
	}

	file, err := propfile.LoadFile(path)
	if err != nil {
		return err
	}

	for _, p := range file.Properties {
		encoded, err := encodeProperty(p, mode)
		if err != nil {
			return fmt.Errorf("property %s: %w", p.Name, err)
		}

		fmt.Printf("%s\t%s\n", p.Name, encoded)
	}

	return nil
}

func encodeProperty(p propfile.Property, mode string) (string, error) {
	if mode == "query" {
		return edm.SerializeQueryValue(p.Tag, p.Value)
	}

	ok, err := edm.ValidateValue(p.Tag, p.Value)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%T value does not match %s", p.Value, p.Tag)
	}

	return edm.SerializeValue(p.Tag, p.Value)
}

func runDecode(typeName, text string) error {
	tag, err := edm.ParseType(typeName)
	if err != nil {
		return err
	}

	value, err := edm.UnserializeQueryValue(tag, text)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%v\n", tag, value)
	return nil
}
