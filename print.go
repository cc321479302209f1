package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"mibk.dev/phpref/catalog"
)

type outputFormat string

const (
	textFormat outputFormat = "text"
	jsonFormat outputFormat = "json"
	yamlFormat outputFormat = "yaml"
)

func (f outputFormat) String() string { return string(f) }
func (f outputFormat) Type() string   { return "format" }

func (f *outputFormat) Set(s string) error {
	switch g := outputFormat(s); g {
	case textFormat, jsonFormat, yamlFormat:
		*f = g
		return nil
	}
	return fmt.Errorf("unknown format %q", s)
}

// Snippets span lines; text output keeps one entry per line.
var flatten = strings.NewReplacer("\n", `\n`, "\t", `\t`)

func printEntries(w io.Writer, entries []catalog.Entry, format outputFormat) error {
	switch format {
	case jsonFormat:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "\t")
		return enc.Encode(entries)
	case yamlFormat:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding yaml: %v", err)
		}
		return enc.Close()
	}

	buf := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(buf, "%v\t%s", e.Category, flatten.Replace(e.Snippet))
		if e.Note != "" {
			fmt.Fprintf(buf, "\t// %s", e.Note)
		}
		buf.WriteByte('\n')
	}
	return buf.Flush()
}
