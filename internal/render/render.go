package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/location-recorder/internal/config"
)

const (
	indent    = 2
	lexer     = "yaml"
	formatter = "terminal256"
	style     = "monokai"
)

// Printer renders documents as human-readable YAML.
type Printer struct {
	colour bool
}

// NewPrinter returns a Printer. When colour is set the output carries ANSI
// escape sequences for terminal display.
func NewPrinter(colour bool) *Printer {
	return &Printer{colour: colour}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Print writes doc to w. Nothing is written if the document cannot be encoded.
func (p *Printer) Print(w io.Writer, doc config.Document) error {
	text, err := Marshal(doc)
	if err != nil {
		return err
	}

	if p.colour {
		if err := quick.Highlight(w, string(text), lexer, formatter, style); err != nil {
			return fmt.Errorf("highlight output: %w", err)
		}
		return nil
	}

	if _, err := w.Write(text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Marshal encodes doc as YAML with sorted mapping keys.
func Marshal(doc config.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)

	if err := enc.Encode(doc.Root()); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}
