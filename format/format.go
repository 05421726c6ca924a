// Package format renders parsed ACE documents: as JSON, as an indented tree
// with positions, as msgpack, or back to source text.
package format

import (
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/acels/ace/parser"
)

type Encoder interface {
	Encode(doc *parser.Document) error
}

var encoders = map[string]func(io.Writer) Encoder{
	"json":    func(w io.Writer) Encoder { return NewJSONEncoder(w) },
	"tree":    func(w io.Writer) Encoder { return NewTreeEncoder(w) },
	"msgpack": func(w io.Writer) Encoder { return NewMsgpackEncoder(w) },
	"source":  func(w io.Writer) Encoder { return NewSourceEncoder(w) },
}

// Formats lists the names accepted by NewEncoder.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	newEncoder, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (supported: %v)", name, Formats())
	}
	return newEncoder(w), nil
}
