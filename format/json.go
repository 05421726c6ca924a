package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/acels/ace/parser"
)

type JSONEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(documentToTree(e.doc), "", "  ")
}
