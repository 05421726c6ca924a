package format

import (
	"io"

	"github.com/dhamidi/acels/ace/parser"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackEncoder writes the same structure as JSONEncoder in msgpack.
type MsgpackEncoder struct {
	enc *msgpack.Encoder
}

func NewMsgpackEncoder(w io.Writer) *MsgpackEncoder {
	return &MsgpackEncoder{enc: msgpack.NewEncoder(w)}
}

func (e *MsgpackEncoder) Encode(doc *parser.Document) error {
	return e.enc.Encode(documentToTree(doc))
}
