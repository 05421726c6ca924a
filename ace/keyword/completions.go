package keyword

import "github.com/dhamidi/acels/ace/marker"

// Completions is the default candidate table used by the query engine.
var Completions = marker.Table{
	marker.Statement: Statements,
	marker.Attribute: Attributes,
}
