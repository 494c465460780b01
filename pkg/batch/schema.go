package batch

import (
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of a batch [File].
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	s := r.Reflect(&File{})
	s.Title = "ospath batch file"

	return s
}
