// Package schema validates converted documents against the embedded JSON
// schemas that define the output format.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed *.schema.json
var files embed.FS

const baseURL = "https://schemas.mudconvert.local/"

// Validator holds one compiled schema per document kind.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// New compiles the embedded schemas for kinds "zone" and "player".
//
// Postcondition: returns a ready Validator or a non-nil error naming the
// schema that failed to compile.
func New() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7

	v := &Validator{schemas: map[string]*jsonschema.Schema{}}
	for _, kind := range []string{"zone", "player"} {
		name := kind + ".schema.json"
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded schema %s: %w", name, err)
		}
		if err := c.AddResource(baseURL+name, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("adding schema %s: %w", name, err)
		}
		s, err := c.Compile(baseURL + name)
		if err != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", name, err)
		}
		v.schemas[kind] = s
	}
	return v, nil
}

// Validate checks a JSON document of the given kind.
//
// Precondition: doc is a complete JSON value.
// Postcondition: returns nil when doc conforms; a *jsonschema.ValidationError
// describing every violation when it does not.
func (v *Validator) Validate(kind string, doc []byte) error {
	s, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("no schema for document kind %q", kind)
	}
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return fmt.Errorf("decoding %s document: %w", kind, err)
	}
	return s.Validate(value)
}
