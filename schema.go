package jsonable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// schemaResource is the synthetic URL handed to the compiler; schemas here
// are in-memory documents, never fetched.
const schemaResource = "mem:boundary"

// Schema wraps a compiled draft-4 structural schema together with its raw
// document. Immutable once built.
type Schema struct {
	doc      string
	compiled *jsonschema.Schema
}

// CompileSchema compiles a JSON Schema document (draft-4 semantics).
func CompileSchema(doc string) (*Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft4
	if err := c.AddResource(schemaResource, strings.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("jsonable: parse schema: %w", err)
	}
	compiled, err := c.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("jsonable: compile schema: %w", err)
	}
	return &Schema{doc: doc, compiled: compiled}, nil
}

// MustSchema is CompileSchema for schemas known at definition time; it
// panics on a malformed document.
func MustSchema(doc string) *Schema {
	s, err := CompileSchema(doc)
	if err != nil {
		panic(err)
	}
	return s
}

// CompileSchemaYAML compiles a schema written as a YAML document by
// canonicalizing it to JSON first.
func CompileSchemaYAML(doc []byte) (*Schema, error) {
	var raw any
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("jsonable: parse schema yaml: %w", err)
	}
	canon, err := Canonicalize(raw)
	if err != nil {
		return nil, err
	}
	data, err := activeCodec().Marshal(canon)
	if err != nil {
		return nil, fmt.Errorf("jsonable: encode schema yaml: %w", err)
	}
	return CompileSchema(string(data))
}

// Document returns the raw schema document.
func (s *Schema) Document() string { return s.doc }

// Validate checks instance against the schema. It returns nil on success and
// a *ValidationError carrying the schema, the instance and the flattened
// issue list on mismatch. The instance is expected to be interchange-shaped;
// pass round-tripped data, not arbitrary Go values.
func (s *Schema) Validate(instance any) error {
	err := s.compiled.Validate(instance)
	if err == nil {
		return nil
	}
	ve := &ValidationError{Schema: s, Instance: instance, Cause: err}
	var cause *jsonschema.ValidationError
	if errors.As(err, &cause) {
		ve.Issues = flattenIssues(cause)
	}
	return ve
}

// flattenIssues collects the leaves of the validator's cause tree; inner
// nodes repeat information the leaves already carry.
func flattenIssues(ve *jsonschema.ValidationError) []Issue {
	var out []Issue
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, Issue{
				Path:    pointerOrRoot(e.InstanceLocation),
				Keyword: lastSegment(e.KeywordLocation),
				Message: e.Message,
			})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func lastSegment(kw string) string {
	if i := strings.LastIndex(kw, "/"); i >= 0 {
		return kw[i+1:]
	}
	return kw
}
