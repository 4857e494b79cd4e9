package jsonable

// Consumer is a boundary function: it accepts one jsonable argument and
// returns a jsonable result (or nil when it exists only for side effects).
// The payload logic is arbitrary; the boundary cares only that argument and
// result are interchange-safe.
type Consumer func(v any) (any, error)

// Tagged bundles a Consumer with the schema its argument must satisfy.
// Attaching metadata to a function value is not portable in Go, so the
// association is explicit: Tag builds the bundle and Wrap reads it.
type Tagged struct {
	schema *Schema
	fn     Consumer
}

// Tag declares the schema for fn. Tagging does not alter call behavior;
// validation is added separately by Wrap.
func Tag(s *Schema, fn Consumer) *Tagged {
	return &Tagged{schema: s, fn: fn}
}

// Retag replaces the declared schema. The last write wins; wrappers built
// before the retag keep the schema they captured.
func (t *Tagged) Retag(s *Schema) *Tagged {
	t.schema = s
	return t
}

// Schema returns the declared schema, nil when untagged.
func (t *Tagged) Schema() *Schema { return t.schema }

// Call invokes the underlying consumer directly, without validation.
func (t *Tagged) Call(v any) (any, error) { return t.fn(v) }
