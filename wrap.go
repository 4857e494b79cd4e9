package jsonable

// Wrap builds the validated consumer for t, capturing cfg.Validate at
// decoration time.
//
// With validation disabled the underlying consumer is returned unchanged:
// no round-trip, no schema check. With validation enabled each call
// round-trips the argument, validates the round-tripped copy against the
// declared schema, and only then invokes the consumer — with the original
// argument, not the copy. Validation failure is fail-closed: the consumer
// never runs and the caller receives a *ValidationError. Errors from the
// consumer's own logic propagate unchanged.
//
// Wrapping an untagged consumer returns ErrMissingSchema.
func Wrap(cfg Config, t *Tagged) (Consumer, error) {
	if t == nil || t.schema == nil {
		return nil, ErrMissingSchema
	}
	if !cfg.Validate {
		return t.fn, nil
	}
	schema, fn := t.schema, t.fn
	return func(v any) (any, error) {
		decoded, err := Roundtrip(v)
		if err != nil {
			return nil, err
		}
		if err := schema.Validate(decoded); err != nil {
			return nil, err
		}
		return fn(v)
	}, nil
}

// MustWrap is Wrap for boundaries assembled at startup; it panics on the
// missing-schema wiring error.
func MustWrap(cfg Config, t *Tagged) Consumer {
	w, err := Wrap(cfg, t)
	if err != nil {
		panic(err)
	}
	return w
}
