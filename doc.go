package jsonable

// Package jsonable enforces the JSONable boundary contract: functions that
// sit between components should communicate with plain interchange data, not
// with behavior-carrying objects.
//
// The package provides:
//
// - A canonicalizer that reduces timestamped values, custom-serializable
//   values and iterable sequences to interchange-safe data (Canonicalize)
// - A round-trip engine that encodes a value to JSON text and decodes it
//   back (Encode/Decode/Roundtrip) over a pluggable wire codec
// - Schema tagging and validation for boundary consumers (Tag/Wrap),
//   delegating structural checks to a draft JSON Schema validator
// - A name-keyed Registry for hosts that route payloads to boundaries
//
// Design policy:
// - Keep the public API in the root package; test assertions live under
//   boundarytest/ and runnable demos under examples/.
// - Validation is fail-closed: a consumer never runs on a rejected payload.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  tagged := jsonable.Tag(jsonable.MustSchema(`{"type":"number"}`), double)
//  consume, err := jsonable.Wrap(jsonable.DefaultConfig(), tagged)
//  out, err := consume(payload)
//
// A consumer that produces the same result for its original argument and for
// the round-tripped copy of that argument, and whose output is itself
// encodable, respects the boundary; boundarytest.Assert checks all three
// legs at once.
