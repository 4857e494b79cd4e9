package jsonable

// Encode canonicalizes v and marshals the result to interchange text.
// A value with no reduction to interchange shapes yields a *ConversionError.
func Encode(v any) ([]byte, error) {
	c, err := Canonicalize(v)
	if err != nil {
		return nil, err
	}
	return activeCodec().Marshal(c)
}

// Decode parses interchange text back into plain interchange shapes.
// Numbers surface as float64.
func Decode(data []byte) (any, error) {
	var out any
	if err := activeCodec().Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Roundtrip encodes v and immediately decodes the result. The returned value
// is composed purely of interchange shapes; whether it behaves like v under
// a given consumer is exactly the property boundarytest checks, not a
// guarantee made here.
func Roundtrip(v any) (any, error) {
	data, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
