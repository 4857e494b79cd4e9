package jsonable_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boundable/jsonable"
)

func TestRoundtrip_NumbersSurfaceAsFloat64(t *testing.T) {
	got, err := jsonable.Roundtrip(2)
	require.NoError(t, err)
	assert.Equal(t, float64(2), got)
}

func TestRoundtrip_ReducesToInterchangeShapes(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	in := map[string]any{
		"when":   at,
		"counts": seqOf(1, 2),
		"ticket": ticket{id: "t-1", owner: "alice"},
	}
	got, err := jsonable.Roundtrip(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"when":   "2024-03-01T12:30:00Z",
		"counts": []any{float64(1), float64(2)},
		"ticket": map[string]any{"id": "t-1", "owner": "alice"},
	}, got)
}

func TestEncode_SequenceMaterializesEagerly(t *testing.T) {
	data, err := jsonable.Encode(seqOf(seqOf(0), seqOf(0, 1), seqOf(0, 1, 2)))
	require.NoError(t, err)
	assert.JSONEq(t, `[[0],[0,1],[0,1,2]]`, string(data))
}

func TestEncode_UnconvertibleValueFails(t *testing.T) {
	_, err := jsonable.Encode(map[string]any{"fn": func() {}})
	_, ok := jsonable.AsConversionError(err)
	require.True(t, ok)
}

func TestDecode_MalformedText(t *testing.T) {
	_, err := jsonable.Decode([]byte(`{"open":`))
	require.Error(t, err)
}

// stdCodec pins encoding/json, exercising the codec seam.
type stdCodec struct{}

func (stdCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (stdCodec) Unmarshal(data []byte, out any) error { return json.Unmarshal(data, out) }

func (stdCodec) Name() string { return "encoding/json" }

func TestSetCodec_SwapsWireCodec(t *testing.T) {
	jsonable.SetCodec(stdCodec{})
	defer jsonable.UseDefaultCodec()

	got, err := jsonable.Roundtrip([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, got)

	// nil is ignored rather than breaking the engine
	jsonable.SetCodec(nil)
	_, err = jsonable.Roundtrip(1)
	require.NoError(t, err)
}
