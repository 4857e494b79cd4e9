package jsonable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boundable/jsonable"
)

func TestCompileSchema_Valid(t *testing.T) {
	s, err := jsonable.CompileSchema(`{"type":"number"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"number"}`, s.Document())
	require.NoError(t, s.Validate(float64(4)))
}

func TestCompileSchema_Malformed(t *testing.T) {
	_, err := jsonable.CompileSchema(`{"type":`)
	require.Error(t, err)

	_, err = jsonable.CompileSchema(`{"type":"no-such-type"}`)
	require.Error(t, err)
}

func TestMustSchema_PanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() { jsonable.MustSchema(`{"type":`) })
}

func TestValidate_Mismatch(t *testing.T) {
	s := jsonable.MustSchema(`{"type":"number"}`)
	err := s.Validate("foo")
	require.Error(t, err)

	ve, ok := jsonable.AsValidationError(err)
	require.True(t, ok)
	assert.Same(t, s, ve.Schema)
	assert.Equal(t, "foo", ve.Instance)
	require.NotEmpty(t, ve.Issues)
	assert.Equal(t, "/", ve.Issues[0].Path)
	assert.Equal(t, "type", ve.Issues[0].Keyword)
}

func TestValidate_IssuePathsPointIntoInstance(t *testing.T) {
	s := jsonable.MustSchema(`{"type":"array","items":{"type":"number"}}`)
	err := s.Validate([]any{float64(1), "x"})
	ve, ok := jsonable.AsValidationError(err)
	require.True(t, ok)
	require.NotEmpty(t, ve.Issues)
	assert.Equal(t, "/1", ve.Issues[0].Path)
}

func TestValidate_ObjectProperties(t *testing.T) {
	s := jsonable.MustSchema(`{
		"type": "object",
		"properties": {"amount": {"type": "number"}},
		"required": ["amount"]
	}`)
	require.NoError(t, s.Validate(map[string]any{"amount": float64(3)}))
	require.Error(t, s.Validate(map[string]any{}))
}

func TestCompileSchemaYAML(t *testing.T) {
	s, err := jsonable.CompileSchemaYAML([]byte(`
type: array
items:
  type: number
`))
	require.NoError(t, err)
	require.NoError(t, s.Validate([]any{float64(1)}))
	require.Error(t, s.Validate([]any{"x"}))
}
