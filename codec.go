package jsonable

import (
	"sync"

	gojson "github.com/goccy/go-json"
)

// Codec is the wire codec behind the round-trip engine. The default
// implementation is backed by goccy/go-json and may be swapped with SetCodec
// (for instance to pin encoding/json for byte-identical output).
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, out any) error
	Name() string
}

var (
	codecMu      sync.RWMutex
	currentCodec Codec = gojsonCodec{}
)

// SetCodec replaces the wire codec; nil values are ignored. Swapping the
// codec after boundaries have started handling payloads is not supported.
func SetCodec(c Codec) {
	if c == nil {
		return
	}
	codecMu.Lock()
	currentCodec = c
	codecMu.Unlock()
}

// UseDefaultCodec restores the go-json backed codec.
func UseDefaultCodec() {
	codecMu.Lock()
	currentCodec = gojsonCodec{}
	codecMu.Unlock()
}

func activeCodec() Codec {
	codecMu.RLock()
	c := currentCodec
	codecMu.RUnlock()
	return c
}

// gojsonCodec wraps the goccy/go-json implementation.
type gojsonCodec struct{}

func (gojsonCodec) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (gojsonCodec) Unmarshal(data []byte, out any) error { return gojson.Unmarshal(data, out) }

func (gojsonCodec) Name() string { return "go-json" }
