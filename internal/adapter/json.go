package adapter

import (
	"encoding/json"

	"github.com/gowebpki/jcs"
)

// JSON defines an interface for JSON operations to enable mocking
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// RealJSON implements JSON using the standard encoding/json package
type RealJSON struct{}

// NewJSON creates a new real JSON implementation
func NewJSON() JSON {
	return &RealJSON{}
}

func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// CanonicalJSON marshals values into RFC 8785 (JCS) form so equal values always produce equal bytes
type CanonicalJSON struct {
	json JSON
}

// NewCanonicalJSON wraps a JSON implementation with JCS canonicalization
func NewCanonicalJSON(j JSON) JSON {
	return &CanonicalJSON{json: j}
}

func (c *CanonicalJSON) Marshal(v interface{}) ([]byte, error) {
	raw, err := c.json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jcs.Transform(raw)
}

func (c *CanonicalJSON) Unmarshal(data []byte, v interface{}) error {
	return c.json.Unmarshal(data, v)
}
