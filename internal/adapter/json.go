package adapter

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// JSON encodes and decodes the documents exchanged with the database, the engine and the agent
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	MarshalIndent(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
	// UnmarshalStrict rejects unknown fields and trailing data
	UnmarshalStrict(data []byte, v interface{}) error
}

type goccyJSON struct{}

// NewJSON returns a JSON codec backed by goccy/go-json
func NewJSON() JSON {
	return goccyJSON{}
}

func (goccyJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (goccyJSON) MarshalIndent(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (goccyJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (goccyJSON) UnmarshalStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after JSON document")
	}
	return nil
}
