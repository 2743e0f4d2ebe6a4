package convert

import (
	json "github.com/goccy/go-json"

	"github.com/stringly-format/go-stringly/ir"
)

// ToJSON renders the flat encoding as JSON. The document shape is
// inferred with [ir.Infer]; map keys come out sorted.
func ToJSON(flat string) ([]byte, error) {
	return json.Marshal(ToAny(ir.Infer(flat)))
}

// FromJSON reduces a JSON document to the flat encoding.
func FromJSON(d []byte) (string, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return "", err
	}
	return FromAny(v).Encode(), nil
}
