package core

import (
	"encoding/json"
	"math"
	"strconv"
)

// SquareResult reports a computed square.
type SquareResult struct {
	Input  string `json:"input"`
	Square string `json:"square"`
	Policy string `json:"policy"`
}

// ValueResult holds a parsed value for structured output.
type ValueResult struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

// MarshalJSON encodes NaN and infinities as strings, which JSON numbers cannot hold.
func (r ValueResult) MarshalJSON() ([]byte, error) {
	value := r.Value
	if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		value = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value any    `json:"value"`
	}{Kind: r.Kind, Value: value})
}
