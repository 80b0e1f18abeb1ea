package mir4

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number accepts both `12` and `"12"`, the upstream API is not
// consistent about which form numeric fields arrive in.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Count is Number for integer fields.
type Count int64

func (c *Count) UnmarshalJSON(b []byte) error {
	var n Number
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	*c = Count(n)
	return nil
}

// grade may arrive as null for unupgraded holy stuff
type grade string

func (g *grade) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*g = "0"
		return nil
	}
	return json.Unmarshal(b, (*string)(g))
}

func isEmptyArray(b []byte) bool {
	trimmed := bytes.TrimSpace(b)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// equipItem payloads are an object of decks when the character has any
// equipment configured and an empty array when it has none, so both
// shapes have to be sniffed for.
func unmarshalDeckMap[T any](b []byte, out *map[string]map[string]T) error {
	if isEmptyArray(b) {
		*out = map[string]map[string]T{}
		return nil
	}
	return json.Unmarshal(b, (*map[string]map[string]T)(out))
}

// flat variant of unmarshalDeckMap for slot maps without deck sets
func unmarshalSlotMap[T any](b []byte, out *map[string]T) error {
	if isEmptyArray(b) {
		*out = map[string]T{}
		return nil
	}
	return json.Unmarshal(b, (*map[string]T)(out))
}
