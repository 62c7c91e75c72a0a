// Package wire holds the generic JSON node that component payloads travel in.
package wire

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Node is one parsed JSON object as received from, or sent to, the API.
type Node map[string]any

// Parse decodes a single JSON object.
func Parse(data []byte) (Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parsing wire node: %w", err)
	}
	return n, nil
}

// ParseList decodes a JSON array of objects.
func ParseList(data []byte) ([]Node, error) {
	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("parsing wire node list: %w", err)
	}
	return nodes, nil
}

// Has reports whether key is present, even if its value is null.
func (n Node) Has(key string) bool {
	_, ok := n[key]
	return ok
}

// Tag returns the numeric "type" discriminant.
func (n Node) Tag() (int, bool) {
	return n.Int("type")
}

func (n Node) String(key string) (string, bool) {
	s, ok := n[key].(string)
	return s, ok
}

// StringPtr returns nil when key is absent or not a string.
func (n Node) StringPtr(key string) *string {
	if s, ok := n[key].(string); ok {
		return &s
	}
	return nil
}

func (n Node) Bool(key string) (bool, bool) {
	b, ok := n[key].(bool)
	return b, ok
}

func (n Node) Int(key string) (int, bool) {
	return toInt(n[key])
}

// IntPtr returns nil when key is absent or not numeric.
func (n Node) IntPtr(key string) *int {
	if v, ok := toInt(n[key]); ok {
		return &v
	}
	return nil
}

// Snowflake reads an ID that may arrive as a string or a number.
func (n Node) Snowflake(key string) (uint64, bool) {
	switch v := n[key].(type) {
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		return id, err == nil
	default:
		i, ok := toInt(v)
		if !ok || i < 0 {
			return 0, false
		}
		return uint64(i), true
	}
}

// Object returns a nested object, accepting both Node and plain maps.
func (n Node) Object(key string) (Node, bool) {
	return asNode(n[key])
}

// Children returns the nested object sequence stored at key. An absent or
// null key yields an empty sequence; a present value that is not an array of
// objects yields ok == false.
func (n Node) Children(key string) ([]Node, bool) {
	raw, present := n[key]
	if !present || raw == nil {
		return nil, true
	}

	switch items := raw.(type) {
	case []Node:
		return items, true
	case []map[string]any:
		out := make([]Node, len(items))
		for i, m := range items {
			out[i] = Node(m)
		}
		return out, true
	case []any:
		out := make([]Node, 0, len(items))
		for _, item := range items {
			child, ok := asNode(item)
			if !ok {
				return nil, false
			}
			out = append(out, child)
		}
		return out, true
	default:
		return nil, false
	}
}

func asNode(v any) (Node, bool) {
	switch m := v.(type) {
	case Node:
		return m, true
	case map[string]any:
		return Node(m), true
	default:
		return nil, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	default:
		return 0, false
	}
}
