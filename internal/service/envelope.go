package service

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// listOf decodes either a bare JSON array or an object wrapping the array under key.
func listOf[T any](raw json.RawMessage, key string) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}

	if raw[0] == '[' {
		var items []T
		err := json.Unmarshal(raw, &items)
		if err != nil {
			return nil, fmt.Errorf("failed to decode list: %w", err)
		}
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	err := json.Unmarshal(raw, &wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	items := []T{}
	if inner, ok := wrapped[key]; ok && !bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
		err = json.Unmarshal(inner, &items)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}
	}
	return items, nil
}

// oneOf decodes either a bare object or an object wrapping it under key.
func oneOf[T any](raw json.RawMessage, key string) (*T, error) {
	var wrapped map[string]json.RawMessage
	err := json.Unmarshal(raw, &wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	body := raw
	if inner, ok := wrapped[key]; ok {
		body = inner
	}

	var v T
	err = json.Unmarshal(body, &v)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &v, nil
}

// acked decodes the response of a write. An empty body means the backend only
// acknowledged it, which comes back as (nil, nil).
func acked[T any](raw json.RawMessage, key string) (*T, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return oneOf[T](raw, key)
}
