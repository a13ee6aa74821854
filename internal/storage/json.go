package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// GetJSON decodes the JSON value under key into v. ok is false if the key is
// absent or holds an empty string. Decoding failures wrap ErrMalformed.
func GetJSON(ctx context.Context, s Storage, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok || raw == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: key %q: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// SetJSON encodes v as JSON and stores it under key.
func SetJSON(ctx context.Context, s Storage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}

// GetBool reads a boolean stored as "true"/"false". Any other stored value is false.
func GetBool(ctx context.Context, s Storage, key string) (value, ok bool, err error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, false, err
	}
	return raw == "true", true, nil
}

// SetBool stores a boolean as "true"/"false".
func SetBool(ctx context.Context, s Storage, key string, value bool) error {
	return s.Set(ctx, key, strconv.FormatBool(value))
}
