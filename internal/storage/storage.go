// Package storage defines the key-value port shared by every repository and
// its backends: an in-process map, SQL (SQLite or PostgreSQL), and Redis.
//
// Values are opaque strings. Structured values are JSON documents; booleans
// are the strings "true" and "false".
package storage

import (
	"context"
	"errors"
)

// ErrMalformed is returned when a stored value can't be decoded.
var ErrMalformed = errors.New("malformed stored value")

// Storage is a durable string key-value store.
type Storage interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set creates or overwrites key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
