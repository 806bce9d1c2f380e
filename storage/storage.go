// Package storage provides the key-value backends behind the safe storage
// adapters: an in-process LRU for the session scope and Redis for the
// persistent local scope.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by a backend used after Close.
var ErrClosed = errors.New("storage: backend closed")

// Backend is a string key-value facility. GetItem reports absence with
// ok == false and a nil error.
type Backend interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}
