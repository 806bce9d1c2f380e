package safe

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/charmingruby/optres/option"
	"github.com/charmingruby/optres/result"
)

// Storage is the read side of a key-value facility. Absence is reported with
// ok == false and a nil error.
//
//go:generate mockgen -package=safe -destination=mock_storage.go --build_flags=--mod=mod . Storage
type Storage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
}

// Store reads one named storage scope.
type Store struct {
	settings
	name    string
	backend Storage
}

// NewStore wraps backend under name, which is used in logs and metrics.
func NewStore(name string, backend Storage, opts ...Option) *Store {
	s := &Store{settings: newSettings(opts), name: name, backend: backend}
	s.logger = s.logger.Named("safe.storage").With(zap.String("scope", name))
	return s
}

// Name returns the scope name.
func (s *Store) Name() string {
	return s.name
}

// Get returns the text stored under key, or None when the key is absent. A
// backend failure is logged and also yields None; use Lookup to observe it.
func (s *Store) Get(ctx context.Context, key string) option.Option[string] {
	res := s.Lookup(ctx, key)
	if err, failed := res.Err(); failed {
		s.logger.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		return option.None[string]()
	}
	return res.UnwrapOr(option.None[string]())
}

// Lookup is Get with backend failures kept as Err.
func (s *Store) Lookup(ctx context.Context, key string) result.Result[option.Option[string], error] {
	started := time.Now()
	value, ok, err := s.backend.GetItem(ctx, key)
	if err != nil {
		s.metrics.observe(s.name+"_get", outcomeErr, started)
		return result.Err[option.Option[string]](fmt.Errorf("safe: reading %s storage key %q: %w", s.name, key, err))
	}
	if !ok {
		s.metrics.observe(s.name+"_get", outcomeAbsent, started)
	} else {
		s.metrics.observe(s.name+"_get", outcomeOK, started)
	}
	return result.Ok[option.Option[string], error](option.FromOk(value, ok))
}

// GetJSON reads key and decodes the stored text as JSON. An absent key is an
// Err matching ErrNotFound, since None carries no reason of its own.
func GetJSON[T any](ctx context.Context, s *Store, key string) result.Result[T, error] {
	return result.AndThen(s.Lookup(ctx, key), func(stored option.Option[string]) result.Result[T, error] {
		text, ok := stored.Get()
		if !ok {
			return result.Err[T](fmt.Errorf("%w: %s storage key %q", ErrNotFound, s.name, key))
		}
		return ParseJSON[T](text)
	})
}

// Storages groups the two named scopes: Local persists across runs, Session
// lives for the process.
type Storages struct {
	Local   *Store
	Session *Store
}

// NewStorages wraps the two backends with the same options.
func NewStorages(local, session Storage, opts ...Option) Storages {
	return Storages{
		Local:   NewStore("local", local, opts...),
		Session: NewStore("session", session, opts...),
	}
}
