// Package store keeps an in-memory, ordered view of one API resource and
// reconciles it locally after every create, update and delete, so callers do
// not have to reload after each mutation.
//
// A Store serializes its own operations: a Delete issued while a Load is in
// flight waits for the Load to finish. State accessors never wait on the
// network.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
)

// Backend is the subset of repuestos.ResourceClient a Store needs.
type Backend[T repuestos.Entity, C any, U any] interface {
	Resource() string
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, request *C) (*T, error)
	Update(ctx context.Context, id int, request *U) (*T, error)
	Delete(ctx context.Context, id int) error
}

type options struct {
	initialLoad bool
	notifier    repuestos.Notifier
	logger      repuestos.Logger
}

// Option configures a Store.
type Option func(*options)

// WithoutInitialLoad skips the Load normally run by New.
func WithoutInitialLoad() Option {
	return func(o *options) {
		o.initialLoad = false
	}
}

// WithNotifier publishes an event after every successful mutation.
func WithNotifier(notifier repuestos.Notifier) Option {
	return func(o *options) {
		if notifier != nil {
			o.notifier = notifier
		}
	}
}

// WithLogger logs failed operations and notifications.
func WithLogger(logger repuestos.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Store holds the records of one resource in server order.
type Store[T repuestos.Entity, C any, U any] struct {
	backend  Backend[T, C, U]
	notifier repuestos.Notifier
	logger   repuestos.Logger

	// opMu serializes operations; mu guards the state below.
	opMu    sync.Mutex
	mu      sync.RWMutex
	items   []T
	loading bool
	errMsg  string
}

// New creates a store over backend and, unless WithoutInitialLoad is given,
// runs Load once. A failed initial load is only recorded in Err.
func New[T repuestos.Entity, C any, U any](ctx context.Context, backend Backend[T, C, U], opts ...Option) *Store[T, C, U] {
	o := options{
		initialLoad: true,
		notifier:    repuestos.NewNoOpNotifier(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[T, C, U]{
		backend:  backend,
		notifier: o.notifier,
		logger:   o.logger,
		items:    []T{},
	}

	if o.initialLoad {
		_ = s.Load(ctx)
	}

	return s
}

// Resource returns the resource this store mirrors.
func (s *Store[T, C, U]) Resource() string {
	return s.backend.Resource()
}

// Load replaces the items with the current server list. On failure the items
// are left untouched and the error is recorded and returned.
func (s *Store[T, C, U]) Load(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	items, err := s.backend.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		s.fail("loading", err)

		return err
	}

	if items == nil {
		items = []T{}
	}

	s.items = items

	return nil
}

// Create sends request and appends the created record.
func (s *Store[T, C, U]) Create(ctx context.Context, request *C) (*T, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	created, err := s.backend.Create(ctx, request)
	if err != nil {
		s.recordFailure("creating", err)

		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()

	s.notify(ctx, repuestos.ActionCreated, (*created).Key())

	return created, nil
}

// Update sends request and replaces, in place, the item whose key is id.
// Other items are left untouched.
func (s *Store[T, C, U]) Update(ctx context.Context, id int, request *U) (*T, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	updated, err := s.backend.Update(ctx, id, request)
	if err != nil {
		s.recordFailure("updating", err)

		return nil, err
	}

	s.mu.Lock()

	for i := range s.items {
		if s.items[i].Key() == id {
			s.items[i] = *updated
		}
	}

	s.mu.Unlock()

	s.notify(ctx, repuestos.ActionUpdated, id)

	return updated, nil
}

// Delete removes the record and drops the item whose key is id, keeping the
// order of the rest.
func (s *Store[T, C, U]) Delete(ctx context.Context, id int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	err := s.backend.Delete(ctx, id)
	if err != nil {
		s.recordFailure("deleting", err)

		return err
	}

	s.mu.Lock()

	kept := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if item.Key() != id {
			kept = append(kept, item)
		}
	}

	s.items = kept
	s.mu.Unlock()

	s.notify(ctx, repuestos.ActionDeleted, id)

	return nil
}

// Items returns a copy of the current items in server order.
func (s *Store[T, C, U]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, len(s.items))
	copy(items, s.items)

	return items
}

// Len returns the number of items.
func (s *Store[T, C, U]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Loading reports whether a Load is in flight.
func (s *Store[T, C, U]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// Err returns the last recorded error message, or "" when there is none.
func (s *Store[T, C, U]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.errMsg
}

// Filter returns the items matching query, see repuestos.Entity.Matches.
func (s *Store[T, C, U]) Filter(query string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if item.Matches(query) {
			matches = append(matches, item)
		}
	}

	return matches
}

// Find returns the item whose key is id.
func (s *Store[T, C, U]) Find(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Key() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

func (s *Store[T, C, U]) recordFailure(operation string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fail(operation, err)
}

// fail must be called with mu held.
func (s *Store[T, C, U]) fail(operation string, err error) {
	s.errMsg = fmt.Sprintf("%s %s: %v", operation, s.backend.Resource(), err)

	if s.logger != nil {
		s.logger.Error("store operation failed", map[string]interface{}{
			"resource":  s.backend.Resource(),
			"operation": operation,
			"error":     err.Error(),
		})
	}
}

// A failed notification never fails the mutation; it is only logged.
func (s *Store[T, C, U]) notify(ctx context.Context, action repuestos.Action, key int) {
	event := repuestos.Event{
		Resource: s.backend.Resource(),
		Action:   action,
		Key:      key,
		At:       time.Now().UTC(),
	}

	err := s.notifier.Notify(ctx, event)
	if err != nil && s.logger != nil {
		s.logger.Warn("publishing store event failed", map[string]interface{}{
			"resource": event.Resource,
			"action":   string(event.Action),
			"key":      key,
			"error":    err.Error(),
		})
	}
}
