package storage

import (
	"context"
	"encoding/json"
	"strconv"
)

// Collection is a typed view over one storage key holding a JSON array.
// Reads swallow corruption: a value that is missing or not a valid array
// loads as the empty collection, because storage is best-effort and there
// is no operator to surface a corruption error to. Upsert is the single
// write primitive; create, edit and rename all funnel through it.
type Collection[T any] struct {
	store Store
	key   string
	id    func(T) string
}

func NewCollection[T any](store Store, key string, id func(T) string) *Collection[T] {
	return &Collection[T]{store: store, key: key, id: id}
}

// LoadAll returns every entity under the key, or an empty slice when the
// key is absent or its value does not decode.
func (c *Collection[T]) LoadAll(ctx context.Context) []T {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []T{}
	}
	return items
}

// ReplaceAll persists the given slice as the entire collection.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, raw)
}

// FindByID returns the entity with the given id, if present.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, bool) {
	for _, item := range c.LoadAll(ctx) {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the entity whose id matches, or appends it. The whole
// collection is rewritten under its key in one Set.
func (c *Collection[T]) Upsert(ctx context.Context, item T) error {
	items := c.LoadAll(ctx)
	replaced := false
	for i := range items {
		if c.id(items[i]) == c.id(item) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return c.ReplaceAll(ctx, items)
}

// RemoveByID filters the id out and persists the remainder. Removing an
// absent id is a no-op that still rewrites the collection.
func (c *Collection[T]) RemoveByID(ctx context.Context, id string) error {
	items := c.LoadAll(ctx)
	kept := items[:0]
	for _, item := range items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	return c.ReplaceAll(ctx, kept)
}

// Counter is a monotonic integer under one key. Next never reuses a
// value, even after deletions of the entities that consumed them.
type Counter struct {
	store Store
	key   string
}

func NewCounter(store Store, key string) *Counter {
	return &Counter{store: store, key: key}
}

// Current returns the last issued value, zero when never written or
// unreadable.
func (c *Counter) Current(ctx context.Context) int {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0
	}
	return n
}

// Next increments and persists the counter, returning the new value.
func (c *Counter) Next(ctx context.Context) (int, error) {
	n := c.Current(ctx) + 1
	if err := c.store.Set(ctx, c.key, []byte(strconv.Itoa(n))); err != nil {
		return 0, err
	}
	return n, nil
}

// Seed writes an explicit counter value, used for migrating stores that
// predate the counter key.
func (c *Counter) Seed(ctx context.Context, n int) error {
	return c.store.Set(ctx, c.key, []byte(strconv.Itoa(n)))
}

// Single is a typed view over one key holding a single JSON object, used
// for the active-session record.
type Single[T any] struct {
	store Store
	key   string
}

func NewSingle[T any](store Store, key string) *Single[T] {
	return &Single[T]{store: store, key: key}
}

func (s *Single[T]) Get(ctx context.Context) (T, bool) {
	var v T
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}
	return v, true
}

func (s *Single[T]) Set(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.key, raw)
}

func (s *Single[T]) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, s.key)
}
