// Package collection implements the persisted-collection pattern: a
// named key in the storage port holding a serialized array of records,
// seeded on bootstrap, read and written whole, with a change broadcast
// after every write.
package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"gamevault/internal/storage"
)

// Notifier receives a signal after every successful save so that
// connected views can reload the collection.
type Notifier interface {
	CollectionChanged(key string)
}

// Store holds one collection. All mutation goes through Mutate, which
// serializes read-modify-write cycles under a per-store lock; the
// original client-side rendition let two concurrent writers silently
// drop each other's changes.
type Store[T any] struct {
	key      string
	port     storage.Port
	seed     func() []T
	notifier Notifier

	mu sync.Mutex
}

func NewStore[T any](port storage.Port, key string, seed func() []T, notifier Notifier) *Store[T] {
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	return &Store[T]{key: key, port: port, seed: seed, notifier: notifier}
}

func (s *Store[T]) Key() string { return s.key }

// Bootstrap writes the seed data if the key is absent or its value is
// unparseable. Run once at startup; afterwards a missing key reads as
// an empty collection.
func (s *Store[T]) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.port.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		log.Printf("[collection] seeding %q", s.key)
		return s.save(s.seed())
	}
	if err != nil {
		return fmt.Errorf("bootstrap %q: %w", s.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[collection] %v, reseeding", &CorruptError{Key: s.key, Err: err})
		return s.save(s.seed())
	}
	return nil
}

// Load returns the current records. A corrupt value is logged,
// reseeded from defaults and the seed returned.
func (s *Store[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store[T]) load() ([]T, error) {
	raw, err := s.port.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", s.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		corrupt := &CorruptError{Key: s.key, Err: err}
		log.Printf("[collection] %v, reseeding", corrupt)
		items = s.seed()
		if err := s.save(items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Save replaces the whole collection and broadcasts the change.
func (s *Store[T]) Save(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(items)
}

func (s *Store[T]) save(items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("save %q: %w", s.key, err)
	}
	if err := s.port.Set(s.key, raw); err != nil {
		return fmt.Errorf("save %q: %w", s.key, err)
	}
	if s.notifier != nil {
		s.notifier.CollectionChanged(s.key)
	}
	return nil
}

// Mutate runs fn over the current records and persists its result.
// When fn returns an error nothing is written. The lock is held for
// the whole cycle, so concurrent mutations cannot lose updates.
func (s *Store[T]) Mutate(fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return s.save(next)
}

// Singleton holds one non-array record under its own key (site
// settings). Same load/save/mutate discipline as Store.
type Singleton[T any] struct {
	key      string
	port     storage.Port
	seed     func() T
	notifier Notifier

	mu sync.Mutex
}

func NewSingleton[T any](port storage.Port, key string, seed func() T, notifier Notifier) *Singleton[T] {
	return &Singleton[T]{key: key, port: port, seed: seed, notifier: notifier}
}

func (s *Singleton[T]) Key() string { return s.key }

func (s *Singleton[T]) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.port.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		log.Printf("[collection] seeding %q", s.key)
		return s.save(s.seed())
	}
	if err != nil {
		return fmt.Errorf("bootstrap %q: %w", s.key, err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Printf("[collection] %v, reseeding", &CorruptError{Key: s.key, Err: err})
		return s.save(s.seed())
	}
	return nil
}

func (s *Singleton[T]) Load() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Singleton[T]) load() (T, error) {
	var value T
	raw, err := s.port.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return s.seed(), nil
	}
	if err != nil {
		return value, fmt.Errorf("load %q: %w", s.key, err)
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		corrupt := &CorruptError{Key: s.key, Err: err}
		log.Printf("[collection] %v, reseeding", corrupt)
		value = s.seed()
		if err := s.save(value); err != nil {
			return value, err
		}
	}
	return value, nil
}

func (s *Singleton[T]) save(value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("save %q: %w", s.key, err)
	}
	if err := s.port.Set(s.key, raw); err != nil {
		return fmt.Errorf("save %q: %w", s.key, err)
	}
	if s.notifier != nil {
		s.notifier.CollectionChanged(s.key)
	}
	return nil
}

// Mutate applies fn to the current value and persists the result.
func (s *Singleton[T]) Mutate(fn func(value T) (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.load()
	if err != nil {
		return err
	}
	next, err := fn(value)
	if err != nil {
		return err
	}
	return s.save(next)
}
