package databases

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/metrics"
)

// Touchable values get their timestamp refreshed right before every write
type Touchable interface {
	Touch(now time.Time)
}

// Store is the JSON key-value adapter over a Backend. Reads never fail: a
// missing key, a backend error or malformed JSON yield the caller's fallback.
// Writes never fail either: errors are logged, counted and dropped so that the
// in-memory state carries on.
type Store struct {
	backend Backend
	// Now is the clock used to stamp Touchable values
	Now func() time.Time

	mu           sync.Mutex
	lastWriteErr error
	firstFailure error
}

// NewStore returns a Store over backend
func NewStore(backend Backend) *Store {
	return &Store{backend: backend, Now: time.Now}
}

// Close closes the backend
func (s *Store) Close() error {
	return s.backend.Close()
}

// LastWriteError returns the error of the most recent write, nil when it succeeded
func (s *Store) LastWriteError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWriteErr
}

// TakeWriteError returns the first write error since the previous call, nil
// when every write went through, and clears it.
func (s *Store) TakeWriteError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.firstFailure
	s.firstFailure = nil
	return err
}

// Get decodes the value stored under key into a new T. When nothing usable is
// stored it returns fallback and false.
func Get[T any](ctx context.Context, s *Store, key string, fallback T) (T, bool) {
	raw, err := s.backend.Read(ctx, key)
	if errors.Is(err, ErrNotFound) {
		zap.S().Debugw("store key not found, using fallback", "key", key)
		metrics.StoreReadFallback(key, "missing")
		return fallback, false
	}
	if err != nil {
		zap.S().Warnw("store read failed, using fallback", "key", key, "error", err)
		metrics.StoreReadFallback(key, "read")
		return fallback, false
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		zap.S().Warnw("stored value is malformed, using fallback", "key", key, "error", err)
		metrics.StoreReadFallback(key, "parse")
		return fallback, false
	}
	return v, true
}

// Set stamps value when it is Touchable, writes it under key and returns the
// stamped value whether or not the write went through.
func Set[T any](ctx context.Context, s *Store, key string, value T) T {
	if t, ok := any(&value).(Touchable); ok {
		t.Touch(s.Now())
	}

	raw, err := json.Marshal(value)
	if err == nil {
		err = s.backend.Write(ctx, key, raw)
	}

	s.mu.Lock()
	s.lastWriteErr = err
	if err != nil && s.firstFailure == nil {
		s.firstFailure = err
	}
	s.mu.Unlock()

	if err != nil {
		zap.S().Errorw("store write failed, keeping state in memory only", "key", key, "error", err)
		metrics.StoreWriteFailed(key)
	}
	return value
}
