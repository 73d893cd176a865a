package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the requested id is absent from a table.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned on Insert when the id is already taken.
	ErrConflict = errors.New("record already exists")
)

// Table is an in-memory keyed collection backing one resource kind.
//
// Every method holds the table lock only for that single call. Workflows
// composed of several calls (check then insert) are intentionally not
// atomic; the lock protects the map itself, not cross-call invariants.
type Table[T any] struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]T
}

func New[T any]() *Table[T] {
	return &Table[T]{rows: make(map[uuid.UUID]T)}
}

// Insert stores v under id. Fails with ErrConflict if the id is taken,
// which only happens for tables with caller-supplied ids.
func (t *Table[T]) Insert(id uuid.UUID, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return ErrConflict
	}
	t.rows[id] = v
	return nil
}

func (t *Table[T]) Get(id uuid.UUID) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// List returns a snapshot of the table contents. Order is undefined and
// callers must not rely on it. The slice is freshly allocated, so later
// table mutations do not show through.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		out = append(out, v)
	}
	return out
}

// Update applies mutate to the stored value under the write lock and keeps
// the result. If mutate returns an error the stored value is untouched.
func (t *Table[T]) Update(id uuid.UUID, mutate func(T) (T, error)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cur, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	next, err := mutate(cur)
	if err != nil {
		var zero T
		return zero, err
	}
	t.rows[id] = next
	return next, nil
}

func (t *Table[T]) Delete(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// Any reports whether some row other than except matches pred. Iteration
// order is unspecified; the first hit wins. Pass uuid.Nil as except when
// nothing should be excluded (creates), or the id being updated so a row
// does not collide with itself.
func (t *Table[T]) Any(except uuid.UUID, pred func(T) bool) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for id, v := range t.rows {
		if id == except {
			continue
		}
		if pred(v) {
			return true
		}
	}
	return false
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
