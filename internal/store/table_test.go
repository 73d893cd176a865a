package store

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name  string
	Count int
}

func TestTableInsertGet(t *testing.T) {
	tbl := New[widget]()
	id := uuid.New()

	require.NoError(t, tbl.Insert(id, widget{Name: "a", Count: 1}))

	got, err := tbl.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	_, err = tbl.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTableInsertDuplicate(t *testing.T) {
	tbl := New[widget]()
	id := uuid.New()

	require.NoError(t, tbl.Insert(id, widget{Name: "a"}))
	err := tbl.Insert(id, widget{Name: "b"})
	assert.ErrorIs(t, err, ErrConflict)

	got, _ := tbl.Get(id)
	assert.Equal(t, "a", got.Name, "failed insert must not overwrite")
}

func TestTableUpdate(t *testing.T) {
	tbl := New[widget]()
	id := uuid.New()
	require.NoError(t, tbl.Insert(id, widget{Name: "a", Count: 1}))

	got, err := tbl.Update(id, func(w widget) (widget, error) {
		w.Count = 7
		return w, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Count)

	stored, _ := tbl.Get(id)
	assert.Equal(t, 7, stored.Count)

	_, err = tbl.Update(uuid.New(), func(w widget) (widget, error) { return w, nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTableUpdateMutateError(t *testing.T) {
	tbl := New[widget]()
	id := uuid.New()
	require.NoError(t, tbl.Insert(id, widget{Count: 1}))

	wantErr := assert.AnError
	_, err := tbl.Update(id, func(w widget) (widget, error) {
		w.Count = 99
		return w, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	stored, _ := tbl.Get(id)
	assert.Equal(t, 1, stored.Count, "failed mutate must not be applied")
}

func TestTableDelete(t *testing.T) {
	tbl := New[widget]()
	id := uuid.New()
	require.NoError(t, tbl.Insert(id, widget{}))

	require.NoError(t, tbl.Delete(id))
	assert.ErrorIs(t, tbl.Delete(id), ErrNotFound)
	assert.Equal(t, 0, tbl.Len())
}

func TestTableListIsSnapshot(t *testing.T) {
	tbl := New[widget]()
	require.NoError(t, tbl.Insert(uuid.New(), widget{Name: "a"}))

	rows := tbl.List()
	require.Len(t, rows, 1)
	rows[0].Name = "mutated"

	again := tbl.List()
	assert.Equal(t, "a", again[0].Name, "List must copy, not alias")
}

func TestTableAny(t *testing.T) {
	tbl := New[widget]()
	id := uuid.New()
	require.NoError(t, tbl.Insert(id, widget{Name: "a"}))
	require.NoError(t, tbl.Insert(uuid.New(), widget{Name: "b"}))

	hasName := func(n string) func(widget) bool {
		return func(w widget) bool { return w.Name == n }
	}

	assert.True(t, tbl.Any(uuid.Nil, hasName("a")))
	assert.False(t, tbl.Any(id, hasName("a")), "except id excludes its own row")
	assert.True(t, tbl.Any(id, hasName("b")))
	assert.False(t, tbl.Any(uuid.Nil, hasName("c")))
}

func TestTableConcurrentWrites(t *testing.T) {
	tbl := New[widget]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.New()
			_ = tbl.Insert(id, widget{Count: 1})
			_, _ = tbl.Update(id, func(w widget) (widget, error) {
				w.Count++
				return w, nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, tbl.Len())
	for _, w := range tbl.List() {
		assert.Equal(t, 2, w.Count)
	}
}
