package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
)

type record struct {
	ID   string
	Name string
	Tags []string
}

func (r *record) GetID() string { return r.ID }

func (r *record) Clone() *record {
	c := *r
	c.Tags = append([]string(nil), r.Tags...)
	return &c
}

func ids(items []*record) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestMemory_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*record]("record", OrderInsertion)

	require.NoError(t, s.Create(ctx, &record{ID: "a", Name: "first"}))
	require.NoError(t, s.Create(ctx, &record{ID: "b", Name: "second"}))

	err := s.Create(ctx, &record{ID: "a"})
	assert.True(t, ierr.IsAlreadyExists(err))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	got.Name = "renamed"
	require.NoError(t, s.Update(ctx, got))

	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.True(t, ierr.IsNotFound(err))
	assert.True(t, ierr.IsNotFound(s.Delete(ctx, "a")))
	assert.True(t, ierr.IsNotFound(s.Update(ctx, &record{ID: "zzz"})))

	assert.Equal(t, 1, s.Count(ctx, nil))
}

func TestMemory_RejectsEmptyID(t *testing.T) {
	s := NewMemory[*record]("record", OrderInsertion)
	err := s.Create(context.Background(), &record{})
	assert.True(t, ierr.IsValidation(err))
}

func TestMemory_Order(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		order Order
		want  []string
	}{
		{"insertion", OrderInsertion, []string{"a", "b", "c"}},
		{"newest first", OrderNewestFirst, []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemory[*record]("record", tt.order)
			for _, id := range []string{"a", "b", "c"} {
				require.NoError(t, s.Create(ctx, &record{ID: id}))
			}

			// updating keeps the position
			require.NoError(t, s.Update(ctx, &record{ID: "b", Name: "updated"}))
			assert.Equal(t, tt.want, ids(s.List(ctx, nil)))
		})
	}
}

func TestMemory_DeleteKeepsRemainingOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*record]("record", OrderInsertion)
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Create(ctx, &record{ID: id}))
	}
	require.NoError(t, s.Delete(ctx, "b"))
	require.NoError(t, s.Create(ctx, &record{ID: "e"}))

	assert.Equal(t, []string{"a", "c", "d", "e"}, ids(s.List(ctx, nil)))
}

func TestMemory_ClonesInAndOut(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*record]("record", OrderInsertion)

	in := &record{ID: "a", Tags: []string{"x"}}
	require.NoError(t, s.Create(ctx, in))
	in.Tags[0] = "mutated"

	out, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, out.Tags)

	out.Tags[0] = "mutated again"
	again, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestMemory_ListFilter(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*record]("record", OrderInsertion)
	require.NoError(t, s.Create(ctx, &record{ID: "a", Name: "keep"}))
	require.NoError(t, s.Create(ctx, &record{ID: "b", Name: "drop"}))
	require.NoError(t, s.Create(ctx, &record{ID: "c", Name: "keep"}))

	keep := func(r *record) bool { return r.Name == "keep" }
	assert.Equal(t, []string{"a", "c"}, ids(s.List(ctx, keep)))
	assert.Equal(t, 2, s.Count(ctx, keep))

	s.Clear()
	assert.Empty(t, s.List(ctx, nil))
}

func TestMemory_Mutate(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*record]("record", OrderInsertion)
	require.NoError(t, s.Create(ctx, &record{ID: "a", Name: "first"}))

	got, err := s.Mutate(ctx, "a", func(r *record) error {
		r.Tags = append(r.Tags, "x")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.Tags)

	// the returned copy is detached from the store
	got.Tags[0] = "changed"
	stored, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, stored.Tags)

	boom := errors.New("boom")
	_, err = s.Mutate(ctx, "a", func(r *record) error {
		r.Name = "half done"
		return boom
	})
	assert.ErrorIs(t, err, boom)
	stored, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", stored.Name)

	_, err = s.Mutate(ctx, "a", func(r *record) error {
		r.ID = "b"
		return nil
	})
	assert.True(t, ierr.IsInvalidOperation(err))

	_, err = s.Mutate(ctx, "missing", func(*record) error { return nil })
	assert.True(t, ierr.IsNotFound(err))
}

func TestMemory_MutateConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*record]("record", OrderInsertion)
	require.NoError(t, s.Create(ctx, &record{ID: "a"}))

	const writers = 100
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Mutate(ctx, "a", func(r *record) error {
				r.Tags = append(r.Tags, "t")
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, stored.Tags, writers)
}
