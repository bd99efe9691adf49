package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sirms/backend/internal/shared"
)

func TestMemoryStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Put(ctx, &shared.Student{
		ID:      "2024/001",
		Name:    "Alice",
		Results: map[string][]shared.CourseResult{"100L": {{Course: "CSC101", Units: 3, Score: 75, Point: 5, Grade: "A"}}},
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, "2024/001")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Len(t, got.Results["100L"], 1)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := &shared.Student{ID: "S1", Results: map[string][]shared.CourseResult{"100L": {}}}
	require.NoError(t, store.Put(ctx, original))

	// Mutating the caller's value after Put must not leak into the store.
	original.Name = "changed"
	original.Results["100L"] = append(original.Results["100L"], shared.CourseResult{Course: "X"})

	got, err := store.Get(ctx, "S1")
	require.NoError(t, err)
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Results["100L"])

	got.Results["200L"] = []shared.CourseResult{{Course: "Y"}}
	again, err := store.Get(ctx, "S1")
	require.NoError(t, err)
	assert.NotContains(t, again.Results, "200L")
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), shared.ErrNotFound)
}

func TestMemoryStore_PutRejectsEmptyID(t *testing.T) {
	store := NewMemoryStore()
	assert.ErrorIs(t, store.Put(context.Background(), &shared.Student{}), shared.ErrInvalidInput)
	assert.ErrorIs(t, store.Put(context.Background(), nil), shared.ErrInvalidInput)
}

func TestMemoryStore_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, store.Put(ctx, &shared.Student{ID: id}))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)

	require.NoError(t, store.Delete(ctx, "B"))
	list, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
