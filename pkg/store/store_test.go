package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gridroute/pkg/grid"
)

func testSolution() *Solution {
	return NewSolution(
		grid.Size{Rows: 2, Cols: 2},
		grid.Point{Row: 0, Col: 0},
		grid.Point{Row: 0, Col: 1},
		[]grid.Point{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}},
		12,
	)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	sol := testSolution()
	require.NoError(t, s.Save(ctx, sol))

	got, err := s.ByID(ctx, sol.ID)
	require.NoError(t, err)
	assert.Equal(t, sol.ID, got.ID)
	assert.Equal(t, sol.Path, got.Path)
	assert.Equal(t, uint32(12), got.Iterations)
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.ByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	older := testSolution()
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := testSolution()

	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)

	limited, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.ID, limited[0].ID)
}

func TestMemoryStoreIsolation(t *testing.T) {
	// Mutating a returned record must not alter the stored copy.
	s := NewMemoryStore()
	ctx := context.Background()

	sol := testSolution()
	require.NoError(t, s.Save(ctx, sol))

	got, err := s.ByID(ctx, sol.ID)
	require.NoError(t, err)
	got.Iterations = 999

	again, err := s.ByID(ctx, sol.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), again.Iterations)
}

func TestNewSolution(t *testing.T) {
	sol := testSolution()
	assert.NotEqual(t, uuid.Nil, sol.ID)
	assert.False(t, sol.CreatedAt.IsZero())
	assert.Len(t, sol.Path, 4)
}
