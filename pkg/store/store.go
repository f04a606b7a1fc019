// Package store persists solved puzzles so the game layer can recall
// and replay previously generated routes. A MemoryStore backs the CLI
// and tests; MongoStore backs server deployments.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/gridroute/pkg/grid"
)

// ErrNotFound is returned when a requested solution does not exist.
var ErrNotFound = errors.New("store: solution not found")

// Solution is one persisted solve: the request, the winning path, and
// bookkeeping. Records are immutable once saved.
type Solution struct {
	ID         uuid.UUID    `bson:"_id" json:"id"`
	Size       grid.Size    `bson:"size" json:"size"`
	Start      grid.Point   `bson:"start" json:"start"`
	End        grid.Point   `bson:"end" json:"end"`
	Path       []grid.Point `bson:"path" json:"path"`
	Iterations uint32       `bson:"iterations" json:"iterations"`
	CreatedAt  time.Time    `bson:"createdAt" json:"created_at"`
}

// Store is the persistence interface shared by backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save inserts or replaces a solution by ID.
	Save(ctx context.Context, sol *Solution) error
	// ByID retrieves a solution, or ErrNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*Solution, error)
	// List returns up to limit solutions, newest first.
	List(ctx context.Context, limit int) ([]*Solution, error)
}

// NewSolution builds a record for a successful solve with a fresh ID
// and the current time.
func NewSolution(s grid.Size, start, end grid.Point, path []grid.Point, iterations uint32) *Solution {
	return &Solution{
		ID:         uuid.New(),
		Size:       s,
		Start:      start,
		End:        end,
		Path:       path,
		Iterations: iterations,
		CreatedAt:  time.Now().UTC(),
	}
}
