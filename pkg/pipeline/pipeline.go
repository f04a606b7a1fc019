// Package pipeline provides the core solve pipeline for Gridroute.
//
// This package implements the complete feasibility → search → road-grid
// pipeline that can be used by CLI and API components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Solve: Run the Hamiltonian path search (with result caching)
//  2. RoadGrid: Project the winning path into per-cell connection data
//
// Each stage can be run independently or as part of the complete
// pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Rows:  5,
//	    Cols:  5,
//	    Start: grid.Point{Row: 0, Col: 0},
//	    End:   grid.Point{Row: 4, Col: 4},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path := result.Solve.Path
//
// Run individual stages:
//
//	// Solve only
//	res, err := runner.Solve(ctx, opts)
//
//	// Road grid from an existing path
//	cells, err := runner.BuildRoadGrid(res.Path, opts.Size())
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/gridroute/pkg/cache"
	apperrors "github.com/matzehuels/gridroute/pkg/errors"
	"github.com/matzehuels/gridroute/pkg/grid"
	"github.com/matzehuels/gridroute/pkg/roadgrid"
	"github.com/matzehuels/gridroute/pkg/solver"
)

// DefaultMaxIterations is the search budget applied when a request does
// not set one. It matches config.DefaultBudget so CLI, API, and config
// file agree on what "no budget given" means.
const DefaultMaxIterations uint32 = 1_000_000

// MaxCells caps the grid area accepted by the pipeline. The visited
// bitset and path slice are cheap, but search time grows sharply with
// area; anything past this is better served by raising the cap
// deliberately than by an accidental huge request.
const MaxCells = 10_000

// Options contains all configuration for one solve pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Start grid.Point `json:"start"`
	End   grid.Point `json:"end"`

	// MaxIterations caps the search; 0 means DefaultMaxIterations.
	MaxIterations uint32 `json:"max_iterations,omitempty"`

	// Refresh bypasses the cache lookup and overwrites the cached entry.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Size returns the grid dimensions as a grid.Size.
func (o *Options) Size() grid.Size {
	return grid.Size{Rows: o.Rows, Cols: o.Cols}
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	s := o.Size()
	if err := s.Validate(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidGrid, err,
			"grid must have positive dimensions, got %dx%d", o.Rows, o.Cols)
	}
	if s.Cells() > MaxCells {
		return apperrors.New(apperrors.ErrCodeInvalidGrid,
			"grid of %dx%d exceeds the %d cell limit", o.Rows, o.Cols, MaxCells)
	}
	if !s.InBounds(o.Start) {
		return apperrors.New(apperrors.ErrCodeInvalidPoint,
			"start %v is outside the %dx%d grid", o.Start, o.Rows, o.Cols)
	}
	if !s.InBounds(o.End) {
		return apperrors.New(apperrors.ErrCodeInvalidPoint,
			"end %v is outside the %dx%d grid", o.End, o.Rows, o.Cols)
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SolveKeyOpts returns cache key options for this request.
func (o *Options) SolveKeyOpts() cache.SolveKeyOpts {
	return cache.SolveKeyOpts{
		Rows:          o.Rows,
		Cols:          o.Cols,
		StartRow:      o.Start.Row,
		StartCol:      o.Start.Col,
		EndRow:        o.End.Row,
		EndCol:        o.End.Col,
		MaxIterations: o.MaxIterations,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Solve is the search outcome: found flag, path, iteration count.
	Solve solver.Result

	// RoadGrid holds per-cell connection data for the winning path.
	// Nil when no path was found.
	RoadGrid [][]*roadgrid.CellData

	// SolutionID is the persisted record's ID, or uuid.Nil when the
	// runner has no store or the solve did not succeed.
	SolutionID uuid.UUID

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cells     int
	SolveTime time.Duration
	GridTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit bool // Whether the solve result came from cache
}
