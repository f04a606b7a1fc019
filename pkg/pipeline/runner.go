package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/gridroute/pkg/cache"
	apperrors "github.com/matzehuels/gridroute/pkg/errors"
	"github.com/matzehuels/gridroute/pkg/grid"
	"github.com/matzehuels/gridroute/pkg/observability"
	"github.com/matzehuels/gridroute/pkg/roadgrid"
	"github.com/matzehuels/gridroute/pkg/solver"
	"github.com/matzehuels/gridroute/pkg/store"
)

// Runner encapsulates pipeline execution with caching and optional
// persistence. Both CLI and API use this to avoid duplicating the
// caching logic.
//
// The Runner is stateless except for the cache, store, and logger - it
// doesn't hold pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Store  store.Store
	Logger *log.Logger

	// TTL is applied to cached solve results. Zero means no expiry,
	// which is safe because the search is deterministic.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and store.
// If cache is nil, a NullCache is used (caching disabled).
// If store is nil, successful solves are not persisted.
func NewRunner(c cache.Cache, st store.Store, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Store:  st,
		Logger: logger,
	}
}

// Execute runs the complete solve → road-grid pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}
	result.Stats.Cells = opts.Size().Cells()

	// Stage 1: Solve
	solveStart := time.Now()
	res, solveHit, err := r.SolveWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Solve = res
	result.Stats.SolveTime = time.Since(solveStart)
	result.CacheInfo.SolveHit = solveHit

	r.Logger.Info("solve finished",
		"rows", opts.Rows,
		"cols", opts.Cols,
		"found", res.Found,
		"iterations", res.Iterations,
		"cached", solveHit,
		"duration", result.Stats.SolveTime)

	if !res.Found {
		return result, nil
	}

	// Stage 2: Road grid
	gridStart := time.Now()
	cells, err := r.BuildRoadGrid(res.Path, opts.Size())
	if err != nil {
		return nil, err
	}
	result.RoadGrid = cells
	result.Stats.GridTime = time.Since(gridStart)

	r.Logger.Info("built road grid",
		"cells", len(res.Path),
		"duration", result.Stats.GridTime)

	// Persist fresh successful solves. A cache hit was persisted when
	// it was first computed.
	if r.Store != nil && !solveHit {
		sol := store.NewSolution(opts.Size(), opts.Start, opts.End, res.Path, res.Iterations)
		if err := r.Store.Save(ctx, sol); err != nil {
			r.Logger.Warn("failed to persist solution", "err", err)
		} else {
			result.SolutionID = sol.ID
			r.Logger.Debug("persisted solution", "id", sol.ID)
		}
	}

	return result, nil
}

// SolveWithCacheInfo runs the search with caching and returns cache hit
// info.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, opts Options) (solver.Result, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return solver.Result{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := cache.SolveKey(opts.SolveKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached solver.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "solve")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "solve")
	}

	observability.Solve().OnSolveStart(ctx, opts.Rows, opts.Cols)
	start := time.Now()
	res, err := solver.Find(opts.Start, opts.End, opts.Size(), opts.MaxIterations)
	observability.Solve().OnSolveComplete(ctx, opts.Rows, opts.Cols, res.Found, res.Iterations, time.Since(start), err)
	if err != nil {
		// Options validation already covers malformed input, so a Find
		// error here means the two disagree.
		return solver.Result{}, false, apperrors.Wrap(apperrors.ErrCodeInternal, err, "solve failed")
	}

	// Cache the result
	if data, err := json.Marshal(res); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, r.TTL) == nil {
			observability.Cache().OnCacheSet(ctx, "solve", len(data))
		}
	}

	return res, false, nil // Cache miss
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, opts Options) (solver.Result, error) {
	res, _, err := r.SolveWithCacheInfo(ctx, opts)
	return res, err
}

// BuildRoadGrid projects a path into per-cell connection data.
func (r *Runner) BuildRoadGrid(path []grid.Point, s grid.Size) ([][]*roadgrid.CellData, error) {
	cells, err := roadgrid.FromPath(path, s)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "build road grid")
	}
	return cells, nil
}

// Solution retrieves a persisted solution by ID.
func (r *Runner) Solution(ctx context.Context, id uuid.UUID) (*store.Solution, error) {
	if r.Store == nil {
		return nil, apperrors.New(apperrors.ErrCodeUnsupported, "no solution store configured")
	}
	sol, err := r.Store.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrCodeSolutionNotFound, err, "solution %s", id)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, err, "load solution %s", id)
	}
	return sol, nil
}

// Solutions lists persisted solutions, newest first.
func (r *Runner) Solutions(ctx context.Context, limit int) ([]*store.Solution, error) {
	if r.Store == nil {
		return nil, apperrors.New(apperrors.ErrCodeUnsupported, "no solution store configured")
	}
	sols, err := r.Store.List(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, err, "list solutions")
	}
	return sols, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
