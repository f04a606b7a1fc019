package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/gridroute/pkg/buildinfo"
	apperrors "github.com/matzehuels/gridroute/pkg/errors"
	"github.com/matzehuels/gridroute/pkg/grid"
	"github.com/matzehuels/gridroute/pkg/pipeline"
	"github.com/matzehuels/gridroute/pkg/roadgrid"
	"github.com/matzehuels/gridroute/pkg/solver"
)

// defaultListLimit bounds GET /solutions when no limit is given.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type solveResponse struct {
	Found      bool                   `json:"found"`
	Path       []grid.Point           `json:"path,omitempty"`
	Iterations uint32                 `json:"iterations"`
	RoadGrid   [][]*roadgrid.CellData `json:"road_grid,omitempty"`
	SolutionID string                 `json:"solution_id,omitempty"`
	Cached     bool                   `json:"cached"`
	DurationMS int64                  `json:"duration_ms"`
}

type parityResponse struct {
	Feasible bool `json:"feasible"`
}

type roadGridRequest struct {
	Rows int          `json:"rows"`
	Cols int          `json:"cols"`
	Path []grid.Point `json:"path"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	start := time.Now()
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := solveResponse{
		Found:      result.Solve.Found,
		Path:       result.Solve.Path,
		Iterations: result.Solve.Iterations,
		RoadGrid:   result.RoadGrid,
		Cached:     result.CacheInfo.SolveHit,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if result.SolutionID != uuid.Nil {
		resp.SolutionID = result.SolutionID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleParity(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{
		Rows:  queryInt(r, "rows"),
		Cols:  queryInt(r, "cols"),
		Start: grid.Point{Row: queryInt(r, "start_row"), Col: queryInt(r, "start_col")},
		End:   grid.Point{Row: queryInt(r, "end_row"), Col: queryInt(r, "end_col")},
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, err)
		return
	}
	feasible := opts.Start != opts.End && solver.Feasible(opts.Start, opts.End, opts.Size())
	writeJSON(w, http.StatusOK, parityResponse{Feasible: feasible})
}

func (s *Server) handleRoadGrid(w http.ResponseWriter, r *http.Request) {
	var req roadGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	cells, err := s.runner.BuildRoadGrid(req.Path, grid.Size{Rows: req.Rows, Cols: req.Cols})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cells)
}

func (s *Server) handleListSolutions(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	sols, err := s.runner.Solutions(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sols)
}

func (s *Server) handleGetSolution(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid solution id"))
		return
	}

	sol, err := s.runner.Solution(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sol)
}

// queryInt parses an integer query parameter, returning 0 when absent
// or malformed. Validation of the assembled options catches bad input.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
