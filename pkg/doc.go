// Package pkg provides the core libraries for Gridroute Hamiltonian
// path routing.
//
// # Overview
//
// Gridroute searches rectangular grids for Hamiltonian paths - routes
// that visit every cell exactly once - and turns them into per-cell
// road connection data. The pkg directory is organized into four main
// areas:
//
//  1. [grid], [solver], [roadgrid] - Domain logic (grid geometry, path
//     search, connection metadata)
//  2. [cache], [store], [config] - Infrastructure (result caching,
//     solution persistence, configuration)
//  3. [pipeline] - Orchestration (feasibility → solve → road grid)
//  4. [errors], [observability], [buildinfo] - Cross-cutting concerns
//
// # Architecture
//
// The typical data flow through Gridroute:
//
//	Solve request (size, endpoints, budget)
//	         ↓
//	    [solver] package (parity check + backtracking search)
//	         ↓
//	    [roadgrid] package (path → per-cell connections)
//	         ↓
//	    JSON/DOT/SVG/PNG output
//
// # Quick Start
//
// Find a path and project it onto the grid:
//
//	import (
//	    "github.com/matzehuels/gridroute/pkg/grid"
//	    "github.com/matzehuels/gridroute/pkg/roadgrid"
//	    "github.com/matzehuels/gridroute/pkg/solver"
//	)
//
//	size := grid.Size{Rows: 5, Cols: 5}
//	res, err := solver.Find(grid.Point{}, grid.Point{Row: 4, Col: 4}, size, 1_000_000)
//	if err != nil || !res.Found {
//	    // handle
//	}
//	cells, err := roadgrid.FromPath(res.Path, size)
//
// Most callers should use the [pipeline] package instead, which adds
// caching and persistence around the same flow.
package pkg
