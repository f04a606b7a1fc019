// Package grid provides the geometric primitives shared by the solver and
// its callers: points, grid sizes, checkerboard parity, boundary
// classification, and a bit-per-cell visited set.
//
// All functions are pure and allocation-free except for NewBitset. The
// parity helpers are exposed so a UI can validate endpoint choices before
// paying for a full search: on an even-area grid a Hamiltonian path must
// connect cells of opposite parity, on an odd-area grid it must connect
// cells of the majority color (equal parity at (0,0)).
package grid
