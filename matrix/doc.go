// Package matrix provides the dense float64 storage shared by the
// transportation and assignment solvers.
//
// What & Why:
//
//	Every solver in this module works on a private copy of a cost matrix:
//	the Hungarian method reduces and adjusts it in place, the transport
//	heuristics read it cell by cell while they allocate. Dense gives them a
//	single row-major buffer with bounds-checked accessors, deep clones for
//	trace snapshots and a handful of row/column helpers (minima, bulk
//	subtraction) that the algorithms are written in terms of.
//
// Contracts:
//
//   - At/Set never panic on bad indices; they return ErrOutOfRange.
//   - NewDenseFrom rejects ragged input with ErrDimensionMismatch and
//     NaN/±Inf with ErrNaNInf.
//   - Rows()/Cols() are O(1); Clone and ToRows are O(r*c) deep copies.
//
// Determinism:
//
//	All loops run in fixed row-major order; no map iteration is involved.
package matrix
