// Package ilp builds the 0/1 integer linear program that encodes the
// line-ordering decision.
//
// [Builder] walks an [optgraph.OptGraph], creates one binary "position"
// variable per (segment, non-relative route, position) triple, the
// uniqueness rows that pin each segment to a doubly-stochastic assignment,
// and the same-segment / different-segment crossing decision variables and
// linearization rows described in the package's Build method. Variable and
// row names follow a fixed, stable naming convention (see [VarName],
// [SumPosName], [SumLineName], [DecSameName], [DecDiffName]) so that MPS
// dumps are byte-reproducible across runs and an external solver's solution
// file can be matched back to the in-process model by name.
//
// The accumulated coefficients are buffered in a [Matrix] — a sparse
// (row, col, value) triple store — before being loaded into a solver
// backend in bulk, mirroring how the original C++ implementation staged its
// GLPK matrix before a single glp_load_matrix call.
package ilp
