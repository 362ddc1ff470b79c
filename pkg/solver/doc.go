// Package solver drives a [github.com/matzehuels/lineorder/pkg/ilp.Problem]
// through a MIP backend and reports the 0/1 values of its columns.
//
// Two interchangeable paths exist: an in-process solve entirely on
// github.com/lukpank/go-glpk/glpk, and an external-solver pre-solve that
// writes the model as MPS, shells out to a user-supplied command, fixes the
// columns it recognizes in the returned solution, and re-solves in-process
// to confirm and recover a proven objective.
package solver
