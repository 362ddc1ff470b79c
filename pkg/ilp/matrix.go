package ilp

// Matrix is a sparse (row, col, value) triple buffer accumulating
// constraint-matrix coefficients for bulk load into a solver backend.
// Rows and columns are 1-indexed to match the solver backend's convention
// (mirroring GLPK's own 1-indexed column/row numbering).
type Matrix struct {
	Rows, Cols []int32
	Vals       []float64
}

// AddVar records one nonzero coefficient at (row, col).
func (m *Matrix) AddVar(row, col int32, val float64) {
	m.Rows = append(m.Rows, row)
	m.Cols = append(m.Cols, col)
	m.Vals = append(m.Vals, val)
}

// NumVars returns the number of nonzero coefficients buffered so far.
func (m *Matrix) NumVars() int { return len(m.Vals) }

// RowEntries returns the (col, val) pairs buffered for a given row, in the
// order they were added. Used to bulk-load one solver row at a time.
func (m *Matrix) RowEntries(row int32) (cols []int32, vals []float64) {
	for i, r := range m.Rows {
		if r == row {
			cols = append(cols, m.Cols[i])
			vals = append(vals, m.Vals[i])
		}
	}
	return
}
