package ilp

// ColKind is the domain of an ILP column.
type ColKind int

// ColBinary is the only column kind this model needs: every decision in
// this formulation, position assignments and crossing indicators alike, is
// 0/1.
const ColBinary ColKind = 0

// RowKind distinguishes the two row shapes the builder writes.
type RowKind int

const (
	// RowEqual is an equality row: sum(coefs) = Bound.
	RowEqual RowKind = iota
	// RowUpperBound is a less-than-or-equal row: sum(coefs) <= Bound.
	RowUpperBound
)

// Col is one ILP column (decision variable).
type Col struct {
	Name string
	Kind ColKind
	Obj  float64
}

// Row is one ILP row (constraint).
type Row struct {
	Name  string
	Kind  RowKind
	Bound float64
}

// Problem is the backend-agnostic ILP model the builder produces: columns,
// rows, and the sparse coefficient matrix between them, plus name indices
// so a solver backend or the decoder can look values up by the stable names
// in package ilp's naming convention.
type Problem struct {
	Cols     []Col
	Rows     []Row
	Matrix   Matrix
	VarIndex map[string]int32 // column name -> 1-indexed column number
	RowIndex map[string]int32 // row name -> 1-indexed row number
}

// newProblem creates an empty Problem ready for incremental construction.
func newProblem() *Problem {
	return &Problem{
		VarIndex: make(map[string]int32),
		RowIndex: make(map[string]int32),
	}
}

// addCol appends a column and returns its 1-indexed column number. If name
// is already registered, its existing column number is returned instead and
// no new column is created.
func (p *Problem) addCol(name string, obj float64) int32 {
	if col, ok := p.VarIndex[name]; ok {
		return col
	}
	p.Cols = append(p.Cols, Col{Name: name, Kind: ColBinary, Obj: obj})
	col := int32(len(p.Cols))
	p.VarIndex[name] = col
	return col
}

// addRow appends a row and returns its 1-indexed row number. Row names are
// expected to be unique; addRow panics-free duplicate calls simply add a
// second row under a caller's responsibility — the builder never calls
// addRow twice with the same name.
func (p *Problem) addRow(name string, kind RowKind, bound float64) int32 {
	p.Rows = append(p.Rows, Row{Name: name, Kind: kind, Bound: bound})
	row := int32(len(p.Rows))
	p.RowIndex[name] = row
	return row
}

// setCoef records coefficient val at (row, col) in the matrix buffer.
func (p *Problem) setCoef(row, col int32, val float64) {
	p.Matrix.AddVar(row, col, val)
}
