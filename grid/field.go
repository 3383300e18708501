package grid

// Field is a dense single-precision scalar field over a Grid: a flat,
// row-major backing slice paired with the Grid that describes its shape.
// It plays the same role here that a Dense matrix plays for 2D linear
// algebra, generalized to rank 2 or 3 and specialized to float32 since
// that is the precision spec.md's wire contract fixes for I and D.
//
// NewField allocates a fresh backing slice; NewFieldFrom wraps a caller's
// slice without copying it. Raw exposes the backing slice for direct
// indexing instead of going through At/Set.
type Field struct {
	g    *Grid
	data []float32
}

// NewField allocates a zero-valued Field over g.
// Complexity: O(N) time and memory.
func NewField(g *Grid) *Field {
	return &Field{g: g, data: make([]float32, g.Len())}
}

// NewFieldFrom wraps an existing flat buffer as a Field over g.
// Returns ErrShapeMismatch if len(data) != g.Len(). The buffer is not
// copied; mutations through the returned Field alias data.
func NewFieldFrom(g *Grid, data []float32) (*Field, error) {
	if len(data) != g.Len() {
		return nil, ErrShapeMismatch
	}
	return &Field{g: g, data: data}, nil
}

// Grid returns the shape descriptor backing this Field.
func (f *Field) Grid() *Grid { return f.g }

// Len returns the number of cells, equal to f.Grid().Len().
func (f *Field) Len() int { return len(f.data) }

// Raw returns the flat backing slice in row-major order.
func (f *Field) Raw() []float32 { return f.data }

// At returns the value at coords, or ErrIndexOutOfRange if out of bounds.
// Complexity: O(rank).
func (f *Field) At(coords []int) (float32, error) {
	if !f.g.InBounds(coords) {
		return 0, ErrIndexOutOfRange
	}
	return f.data[f.g.Index(coords)], nil
}

// Set stores v at coords, or returns ErrIndexOutOfRange if out of bounds.
// Complexity: O(rank).
func (f *Field) Set(coords []int, v float32) error {
	if !f.g.InBounds(coords) {
		return ErrIndexOutOfRange
	}
	f.data[f.g.Index(coords)] = v
	return nil
}

// Fill sets every cell to v. Complexity: O(N).
func (f *Field) Fill(v float32) {
	for i := range f.data {
		f.data[i] = v
	}
}
