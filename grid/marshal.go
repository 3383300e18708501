package grid

// This file holds the nested-slice <-> flat-buffer adapters used by the
// 2D/3D convenience entry points. They are plain Go reshaping, not the
// host-numeric-environment array marshalling spec.md §1 places out of
// scope (that concern is about bindings into e.g. NumPy/NIfTI buffers);
// here both sides are already Go slices.

// FlattenF32_2D copies a rectangular [][]float32 into a new Grid and flat
// row-major buffer. Returns ErrShapeMismatch if rows have unequal length
// or data is empty.
func FlattenF32_2D(data [][]float32) (*Grid, []float32, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, nil, ErrShapeMismatch
	}
	h, w := len(data), len(data[0])
	g, err := New(h, w)
	if err != nil {
		return nil, nil, err
	}
	flat := make([]float32, h*w)
	for y, row := range data {
		if len(row) != w {
			return nil, nil, ErrShapeMismatch
		}
		copy(flat[y*w:(y+1)*w], row)
	}
	return g, flat, nil
}

// FlattenU8_2D is FlattenF32_2D's byte-mask counterpart.
func FlattenU8_2D(data [][]byte) (*Grid, []byte, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, nil, ErrShapeMismatch
	}
	h, w := len(data), len(data[0])
	g, err := New(h, w)
	if err != nil {
		return nil, nil, err
	}
	flat := make([]byte, h*w)
	for y, row := range data {
		if len(row) != w {
			return nil, nil, ErrShapeMismatch
		}
		copy(flat[y*w:(y+1)*w], row)
	}
	return g, flat, nil
}

// UnflattenF32_2D is FlattenF32_2D's inverse.
func UnflattenF32_2D(g *Grid, flat []float32) [][]float32 {
	h, w := g.Dim(0), g.Dim(1)
	out := make([][]float32, h)
	for y := 0; y < h; y++ {
		row := make([]float32, w)
		copy(row, flat[y*w:(y+1)*w])
		out[y] = row
	}
	return out
}

// FlattenF32_3D is FlattenF32_2D's rank-3 counterpart, laid out (z,y,x).
func FlattenF32_3D(data [][][]float32) (*Grid, []float32, error) {
	if len(data) == 0 || len(data[0]) == 0 || len(data[0][0]) == 0 {
		return nil, nil, ErrShapeMismatch
	}
	z, y, x := len(data), len(data[0]), len(data[0][0])
	g, err := New(z, y, x)
	if err != nil {
		return nil, nil, err
	}
	flat := make([]float32, z*y*x)
	plane := y * x
	for zi, layer := range data {
		if len(layer) != y {
			return nil, nil, ErrShapeMismatch
		}
		for yi, row := range layer {
			if len(row) != x {
				return nil, nil, ErrShapeMismatch
			}
			off := zi*plane + yi*x
			copy(flat[off:off+x], row)
		}
	}
	return g, flat, nil
}

// FlattenU8_3D is FlattenF32_3D's byte-mask counterpart.
func FlattenU8_3D(data [][][]byte) (*Grid, []byte, error) {
	if len(data) == 0 || len(data[0]) == 0 || len(data[0][0]) == 0 {
		return nil, nil, ErrShapeMismatch
	}
	z, y, x := len(data), len(data[0]), len(data[0][0])
	g, err := New(z, y, x)
	if err != nil {
		return nil, nil, err
	}
	flat := make([]byte, z*y*x)
	plane := y * x
	for zi, layer := range data {
		if len(layer) != y {
			return nil, nil, ErrShapeMismatch
		}
		for yi, row := range layer {
			if len(row) != x {
				return nil, nil, ErrShapeMismatch
			}
			off := zi*plane + yi*x
			copy(flat[off:off+x], row)
		}
	}
	return g, flat, nil
}

// UnflattenF32_3D is FlattenF32_3D's inverse.
func UnflattenF32_3D(g *Grid, flat []float32) [][][]float32 {
	z, y, x := g.Dim(0), g.Dim(1), g.Dim(2)
	plane := y * x
	out := make([][][]float32, z)
	for zi := 0; zi < z; zi++ {
		layer := make([][]float32, y)
		for yi := 0; yi < y; yi++ {
			off := zi*plane + yi*x
			row := make([]float32, x)
			copy(row, flat[off:off+x])
			layer[yi] = row
		}
		out[zi] = layer
	}
	return out
}

// SameDims reports whether a and b describe identical per-axis extents.
func SameDims(a, b *Grid) bool {
	if a.Rank() != b.Rank() {
		return false
	}
	for k := 0; k < a.Rank(); k++ {
		if a.Dim(k) != b.Dim(k) {
			return false
		}
	}
	return true
}
