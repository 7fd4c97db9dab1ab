package matrix

import "math"

// LUDecomposition is a Crout/Doolittle LU factorization of a square
// matrix with partial pivoting: PA = LU, where L is unit lower
// triangular, U is upper triangular, and perm records the row
// permutation applied during pivoting — spec's requirement that singular
// matrices be detectable via a zero diagonal pivot even after the best
// available row swap.
type LUDecomposition struct {
	lu      *GeneralMatrix // packed L (below diagonal) and U (on/above diagonal)
	perm    []int          // perm[i] = original row now at position i
	signum  int            // +1 or -1, parity of the row permutation
	n       int
	singular bool
}

// DecomposeLU factors m via Doolittle's method with partial pivoting: at
// each pivot column, the largest-magnitude candidate in or below the
// diagonal is swapped into place before elimination proceeds, so a matrix
// is only reported singular when no row swap can produce a nonzero pivot.
func DecomposeLU(m *GeneralMatrix) (*LUDecomposition, error) {
	if m.rows != m.cols {
		return nil, ErrNotSquare
	}
	n := m.rows
	lu := m.Copy()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	signum := 1

	for k := 0; k < n; k++ {
		// Partial pivoting: find the largest-magnitude entry in column k
		// at or below row k.
		pivotRow := k
		pivotVal := math.Abs(lu.At(k, k))
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu.At(i, k)); v > pivotVal {
				pivotRow = i
				pivotVal = v
			}
		}
		if pivotRow != k {
			swapRows(lu, k, pivotRow)
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
			signum = -signum
		}

		pivot := lu.At(k, k)
		if pivot == 0 {
			// No swap produced a nonzero pivot: the matrix is singular.
			// Continue the elimination with the zero pivot so later rows
			// are left in a well-defined (if useless) state, and record
			// the failure for Solve/Invert to report.
			continue
		}

		for i := k + 1; i < n; i++ {
			factor := lu.At(i, k) / pivot
			lu.Set(i, k, factor)
			for j := k + 1; j < n; j++ {
				lu.Set(i, j, lu.At(i, j)-factor*lu.At(k, j))
			}
		}
	}

	singular := false
	for k := 0; k < n; k++ {
		if lu.At(k, k) == 0 {
			singular = true
			break
		}
	}

	return &LUDecomposition{lu: lu, perm: perm, signum: signum, n: n, singular: singular}, nil
}

func swapRows(m *GeneralMatrix, a, b int) {
	if a == b {
		return
	}
	for j := 0; j < m.cols; j++ {
		m.data[m.index(a, j)], m.data[m.index(b, j)] = m.data[m.index(b, j)], m.data[m.index(a, j)]
	}
}

// IsSingular reports whether the decomposition found a zero pivot.
func (d *LUDecomposition) IsSingular() bool { return d.singular }

// Determinant returns the determinant of the original matrix, computed as
// the signed product of U's diagonal.
func (d *LUDecomposition) Determinant() float64 {
	det := float64(d.signum)
	for i := 0; i < d.n; i++ {
		det *= d.lu.At(i, i)
	}
	return det
}

// L returns the unit lower-triangular factor.
func (d *LUDecomposition) L() *GeneralMatrix {
	out, _ := New(d.n, d.n)
	for i := 0; i < d.n; i++ {
		out.Set(i, i, 1)
		for j := 0; j < i; j++ {
			out.Set(i, j, d.lu.At(i, j))
		}
	}
	return out
}

// U returns the upper-triangular factor.
func (d *LUDecomposition) U() *GeneralMatrix {
	out, _ := New(d.n, d.n)
	for i := 0; i < d.n; i++ {
		for j := i; j < d.n; j++ {
			out.Set(i, j, d.lu.At(i, j))
		}
	}
	return out
}

// Solve returns x such that the original matrix times x equals b (an
// n-length vector), via forward then back substitution against the
// pivoted factors. Returns ErrSingular if the decomposition found a zero
// pivot.
func (d *LUDecomposition) Solve(b []float64) ([]float64, error) {
	if d.singular {
		return nil, ErrSingular
	}
	n := d.n
	// Apply the row permutation to b.
	pb := make([]float64, n)
	for i, p := range d.perm {
		pb[i] = b[p]
	}

	// Forward substitution: L y = Pb.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := pb[i]
		for j := 0; j < i; j++ {
			sum -= d.lu.At(i, j) * y[j]
		}
		y[i] = sum
	}

	// Back substitution: U x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= d.lu.At(i, j) * x[j]
		}
		x[i] = sum / d.lu.At(i, i)
	}
	return x, nil
}

// Solve factors m and solves m*x = b in one call.
func Solve(m *GeneralMatrix, b []float64) ([]float64, error) {
	lu, err := DecomposeLU(m)
	if err != nil {
		return nil, err
	}
	return lu.Solve(b)
}

// Invert returns m's inverse, computed by solving m*X = I one column at a
// time. Returns ErrSingular if m is singular.
func Invert(m *GeneralMatrix) (*GeneralMatrix, error) {
	lu, err := DecomposeLU(m)
	if err != nil {
		return nil, err
	}
	if lu.singular {
		return nil, ErrSingular
	}
	n := m.rows
	out, _ := New(n, n)
	for col := 0; col < n; col++ {
		e := make([]float64, n)
		e[col] = 1
		x, err := lu.Solve(e)
		if err != nil {
			return nil, err
		}
		for row := 0; row < n; row++ {
			out.Set(row, col, x[row])
		}
	}
	return out, nil
}
