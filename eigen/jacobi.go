package eigen

import (
	"math"

	"github.com/rexbrahh/ndvis/buffer"
)

// DefaultMaxSweeps and DefaultTolerance are the defaults from spec.md §4.4.
const (
	DefaultMaxSweeps = 32
	DefaultTolerance = 1e-10
)

// Options configures a Jacobi eigendecomposition.
type Options struct {
	MaxSweeps int
	Tolerance float64
}

// DefaultOptions returns the spec-default Jacobi configuration.
func DefaultOptions() Options {
	return Options{MaxSweeps: DefaultMaxSweeps, Tolerance: DefaultTolerance}
}

func (o Options) normalized() Options {
	if o.MaxSweeps <= 0 {
		o.MaxSweeps = DefaultMaxSweeps
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	return o
}

// Result reports how a Jacobi run terminated.
type Result struct {
	Sweeps    int
	Converged bool
}

// Jacobi diagonalizes the symmetric order x order matrix m in place:
// on return, m's diagonal holds the eigenvalues (unsorted) and
// vectors' columns hold the corresponding eigenvectors. vectors is
// reset to the identity before accumulating rotations.
func Jacobi(m, vectors buffer.MutF64View, order int, opts Options) (Result, error) {
	if order <= 0 {
		return Result{}, ErrInvalidOrder
	}
	if !m.HasCapacity(order * order) {
		return Result{}, ErrShortMatrixBuffer
	}
	if !vectors.HasCapacity(order * order) {
		return Result{}, ErrShortVectorBuffer
	}
	opts = opts.normalized()

	for i := 0; i < order; i++ {
		for j := 0; j < order; j++ {
			v := 0.0
			if i == j {
				v = 1
			}
			vectors.Set(i*order+j, v)
		}
	}

	if order == 1 {
		return Result{Sweeps: 0, Converged: true}, nil
	}

	for sweep := 0; sweep < opts.MaxSweeps; sweep++ {
		p, q, maxAbs := pivot(m, order)
		if maxAbs < opts.Tolerance {
			return Result{Sweeps: sweep, Converged: true}, nil
		}
		rotate(m, vectors, order, p, q)
	}

	return Result{Sweeps: opts.MaxSweeps, Converged: false}, nil
}

// pivot scans the upper triangle for the off-diagonal entry of largest
// magnitude and returns its row, column and magnitude.
func pivot(m buffer.MutF64View, order int) (p, q int, maxAbs float64) {
	for i := 0; i < order; i++ {
		for j := i + 1; j < order; j++ {
			a := math.Abs(m.At(i*order + j))
			if a > maxAbs {
				maxAbs, p, q = a, i, j
			}
		}
	}
	return p, q, maxAbs
}

// rotate zeroes m[p,q] with a single Jacobi rotation, updating m and
// accumulating the rotation into vectors.
func rotate(m, vectors buffer.MutF64View, order, p, q int) {
	mpq := m.At(p*order + q)
	mpp := m.At(p*order + p)
	mqq := m.At(q*order + q)

	var t float64
	if mpq == 0 {
		return
	}
	tau := (mqq - mpp) / (2 * mpq)
	if tau >= 0 {
		t = 1 / (tau + math.Sqrt(1+tau*tau))
	} else {
		t = -1 / (-tau + math.Sqrt(1+tau*tau))
	}
	c := 1 / math.Sqrt(1+t*t)
	s := t * c

	m.Set(p*order+p, mpp-t*mpq)
	m.Set(q*order+q, mqq+t*mpq)
	m.Set(p*order+q, 0)
	m.Set(q*order+p, 0)

	for i := 0; i < order; i++ {
		if i == p || i == q {
			continue
		}
		mip := m.At(i*order + p)
		miq := m.At(i*order + q)
		newIp := c*mip - s*miq
		newIq := s*mip + c*miq
		m.Set(i*order+p, newIp)
		m.Set(p*order+i, newIp)
		m.Set(i*order+q, newIq)
		m.Set(q*order+i, newIq)
	}

	for i := 0; i < order; i++ {
		vip := vectors.At(i*order + p)
		viq := vectors.At(i*order + q)
		vectors.Set(i*order+p, c*vip-s*viq)
		vectors.Set(i*order+q, s*vip+c*viq)
	}
}
