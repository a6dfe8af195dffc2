package buffer

// Float constrains the two numeric kinds views carry: float32 for
// geometry/GPU-shared buffers, float64 for PCA covariance and the
// calculus core.
type Float interface {
	~float32 | ~float64
}

// View is a read-only window over a contiguous slice of T.
type View[T Float] struct {
	data []T
}

// NewView wraps data as a read-only View. The caller retains ownership;
// View never copies data, it aliases the caller's slice.
func NewView[T Float](data []T) View[T] {
	return View[T]{data: data}
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i. It panics if i is out of range,
// matching Go slice semantics — callers validate lengths up front via
// Len/HasCapacity rather than recovering from panics.
func (v View[T]) At(i int) T {
	return v.data[i]
}

// Slice returns the sub-view [lo, hi).
func (v View[T]) Slice(lo, hi int) View[T] {
	return View[T]{data: v.data[lo:hi]}
}

// Raw exposes the underlying slice for bulk read access (e.g. handing
// it to math routines). Callers must not mutate the returned slice.
func (v View[T]) Raw() []T {
	return v.data
}

// MutView is a writable window over a contiguous slice of T.
type MutView[T Float] struct {
	data []T
}

// NewMutView wraps data as a writable MutView.
func NewMutView[T Float](data []T) MutView[T] {
	return MutView[T]{data: data}
}

// Len returns the number of elements in the view.
func (v MutView[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i.
func (v MutView[T]) At(i int) T {
	return v.data[i]
}

// Set writes x at index i.
func (v MutView[T]) Set(i int, x T) {
	v.data[i] = x
}

// Slice returns the writable sub-view [lo, hi).
func (v MutView[T]) Slice(lo, hi int) MutView[T] {
	return MutView[T]{data: v.data[lo:hi]}
}

// View returns a read-only View over the same storage.
func (v MutView[T]) View() View[T] {
	return View[T]{data: v.data}
}

// Raw exposes the underlying slice for bulk read/write access.
func (v MutView[T]) Raw() []T {
	return v.data
}

// HasCapacity reports whether the view holds at least n elements.
// Generators and kernels use this to implement the "no writes beyond
// asserted capacities" failure policy without panicking.
func (v MutView[T]) HasCapacity(n int) bool {
	return len(v.data) >= n
}

// HasCapacity reports whether the view holds at least n elements.
func (v View[T]) HasCapacity(n int) bool {
	return len(v.data) >= n
}

// F32View, MutF32View, F64View and MutF64View are the concrete
// instantiations used throughout the module: float32 for geometry/GPU
// buffers, float64 for PCA and calculus.
type (
	F32View    = View[float32]
	MutF32View = MutView[float32]
	F64View    = View[float64]
	MutF64View = MutView[float64]
)
