package overlay

import "github.com/rexbrahh/ndvis/buffer"

// Geometry is the current-frame geometry snapshot: SoA vertices and
// edges, the accumulated rotation matrix, and the projection Basis3.
type Geometry struct {
	Vertices       buffer.F32View // dim x VertexCount, axis-major
	VertexCount    int
	Dim            int
	Edges          []uint32 // 2 x EdgeCount, pairs of vertex ids
	EdgeCount      int
	Rotation       buffer.F32View // dim x dim, row-major
	RotationStride int            // 0 means tightly packed (= Dim)
	Basis3         buffer.F32View // 3 x dim, column-major over 3 columns
}

// Hyperplane is the optional slicing descriptor. Enabled must be true
// and Normal must hold at least Geometry.Dim values for slicing to run;
// otherwise slicing is skipped.
type Hyperplane struct {
	Enabled bool
	Normal  buffer.F32View
	Offset  float32
}

// Calculus is the optional calculus-overlay descriptor. Probe and
// LevelSetValues are in the expression's native float64 domain;
// Expression's variables are synthesized as x1..xDim.
type Calculus struct {
	Enabled        bool
	Expression     string
	Probe          []float64
	WantGradient   bool
	WantTangent    bool
	WantLevelSets  bool
	LevelSetValues []float64
	GradientScale  float64
}

// Outputs bundles every caller-owned output buffer. Buffers the
// request does not need may be left nil; Run validates only the ones
// a requested stage will write.
type Outputs struct {
	// ProjectedVertices holds VertexCount*3 interleaved (x,y,z) floats.
	ProjectedVertices buffer.MutF32View

	// SlicePositions holds SliceCapacity*3 interleaved floats, the
	// nD slice intersections (computed at full SliceCapacity stride,
	// see hyperplane.Slice) re-projected to 3D; only the first
	// SliceCount triples (per the returned Result) are meaningful.
	SlicePositions   buffer.MutF32View
	SliceCapacity    int
	SliceEdgeIndices []uint32 // length >= SliceCapacity

	// GradientArrowPositions holds 2*3 interleaved floats: probe, then
	// probe + scale*unit_gradient.
	GradientArrowPositions buffer.MutF32View

	// TangentPatchPositions holds 4*3 interleaved floats, the quad
	// corners in the order (--, +-, -+, ++) over (tangent_u, tangent_v).
	TangentPatchPositions buffer.MutF32View

	// LevelSetPositions holds len(LevelSetValues)*LevelSetCapacity*3
	// interleaved floats: level l's curve occupies the slice
	// [l*LevelSetCapacity*3, (l+1)*LevelSetCapacity*3); only the first
	// LevelSetCounts[l] triples of that slice are meaningful.
	LevelSetPositions buffer.MutF32View
	LevelSetCapacity  int

	// LevelSetEdgeCounts holds, after Run returns, the polytope edge
	// index each crossing in the most recently processed level was
	// extracted from (mirroring hyperplane.Slice's outEdgeIndices);
	// length must be >= LevelSetCapacity. The buffer is reused across
	// levels, so only the last level's LevelSetCounts[last] entries
	// remain valid once Run returns.
	LevelSetEdgeCounts []uint32
}

// Result reports what Run actually wrote. Err is nil on Success and
// otherwise a github.com/pkg/errors-wrapped diagnostic unwrap-compatible
// (via errors.Is) with the package's sentinel errors; Status alone
// remains sufficient for callers that only care about the outcome
// class.
type Result struct {
	Status         Status
	Err            error
	SliceCount     int
	GradientNorm   float64
	LevelSetCounts []int // one entry per Calculus.LevelSetValues, 0 if not requested
}
