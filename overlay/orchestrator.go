package overlay

import (
	"fmt"
	"math"

	pkgerrors "github.com/pkg/errors"

	"github.com/rexbrahh/ndvis/buffer"
	"github.com/rexbrahh/ndvis/calc/engine"
	"github.com/rexbrahh/ndvis/hyperplane"
	"github.com/rexbrahh/ndvis/projection"
)

// levelSetEpsilon guards the interpolation parameter against a
// near-zero denominator, mirroring hyperplane.InterpolationEpsilon.
const levelSetEpsilon = 1e-5

// Run executes one overlay frame: project, slice, and (if requested)
// evaluate calculus overlays, in the order of spec.md §4.13. A failure
// in an overlay-only stage (slice past the geometry/projection step,
// gradient, tangent, level sets) leaves every earlier stage's outputs
// valid in out and zeroes only the failed stage's own count fields.
func Run(g Geometry, hp Hyperplane, calc Calculus, out *Outputs) Result {
	if out == nil {
		return Result{Status: NullBuffer, Err: ErrNullBuffer}
	}

	written, err := projection.Project(g.Vertices, g.Dim, g.VertexCount, g.Rotation, g.RotationStride, g.Basis3, out.ProjectedVertices)
	if err != nil {
		return Result{Status: InvalidInputs, Err: pkgerrors.Wrapf(ErrInvalidInputs, "overlay: projection stage failed: %v", err)}
	}
	if written != g.VertexCount*3 {
		return Result{Status: InvalidInputs, Err: pkgerrors.Wrapf(ErrInvalidInputs, "overlay: projection wrote %d floats, want %d", written, g.VertexCount*3)}
	}

	result := Result{Status: Success}

	if hp.Enabled && hp.Normal.HasCapacity(g.Dim) {
		sliceCount, err := sliceAndProject(g, hp, out)
		if err != nil {
			return Result{Status: InvalidInputs, Err: pkgerrors.Wrapf(ErrInvalidInputs, "overlay: slice stage failed: %v", err)}
		}
		result.SliceCount = sliceCount
	}

	if !calc.Enabled {
		return result
	}

	varNames := make([]string, g.Dim)
	for i := range varNames {
		varNames[i] = fmt.Sprintf("x%d", i+1)
	}
	ctx := engine.DefaultContext()
	ctx.SetMode(engine.Forward)
	prog, err := ctx.Compile(calc.Expression, varNames)
	if err != nil {
		result.Status = EvalError
		result.Err = pkgerrors.Wrap(err, "overlay: calculus compile failed")
		return result
	}

	if calc.WantGradient || calc.WantTangent {
		status, err := computeGradientOverlays(prog, g, calc, out, &result)
		if status != Success {
			result.Status = status
			result.Err = err
			return result
		}
	}

	if calc.WantLevelSets {
		status, err := computeLevelSets(prog, g, calc, out, &result)
		if status != Success {
			result.Status = status
			result.Err = err
			result.LevelSetCounts = nil
			return result
		}
	}

	return result
}

func sliceAndProject(g Geometry, hp Hyperplane, out *Outputs) (int, error) {
	if out.SliceCapacity <= 0 {
		return 0, nil
	}
	ndPoints := make([]float32, g.Dim*out.SliceCapacity)
	count, err := hyperplane.Slice(
		g.Vertices, g.VertexCount, g.Dim,
		g.Edges, g.EdgeCount,
		hp.Normal, hp.Offset,
		buffer.NewMutView(ndPoints), out.SliceCapacity,
		out.SliceEdgeIndices,
	)
	if err != nil {
		return 0, err
	}
	if _, err := projection.Project(buffer.NewView(ndPoints), g.Dim, out.SliceCapacity, g.Rotation, g.RotationStride, g.Basis3, out.SlicePositions); err != nil {
		return 0, err
	}
	return count, nil
}

// computeGradientOverlays evaluates the gradient at calc.Probe and, if
// requested, draws the gradient arrow and/or tangent patch. A hard
// evaluation failure (domain error inside the compiled program)
// reports EvalError; a degenerate but successfully evaluated gradient
// (zero norm, or a colinear tangent basis) reports GradientError, per
// spec.md §9's numerical-degeneracy classification.
func computeGradientOverlays(prog *engine.Program, g Geometry, calc Calculus, out *Outputs, result *Result) (Status, error) {
	grad, err := prog.Gradient(calc.Probe)
	if err != nil {
		return EvalError, pkgerrors.Wrap(err, "overlay: gradient evaluation failed")
	}
	var sumSq float64
	for _, d := range grad {
		sumSq += d * d
	}
	norm := math.Sqrt(sumSq)
	result.GradientNorm = norm
	if norm <= GradientEpsilon {
		return GradientError, pkgerrors.Wrapf(ErrZeroGradient, "overlay: gradient norm %.3g at probe %v", norm, calc.Probe)
	}
	unit := make([]float64, len(grad))
	for i, d := range grad {
		unit[i] = d / norm
	}

	if calc.WantGradient {
		arrow := make([]float32, g.Dim*2)
		for a := 0; a < g.Dim; a++ {
			arrow[a*2+0] = float32(calc.Probe[a])
			arrow[a*2+1] = float32(calc.Probe[a] + calc.GradientScale*unit[a])
		}
		if _, err := projection.Project(buffer.NewView(arrow), g.Dim, 2, g.Rotation, g.RotationStride, g.Basis3, out.GradientArrowPositions); err != nil {
			return InvalidInputs, pkgerrors.Wrapf(ErrInvalidInputs, "overlay: gradient arrow projection failed: %v", err)
		}
	}

	if calc.WantTangent {
		tu, tv, err := tangentBasis(unit)
		if err != nil {
			return GradientError, pkgerrors.Wrapf(err, "overlay: tangent basis at probe %v", calc.Probe)
		}
		quad := make([]float32, g.Dim*4)
		signs := [4][2]float64{{-0.5, -0.5}, {0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5}}
		for a := 0; a < g.Dim; a++ {
			for corner, s := range signs {
				p := calc.Probe[a] + s[0]*tu[a] + s[1]*tv[a]
				quad[a*4+corner] = float32(p)
			}
		}
		if _, err := projection.Project(buffer.NewView(quad), g.Dim, 4, g.Rotation, g.RotationStride, g.Basis3, out.TangentPatchPositions); err != nil {
			return InvalidInputs, pkgerrors.Wrapf(ErrInvalidInputs, "overlay: tangent patch projection failed: %v", err)
		}
	}

	return Success, nil
}

// tangentBasis builds two orthonormal vectors orthogonal to unit
// (spec.md §4.13 step 7): seed from the two axes along which unit has
// the smallest magnitude, then re-orthonormalize against unit and
// each other.
func tangentBasis(unit []float64) (tu, tv []float64, err error) {
	n := len(unit)
	if n < 2 {
		return nil, nil, ErrColinearTangentBasis
	}
	k1, k2 := smallestTwoAxes(unit)

	tu = orthonormalize(canonical(n, k1), unit)
	if norm(tu) < 1e-9 {
		return nil, nil, ErrColinearTangentBasis
	}
	tu = scale(tu, 1/norm(tu))

	tv = orthonormalize(canonical(n, k2), unit, tu)
	if norm(tv) < 1e-9 {
		return nil, nil, ErrColinearTangentBasis
	}
	tv = scale(tv, 1/norm(tv))
	return tu, tv, nil
}

func smallestTwoAxes(v []float64) (int, int) {
	k1, k2 := 0, 1
	if math.Abs(v[k2]) < math.Abs(v[k1]) {
		k1, k2 = k2, k1
	}
	for i := 2; i < len(v); i++ {
		a := math.Abs(v[i])
		if a < math.Abs(v[k1]) {
			k2 = k1
			k1 = i
		} else if a < math.Abs(v[k2]) {
			k2 = i
		}
	}
	return k1, k2
}

func canonical(n, axis int) []float64 {
	e := make([]float64, n)
	e[axis] = 1
	return e
}

func orthonormalize(v []float64, against ...[]float64) []float64 {
	out := append([]float64(nil), v...)
	for _, b := range against {
		d := dot(out, b)
		for i := range out {
			out[i] -= d * b[i]
		}
	}
	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm(v []float64) float64 { return math.Sqrt(dot(v, v)) }

func scale(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return out
}

// computeLevelSets extracts, for each target value in calc.LevelSetValues,
// the nD curve where the program's value crosses that level, re-projects
// it to 3D, and records the count. Unlike hyperplane/slice capacity
// handling, a single curve that would exceed out.LevelSetCapacity hard-
// fails the whole call with NullBuffer rather than truncating (spec.md
// §4.13 step 8) — partial level-set data is not considered useful to a
// caller the way a partial polytope slice is.
func computeLevelSets(prog *engine.Program, g Geometry, calc Calculus, out *Outputs, result *Result) (Status, error) {
	if len(calc.LevelSetValues) == 0 {
		return Success, nil
	}
	if out.LevelSetCapacity <= 0 ||
		!out.LevelSetPositions.HasCapacity(len(calc.LevelSetValues)*out.LevelSetCapacity*3) ||
		len(out.LevelSetEdgeCounts) < out.LevelSetCapacity {
		return NullBuffer, pkgerrors.Wrapf(ErrNullBuffer, "overlay: level-set output buffers too small for capacity %d", out.LevelSetCapacity)
	}

	vars := make([][]float64, g.Dim)
	for a := 0; a < g.Dim; a++ {
		col := make([]float64, g.VertexCount)
		for v := 0; v < g.VertexCount; v++ {
			col[v] = float64(g.Vertices.At(a*g.VertexCount + v))
		}
		vars[a] = col
	}
	values := make([]float64, g.VertexCount)
	if err := prog.EvalBatch(vars, values); err != nil {
		return EvalError, pkgerrors.Wrap(err, "overlay: level-set vertex evaluation failed")
	}

	counts := make([]int, len(calc.LevelSetValues))
	for l, c := range calc.LevelSetValues {
		points := make([]float32, 0, out.LevelSetCapacity*g.Dim)
		n := 0
		for e := 0; e < g.EdgeCount; e++ {
			u, v := g.Edges[2*e], g.Edges[2*e+1]
			du := values[u] - c
			dv := values[v] - c
			onU := math.Abs(du) < levelSetEpsilon
			onV := math.Abs(dv) < levelSetEpsilon
			crosses := du*dv < 0
			exactlyOneOn := onU != onV
			if !crosses && !exactlyOneOn {
				continue
			}
			if n >= out.LevelSetCapacity {
				return NullBuffer, pkgerrors.Wrapf(ErrNullBuffer, "overlay: level %d (value %g) exceeds capacity %d", l, c, out.LevelSetCapacity)
			}
			var t float64
			if math.Abs(du-dv) > levelSetEpsilon {
				t = du / (du - dv)
			} else if onU {
				t = 0
			} else if onV {
				t = 1
			} else {
				t = 0.5
			}
			if t < 0 {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			for a := 0; a < g.Dim; a++ {
				pu := g.Vertices.At(a*g.VertexCount + int(u))
				pv := g.Vertices.At(a*g.VertexCount + int(v))
				points = append(points, pu+(pv-pu)*float32(t))
			}
			out.LevelSetEdgeCounts[n] = uint32(e)
			n++
		}

		soa := make([]float32, g.Dim*out.LevelSetCapacity)
		for i := 0; i < n; i++ {
			for a := 0; a < g.Dim; a++ {
				soa[a*out.LevelSetCapacity+i] = points[i*g.Dim+a]
			}
		}
		levelOut := out.LevelSetPositions.Slice(l*out.LevelSetCapacity*3, (l+1)*out.LevelSetCapacity*3)
		if _, err := projection.Project(buffer.NewView(soa), g.Dim, out.LevelSetCapacity, g.Rotation, g.RotationStride, g.Basis3, levelOut); err != nil {
			return InvalidInputs, pkgerrors.Wrapf(ErrInvalidInputs, "overlay: level %d re-projection failed: %v", l, err)
		}
		counts[l] = n
	}
	result.LevelSetCounts = counts
	return Success, nil
}
