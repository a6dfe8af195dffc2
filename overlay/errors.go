package overlay

import "errors"

// Status is the overlay-level outcome alphabet (spec.md §6): Success,
// InvalidInputs, NullBuffer, EvalError, GradientError.
type Status int

const (
	Success Status = iota
	InvalidInputs
	NullBuffer
	EvalError
	GradientError
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case InvalidInputs:
		return "InvalidInputs"
	case NullBuffer:
		return "NullBuffer"
	case EvalError:
		return "EvalError"
	case GradientError:
		return "GradientError"
	default:
		return "Unknown"
	}
}

var (
	// ErrInvalidInputs indicates a malformed or undersized geometry input.
	ErrInvalidInputs = errors.New("overlay: invalid inputs")
	// ErrNullBuffer indicates a required output buffer is absent or
	// smaller than the data it must hold.
	ErrNullBuffer = errors.New("overlay: required buffer missing or too small")
	// ErrZeroGradient indicates the gradient norm at the probe point
	// does not exceed GradientEpsilon.
	ErrZeroGradient = errors.New("overlay: zero gradient at probe point")
	// ErrColinearTangentBasis indicates the tangent-plane construction
	// could not find two non-degenerate orthogonal directions.
	ErrColinearTangentBasis = errors.New("overlay: degenerate tangent basis")
)

// GradientEpsilon is the minimum gradient norm below which gradient-
// and tangent-dependent overlays fail with GradientError (spec.md §4.13).
const GradientEpsilon = 1e-9
