package ampbench

import (
	"errors"
	"fmt"
)

// Domain errors for model construction and integration.
var (
	// ErrParameterBounds indicates a model or config parameter outside its
	// valid range (τ ≤ 0, w < 0, k_I < 1, g = 1, ...).
	ErrParameterBounds = errors.New("ampbench: parameter out of valid bounds")

	// ErrUnstable indicates the integration produced a non-finite state.
	ErrUnstable = errors.New("ampbench: integration diverged (NaN or Inf in state)")

	// ErrStepTooSmall indicates the adaptive step size fell below the minimum.
	ErrStepTooSmall = errors.New("ampbench: adaptive step size below minimum")

	// ErrMaxSteps indicates the step budget was exhausted before reaching
	// the end of the time span.
	ErrMaxSteps = errors.New("ampbench: maximum step count exceeded")
)

// IntegrationError wraps a fatal integration failure with the solver state
// at the point of failure. There is no recovery path: the run is aborted.
type IntegrationError struct {
	Step    int       // Accepted steps before the failure
	Time    float64   // Independent variable at the failure
	State   []float64 // State vector at the failure
	Wrapped error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%v (step %d, t=%g, state=%v)", e.Wrapped, e.Step, e.Time, e.State)
}

func (e *IntegrationError) Unwrap() error {
	return e.Wrapped
}
