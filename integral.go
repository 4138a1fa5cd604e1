package ampbench

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate"
)

// PopulationSum is the combined signal y(t) = r_E(t) + r_I(t) whose time
// integral the amplification check compares.
func PopulationSum(s Sample) float64 {
	sum := 0.0
	for _, v := range s.Y {
		sum += v
	}
	return sum
}

// RiemannSum computes the left Riemann sum of f over the trajectory,
// Σ f(s_i)·(t_{i+1} − t_i). Using the actual sample spacing instead of a
// nominal uniform h keeps the sum correct even where the adaptive stepper
// shortened a step to land on a stop point.
func (tr Trajectory) RiemannSum(f func(Sample) float64) float64 {
	sum := 0.0
	for i := 0; i+1 < len(tr); i++ {
		sum += f(tr[i]) * (tr[i+1].T - tr[i].T)
	}
	return sum
}

// Trapezoid computes the trapezoidal integral of f over the trajectory.
// Cross-check for RiemannSum: the two agree to O(h·total variation).
func (tr Trajectory) Trapezoid(f func(Sample) float64) float64 {
	xs := make([]float64, len(tr))
	ys := make([]float64, len(tr))
	for i, s := range tr {
		xs[i] = s.T
		ys[i] = f(s)
	}
	return integrate.Trapezoidal(xs, ys)
}

// RatioCheck is the outcome of an amplification-ratio comparison. A failed
// check is a recorded result, not an error: callers decide whether to treat
// it as fatal.
type RatioCheck struct {
	BaselineIntegral  float64 // ∫ y dt for the 1x trajectory
	AmplifiedIntegral float64 // ∫ y dt for the 4x trajectory
	Measured          float64 // AmplifiedIntegral / BaselineIntegral
	Expected          float64 // 4 for both reproductions
	Tolerance         float64 // relative tolerance of the comparison
	Pass              bool
}

// CheckRatio compares the integral ratio amplified/baseline against expected
// within a relative tolerance.
func CheckRatio(baseline, amplified, expected, tolerance float64) RatioCheck {
	measured := amplified / baseline
	return RatioCheck{
		BaselineIntegral:  baseline,
		AmplifiedIntegral: amplified,
		Measured:          measured,
		Expected:          expected,
		Tolerance:         tolerance,
		Pass:              scalar.EqualWithinRel(measured, expected, tolerance),
	}
}

// Verdict renders the check as the figure captions' one-line verdict.
func (c RatioCheck) Verdict() string {
	if c.Pass {
		return fmt.Sprintf("amplification OK: integral ratio %.4f within %.1f%% of %g",
			c.Measured, c.Tolerance*100, c.Expected)
	}
	return fmt.Sprintf("amplification WRONG: integral ratio %.4f outside %.1f%% of %g (baseline ∫=%.4f, amplified ∫=%.4f)",
		c.Measured, c.Tolerance*100, c.Expected, c.BaselineIntegral, c.AmplifiedIntegral)
}
