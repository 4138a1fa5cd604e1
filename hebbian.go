package ampbench

import (
	"fmt"
	"math"
)

// HebbianConfig controls the closed-form comparison. Unlike the balanced
// case there is no ODE to solve: both curves are explicit two-segment
// exponentials, rising on [0, RiseEnd] and decaying on [RiseEnd, End].
type HebbianConfig struct {
	// Gain is the Hebbian feedback gain g. The amplified curve rises as
	// (e^((g−1)t) − 1)/(g−1); with g < 1 this saturates at 1/(1−g), four
	// times the baseline's limit at g = 0.75.
	Gain float64

	RiseEnd float64 // input switch-off time, 15 in the paper figure
	End     float64 // end of the span, 30

	Step float64 // uniform sampling step for the Riemann sums

	Expected  float64 // expected integral ratio
	Tolerance float64 // relative tolerance of the ratio check
}

// DefaultHebbianConfig returns the paper figure's setup: g = 0.75, span
// [0, 30] split at 15, step 0.001, ratio 4 within 10%.
func DefaultHebbianConfig() HebbianConfig {
	return HebbianConfig{
		Gain:      0.75,
		RiseEnd:   15,
		End:       30,
		Step:      1e-3,
		Expected:  4,
		Tolerance: 0.10,
	}
}

// Validate rejects configs with no closed form. g = 1 makes the rise
// expression 0/0 (the limit is the linear ramp t, which the reproduction
// does not model).
func (c HebbianConfig) Validate() error {
	if c.Gain <= 0 || c.Gain == 1 {
		return fmt.Errorf("%w: g = %g (must be > 0 and ≠ 1)", ErrParameterBounds, c.Gain)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: step = %g (must be > 0)", ErrParameterBounds, c.Step)
	}
	if c.RiseEnd <= 0 || c.End <= c.RiseEnd {
		return fmt.Errorf("%w: span 0 < %g < %g required", ErrParameterBounds, c.RiseEnd, c.End)
	}
	return nil
}

// baselineAt is the unamplified curve: rises as 1 − e^(−t), then decays
// from its switch-off value at rate 1.
func (c HebbianConfig) baselineAt(t float64) float64 {
	if t <= c.RiseEnd {
		return 1 - math.Exp(-t)
	}
	peak := 1 - math.Exp(-c.RiseEnd)
	return peak * math.Exp(-(t - c.RiseEnd))
}

// amplifiedAt is the Hebbian curve: rises as (e^((g−1)t) − 1)/(g−1), then
// decays from its switch-off value at its own rate constant g−1, mirroring
// how the baseline decays at its rise constant.
func (c HebbianConfig) amplifiedAt(t float64) float64 {
	k := c.Gain - 1
	if t <= c.RiseEnd {
		return (math.Exp(k*t) - 1) / k
	}
	peak := (math.Exp(k*c.RiseEnd) - 1) / k
	return peak * math.Exp(k*(t-c.RiseEnd))
}

// sample evaluates a curve at uniform Step over [0, End] as a single
// component trajectory, reusing the Riemann machinery of the ODE case.
func (c HebbianConfig) sample(f func(float64) float64) Trajectory {
	n := int(math.Round(c.End/c.Step)) + 1
	tr := make(Trajectory, n)
	for i := 0; i < n; i++ {
		t := float64(i) * c.Step
		tr[i] = Sample{T: t, Y: []float64{f(t)}}
	}
	return tr
}

// HebbianResult holds both sampled curves and the ratio check.
type HebbianResult struct {
	Baseline  Trajectory // "1x amplification" curve
	Amplified Trajectory // "4x amplification" curve
	Check     RatioCheck
}

// RunHebbian evaluates the two closed-form curves and checks the 4:1
// integral invariant. Analogous to RunAmplification, but independent of the
// ODE integrator by construction.
func RunHebbian(cfg HebbianConfig) (HebbianResult, error) {
	var res HebbianResult

	if err := cfg.Validate(); err != nil {
		return res, err
	}

	res.Baseline = cfg.sample(cfg.baselineAt)
	res.Amplified = cfg.sample(cfg.amplifiedAt)

	res.Check = CheckRatio(
		res.Baseline.RiemannSum(PopulationSum),
		res.Amplified.RiemannSum(PopulationSum),
		cfg.Expected, cfg.Tolerance)

	return res, nil
}
