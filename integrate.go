package ampbench

import (
	"fmt"
	"math"
	"sort"
)

// Func is an ODE right-hand side: dy = f(t, y). Implementations must fill
// dy and may not retain y.
type Func func(t float64, y, dy []float64)

// Impulse is a one-shot additive state jump delivered when the integration
// reaches Time exactly. Impulse times are forced into the solver's stop set,
// so adaptive stepping cannot skip over them. Impulses at or before the start
// of the span, or after its end, are ignored.
type Impulse struct {
	Time float64
	Jump []float64
}

// Sample is one trajectory point. For a sample at an impulse time, Y is the
// post-jump state.
type Sample struct {
	T float64
	Y []float64
}

// Trajectory is an ordered, strictly increasing-in-time sequence of samples.
// Append-only during integration, read-only after.
type Trajectory []Sample

// Last returns the final sample. Panics on an empty trajectory.
func (tr Trajectory) Last() Sample { return tr[len(tr)-1] }

// Before returns the last sample with T < t, or false if there is none.
func (tr Trajectory) Before(t float64) (Sample, bool) {
	i := sort.Search(len(tr), func(i int) bool { return tr[i].T >= t })
	if i == 0 {
		return Sample{}, false
	}
	return tr[i-1], true
}

// At returns the first sample with T ≥ t, or false if there is none.
func (tr Trajectory) At(t float64) (Sample, bool) {
	i := sort.Search(len(tr), func(i int) bool { return tr[i].T >= t })
	if i == len(tr) {
		return Sample{}, false
	}
	return tr[i], true
}

// IntegratorConfig controls the adaptive Dormand-Prince 5(4) stepper.
type IntegratorConfig struct {
	// InitialStep is the first step size attempted (clamped to MaxStep).
	InitialStep float64

	// MinStep aborts the integration with ErrStepTooSmall if the error
	// control would shrink the step below it.
	MinStep float64

	// MaxStep bounds every step. The reproduction keeps this at 1e-3 so the
	// sampling is fine enough for the downstream Riemann sums.
	MaxStep float64

	// AbsTol and RelTol control the local error estimate per component:
	// scale_i = AbsTol + RelTol·max(|y_i|, |y'_i|).
	AbsTol float64
	RelTol float64

	// MaxSteps aborts with ErrMaxSteps if the span is not covered within
	// this many accepted steps.
	MaxSteps int
}

// DefaultIntegratorConfig returns the reproduction's solver settings:
// initial step 0.01, max step 0.001.
func DefaultIntegratorConfig() IntegratorConfig {
	return IntegratorConfig{
		InitialStep: 0.01,
		MinStep:     1e-12,
		MaxStep:     1e-3,
		AbsTol:      1e-9,
		RelTol:      1e-7,
		MaxSteps:    1_000_000,
	}
}

// Validate rejects configs the stepper cannot run with.
func (c IntegratorConfig) Validate() error {
	if c.MaxStep <= 0 {
		return fmt.Errorf("%w: MaxStep = %g (must be > 0)", ErrParameterBounds, c.MaxStep)
	}
	if c.MinStep < 0 || c.MinStep > c.MaxStep {
		return fmt.Errorf("%w: MinStep = %g (must be in [0, MaxStep])", ErrParameterBounds, c.MinStep)
	}
	if c.AbsTol <= 0 || c.RelTol < 0 {
		return fmt.Errorf("%w: AbsTol = %g, RelTol = %g", ErrParameterBounds, c.AbsTol, c.RelTol)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("%w: MaxSteps = %d (must be > 0)", ErrParameterBounds, c.MaxSteps)
	}
	return nil
}

// IntegratorStats reports what the stepper did.
type IntegratorStats struct {
	Steps    int     // Accepted steps
	Rejected int     // Steps rejected by error control
	Evals    int     // Right-hand-side evaluations
	LastStep float64 // Size of the last accepted step
}

// Dormand-Prince 5(4) coefficients.
var (
	dpC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
	// 5th-order solution weights (the 7th stage does not contribute).
	dpB5 = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}
	// Embedded 4th-order weights for the error estimate.
	dpB4 = [7]float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40}
)

// Integrate solves y' = f(t, y) from t0 to t1 with the adaptive
// Dormand-Prince 5(4) pair, applying each impulse exactly at its time.
// It returns one sample per accepted step (plus the initial state); the
// sample at an impulse time carries the post-jump state, keeping the
// trajectory strictly increasing in time.
//
// Any numerical failure aborts the run with an *IntegrationError; there is
// no recovery path.
func Integrate(f Func, y0 []float64, t0, t1 float64, impulses []Impulse, cfg IntegratorConfig) (Trajectory, IntegratorStats, error) {
	var stats IntegratorStats
	if err := cfg.Validate(); err != nil {
		return nil, stats, err
	}
	if t1 <= t0 {
		return nil, stats, fmt.Errorf("%w: empty time span [%g, %g]", ErrParameterBounds, t0, t1)
	}

	// Stop set: impulse times inside (t0, t1], then the span end.
	stops := make([]float64, 0, len(impulses)+1)
	jumps := make(map[float64][]float64, len(impulses))
	for _, imp := range impulses {
		if imp.Time > t0 && imp.Time <= t1 {
			stops = append(stops, imp.Time)
			jumps[imp.Time] = imp.Jump
		}
	}
	sort.Float64s(stops)
	if len(stops) == 0 || stops[len(stops)-1] != t1 {
		stops = append(stops, t1)
	}

	n := len(y0)
	y := make([]float64, n)
	copy(y, y0)
	t := t0

	traj := make(Trajectory, 0, int((t1-t0)/cfg.MaxStep)+len(stops)+2)
	traj = append(traj, Sample{T: t, Y: append([]float64(nil), y...)})

	h := math.Min(cfg.InitialStep, cfg.MaxStep)
	if h <= 0 {
		h = cfg.MaxStep
	}

	var k [7][]float64
	for i := range k {
		k[i] = make([]float64, n)
	}
	ytmp := make([]float64, n)
	y5 := make([]float64, n)
	errv := make([]float64, n)

	fail := func(sentinel error) (Trajectory, IntegratorStats, error) {
		return nil, stats, &IntegrationError{
			Step:    stats.Steps,
			Time:    t,
			State:   append([]float64(nil), y...),
			Wrapped: sentinel,
		}
	}

	for _, stop := range stops {
		for t < stop {
			if stats.Steps >= cfg.MaxSteps {
				return fail(ErrMaxSteps)
			}

			hTry := math.Min(h, cfg.MaxStep)
			landing := false
			if t+hTry >= stop {
				hTry = stop - t
				landing = true
			}

			// Stage evaluations.
			f(t, y, k[0])
			for s := 1; s < 7; s++ {
				for i := 0; i < n; i++ {
					sum := 0.0
					for j := 0; j < s; j++ {
						sum += dpA[s][j] * k[j][i]
					}
					ytmp[i] = y[i] + hTry*sum
				}
				f(t+dpC[s]*hTry, ytmp, k[s])
			}
			stats.Evals += 7

			// 5th-order solution and embedded error estimate.
			maxErr := 0.0
			for i := 0; i < n; i++ {
				sum5, sum4 := 0.0, 0.0
				for s := 0; s < 7; s++ {
					sum5 += dpB5[s] * k[s][i]
					sum4 += dpB4[s] * k[s][i]
				}
				y5[i] = y[i] + hTry*sum5
				errv[i] = hTry * (sum5 - sum4)

				if math.IsNaN(y5[i]) || math.IsInf(y5[i], 0) {
					return fail(ErrUnstable)
				}

				scale := cfg.AbsTol + cfg.RelTol*math.Max(math.Abs(y[i]), math.Abs(y5[i]))
				if e := math.Abs(errv[i]) / scale; e > maxErr {
					maxErr = e
				}
			}

			if maxErr <= 1 {
				// Accept. Landing steps set t to the stop exactly so the
				// impulse check below cannot miss by a rounding error.
				if landing {
					t = stop
				} else {
					t += hTry
				}
				copy(y, y5)
				stats.Steps++
				stats.LastStep = hTry
				traj = append(traj, Sample{T: t, Y: append([]float64(nil), y...)})
			} else {
				stats.Rejected++
			}

			// Step-size control, 5th-order target with the usual safety
			// factor and growth clamps. An accepted landing step keeps the
			// previous proposal: its clamped hTry says nothing about the
			// error behavior and must not collapse the next step.
			factor := 5.0
			if maxErr > 0 {
				factor = 0.9 * math.Pow(1/maxErr, 1.0/5)
				factor = math.Min(5.0, math.Max(0.2, factor))
			}
			if !landing || maxErr > 1 {
				h = hTry * factor
				if h < cfg.MinStep {
					return fail(ErrStepTooSmall)
				}
			}
		}

		if jump, ok := jumps[stop]; ok {
			for i := 0; i < n && i < len(jump); i++ {
				y[i] += jump[i]
			}
			// The sample at the impulse time carries the post-jump state.
			traj[len(traj)-1] = Sample{T: t, Y: append([]float64(nil), y...)}
		}
	}

	return traj, stats, nil
}
