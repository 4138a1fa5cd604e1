package ampbench

import (
	"math"
	"testing"
)

// AssertAmplification verifies a ratio check passed.
//
// Numerical property:
//
//	|measured/expected − 1| ≤ tolerance
func AssertAmplification(t *testing.T, check RatioCheck) {
	t.Helper()

	if !check.Pass {
		t.Errorf("Amplification ratio off: measured %.4f, expected %g ± %.1f%%\n"+
			"  baseline ∫y dt  = %.6f\n"+
			"  amplified ∫y dt = %.6f",
			check.Measured, check.Expected, check.Tolerance*100,
			check.BaselineIntegral, check.AmplifiedIntegral)
		return
	}

	t.Logf("✓ Amplification ratio: %.4f (expected %g ± %.1f%%)",
		check.Measured, check.Expected, check.Tolerance*100)
}

// AssertDecaysToZero verifies the trajectory has returned to rest by its
// final sample, the stability property of the linear system.
func AssertDecaysToZero(t *testing.T, tr Trajectory, eps float64) {
	t.Helper()

	if len(tr) == 0 {
		t.Fatal("Empty trajectory")
	}

	last := tr.Last()
	for i, v := range last.Y {
		if math.Abs(v) > eps {
			t.Errorf("Component %d has not decayed: |y| = %g at t = %g (eps: %g)",
				i, math.Abs(v), last.T, eps)
			return
		}
	}

	t.Logf("✓ Decayed to rest: |y| < %g at t = %g", eps, last.T)
}

// AssertImpulseDelivered verifies the one-shot jump landed: the state is at
// rest just before the impulse time and within eps of the jump at it.
func AssertImpulseDelivered(t *testing.T, tr Trajectory, at float64, jump, eps float64) {
	t.Helper()

	before, ok := tr.Before(at)
	if !ok {
		t.Fatalf("No sample before t = %g", at)
	}
	for i, v := range before.Y {
		if math.Abs(v) > eps {
			t.Errorf("Component %d nonzero before impulse: y = %g at t = %g", i, v, before.T)
		}
	}

	s, ok := tr.At(at)
	if !ok || s.T != at {
		t.Fatalf("No sample at impulse time t = %g (stop point not forced?)", at)
	}
	for i, v := range s.Y {
		if math.Abs(v-jump) > eps {
			t.Errorf("Component %d after impulse: y = %g, expected %g ± %g", i, v, jump, eps)
		}
	}

	t.Logf("✓ Impulse delivered: state (%g, ...) at t = %g", s.Y[0], at)
}
