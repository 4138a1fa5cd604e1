// Package ampbench reproduces the balanced-amplification figures from the
// two-population linear firing-rate model.
//
// # Overview
//
// ampbench integrates the excitatory/inhibitory (E/I) rate equations under an
// impulsive input, for a baseline regime (no recurrence, "1x") and a balanced
// regime (strong but cancelling excitation and inhibition, "4x"), and checks
// the defining numerical invariant: the time integral of the amplified
// response is four times the baseline's. A second, independent section
// performs the analogous comparison on closed-form "Hebbian" exponential
// curves.
//
// # The Model
//
// State is the pair (r_E, r_I) of population firing rates, evolving as
//
//	τ·dr_E/dt = (w − k_I·w − 1)·r_E + w·(k_I+1)·r_I + (I_i(t)+I_e(t))/2
//	τ·dr_I/dt = −r_I + (I_e(t) − I_i(t))/2
//
// Where:
//   - w: recurrent synaptic weight (w = 0 baseline, w = 4+2/7 balanced)
//   - k_I: inhibition factor (k_I ≥ 1; excess of inhibition over excitation)
//   - τ: time constant
//   - I_e, I_i: external drives (both identically zero here; the impulse is
//     delivered as a state jump, see below)
//
// The recurrent matrix is triangular, so its eigenvalues sit on the diagonal
// and are negative for all valid parameters: the system always decays back to
// rest, and the amplification is purely transient.
//
// # The Impulse
//
// The paper drives the network with a Dirac delta at t = 0. A delta cannot be
// sampled by a numerical solver, so the impulse is an [Impulse]: a one-shot
// additive state jump of (0.5, 0.5) that the integrator applies when it
// reaches t = 0. Every impulse time is forced into the solver's stop set, so
// adaptive stepping can never skip over it. Evaluating I_e pointwise instead
// would silently produce an unamplified trajectory.
//
// # Quick Start
//
// Run the full comparison with the paper's parameters:
//
//	result, err := ampbench.RunAmplification(ampbench.DefaultAmplificationConfig())
//	if err != nil {
//	    log.Fatal(err) // integration diverged or parameters invalid
//	}
//
//	fmt.Println(result.Check.Verdict())
//	// amplification OK: integral ratio 4.0001 within 1.0% of 4
//
// And the closed-form Hebbian comparison:
//
//	heb, err := ampbench.RunHebbian(ampbench.DefaultHebbianConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(heb.Check.Verdict())
//
// Render the two figures with [PlotAmplification] and [PlotHebbian], or save
// them directly with [SaveAmplification] and [SaveHebbian].
//
// # The 4:1 Invariant
//
// With k_I = 1.1, τ = 1 and w = WBalanced = 4+2/7, the integral of
// y(t) = r_E(t) + r_I(t) over the run is exactly four times the w = 0
// integral (analytically exact on an infinite horizon; the [−1, 10] span
// leaves a tail well below the 1% tolerance). [CheckRatio] measures the ratio
// from left Riemann sums over the actual sample spacing and reports a
// [RatioCheck]; a failed check is a result, not an error.
//
// # Errors
//
// Invalid parameters (τ ≤ 0, w < 0, k_I < 1) are rejected up front with
// [ErrParameterBounds]. Numerical failure during integration (non-finite
// state, step underflow, step budget exhausted) is fatal and surfaces as an
// [IntegrationError] wrapping [ErrUnstable], [ErrStepTooSmall] or
// [ErrMaxSteps]. A failed ratio check is neither: it is carried in
// [RatioCheck.Pass].
//
// # Testing
//
// Assertion helpers validate the reproduction's properties in tests:
//
//	func TestBalanced(t *testing.T) {
//	    result, err := ampbench.RunAmplification(ampbench.DefaultAmplificationConfig())
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    ampbench.AssertAmplification(t, result.Check)
//	    ampbench.AssertDecaysToZero(t, result.Amplified, 1e-3)
//	}
//
// # See Also
//
//   - examples/figures/ - runnable demo producing both figures and verdicts
package ampbench
