package ampbench

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// WBalanced is the recurrent weight at which the E/I network amplifies the
// impulse response integral exactly fourfold: w_b = 4 + 2/7.
const WBalanced = 4.0 + 2.0/7.0

// Parameter ranges exposed to the user in the original figure. Validate
// enforces only the mathematical bounds; the narrower UI ranges are
// documentation.
const (
	MinKI  = 1.1 // inhibition factor slider range [1.1, 10]
	MaxKI  = 10.0
	MinTau = 1.0 // time constant slider range [1, 10]
	MaxTau = 10.0
	MaxW   = 4.28 // weight slider range [0, 4.28], w_b ≈ 4.286 at the top
)

// RateParams defines the two-population linear rate model. Immutable once
// passed to the integrator: runs never mutate their parameters.
type RateParams struct {
	W   float64 // recurrent synaptic weight, w ≥ 0
	KI  float64 // inhibition factor, k_I ≥ 1
	Tau float64 // time constant, τ > 0
}

// DefaultRateParams returns the parameters of the paper's figure:
// w = w_b, k_I = 1.1, τ = 1.
func DefaultRateParams() RateParams {
	return RateParams{W: WBalanced, KI: 1.1, Tau: 1.0}
}

// Validate rejects parameters that make the model ill-defined. τ = 0 would
// divide by zero inside the right-hand side; it is an error here, not a
// downstream NaN.
func (p RateParams) Validate() error {
	if p.Tau <= 0 {
		return fmt.Errorf("%w: τ = %g (must be > 0)", ErrParameterBounds, p.Tau)
	}
	if p.W < 0 {
		return fmt.Errorf("%w: w = %g (must be ≥ 0)", ErrParameterBounds, p.W)
	}
	if p.KI < 1 {
		return fmt.Errorf("%w: k_I = %g (must be ≥ 1)", ErrParameterBounds, p.KI)
	}
	return nil
}

// Baseline returns the same network with recurrence removed (w = 0), the
// "1x amplification" reference regime.
func (p RateParams) Baseline() RateParams {
	p.W = 0
	return p
}

// Drive is the external input to the two populations as a function of time,
// returning the excitatory and inhibitory drives I_e(t), I_i(t).
type Drive func(t float64) (exc, inh float64)

// ZeroDrive is the reproduction's fixed external input: identically zero.
// The paper's delta input cannot be sampled pointwise; it is delivered as an
// Impulse state jump instead.
func ZeroDrive(t float64) (exc, inh float64) { return 0, 0 }

// Func returns the ODE right-hand side for these parameters and drive:
//
//	τ·dr_E/dt = (w − k_I·w − 1)·r_E + w·(k_I+1)·r_I + (I_i+I_e)/2
//	τ·dr_I/dt = −r_I + (I_e − I_i)/2
func (p RateParams) Func(drive Drive) Func {
	return func(t float64, y, dy []float64) {
		ie, ii := drive(t)
		dy[0] = ((p.W-p.KI*p.W-1)*y[0] + p.W*(p.KI+1)*y[1] + (ii+ie)/2) / p.Tau
		dy[1] = (-y[1] + (ie-ii)/2) / p.Tau
	}
}

// SystemMatrix returns the 2x2 state matrix A of the homogeneous system
// dy/dt = A·y (drives excluded).
func (p RateParams) SystemMatrix() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		(p.W - p.KI*p.W - 1) / p.Tau, p.W * (p.KI + 1) / p.Tau,
		0, -1 / p.Tau,
	})
}

// Eigenvalues returns the eigenvalues of the state matrix. The matrix is
// upper triangular, so these are its diagonal entries:
// (w − k_I·w − 1)/τ and −1/τ.
func (p RateParams) Eigenvalues() ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(p.SystemMatrix(), mat.EigenNone); !ok {
		return nil, fmt.Errorf("ampbench: eigenvalue factorization failed for params %+v", p)
	}
	return eig.Values(nil), nil
}

// IsStable reports whether every mode of the network decays, i.e. all
// eigenvalues have negative real part. True for all valid parameters
// (w ≥ 0, k_I ≥ 1 gives w − k_I·w − 1 ≤ −1): the amplification is transient.
func (p RateParams) IsStable() (bool, error) {
	values, err := p.Eigenvalues()
	if err != nil {
		return false, err
	}
	for _, v := range values {
		if real(v) >= 0 {
			return false, nil
		}
	}
	return true, nil
}
