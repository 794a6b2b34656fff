package smhm

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/params"
)

// LittleH is the Hubble constant (units of 100 km/s/Mpc) the Behroozi10
// best-fit values were published for. Inputs and outputs of Behroozi10 are
// h=1; the conversion happens inside.
const LittleH = 0.7

// Tabulation grid for the numeric forward direction, in log10(M*).
const (
	smGridMin    = 8.5
	smGridMax    = 12.5
	smGridPoints = 100
)

var (
	// ErrNonMonotonic signals that the tabulated halo masses do not
	// increase with stellar mass, so the inverse cannot be fit.
	ErrNonMonotonic = errors.New("smhm: relation not monotonic over tabulation grid")

	// ErrNonFiniteInput signals a NaN or Inf stellar-mass argument.
	ErrNonFiniteInput = errors.New("smhm: non-finite stellar mass input")
)

var behroozi10Publications = []string{"arXiv:1001.0015"}

// DefaultBehroozi10Params returns the published best-fit values. Each pair
// (x_0, x_a) evolves as x(a) = x_0 + x_a·(a−1), a = 1/(1+z).
func DefaultBehroozi10Params() params.Dict {
	return params.Dict{
		"smhm_m0_0":    10.72,
		"smhm_m0_a":    0.59,
		"smhm_m1_0":    12.35,
		"smhm_m1_a":    0.3,
		"smhm_beta_0":  0.43,
		"smhm_beta_a":  0.18,
		"smhm_delta_0": 0.56,
		"smhm_delta_a": 0.18,
		"smhm_gamma_0": 1.54,
		"smhm_gamma_a": 2.52,
	}
}

// Behroozi10 parameterizes the inverse SMHM relation in closed form. With
// x = M*·h²/10^m0,
//
//	⟨log10 Mh⟩ = m1 + β·log10(x) + x^δ/(1 + x^−γ) − ½
//
// in h=LittleH units. MeanStellarMass inverts it numerically: the closed
// form is tabulated on a fixed stellar-mass grid and a monotone cubic is
// fit halo→stellar.
type Behroozi10 struct {
	relationCore
	littleh float64
}

// NewBehroozi10 builds the relation with the published defaults at
// redshift DefaultRedshift and a single-point scatter profile.
func NewBehroozi10(opts ...Option) (*Behroozi10, error) {
	core, err := newRelationCore(DefaultBehroozi10Params(), behroozi10Publications, opts...)
	if err != nil {
		return nil, err
	}
	return &Behroozi10{relationCore: core, littleh: LittleH}, nil
}

// MeanLogHaloMass evaluates the closed-form inverse at each log10 stellar
// mass (h=1 units in and out).
func (b *Behroozi10) MeanLogHaloMass(logSM []float64, opts ...EvalOption) ([]float64, error) {
	cfg := gatherEval(opts...)
	d, err := b.resolveDict(&cfg)
	if err != nil {
		return nil, err
	}
	a := 1 / (1 + b.redshiftAt(&cfg))
	out := make([]float64, len(logSM))
	for i, lsm := range logSM {
		if math.IsNaN(lsm) || math.IsInf(lsm, 0) {
			return nil, fmt.Errorf("%w: log10(M*)[%d]=%g", ErrNonFiniteInput, i, lsm)
		}
		out[i] = b.logHaloMass(lsm, d, a)
	}
	return out, nil
}

// MeanStellarMass inverts the closed form numerically at each halo mass.
func (b *Behroozi10) MeanStellarMass(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	cfg := gatherEval(opts...)
	d, err := b.resolveDict(&cfg)
	if err != nil {
		return nil, err
	}
	masses, err := in.Resolve(b.primKey)
	if err != nil {
		return nil, err
	}
	a := 1 / (1 + b.redshiftAt(&cfg))

	logSM := make([]float64, smGridPoints)
	logHM := make([]float64, smGridPoints)
	step := (smGridMax - smGridMin) / (smGridPoints - 1)
	for i := range logSM {
		logSM[i] = smGridMin + float64(i)*step
		logHM[i] = b.logHaloMass(logSM[i], d, a)
	}
	for i := 1; i < len(logHM); i++ {
		if logHM[i] <= logHM[i-1] {
			return nil, fmt.Errorf("%w: between log10(M*)=%.3f and %.3f",
				ErrNonMonotonic, logSM[i-1], logSM[i])
		}
	}
	var fb interp.FritschButland
	if err := fb.Fit(logHM, logSM); err != nil {
		return nil, fmt.Errorf("smhm: fit inverse relation: %w", err)
	}

	out := make([]float64, len(masses))
	for i, m := range masses {
		out[i] = math.Pow(10, fb.Predict(math.Log10(m)))
	}
	return out, nil
}

// MCStellarMass draws scatter-dressed stellar masses.
func (b *Behroozi10) MCStellarMass(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	return MCStellarMass(b, in, opts...)
}

// logHaloMass is the closed form in h=1 units: stellar mass converts to
// h=littleh units on the way in, halo mass converts back on the way out.
func (b *Behroozi10) logHaloMass(logSM float64, d params.Dict, a float64) float64 {
	sm := math.Pow(10, logSM) * b.littleh * b.littleh
	m0 := d["smhm_m0_0"] + d["smhm_m0_a"]*(a-1)
	m1 := d["smhm_m1_0"] + d["smhm_m1_a"]*(a-1)
	beta := d["smhm_beta_0"] + d["smhm_beta_a"]*(a-1)
	delta := d["smhm_delta_0"] + d["smhm_delta_a"]*(a-1)
	gamma := d["smhm_gamma_0"] + d["smhm_gamma_a"]*(a-1)

	x := sm / math.Pow(10, m0)
	lhm := m1 + beta*math.Log10(x) + math.Pow(x, delta)/(1+math.Pow(x, -gamma)) - 0.5
	return lhm - math.Log10(b.littleh)
}
