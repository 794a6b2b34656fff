package smhm

import (
	"math"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/params"
)

var moster13Publications = []string{"arXiv:0903.4682", "arXiv:1205.5807"}

// DefaultMoster13Params returns the published best-fit values. Each pair
// (x10, x11) evolves as x(a) = x10 + x11·(1−a), a = 1/(1+z).
func DefaultMoster13Params() params.Dict {
	return params.Dict{
		"m10":     11.590,
		"m11":     1.195,
		"n10":     0.0351,
		"n11":     -0.0247,
		"beta10":  1.376,
		"beta11":  -0.826,
		"gamma10": 0.608,
		"gamma11": 0.329,
	}
}

// Moster13 is the double-power-law SMHM relation
//
//	⟨M*⟩(M) = 2·n·M / ((M/m1)^−β + (M/m1)^γ)
//
// with the characteristic mass m1 = 10^(m10 + m11·(1−a)) and n, β, γ
// evolving the same way.
type Moster13 struct {
	relationCore
}

// NewMoster13 builds the relation with the published defaults at redshift
// DefaultRedshift and a single-point scatter profile.
func NewMoster13(opts ...Option) (*Moster13, error) {
	core, err := newRelationCore(DefaultMoster13Params(), moster13Publications, opts...)
	if err != nil {
		return nil, err
	}
	return &Moster13{relationCore: core}, nil
}

// MeanStellarMass evaluates the double power law at each halo mass.
func (m *Moster13) MeanStellarMass(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	cfg := gatherEval(opts...)
	d, err := m.resolveDict(&cfg)
	if err != nil {
		return nil, err
	}
	masses, err := in.Resolve(m.primKey)
	if err != nil {
		return nil, err
	}
	a := 1 / (1 + m.redshiftAt(&cfg))
	m1 := math.Pow(10, d["m10"]+d["m11"]*(1-a))
	n := d["n10"] + d["n11"]*(1-a)
	beta := d["beta10"] + d["beta11"]*(1-a)
	gamma := d["gamma10"] + d["gamma11"]*(1-a)

	out := make([]float64, len(masses))
	for i, mass := range masses {
		x := mass / m1
		out[i] = 2 * n * mass / (math.Pow(x, -beta) + math.Pow(x, gamma))
	}
	return out, nil
}

// MCStellarMass draws scatter-dressed stellar masses.
func (m *Moster13) MCStellarMass(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	return MCStellarMass(m, in, opts...)
}
