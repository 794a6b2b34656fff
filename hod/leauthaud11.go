package hod

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/params"
	"github.com/quasarlab/halopop/smhm"
)

// Leauthaud11Cens models central occupation through a stellar-to-halo-mass
// relation: the probability that a halo hosts a central above the
// stellar-mass threshold T is
//
//	⟨Ncen⟩(M) = ½·(1 − erf((T − log10⟨M*⟩(M)) / (√2·σ(M))))
//
// with ⟨M*⟩ and the scatter level σ supplied by the relation. Zero scatter
// degenerates to the step function 0/½/1. The relation owns the parameter
// dictionary: Params and UpdateParams delegate to it.
type Leauthaud11Cens struct {
	Component
	rel smhm.Relation
}

// NewLeauthaud11Cens builds the model around a relation (default:
// smhm.NewMoster13()). The threshold is log10 of the stellar-mass cut; the
// mass key is inherited from the relation.
func NewLeauthaud11Cens(opts ...Option) (*Leauthaud11Cens, error) {
	cfg := newConfig(DefaultGalTypeCentrals, DefaultStellarMassThreshold)
	for _, opt := range opts {
		opt(&cfg)
	}
	rel := cfg.relation
	if rel == nil {
		var err error
		rel, err = smhm.NewMoster13()
		if err != nil {
			return nil, err
		}
	}
	cfg.primKey = rel.PrimHaloPropKey()
	comp, err := buildComponent(&cfg, BoundUnity, rel.Params(), leauthaud11Publications)
	if err != nil {
		return nil, err
	}
	return &Leauthaud11Cens{Component: comp, rel: rel}, nil
}

// MeanOccupation evaluates ⟨Ncen⟩ at each halo mass. A parameter override
// is forwarded to the relation and must match the relation's own keys.
func (m *Leauthaud11Cens) MeanOccupation(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	cfg := gatherEvalConfig(opts...)
	var sopts []smhm.EvalOption
	if cfg.override != nil {
		sopts = append(sopts, smhm.OverrideParams(cfg.override))
	}
	stellar, err := m.rel.MeanStellarMass(in, sopts...)
	if err != nil {
		return nil, err
	}
	sigmas, err := m.rel.MeanScatter(in)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(stellar))
	for i := range stellar {
		logSM := math.Log10(stellar[i])
		s := math.Sqrt2 * sigmas[i]
		switch {
		case s > 0:
			out[i] = 0.5 * (1 - math.Erf((m.threshold-logSM)/s))
		case logSM > m.threshold:
			out[i] = 1
		case logSM < m.threshold:
			out[i] = 0
		default:
			out[i] = 0.5
		}
	}
	return out, nil
}

// MCOccupation draws 0 or 1 central per halo.
func (m *Leauthaud11Cens) MCOccupation(in halos.MassInput, opts ...EvalOption) ([]int, error) {
	return MCOccupation(m, in, opts...)
}

// Params returns the relation's dictionary: the relation is the single
// source of truth for this model's parameters.
func (m *Leauthaud11Cens) Params() params.Dict { return m.rel.Params() }

// UpdateParams pushes new values into the relation; the key set must match
// the relation's full dictionary.
func (m *Leauthaud11Cens) UpdateParams(p params.Dict) error {
	return m.rel.UpdateParams(p)
}

// Relation returns the stellar-to-halo-mass relation behind the model.
func (m *Leauthaud11Cens) Relation() smhm.Relation { return m.rel }

// DefaultLeauthaud11SatParams returns the satellite power-law defaults
// keyed for galType: cutoff mass 10^11.43, characteristic mass 10^12.84,
// unit slope.
func DefaultLeauthaud11SatParams(galType string) params.Dict {
	return params.Dict{
		"mcut_" + galType:  math.Pow(10, 11.43),
		"msat_" + galType:  math.Pow(10, 12.84),
		"alpha_" + galType: 1.0,
	}
}

// Leauthaud11Sats is the exponentially cut power-law satellite model
//
//	⟨Nsat⟩(M) = exp(−mcut/M) · (M/msat)^α
//
// with parameters mcut_<galType>, msat_<galType>, alpha_<galType>. Its
// dictionary is the union of those keys with the relation's; the relation
// rides along for composite bookkeeping but does not enter the satellite
// mean. With WithCentralModel the mean is multiplied elementwise by the
// central mean.
type Leauthaud11Sats struct {
	Component
	rel      smhm.Relation
	relKeys  []string
	mcutKey  string
	msatKey  string
	alphaKey string
	central  OccupationModel
}

// NewLeauthaud11Sats builds the model around a relation (default:
// smhm.NewMoster13()). WithParams replaces the power-law values; the mass
// key is inherited from the relation. A conditioning central fit to a
// different threshold logs a warning and is used as given.
func NewLeauthaud11Sats(opts ...Option) (*Leauthaud11Sats, error) {
	cfg := newConfig(DefaultGalTypeSatellites, DefaultStellarMassThreshold)
	for _, opt := range opts {
		opt(&cfg)
	}
	rel := cfg.relation
	if rel == nil {
		var err error
		rel, err = smhm.NewMoster13()
		if err != nil {
			return nil, err
		}
	}
	mcutKey := "mcut_" + cfg.galType
	msatKey := "msat_" + cfg.galType
	alphaKey := "alpha_" + cfg.galType

	dict := cfg.dict
	if dict == nil {
		dict = DefaultLeauthaud11SatParams(cfg.galType)
	} else if err := params.CheckKeys(dict, mcutKey, msatKey, alphaKey); err != nil {
		return nil, err
	}
	cfg.primKey = rel.PrimHaloPropKey()
	comp, err := buildComponent(&cfg, BoundUnbounded, dict, leauthaud11Publications)
	if err != nil {
		return nil, err
	}
	m := &Leauthaud11Sats{
		Component: comp,
		rel:       rel,
		relKeys:   rel.Params().Keys(),
		mcutKey:   mcutKey,
		msatKey:   msatKey,
		alphaKey:  alphaKey,
		central:   cfg.central,
	}
	m.warnOnMismatch(m.central)
	return m, nil
}

// MeanOccupation evaluates ⟨Nsat⟩ at each halo mass, conditioned on the
// central mean when a central model is set. An override must carry the
// full union key set; only the power-law keys shape the satellite mean.
func (m *Leauthaud11Sats) MeanOccupation(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	cfg := gatherEvalConfig(opts...)
	d := m.Component.dict
	if cfg.override != nil {
		if err := params.CheckKeys(cfg.override, m.unionKeys()...); err != nil {
			return nil, err
		}
		d = cfg.override
	}
	masses, err := in.Resolve(m.primKey)
	if err != nil {
		return nil, err
	}
	mcut := d[m.mcutKey]
	msat := d[m.msatKey]
	alpha := d[m.alphaKey]
	out := make([]float64, len(masses))
	for i, mass := range masses {
		out[i] = math.Exp(-mcut/mass) * math.Pow(mass/msat, alpha)
	}
	if m.central != nil && len(out) > 0 {
		cen, err := m.central.MeanOccupation(in)
		if err != nil {
			return nil, err
		}
		floats.Mul(out, cen)
	}
	return out, nil
}

// MCOccupation draws a Poisson satellite count per halo.
func (m *Leauthaud11Sats) MCOccupation(in halos.MassInput, opts ...EvalOption) ([]int, error) {
	return MCOccupation(m, in, opts...)
}

// Params returns the union of the relation's dictionary and the power-law
// keys.
func (m *Leauthaud11Sats) Params() params.Dict {
	return params.Merge(m.rel.Params(), m.Component.Params())
}

// UpdateParams replaces the full union: relation keys are pushed into the
// relation, power-law keys into the model.
func (m *Leauthaud11Sats) UpdateParams(p params.Dict) error {
	if err := params.CheckKeys(p, m.unionKeys()...); err != nil {
		return err
	}
	relPart := make(params.Dict, len(m.relKeys))
	for _, k := range m.relKeys {
		relPart[k] = p[k]
	}
	if err := m.rel.UpdateParams(relPart); err != nil {
		return err
	}
	return m.Component.UpdateParams(params.Dict{
		m.mcutKey:  p[m.mcutKey],
		m.msatKey:  p[m.msatKey],
		m.alphaKey: p[m.alphaKey],
	})
}

// Relation returns the stellar-to-halo-mass relation riding along with the
// model.
func (m *Leauthaud11Sats) Relation() smhm.Relation { return m.rel }

// CentralModel returns the conditioning central, or nil.
func (m *Leauthaud11Sats) CentralModel() OccupationModel { return m.central }

func (m *Leauthaud11Sats) unionKeys() []string {
	keys := append([]string(nil), m.relKeys...)
	return append(keys, m.mcutKey, m.msatKey, m.alphaKey)
}
