package hod

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/params"
)

// Kravtsov04Cens is the erf-threshold central-occupation model
//
//	⟨Ncen⟩(M) = ½·(1 + erf((log10 M − logMmin)/σ_logM))
//
// with parameters logMmin_<galType> and sigma_logM_<galType>. The mean is
// monotone in mass, stays in [0,1], and crosses ½ exactly at
// log10 M = logMmin. Defaults come from the Zheng07 table at the
// construction threshold.
type Kravtsov04Cens struct {
	Component
	logMminKey string
	sigmaKey   string
}

// NewKravtsov04Cens builds the model. Without WithParams, the threshold
// must equal one of the nine published values.
func NewKravtsov04Cens(opts ...Option) (*Kravtsov04Cens, error) {
	cfg := newConfig(DefaultGalTypeCentrals, DefaultLuminosityThreshold)
	for _, opt := range opts {
		opt(&cfg)
	}
	logMminKey := "logMmin_" + cfg.galType
	sigmaKey := "sigma_logM_" + cfg.galType

	dict := cfg.dict
	if dict == nil {
		var err error
		dict, err = Zheng07CenParams(cfg.threshold, cfg.galType)
		if err != nil {
			return nil, err
		}
	} else if err := params.CheckKeys(dict, logMminKey, sigmaKey); err != nil {
		return nil, err
	}
	comp, err := buildComponent(&cfg, BoundUnity, dict, kravtsov04Publications)
	if err != nil {
		return nil, err
	}
	return &Kravtsov04Cens{
		Component:  comp,
		logMminKey: logMminKey,
		sigmaKey:   sigmaKey,
	}, nil
}

// MeanOccupation evaluates ⟨Ncen⟩ at each halo mass.
func (m *Kravtsov04Cens) MeanOccupation(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	cfg := gatherEvalConfig(opts...)
	d, err := m.resolveDict(&cfg)
	if err != nil {
		return nil, err
	}
	masses, err := in.Resolve(m.primKey)
	if err != nil {
		return nil, err
	}
	logMmin := d[m.logMminKey]
	sigma := d[m.sigmaKey]
	out := make([]float64, len(masses))
	for i, mass := range masses {
		out[i] = 0.5 * (1 + math.Erf((math.Log10(mass)-logMmin)/sigma))
	}
	return out, nil
}

// MCOccupation draws 0 or 1 central per halo.
func (m *Kravtsov04Cens) MCOccupation(in halos.MassInput, opts ...EvalOption) ([]int, error) {
	return MCOccupation(m, in, opts...)
}

// Kravtsov04Sats is the power-law satellite-occupation model
//
//	⟨Nsat⟩(M) = ((M − M0)/M1)^α   for M > M0, exactly 0 otherwise
//
// with M0 = 10^logM0_<galType>, M1 = 10^logM1_<galType> and slope
// alpha_<galType>. Defaults come from the Zheng07 table at the
// construction threshold. With WithCentralModel the mean is multiplied
// elementwise by the central mean.
type Kravtsov04Sats struct {
	Component
	logM0Key string
	logM1Key string
	alphaKey string
	central  OccupationModel
}

// NewKravtsov04Sats builds the model. Without WithParams, the threshold
// must equal one of the nine published values. A conditioning central fit
// to a different threshold logs a warning and is used as given.
func NewKravtsov04Sats(opts ...Option) (*Kravtsov04Sats, error) {
	cfg := newConfig(DefaultGalTypeSatellites, DefaultLuminosityThreshold)
	for _, opt := range opts {
		opt(&cfg)
	}
	logM0Key := "logM0_" + cfg.galType
	logM1Key := "logM1_" + cfg.galType
	alphaKey := "alpha_" + cfg.galType

	dict := cfg.dict
	if dict == nil {
		var err error
		dict, err = Zheng07SatParams(cfg.threshold, cfg.galType)
		if err != nil {
			return nil, err
		}
	} else if err := params.CheckKeys(dict, logM0Key, logM1Key, alphaKey); err != nil {
		return nil, err
	}
	comp, err := buildComponent(&cfg, BoundUnbounded, dict, kravtsov04Publications)
	if err != nil {
		return nil, err
	}
	m := &Kravtsov04Sats{
		Component: comp,
		logM0Key:  logM0Key,
		logM1Key:  logM1Key,
		alphaKey:  alphaKey,
		central:   cfg.central,
	}
	m.warnOnMismatch(m.central)
	return m, nil
}

// MeanOccupation evaluates ⟨Nsat⟩ at each halo mass, conditioned on the
// central mean when a central model is set.
func (m *Kravtsov04Sats) MeanOccupation(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	cfg := gatherEvalConfig(opts...)
	d, err := m.resolveDict(&cfg)
	if err != nil {
		return nil, err
	}
	masses, err := in.Resolve(m.primKey)
	if err != nil {
		return nil, err
	}
	m0 := math.Pow(10, d[m.logM0Key])
	m1 := math.Pow(10, d[m.logM1Key])
	alpha := d[m.alphaKey]
	out := make([]float64, len(masses))
	for i, mass := range masses {
		if mass > m0 {
			out[i] = math.Pow((mass-m0)/m1, alpha)
		}
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
func (m *Kravtsov04Sats) MCOccupation(in halos.MassInput, opts ...EvalOption) ([]int, error) {
	return MCOccupation(m, in, opts...)
}

// CentralModel returns the conditioning central, or nil.
func (m *Kravtsov04Sats) CentralModel() OccupationModel { return m.central }
