package hod

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/quasarlab/halopop/params"
)

// Component carries the identity and parameter discipline shared by every
// occupation model: galaxy type, sample threshold, occupation bound, mass
// keys, and the parameter dictionary with its fixed key set. Concrete
// models embed it. Safe for concurrent reads; UpdateParams requires
// external synchronization.
type Component struct {
	galType   string
	threshold float64
	bound     Bound
	primKey   string
	secKey    string
	dict      params.Dict
	pubs      []string
	log       *zap.Logger
}

// NewComponent builds the shared identity for a custom occupation model.
// The bound must be BoundUnity or BoundUnbounded and the dictionary
// non-empty; the key set supplied here is the one enforced forever after.
func NewComponent(bound Bound, dict params.Dict, opts ...Option) (Component, error) {
	cfg := newConfig(DefaultGalTypeCentrals, DefaultLuminosityThreshold)
	for _, opt := range opts {
		opt(&cfg)
	}
	return buildComponent(&cfg, bound, dict, cfg.pubs)
}

func buildComponent(cfg *config, bound Bound, dict params.Dict, pubs []string) (Component, error) {
	if !bound.Valid() {
		return Component{}, fmt.Errorf("%w: Bound(%d)", ErrInvalidBound, int(bound))
	}
	if len(dict) == 0 {
		return Component{}, fmt.Errorf("hod: %w", params.ErrEmptyDict)
	}
	log := cfg.logger
	if log == nil {
		log = zap.NewNop()
	}
	return Component{
		galType:   cfg.galType,
		threshold: cfg.threshold,
		bound:     bound,
		primKey:   cfg.primKey,
		secKey:    cfg.secKey,
		dict:      dict.Clone(),
		pubs:      pubs,
		log:       log,
	}, nil
}

// GalType returns the population name.
func (c *Component) GalType() string { return c.galType }

// Threshold returns the sample cut the model was fit to.
func (c *Component) Threshold() float64 { return c.threshold }

// OccupationBound returns the per-halo ceiling.
func (c *Component) OccupationBound() Bound { return c.bound }

// PrimHaloPropKey returns the mass column read from tables.
func (c *Component) PrimHaloPropKey() string { return c.primKey }

// SecHaloPropKey returns the secondary halo-property key, if any.
func (c *Component) SecHaloPropKey() string { return c.secKey }

// Publications returns the citations behind the model.
func (c *Component) Publications() []string {
	return append([]string(nil), c.pubs...)
}

// Params returns a clone of the parameter dictionary.
func (c *Component) Params() params.Dict { return c.dict.Clone() }

// UpdateParams replaces the parameter values. The key set must match the
// set fixed at construction exactly.
func (c *Component) UpdateParams(p params.Dict) error {
	if err := params.CheckKeys(p, c.dict.Keys()...); err != nil {
		return err
	}
	for k := range c.dict {
		c.dict[k] = p[k]
	}
	return nil
}

// resolveDict returns the dictionary a call evaluates under: the bound
// dict, or a validated per-call override.
func (c *Component) resolveDict(cfg *evalConfig) (params.Dict, error) {
	if cfg.override == nil {
		return c.dict, nil
	}
	if err := params.CheckKeys(cfg.override, c.dict.Keys()...); err != nil {
		return nil, err
	}
	return cfg.override, nil
}

// warnOnMismatch logs when a conditioning central was fit to a different
// sample cut than this model. Mismatches are allowed; the warning is the
// only signal.
func (c *Component) warnOnMismatch(central OccupationModel) {
	if central == nil || central.Threshold() == c.threshold {
		return
	}
	c.log.Warn("conditioning central threshold differs",
		zap.String("gal_type", c.galType),
		zap.Float64("threshold", c.threshold),
		zap.String("central_gal_type", central.GalType()),
		zap.Float64("central_threshold", central.Threshold()),
	)
}
