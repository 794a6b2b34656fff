package scatter

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/params"
)

const (
	// DefaultScatter is the fiducial scatter level in dex.
	DefaultScatter = 0.2

	// DefaultAbscissa is the single default control point, in log10(mass).
	DefaultAbscissa = 12.0

	// maxSplineDegree caps the declared profile degree.
	maxSplineDegree = 5
)

// ErrControlPoints signals invalid control points: empty, mismatched
// lengths, non-finite values, or a non-increasing abscissa.
var ErrControlPoints = errors.New("scatter: invalid control points")

// ParamKey returns the dictionary key addressing the i-th control-point
// ordinate (1-based): "scatter_model_param1", "scatter_model_param2", ...
func ParamKey(i int) string {
	return fmt.Sprintf("scatter_model_param%d", i)
}

// LogNormal interpolates a log-normal scatter level (dex) across control
// points in log10(halo mass). Safe for concurrent reads; UpdateParams
// requires external synchronization.
type LogNormal struct {
	primKey   string
	abscissa  []float64
	ordinates []float64
	dict      params.Dict
	degree    int
	pred      interp.Predictor
}

// Option configures NewLogNormal.
type Option func(*config)

type config struct {
	primKey   string
	abscissa  []float64
	ordinates []float64
}

// WithPrimHaloPropKey sets the mass column the model reads from tables.
func WithPrimHaloPropKey(key string) Option {
	return func(c *config) { c.primKey = key }
}

// WithControlPoints sets the profile's control points: abscissa in
// log10(mass), strictly increasing, one ordinate (σ, dex) each.
func WithControlPoints(abscissa, ordinates []float64) Option {
	return func(c *config) {
		c.abscissa = abscissa
		c.ordinates = ordinates
	}
}

// EvalOption configures a single Realization call.
type EvalOption func(*evalConfig)

type evalConfig struct {
	seed   uint64
	seeded bool
}

// WithSeed makes the realization reproducible: equal seeds and inputs give
// identical draws.
func WithSeed(seed uint64) EvalOption {
	return func(c *evalConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// NewLogNormal builds a scatter profile. Defaults: one control point at
// log10(mass)=DefaultAbscissa with level DefaultScatter, mass key
// halos.DefaultMassKey.
func NewLogNormal(opts ...Option) (*LogNormal, error) {
	cfg := config{
		primKey:   halos.DefaultMassKey,
		abscissa:  []float64{DefaultAbscissa},
		ordinates: []float64{DefaultScatter},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateControlPoints(cfg.abscissa, cfg.ordinates); err != nil {
		return nil, err
	}
	s := &LogNormal{
		primKey:   cfg.primKey,
		abscissa:  append([]float64(nil), cfg.abscissa...),
		ordinates: append([]float64(nil), cfg.ordinates...),
		dict:      make(params.Dict, len(cfg.ordinates)),
		degree:    splineDegree(len(cfg.abscissa)),
	}
	for i, v := range s.ordinates {
		s.dict[ParamKey(i+1)] = v
	}
	pred, err := fitPredictor(s.abscissa, s.ordinates)
	if err != nil {
		return nil, err
	}
	s.pred = pred
	return s, nil
}

// MeanScatter evaluates the profile at log10 of each halo mass. Outside
// the control-point span the level clamps to the nearest endpoint.
func (s *LogNormal) MeanScatter(in halos.MassInput) ([]float64, error) {
	masses, err := in.Resolve(s.primKey)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(masses))
	for i, m := range masses {
		out[i] = s.pred.Predict(math.Log10(m))
	}
	return out, nil
}

// Realization draws one centered Gaussian per halo with standard deviation
// MeanScatter. Levels at or below zero yield exactly 0.
func (s *LogNormal) Realization(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	var cfg evalConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	levels, err := s.MeanScatter(in)
	if err != nil {
		return nil, err
	}
	src := newSource(cfg.seed, cfg.seeded)
	out := make([]float64, len(levels))
	for i, sigma := range levels {
		if sigma <= 0 {
			continue
		}
		out[i] = distuv.Normal{Mu: 0, Sigma: sigma, Src: src}.Rand()
	}
	return out, nil
}

// UpdateParams replaces the ordinate values and refits the profile in the
// same call. The key set must match exactly; on any failure the previous
// state is kept.
func (s *LogNormal) UpdateParams(p params.Dict) error {
	want := make([]string, len(s.ordinates))
	for i := range want {
		want[i] = ParamKey(i + 1)
	}
	if err := params.CheckKeys(p, want...); err != nil {
		return err
	}
	next := make([]float64, len(s.ordinates))
	for i := range next {
		v := p[ParamKey(i+1)]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite %s", ErrControlPoints, ParamKey(i+1))
		}
		next[i] = v
	}
	pred, err := fitPredictor(s.abscissa, next)
	if err != nil {
		return err
	}
	s.ordinates = next
	s.pred = pred
	for i, v := range next {
		s.dict[ParamKey(i+1)] = v
	}
	return nil
}

// Params returns a clone of the parameter dictionary.
func (s *LogNormal) Params() params.Dict { return s.dict.Clone() }

// PrimHaloPropKey returns the mass column the model reads from tables.
func (s *LogNormal) PrimHaloPropKey() string { return s.primKey }

// Abscissa returns a copy of the control-point abscissa (log10 mass).
func (s *LogNormal) Abscissa() []float64 {
	return append([]float64(nil), s.abscissa...)
}

// Ordinates returns a copy of the current scatter levels.
func (s *LogNormal) Ordinates() []float64 {
	return append([]float64(nil), s.ordinates...)
}

// SplineDegree reports the declared profile degree, min(5, N−1) for N
// control points. The fitted interpolant caps at monotone cubic.
func (s *LogNormal) SplineDegree() int { return s.degree }

func splineDegree(n int) int {
	if n-1 < maxSplineDegree {
		return n - 1
	}
	return maxSplineDegree
}

// fitPredictor builds the effective interpolant: constant for one point,
// piecewise linear for two, Fritsch–Butland monotone cubic for three or
// more.
func fitPredictor(xs, ys []float64) (interp.Predictor, error) {
	switch len(xs) {
	case 1:
		return interp.Constant(ys[0]), nil
	case 2:
		var pl interp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("scatter: fit profile: %w", err)
		}
		return pl, nil
	default:
		var fb interp.FritschButland
		if err := fb.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("scatter: fit profile: %w", err)
		}
		return &fb, nil
	}
}

func validateControlPoints(xs, ys []float64) error {
	if len(xs) == 0 {
		return fmt.Errorf("%w: no control points", ErrControlPoints)
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d abscissa vs %d ordinate values",
			ErrControlPoints, len(xs), len(ys))
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) ||
			math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("%w: non-finite value at index %d", ErrControlPoints, i)
		}
		if i > 0 && x <= xs[i-1] {
			return fmt.Errorf("%w: abscissa must be strictly increasing", ErrControlPoints)
		}
	}
	return nil
}
