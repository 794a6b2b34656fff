package smhm

import (
	"math"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/params"
	"github.com/quasarlab/halopop/scatter"
)

const (
	// DefaultGalProp is the galaxy property every relation here maps to.
	DefaultGalProp = "stellar_mass"

	// DefaultRedshift is the construction-time default epoch.
	DefaultRedshift = 0.0
)

// Relation is the stellar-to-halo-mass contract consumed by occupation
// models. All mass arguments and results are h=1 units; stellar masses are
// linear (not log).
type Relation interface {
	GalProp() string
	PrimHaloPropKey() string
	Redshift() float64
	Publications() []string
	Params() params.Dict
	UpdateParams(params.Dict) error

	// MeanStellarMass is the first moment ⟨M*⟩ per halo.
	MeanStellarMass(in halos.MassInput, opts ...EvalOption) ([]float64, error)
	// MeanScatter is the log-normal scatter level (dex) per halo.
	MeanScatter(in halos.MassInput) ([]float64, error)
	// ScatterRealization draws one centered Gaussian (dex) per halo.
	ScatterRealization(in halos.MassInput, opts ...EvalOption) ([]float64, error)
	// MCStellarMass is ⟨M*⟩ dressed with 10^draw, or the bare mean under
	// WithoutScatter.
	MCStellarMass(in halos.MassInput, opts ...EvalOption) ([]float64, error)
}

var (
	_ Relation = (*Moster13)(nil)
	_ Relation = (*Behroozi10)(nil)
)

// Option configures relation construction.
type Option func(*config)

type config struct {
	primKey  string
	redshift float64
	scatter  *scatter.LogNormal
	dict     params.Dict
}

// WithRedshift sets the relation's default epoch (per-call override:
// AtRedshift).
func WithRedshift(z float64) Option {
	return func(c *config) { c.redshift = z }
}

// WithPrimHaloPropKey sets the mass column the relation reads from tables.
func WithPrimHaloPropKey(key string) Option {
	return func(c *config) { c.primKey = key }
}

// WithScatterModel injects a scatter profile in place of the default
// single-point profile. The profile should resolve masses through the same
// primary key as the relation.
func WithScatterModel(s *scatter.LogNormal) Option {
	return func(c *config) { c.scatter = s }
}

// WithParams replaces the relation's own parameter values. The key set
// must match the relation's defaults exactly.
func WithParams(p params.Dict) Option {
	return func(c *config) { c.dict = p }
}

// EvalOption configures a single evaluation call.
type EvalOption func(*evalConfig)

type evalConfig struct {
	redshift    float64
	hasRedshift bool
	override    params.Dict
	seed        uint64
	seeded      bool
	noScatter   bool
}

// AtRedshift evaluates this call at epoch z instead of the relation's
// default.
func AtRedshift(z float64) EvalOption {
	return func(c *evalConfig) {
		c.redshift = z
		c.hasRedshift = true
	}
}

// OverrideParams evaluates this call under p instead of the bound
// dictionary, without mutating the relation. The key set must match the
// relation's own (non-scatter) keys exactly.
func OverrideParams(p params.Dict) EvalOption {
	return func(c *evalConfig) { c.override = p }
}

// WithSeed makes scatter draws reproducible.
func WithSeed(seed uint64) EvalOption {
	return func(c *evalConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithoutScatter makes MCStellarMass return the bare mean.
func WithoutScatter() EvalOption {
	return func(c *evalConfig) { c.noScatter = true }
}

func gatherEval(opts ...EvalOption) evalConfig {
	var cfg evalConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// MCStellarMass draws Monte Carlo stellar masses for any relation: the
// mean, multiplied by 10^draw with draws from the relation's scatter
// profile. WithoutScatter skips the dressing; WithSeed fixes it.
func MCStellarMass(r Relation, in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	means, err := r.MeanStellarMass(in, opts...)
	if err != nil {
		return nil, err
	}
	cfg := gatherEval(opts...)
	if cfg.noScatter {
		return means, nil
	}
	draws, err := r.ScatterRealization(in, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(means))
	for i := range means {
		out[i] = means[i] * math.Pow(10, draws[i])
	}
	return out, nil
}

// relationCore carries the state and discipline shared by every relation:
// the union parameter dictionary (relation keys ∪ scatter keys), the
// scatter profile, and the default epoch.
type relationCore struct {
	galProp     string
	primKey     string
	redshift    float64
	pubs        []string
	scatter     *scatter.LogNormal
	dict        params.Dict
	modelKeys   []string
	scatterKeys []string
}

func newRelationCore(defaults params.Dict, pubs []string, opts ...Option) (relationCore, error) {
	cfg := config{
		primKey:  halos.DefaultMassKey,
		redshift: DefaultRedshift,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	dict := defaults
	if cfg.dict != nil {
		if err := params.CheckKeys(cfg.dict, defaults.Keys()...); err != nil {
			return relationCore{}, err
		}
		dict = cfg.dict.Clone()
	}
	sc := cfg.scatter
	if sc == nil {
		var err error
		sc, err = scatter.NewLogNormal(scatter.WithPrimHaloPropKey(cfg.primKey))
		if err != nil {
			return relationCore{}, err
		}
	}
	scParams := sc.Params()
	return relationCore{
		galProp:     DefaultGalProp,
		primKey:     cfg.primKey,
		redshift:    cfg.redshift,
		pubs:        pubs,
		scatter:     sc,
		dict:        params.Merge(dict, scParams),
		modelKeys:   dict.Keys(),
		scatterKeys: scParams.Keys(),
	}, nil
}

func (rc *relationCore) GalProp() string         { return rc.galProp }
func (rc *relationCore) PrimHaloPropKey() string { return rc.primKey }
func (rc *relationCore) Redshift() float64       { return rc.redshift }

func (rc *relationCore) Publications() []string {
	return append([]string(nil), rc.pubs...)
}

// Params returns a clone of the union dictionary.
func (rc *relationCore) Params() params.Dict { return rc.dict.Clone() }

// UpdateParams replaces the full union dictionary. Scatter ordinates are
// pushed into the profile first (refitting it in the same call); on any
// failure nothing changes.
func (rc *relationCore) UpdateParams(p params.Dict) error {
	if err := params.CheckKeys(p, rc.dict.Keys()...); err != nil {
		return err
	}
	sub := make(params.Dict, len(rc.scatterKeys))
	for _, k := range rc.scatterKeys {
		sub[k] = p[k]
	}
	if err := rc.scatter.UpdateParams(sub); err != nil {
		return err
	}
	for k := range rc.dict {
		rc.dict[k] = p[k]
	}
	return nil
}

// MeanScatter evaluates the scatter profile at each halo mass.
func (rc *relationCore) MeanScatter(in halos.MassInput) ([]float64, error) {
	return rc.scatter.MeanScatter(in)
}

// ScatterRealization draws one centered Gaussian (dex) per halo.
func (rc *relationCore) ScatterRealization(in halos.MassInput, opts ...EvalOption) ([]float64, error) {
	cfg := gatherEval(opts...)
	var sopts []scatter.EvalOption
	if cfg.seeded {
		sopts = append(sopts, scatter.WithSeed(cfg.seed))
	}
	return rc.scatter.Realization(in, sopts...)
}

// resolveDict returns the dictionary a call evaluates under: the bound
// union dict, or a validated per-call override.
func (rc *relationCore) resolveDict(cfg *evalConfig) (params.Dict, error) {
	if cfg.override == nil {
		return rc.dict, nil
	}
	if err := params.CheckKeys(cfg.override, rc.modelKeys...); err != nil {
		return nil, err
	}
	return cfg.override, nil
}

func (rc *relationCore) redshiftAt(cfg *evalConfig) float64 {
	if cfg.hasRedshift {
		return cfg.redshift
	}
	return rc.redshift
}
