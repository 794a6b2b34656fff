package hod

import (
	"go.uber.org/zap"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/params"
	"github.com/quasarlab/halopop/smhm"
)

// Option configures model construction. Options that do not apply to a
// given constructor are ignored there; each option documents where it
// applies.
type Option func(*config)

type config struct {
	galType   string
	threshold float64
	primKey   string
	secKey    string
	dict      params.Dict
	central   OccupationModel
	relation  smhm.Relation
	logger    *zap.Logger
	pubs      []string
}

func newConfig(galType string, threshold float64) config {
	return config{
		galType:   galType,
		threshold: threshold,
		primKey:   halos.DefaultMassKey,
	}
}

// WithGalType names the population. The gal type suffixes every parameter
// key: logMmin_centrals, alpha_satellites.
func WithGalType(galType string) Option {
	return func(c *config) { c.galType = galType }
}

// WithThreshold sets the sample cut: r-band absolute magnitude for the
// Kravtsov04 models (must match a published table entry unless WithParams
// supplies values), log10(M*) for the Leauthaud11 models.
func WithThreshold(threshold float64) Option {
	return func(c *config) { c.threshold = threshold }
}

// WithPrimHaloPropKey sets the mass column read from tables. The
// Leauthaud11 models inherit their relation's key instead.
func WithPrimHaloPropKey(key string) Option {
	return func(c *config) { c.primKey = key }
}

// WithSecHaloPropKey records a secondary halo property in the component's
// identity.
func WithSecHaloPropKey(key string) Option {
	return func(c *config) { c.secKey = key }
}

// WithParams replaces the model's parameter values; the key set must match
// the model's declared keys exactly. For Kravtsov04 models this is the
// full dictionary, for Leauthaud11Sats the power-law keys. Leauthaud11Cens
// parameters belong to its relation.
func WithParams(p params.Dict) Option {
	return func(c *config) { c.dict = p }
}

// WithCentralModel conditions a satellite model on central occupation: the
// satellite mean is multiplied elementwise by the central mean. A central
// fit to a different threshold logs a warning at construction and is used
// as given.
func WithCentralModel(central OccupationModel) Option {
	return func(c *config) { c.central = central }
}

// WithRelation injects the stellar-to-halo-mass relation behind a
// Leauthaud11 model. Default: smhm.NewMoster13().
func WithRelation(rel smhm.Relation) Option {
	return func(c *config) { c.relation = rel }
}

// WithLogger attaches a logger; the default is zap.NewNop(). The only
// emission is the conditioning threshold-mismatch warning.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.logger = log }
}

// WithPublications attaches citation strings to a component built through
// NewComponent; the published models carry their own.
func WithPublications(refs ...string) Option {
	return func(c *config) { c.pubs = refs }
}

// EvalOption configures a single evaluation call.
type EvalOption func(*evalConfig)

type evalConfig struct {
	override params.Dict
	seed     uint64
	seeded   bool
}

// OverrideParams evaluates this call under p without mutating the model.
// The key set must match the model's declared keys exactly. Overrides
// never cross into a conditioning central, which always evaluates under
// its own parameters.
func OverrideParams(p params.Dict) EvalOption {
	return func(c *evalConfig) { c.override = p }
}

// WithSeed makes Monte Carlo draws reproducible: equal seeds with equal
// inputs give identical counts.
func WithSeed(seed uint64) EvalOption {
	return func(c *evalConfig) {
		c.seed = seed
		c.seeded = true
	}
}

func gatherEvalConfig(opts ...EvalOption) evalConfig {
	var cfg evalConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
