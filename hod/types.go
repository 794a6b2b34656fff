package hod

import (
	"errors"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/params"
)

const (
	// DefaultLuminosityThreshold is the fiducial r-band absolute-magnitude
	// sample cut for the Kravtsov04 models.
	DefaultLuminosityThreshold = -20.0

	// DefaultStellarMassThreshold is the fiducial log10(M*) sample cut for
	// the Leauthaud11 models.
	DefaultStellarMassThreshold = 10.5

	// DefaultGalTypeCentrals and DefaultGalTypeSatellites name the two
	// standard populations; the gal type suffixes every parameter key.
	DefaultGalTypeCentrals   = "centrals"
	DefaultGalTypeSatellites = "satellites"

	// TinyPoissonRate replaces non-positive Poisson rates so a degenerate
	// mean still yields a well-defined, almost surely zero, draw.
	TinyPoissonRate = 1e-20
)

var (
	// ErrInvalidBound signals an occupation bound other than BoundUnity or
	// BoundUnbounded at construction.
	ErrInvalidBound = errors.New("hod: invalid occupation bound")

	// ErrUnsupportedThreshold signals a threshold with no published
	// parameter entry; lookups match exactly.
	ErrUnsupportedThreshold = errors.New("hod: unsupported threshold")
)

// Bound is the per-halo occupation ceiling. It selects the Monte Carlo
// law: BoundUnity draws Bernoulli, BoundUnbounded draws Poisson.
type Bound int

const (
	// BoundUnity caps occupation at one galaxy per halo (centrals).
	BoundUnity Bound = iota + 1
	// BoundUnbounded leaves occupation uncapped (satellites).
	BoundUnbounded
)

// Valid reports whether b is one of the two supported bounds.
func (b Bound) Valid() bool { return b == BoundUnity || b == BoundUnbounded }

// String implements fmt.Stringer.
func (b Bound) String() string {
	switch b {
	case BoundUnity:
		return "unity"
	case BoundUnbounded:
		return "unbounded"
	default:
		return "invalid"
	}
}

// OccupationModel is the contract every occupation component satisfies.
type OccupationModel interface {
	GalType() string
	Threshold() float64
	OccupationBound() Bound
	PrimHaloPropKey() string
	Publications() []string
	Params() params.Dict
	UpdateParams(params.Dict) error

	// MeanOccupation is the first moment ⟨N⟩ per halo.
	MeanOccupation(in halos.MassInput, opts ...EvalOption) ([]float64, error)
	// MCOccupation draws one integer count per halo.
	MCOccupation(in halos.MassInput, opts ...EvalOption) ([]int, error)
}

var (
	_ OccupationModel = (*Kravtsov04Cens)(nil)
	_ OccupationModel = (*Kravtsov04Sats)(nil)
	_ OccupationModel = (*Leauthaud11Cens)(nil)
	_ OccupationModel = (*Leauthaud11Sats)(nil)
)
