package halos

import (
	"fmt"
	"math"
)

// MassInput is the single argument through which models receive halo
// masses. Exactly one channel is set by the constructor used; the zero
// value carries none and resolves to ErrMissingInput.
type MassInput struct {
	masses    []float64
	hasMasses bool
	halo      *Table
	galaxy    *Table
}

// Masses wraps a raw slice of halo masses. The slice is borrowed, not
// copied; models only read it. An empty slice is valid and yields empty
// results.
func Masses(v []float64) MassInput {
	return MassInput{masses: v, hasMasses: true}
}

// HaloTable reads masses from t's primary mass column.
func HaloTable(t *Table) MassInput {
	return MassInput{halo: t}
}

// GalaxyTable reads host-halo masses from t, under the HostHaloPropPrefix
// column ("halo_mvir" for primary key "mvir").
func GalaxyTable(t *Table) MassInput {
	return MassInput{galaxy: t}
}

// Resolve extracts the mass array for the given primary mass key, walking
// channels in the fixed order galaxy table → halo table → raw slice. Every
// resolved mass must be finite and strictly positive; the first offender is
// reported with its index, wrapped in ErrNonPositiveMass. An unset input
// returns ErrMissingInput. The returned slice is read-only.
func (in MassInput) Resolve(primKey string) ([]float64, error) {
	var (
		vals []float64
		err  error
	)
	switch {
	case in.galaxy != nil:
		vals, err = in.galaxy.Column(HostHaloPropPrefix + primKey)
	case in.halo != nil:
		vals, err = in.halo.Column(primKey)
	case in.hasMasses:
		vals = in.masses
	default:
		return nil, ErrMissingInput
	}
	if err != nil {
		return nil, err
	}
	for i, m := range vals {
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
			return nil, fmt.Errorf("%w: mass[%d]=%g", ErrNonPositiveMass, i, m)
		}
	}
	return vals, nil
}
