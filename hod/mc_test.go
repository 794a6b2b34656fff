package hod_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/hod"
	"github.com/quasarlab/halopop/params"
)

func TestBound_ValidAndString(t *testing.T) {
	assert.True(t, hod.BoundUnity.Valid())
	assert.True(t, hod.BoundUnbounded.Valid())
	assert.False(t, hod.Bound(0).Valid())
	assert.False(t, hod.Bound(3).Valid())

	assert.Equal(t, "unity", hod.BoundUnity.String())
	assert.Equal(t, "unbounded", hod.BoundUnbounded.String())
	assert.Equal(t, "invalid", hod.Bound(9).String())
}

func TestMCOccupation_DeterministicTails(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)

	// 15σ above and 11σ below the transition the erf saturates, so every
	// draw is forced no matter the seed.
	counts, err := cen.MCOccupation(halos.Masses([]float64{1e16, 1e9, 1e16, 1e9}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 0}, counts)
}

func TestMCOccupation_BernoulliFractionMatchesMean(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)

	const n = 20000
	masses := make([]float64, n)
	for i := range masses {
		masses[i] = math.Pow(10, 12.02) // ⟨N⟩ = ½ at logMmin
	}
	counts, err := cen.MCOccupation(halos.Masses(masses), hod.WithSeed(11))
	require.NoError(t, err)

	total := 0
	for _, c := range counts {
		require.True(t, c == 0 || c == 1, "a bounded model may not exceed one")
		total += c
	}
	assert.InDelta(t, 0.5, float64(total)/n, 0.02)
}

func TestMCOccupation_PoissonMeanMatchesRate(t *testing.T) {
	sat, err := hod.NewKravtsov04Sats(hod.WithParams(params.Dict{
		"logM0_satellites": 10,
		"logM1_satellites": 12,
		"alpha_satellites": 1,
	}))
	require.NoError(t, err)

	const n = 20000
	masses := make([]float64, n)
	for i := range masses {
		masses[i] = 3.01e12 // (M − 10^10)/10^12 = 3 exactly
	}
	counts, err := sat.MCOccupation(halos.Masses(masses), hod.WithSeed(11))
	require.NoError(t, err)

	total := 0
	for _, c := range counts {
		require.GreaterOrEqual(t, c, 0)
		total += c
	}
	assert.InDelta(t, 3.0, float64(total)/n, 0.07)
}

func TestMCOccupation_ClampsVanishingRate(t *testing.T) {
	sat, err := hod.NewKravtsov04Sats()
	require.NoError(t, err)

	// Below the cutoff mass the mean is exactly zero; the clamped rate
	// keeps the draw defined and almost surely zero.
	masses := make([]float64, 100)
	for i := range masses {
		masses[i] = 1e10
	}
	counts, err := sat.MCOccupation(halos.Masses(masses), hod.WithSeed(3))
	require.NoError(t, err)
	for _, c := range counts {
		assert.Zero(t, c)
	}
}

func TestMCOccupation_SeedContract(t *testing.T) {
	sat, err := hod.NewKravtsov04Sats()
	require.NoError(t, err)

	masses := make([]float64, 300)
	for i := range masses {
		masses[i] = math.Pow(10, 13.5+float64(i%20)*0.08)
	}
	in := halos.Masses(masses)

	a, err := sat.MCOccupation(in, hod.WithSeed(42))
	require.NoError(t, err)
	b, err := sat.MCOccupation(in, hod.WithSeed(42))
	require.NoError(t, err)
	c, err := sat.MCOccupation(in, hod.WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, a, b, "equal seeds replay the catalog")
	assert.NotEqual(t, a, c)

	u1, err := sat.MCOccupation(in)
	require.NoError(t, err)
	u2, err := sat.MCOccupation(in)
	require.NoError(t, err)
	assert.NotEqual(t, u1, u2, "unseeded draws must not repeat")
}

func TestMCOccupation_PropagatesInputErrors(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)

	var empty halos.MassInput
	_, err = cen.MCOccupation(empty)
	assert.ErrorIs(t, err, halos.ErrMissingInput)

	_, err = cen.MCOccupation(halos.Masses([]float64{1e12, -4}))
	assert.ErrorIs(t, err, halos.ErrNonPositiveMass)
}

// badBound reports an occupation bound outside the supported set while
// keeping a working mean, reaching the guard in the draw dispatch.
type badBound struct {
	*hod.Kravtsov04Cens
}

func (badBound) OccupationBound() hod.Bound { return hod.Bound(9) }

func TestMCOccupation_RejectsUnknownBound(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)

	_, err = hod.MCOccupation(badBound{cen}, halos.Masses([]float64{1e12}))
	assert.ErrorIs(t, err, hod.ErrInvalidBound)
}
