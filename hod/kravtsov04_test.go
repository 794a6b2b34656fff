package hod_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quasarlab/halopop/halos"
	"github.com/quasarlab/halopop/hod"
	"github.com/quasarlab/halopop/params"
)

func TestKravtsov04Cens_HalfAtLogMmin(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens() // threshold −20 → logMmin 12.02
	require.NoError(t, err)

	mean, err := cen.MeanOccupation(halos.Masses([]float64{math.Pow(10, 12.02)}))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean[0], 1e-12, "erf(0) pins the mean to ½ at logMmin")
}

func TestKravtsov04Cens_MonotoneAndBounded(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)

	masses := make([]float64, 60)
	for i := range masses {
		masses[i] = math.Pow(10, 9+float64(i)*0.1)
	}
	mean, err := cen.MeanOccupation(halos.Masses(masses))
	require.NoError(t, err)
	for i, v := range mean {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, v, mean[i-1], "⟨Ncen⟩ must not decrease with mass")
		}
	}
}

func TestKravtsov04Cens_DefaultsFollowThreshold(t *testing.T) {
	faint, err := hod.NewKravtsov04Cens(hod.WithThreshold(-18.0))
	require.NoError(t, err)
	bright, err := hod.NewKravtsov04Cens(hod.WithThreshold(-22.0))
	require.NoError(t, err)

	assert.Equal(t, 11.35, faint.Params()["logMmin_centrals"])
	assert.Equal(t, 14.22, bright.Params()["logMmin_centrals"])
}

func TestKravtsov04Cens_UnpublishedThresholdNeedsParams(t *testing.T) {
	_, err := hod.NewKravtsov04Cens(hod.WithThreshold(-19.25))
	assert.ErrorIs(t, err, hod.ErrUnsupportedThreshold)

	cen, err := hod.NewKravtsov04Cens(
		hod.WithThreshold(-19.25),
		hod.WithParams(params.Dict{
			"logMmin_centrals":    12.0,
			"sigma_logM_centrals": 0.2,
		}),
	)
	require.NoError(t, err)
	mean, err := cen.MeanOccupation(halos.Masses([]float64{1e12}))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean[0], 1e-12)
}

func TestKravtsov04Cens_WithParamsRejectsWrongKeys(t *testing.T) {
	_, err := hod.NewKravtsov04Cens(
		hod.WithParams(params.Dict{"logMmin_centrals": 12.0}),
	)
	assert.ErrorIs(t, err, params.ErrInvalidKeys)
}

func TestKravtsov04Cens_GalTypeSuffixesKeys(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens(hod.WithGalType("reds"))
	require.NoError(t, err)

	p := cen.Params()
	assert.True(t, p.Has("logMmin_reds"))
	assert.True(t, p.Has("sigma_logM_reds"))
	assert.Equal(t, "reds", cen.GalType())
}

func TestKravtsov04Cens_UpdateParamsShiftsTransition(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)
	in := halos.Masses([]float64{1e12})

	before, err := cen.MeanOccupation(in)
	require.NoError(t, err)

	p := cen.Params()
	p["logMmin_centrals"] = 13.0 // push the transition above 1e12
	require.NoError(t, cen.UpdateParams(p))

	after, err := cen.MeanOccupation(in)
	require.NoError(t, err)
	assert.Less(t, after[0], before[0])
}

func TestKravtsov04Cens_UpdateParamsRejectsWrongKeys(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)

	err = cen.UpdateParams(params.Dict{"logMmin_centrals": 12.5})
	assert.ErrorIs(t, err, params.ErrInvalidKeys)

	p := cen.Params()
	p["extra"] = 1.0
	assert.ErrorIs(t, cen.UpdateParams(p), params.ErrInvalidKeys)
}

func TestKravtsov04Cens_OverrideParamsDoesNotMutate(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)
	in := halos.Masses([]float64{1e12})

	base, err := cen.MeanOccupation(in)
	require.NoError(t, err)

	over := cen.Params()
	over["logMmin_centrals"] = 13.5
	shifted, err := cen.MeanOccupation(in, hod.OverrideParams(over))
	require.NoError(t, err)
	assert.Less(t, shifted[0], base[0])

	again, err := cen.MeanOccupation(in)
	require.NoError(t, err)
	assert.Equal(t, base[0], again[0], "override must leave the model untouched")
}

func TestKravtsov04Cens_OverrideParamsRejectsWrongKeys(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)

	_, err = cen.MeanOccupation(halos.Masses([]float64{1e12}),
		hod.OverrideParams(params.Dict{"logMmin_centrals": 13.5}))
	assert.ErrorIs(t, err, params.ErrInvalidKeys)
}

func TestKravtsov04Sats_ZeroBelowCutoff(t *testing.T) {
	sat, err := hod.NewKravtsov04Sats() // threshold −20 → logM0 11.38
	require.NoError(t, err)

	mean, err := sat.MeanOccupation(halos.Masses([]float64{1e10, 1e11, 2e11}))
	require.NoError(t, err)
	for _, v := range mean {
		assert.Zero(t, v, "below M0 the mean is exactly zero")
	}
}

func TestKravtsov04Sats_UnityAtM0PlusM1(t *testing.T) {
	sat, err := hod.NewKravtsov04Sats()
	require.NoError(t, err)

	m0 := math.Pow(10, 11.38)
	m1 := math.Pow(10, 13.31)
	mean, err := sat.MeanOccupation(halos.Masses([]float64{m0 + m1}))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mean[0], 1e-9, "(M−M0)/M1 = 1 regardless of slope")
}

func TestKravtsov04Sats_IncreasingAboveCutoff(t *testing.T) {
	sat, err := hod.NewKravtsov04Sats()
	require.NoError(t, err)

	masses := []float64{5e11, 1e12, 1e13, 1e14, 1e15}
	mean, err := sat.MeanOccupation(halos.Masses(masses))
	require.NoError(t, err)
	for i := 1; i < len(mean); i++ {
		assert.Greater(t, mean[i], mean[i-1])
	}
}

func TestKravtsov04Sats_ConditioningMultipliesCentralMean(t *testing.T) {
	cen, err := hod.NewKravtsov04Cens()
	require.NoError(t, err)
	plain, err := hod.NewKravtsov04Sats()
	require.NoError(t, err)
	conditioned, err := hod.NewKravtsov04Sats(hod.WithCentralModel(cen))
	require.NoError(t, err)

	masses := []float64{5e11, 1e12, 5e12, 1e13, 1e14}
	in := halos.Masses(masses)

	nc, err := cen.MeanOccupation(in)
	require.NoError(t, err)
	ns, err := plain.MeanOccupation(in)
	require.NoError(t, err)
	got, err := conditioned.MeanOccupation(in)
	require.NoError(t, err)

	for i := range masses {
		assert.InDelta(t, ns[i]*nc[i], got[i], 1e-15)
	}
	assert.Same(t, cen, conditioned.CentralModel().(*hod.Kravtsov04Cens))
}

func TestKravtsov04Sats_ThresholdMismatchWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	cen, err := hod.NewKravtsov04Cens(hod.WithThreshold(-20.5))
	require.NoError(t, err)
	_, err = hod.NewKravtsov04Sats(
		hod.WithThreshold(-20.0),
		hod.WithCentralModel(cen),
		hod.WithLogger(logger),
	)
	require.NoError(t, err, "a threshold mismatch is a warning, not an error")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "threshold")
}

func TestKravtsov04Sats_MatchingThresholdStaysQuiet(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	cen, err := hod.NewKravtsov04Cens(hod.WithThreshold(-20.5))
	require.NoError(t, err)
	_, err = hod.NewKravtsov04Sats(
		hod.WithThreshold(-20.5),
		hod.WithCentralModel(cen),
		hod.WithLogger(logger),
	)
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}

func TestKravtsov04_TableChannelsMatchRawMasses(t *testing.T) {
	sat, err := hod.NewKravtsov04Sats()
	require.NoError(t, err)
	masses := []float64{5e11, 1e12, 1e13}

	raw, err := sat.MeanOccupation(halos.Masses(masses))
	require.NoError(t, err)

	ht := halos.NewTable()
	require.NoError(t, ht.SetColumn(halos.DefaultMassKey, masses))
	fromHalos, err := sat.MeanOccupation(halos.HaloTable(ht))
	require.NoError(t, err)
	assert.Equal(t, raw, fromHalos)

	gt := halos.NewTable()
	require.NoError(t, gt.SetColumn(halos.HostHaloPropPrefix+halos.DefaultMassKey, masses))
	fromGalaxies, err := sat.MeanOccupation(halos.GalaxyTable(gt))
	require.NoError(t, err)
	assert.Equal(t, raw, fromGalaxies)
}
