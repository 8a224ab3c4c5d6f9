package liquefaction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stratum/internal/soil"
)

func designQuake() Seismic {
	return Seismic{PGA: 0.3, MagnitudeW: 7.5}
}

func TestStressReduction_Piecewise(t *testing.T) {
	assert.InDelta(t, 1.0-0.00765*5, stressReduction(5), 1e-9)
	assert.InDelta(t, 1.174-0.0267*15, stressReduction(15), 1e-9)
	assert.InDelta(t, 0.744-0.008*25, stressReduction(25), 1e-9)
	assert.Equal(t, 0.5, stressReduction(35))
}

func TestMagnitudeScalingFactor_UnityAtSevenFive(t *testing.T) {
	assert.InDelta(t, 1.0, magnitudeScalingFactor(7.5), 0.01)
	// Smaller events scale resistance up.
	assert.Greater(t, magnitudeScalingFactor(6.0), 1.0)
	assert.Less(t, magnitudeScalingFactor(8.5), 1.0)
}

func TestFinesCorrected(t *testing.T) {
	// Clean sand passes through unchanged.
	assert.InDelta(t, 12.0, finesCorrected(12, 5), 1e-9)
	// Fines raise the clean-sand equivalent.
	assert.Greater(t, finesCorrected(12, 20), 12.0)
	assert.Greater(t, finesCorrected(12, 50), finesCorrected(12, 20))
}

// Loose saturated sand under a strong motion: hand-checked CSR and a
// factor of safety well below one.
//
//	mid = 3 m, total = 57 kPa, eff = 37.38 kPa, rd = 0.97705
//	CSR = 0.65 * 0.3 * (57 / 37.38) * 0.97705 = 0.2905
func TestAnalyze_LooseSandIsSusceptible(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 6, Class: soil.ClassGranular,
			GammaKNM3: 18, GammaSatKNM3: 19.5, SPTBlowCount: 8, FinesContentPct: 5},
	}, 1)
	require.NoError(t, err)

	res, err := Analyze(p, designQuake(), soil.Config{})
	require.NoError(t, err)

	require.Len(t, res.Layers, 1)
	v := res.Layers[0]
	assert.Empty(t, v.Screened)
	assert.InDelta(t, 0.2905, v.CSR, 1e-3)
	assert.Less(t, v.FS, 1.0)
	assert.True(t, v.Susceptible)
	assert.True(t, res.AnySusceptible)
	assert.Equal(t, Method, res.Method)
}

func TestAnalyze_CohesiveNeverSusceptible(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 5, Class: soil.ClassCohesive, GammaKNM3: 17, GammaSatKNM3: 18, CohesionKPa: 40},
		{FromDepthM: 5, ToDepthM: 12, Class: soil.ClassCohesive, GammaKNM3: 18, GammaSatKNM3: 19, CohesionKPa: 80},
	}, 0)
	require.NoError(t, err)

	// Even an extreme motion must not flag cohesive layers.
	res, err := Analyze(p, Seismic{PGA: 1.0, MagnitudeW: 9.0}, soil.Config{})
	require.NoError(t, err)

	assert.False(t, res.AnySusceptible)
	for _, v := range res.Layers {
		assert.False(t, v.Susceptible)
		assert.NotEmpty(t, v.Screened)
	}
}

func TestAnalyze_ScreeningRules(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		// Above the water table.
		{FromDepthM: 0, ToDepthM: 2, Class: soil.ClassGranular, GammaKNM3: 18, SPTBlowCount: 10},
		// Plastic silt.
		{FromDepthM: 2, ToDepthM: 4, Class: soil.ClassMixed,
			GammaKNM3: 18, GammaSatKNM3: 19, SPTBlowCount: 10, PlasticityIndexPct: 20},
		// Dense sand.
		{FromDepthM: 4, ToDepthM: 8, Class: soil.ClassGranular,
			GammaKNM3: 19, GammaSatKNM3: 20, SPTBlowCount: 45, FinesContentPct: 3},
	}, 1.5)
	require.NoError(t, err)

	res, err := Analyze(p, designQuake(), soil.Config{})
	require.NoError(t, err)
	require.Len(t, res.Layers, 3)

	assert.Contains(t, res.Layers[0].Screened, "water table")
	assert.Contains(t, res.Layers[1].Screened, "plasticity")
	assert.Contains(t, res.Layers[2].Screened, "dense")
	assert.False(t, res.AnySusceptible)
}

func TestAnalyze_ThresholdFromConfig(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 6, Class: soil.ClassGranular,
			GammaKNM3: 18, GammaSatKNM3: 19.5, SPTBlowCount: 8, FinesContentPct: 5},
	}, 1)
	require.NoError(t, err)

	strict, err := Analyze(p, designQuake(), soil.Config{})
	require.NoError(t, err)
	require.True(t, strict.Layers[0].Susceptible)

	// A threshold below the computed FS clears the same layer.
	lax, err := Analyze(p, designQuake(), soil.Config{LiquefactionThreshold: 0.1})
	require.NoError(t, err)
	assert.False(t, lax.Layers[0].Susceptible)
	assert.Equal(t, strict.Layers[0].FS, lax.Layers[0].FS)
}

// Saturated loose fill whose buoyant weight vanishes: the effective
// stress at the layer center is zero, which must not poison the
// overburden correction or the CSR with a division by zero.
func TestAnalyze_ZeroEffectiveStressStaysFinite(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 4, Class: soil.ClassGranular,
			GammaKNM3: 9.81, GammaSatKNM3: 9.81, SPTBlowCount: 8, FinesContentPct: 5},
	}, 0)
	require.NoError(t, err)

	res, err := Analyze(p, designQuake(), soil.Config{})
	require.NoError(t, err)
	require.Len(t, res.Layers, 1)

	v := res.Layers[0]
	assert.False(t, math.IsNaN(v.CSR) || math.IsInf(v.CSR, 0))
	assert.False(t, math.IsNaN(v.CRR) || math.IsInf(v.CRR, 0))
	assert.False(t, math.IsNaN(v.FS) || math.IsInf(v.FS, 0))
	assert.True(t, v.Susceptible)
}

func TestAnalyze_InputErrors(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 6, Class: soil.ClassGranular, GammaKNM3: 18, GammaSatKNM3: 19.5},
	}, 1)
	require.NoError(t, err)

	_, err = Analyze(p, Seismic{PGA: 0, MagnitudeW: 7.5}, soil.Config{})
	assert.ErrorIs(t, err, soil.ErrInvalidInput)

	_, err = Analyze(p, Seismic{PGA: 0.3, MagnitudeW: 0}, soil.Config{})
	assert.ErrorIs(t, err, soil.ErrInvalidInput)

	// Saturated granular layer without a blow count cannot be rated.
	_, err = Analyze(p, designQuake(), soil.Config{})
	assert.ErrorIs(t, err, soil.ErrIncompleteInput)
}
