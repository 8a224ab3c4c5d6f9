package siteclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stratum/internal/soil"
)

// Hand check: 5 m at cu = 50 plus 10 m at cu = 150 over a 15 m profile.
//
//	sum = 5/50 + 10/150 = 0.16667, cu30 = 15 / 0.16667 = 90 kPa -> ZD
func TestClassify_ByCuHandCheck(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 5, Class: soil.ClassCohesive, GammaKNM3: 17, CohesionKPa: 50},
		{FromDepthM: 5, ToDepthM: 15, Class: soil.ClassCohesive, GammaKNM3: 18, CohesionKPa: 150},
	}, 15)
	require.NoError(t, err)

	res, err := Classify(p, BasisCu)
	require.NoError(t, err)

	assert.Equal(t, MethodByCu, res.Method)
	assert.InDelta(t, 0.16667, res.SumHOverValue, 1e-4)
	assert.InDelta(t, 90.0, res.Average30, 0.01)
	assert.Equal(t, "ZD", res.Class)
}

func TestClassify_ByCuSoftProfileIsZE(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 30, Class: soil.ClassCohesive, GammaKNM3: 16, CohesionKPa: 60},
	}, 30)
	require.NoError(t, err)

	res, err := Classify(p, BasisCu)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, res.Average30, 1e-9)
	assert.Equal(t, "ZE", res.Class)
}

// A layer without the driving parameter drops out of the sum but the
// averaging window stays 30 m, so the remaining strong layers carry the
// full window.
func TestClassify_ByCuSkipsUnparameterizedLayers(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 10, Class: soil.ClassCohesive, GammaKNM3: 18, CohesionKPa: 150},
		{FromDepthM: 10, ToDepthM: 20, Class: soil.ClassGranular, GammaKNM3: 19, FrictionAngleDeg: 32},
		{FromDepthM: 20, ToDepthM: 30, Class: soil.ClassCohesive, GammaKNM3: 18, CohesionKPa: 300},
	}, 30)
	require.NoError(t, err)

	res, err := Classify(p, BasisCu)
	require.NoError(t, err)

	assert.Len(t, res.Layers, 2)
	assert.InDelta(t, 0.1, res.SumHOverValue, 1e-9)
	assert.InDelta(t, 300.0, res.Average30, 1e-9)
	assert.Equal(t, "ZC", res.Class)
}

// n30 lands exactly on the ZD floor; the boundary is inclusive.
//
//	sum = 15/10 + 15/30 = 2.0, n30 = 30 / 2 = 15 -> ZD
func TestClassify_BySPTHandCheck(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 15, Class: soil.ClassGranular, GammaKNM3: 18, FrictionAngleDeg: 30, SPTBlowCount: 10},
		{FromDepthM: 15, ToDepthM: 30, Class: soil.ClassGranular, GammaKNM3: 19, FrictionAngleDeg: 34, SPTBlowCount: 30},
	}, 30)
	require.NoError(t, err)

	res, err := Classify(p, BasisSPT)
	require.NoError(t, err)

	assert.Equal(t, MethodBySPT, res.Method)
	assert.InDelta(t, 15.0, res.Average30, 1e-9)
	assert.Equal(t, "ZD", res.Class)
}

func TestClassify_BySPTDenseProfileIsZC(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 30, Class: soil.ClassGranular, GammaKNM3: 20, FrictionAngleDeg: 38, SPTBlowCount: 60},
	}, 30)
	require.NoError(t, err)

	res, err := Classify(p, BasisSPT)
	require.NoError(t, err)
	assert.Equal(t, "ZC", res.Class)
}

// Only the top 30 m enter the average no matter how deep the log runs.
func TestClassify_WindowClampsAt30m(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 30, Class: soil.ClassCohesive, GammaKNM3: 18, CohesionKPa: 100},
		{FromDepthM: 30, ToDepthM: 45, Class: soil.ClassCohesive, GammaKNM3: 18, CohesionKPa: 500},
	}, 45)
	require.NoError(t, err)

	res, err := Classify(p, BasisCu)
	require.NoError(t, err)
	assert.Len(t, res.Layers, 1)
	assert.InDelta(t, 100.0, res.Average30, 1e-9)
}

func TestClassify_DefaultBasisPrefersSPT(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 20, Class: soil.ClassGranular, GammaKNM3: 19,
			FrictionAngleDeg: 33, SPTBlowCount: 25, CohesionKPa: 5},
	}, 20)
	require.NoError(t, err)

	res, err := Classify(p, "")
	require.NoError(t, err)
	assert.Equal(t, MethodBySPT, res.Method)
}

func TestClassify_Errors(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 10, Class: soil.ClassGranular, GammaKNM3: 19, FrictionAngleDeg: 30},
	}, 10)
	require.NoError(t, err)

	t.Run("no parameter in window", func(t *testing.T) {
		_, err := Classify(p, BasisSPT)
		assert.ErrorIs(t, err, soil.ErrIncompleteInput)
	})

	t.Run("unknown basis", func(t *testing.T) {
		_, err := Classify(p, "vs30")
		assert.ErrorIs(t, err, soil.ErrInvalidInput)
	})
}
