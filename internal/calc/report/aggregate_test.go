package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stratum/internal/calc/bearing"
	"Stratum/internal/calc/liquefaction"
	"Stratum/internal/calc/settlement"
	"Stratum/internal/calc/sliding"
	"Stratum/internal/soil"
)

func siteInput() Input {
	return Input{
		Project: "Quay wall extension",
		Author:  "site engineer",
		Layers: []soil.Layer{
			{FromDepthM: 0, ToDepthM: 3, Class: soil.ClassGranular,
				GammaKNM3: 18, GammaSatKNM3: 20, FrictionAngleDeg: 30, SPTBlowCount: 15, FinesContentPct: 5},
			{FromDepthM: 3, ToDepthM: 12, Class: soil.ClassCohesive,
				GammaKNM3: 17, GammaSatKNM3: 19, CohesionKPa: 60,
				VoidRatio: 0.9, CompressionIndex: 0.25, RecompressionIndex: 0.05},
		},
		WaterTableM: 2,
		Foundation: soil.Foundation{
			WidthM: 2, LengthM: 2, DepthM: 1, PressureKPa: 200,
			SurfaceFriction: 0.45,
		},
		Seismic: liquefaction.Seismic{PGA: 0.25, MagnitudeW: 7.0},
	}
}

func TestAggregate_RequiresAllCoreResults(t *testing.T) {
	b := &bearing.Result{Method: bearing.MethodDrained}
	s := &settlement.Result{Methods: []string{settlement.MethodElastic}}
	l := &liquefaction.Result{Method: liquefaction.Method}

	_, err := Aggregate(nil, s, l)
	assert.ErrorIs(t, err, soil.ErrIncompleteInput)
	_, err = Aggregate(b, nil, l)
	assert.ErrorIs(t, err, soil.ErrIncompleteInput)
	_, err = Aggregate(b, s, nil)
	assert.ErrorIs(t, err, soil.ErrIncompleteInput)

	rep, err := Aggregate(b, s, l)
	require.NoError(t, err)
	assert.Equal(t, []string{bearing.MethodDrained, settlement.MethodElastic, liquefaction.Method}, rep.Methods)
	assert.Equal(t, Units, rep.Units)
	assert.Nil(t, rep.Sliding)
}

func TestAggregate_CollectsWarnings(t *testing.T) {
	b := &bearing.Result{Method: bearing.MethodDrained, Warnings: []string{"from bearing"}}
	s := &settlement.Result{Warnings: []string{"from settlement"}}
	l := &liquefaction.Result{Method: liquefaction.Method}

	rep, err := Aggregate(b, s, l)
	require.NoError(t, err)
	assert.Equal(t, []string{"from bearing", "from settlement"}, rep.Warnings)
}

func TestRun_FullSite(t *testing.T) {
	rep, err := Run(siteInput())
	require.NoError(t, err)

	require.NotNil(t, rep.Bearing)
	require.NotNil(t, rep.Settlement)
	require.NotNil(t, rep.Liquefaction)
	assert.Nil(t, rep.Sliding)

	assert.Positive(t, rep.Bearing.UltimateKPa)
	assert.Positive(t, rep.Settlement.TotalM)
	assert.NotEmpty(t, rep.Liquefaction.Layers)
	assert.Contains(t, rep.Methods, bearing.MethodDrained)
	assert.Contains(t, rep.Methods, settlement.MethodConsolidation)
	assert.Contains(t, rep.Methods, liquefaction.Method)
}

func TestRun_WithSliding(t *testing.T) {
	in := siteInput()
	in.IncludeSliding = true

	rep, err := Run(in)
	require.NoError(t, err)
	require.NotNil(t, rep.Sliding)
	assert.Contains(t, rep.Methods, sliding.Method)
}

func TestRun_InvalidProfile(t *testing.T) {
	in := siteInput()
	in.Layers[1].FromDepthM = 4 // gap in the stratigraphy

	_, err := Run(in)
	assert.ErrorIs(t, err, soil.ErrInvalidInput)
}
