package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeLayerProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := NewProfile([]Layer{
		{FromDepthM: 0, ToDepthM: 2, Class: ClassGranular, GammaKNM3: 17},
		{FromDepthM: 2, ToDepthM: 5, Class: ClassCohesive, GammaKNM3: 18, CohesionKPa: 40},
		{FromDepthM: 5, ToDepthM: 8, Class: ClassGranular, GammaKNM3: 19, FrictionAngleDeg: 32},
	}, 3)
	require.NoError(t, err)
	return p
}

func TestNewProfile_Valid(t *testing.T) {
	p := threeLayerProfile(t)
	assert.Equal(t, 8.0, p.DepthM())
	assert.Len(t, p.Layers, 3)
}

func TestNewProfile_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		layers []Layer
		gwt    float64
		want   error
	}{
		{"empty", nil, 0, ErrInvalidInput},
		{"negative water table", []Layer{
			{FromDepthM: 0, ToDepthM: 2, Class: ClassGranular, GammaKNM3: 18},
		}, -1, ErrInvalidInput},
		{"gap between layers", []Layer{
			{FromDepthM: 0, ToDepthM: 2, Class: ClassGranular, GammaKNM3: 18},
			{FromDepthM: 3, ToDepthM: 5, Class: ClassGranular, GammaKNM3: 18},
		}, 0, ErrInvalidInput},
		{"non-positive thickness", []Layer{
			{FromDepthM: 0, ToDepthM: 0, Class: ClassGranular, GammaKNM3: 18},
		}, 0, ErrInvalidInput},
		{"unknown class", []Layer{
			{FromDepthM: 0, ToDepthM: 2, Class: "peat", GammaKNM3: 18},
		}, 0, ErrUnsupportedSoilClass},
		{"missing unit weight", []Layer{
			{FromDepthM: 0, ToDepthM: 2, Class: ClassGranular},
		}, 0, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProfile(tc.layers, tc.gwt)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLayerAt_BoundaryBelongsToLayerBelow(t *testing.T) {
	p := threeLayerProfile(t)

	l, err := p.LayerAt(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, l.FromDepthM)

	l, err = p.LayerAt(5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, l.FromDepthM)

	// The profile bottom has no layer below; the last layer governs.
	l, err = p.LayerAt(8)
	require.NoError(t, err)
	assert.Equal(t, 5.0, l.FromDepthM)
}

func TestLayerAt_OutOfRange(t *testing.T) {
	p := threeLayerProfile(t)

	_, err := p.LayerAt(-0.5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = p.LayerAt(8.5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStress_HandCalculation(t *testing.T) {
	p, err := NewProfile([]Layer{
		{FromDepthM: 0, ToDepthM: 4, Class: ClassGranular, GammaKNM3: 18, GammaSatKNM3: 20},
		{FromDepthM: 4, ToDepthM: 10, Class: ClassGranular, GammaKNM3: 19, GammaSatKNM3: 21},
	}, 2)
	require.NoError(t, err)

	// 18*2 moist + 20*2 saturated + 21*2 saturated.
	total, err := p.TotalStressAt(6)
	require.NoError(t, err)
	assert.InDelta(t, 118.0, total, 1e-9)

	es, err := p.EffectiveStressAt(6)
	require.NoError(t, err)
	assert.InDelta(t, 118.0, es.TotalKPa, 1e-9)
	assert.InDelta(t, 4*GammaWaterKNM3, es.PoreKPa, 1e-9)
	assert.InDelta(t, 118.0-4*GammaWaterKNM3, es.EffectiveKPa, 1e-9)
}

func TestEffectiveStress_AboveWaterTableEqualsTotal(t *testing.T) {
	p := threeLayerProfile(t)
	es, err := p.EffectiveStressAt(1.5)
	require.NoError(t, err)
	assert.Zero(t, es.PoreKPa)
	assert.Equal(t, es.TotalKPa, es.EffectiveKPa)
}

func TestWeightedAverage_UniformProperty(t *testing.T) {
	p := threeLayerProfile(t)
	avg, err := p.WeightedAverage(func(Layer) float64 { return 42 }, 0.5, 7.5)
	require.NoError(t, err)
	assert.InDelta(t, 42.0, avg, 1e-12)
}

func TestWeightedAverage_StraddlesBoundary(t *testing.T) {
	p, err := NewProfile([]Layer{
		{FromDepthM: 0, ToDepthM: 2, Class: ClassGranular, GammaKNM3: 18, FrictionAngleDeg: 30},
		{FromDepthM: 2, ToDepthM: 4, Class: ClassGranular, GammaKNM3: 18, FrictionAngleDeg: 20},
	}, 10)
	require.NoError(t, err)

	avg, err := p.WeightedAverage(func(l Layer) float64 { return l.FrictionAngleDeg }, 1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, avg, 1e-9)
}

func TestWeightedAverage_EmptyInterval(t *testing.T) {
	p := threeLayerProfile(t)
	_, err := p.WeightedAverage(func(Layer) float64 { return 1 }, 3, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInterp1D(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{10, 20, 40}

	assert.InDelta(t, 15.0, Interp1D(xs, ys, 0.5), 1e-12)
	assert.InDelta(t, 30.0, Interp1D(xs, ys, 1.5), 1e-12)
	// Clamped outside the table.
	assert.InDelta(t, 10.0, Interp1D(xs, ys, -5), 1e-12)
	assert.InDelta(t, 40.0, Interp1D(xs, ys, 7), 1e-12)
}

func TestFoundationValidate(t *testing.T) {
	p := threeLayerProfile(t)

	ok := Foundation{WidthM: 2, LengthM: 3, DepthM: 1, PressureKPa: 100}
	assert.NoError(t, ok.Validate(p))

	deep := Foundation{WidthM: 2, LengthM: 3, DepthM: 9, PressureKPa: 100}
	assert.ErrorIs(t, deep.Validate(p), ErrInvalidInput)

	noWidth := Foundation{LengthM: 3, DepthM: 1}
	assert.ErrorIs(t, noWidth.Validate(p), ErrInvalidInput)

	badType := Foundation{Type: "floating", WidthM: 2, LengthM: 3}
	assert.ErrorIs(t, badType.Validate(p), ErrInvalidInput)
}

func TestFoundationVerticalLoad(t *testing.T) {
	f := Foundation{WidthM: 2, LengthM: 3, PressureKPa: 150}
	assert.InDelta(t, 900.0, f.VerticalLoadKN(), 1e-12)
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultSafetyFactor, cfg.SafetyFactor)
	assert.Equal(t, DefaultLiquefactionThreshold, cfg.LiquefactionThreshold)
	assert.Equal(t, DefaultIntegrationSteps, cfg.IntegrationSteps)

	custom := Config{SafetyFactor: 2.5, LiquefactionThreshold: 1.2, IntegrationSteps: 10}.WithDefaults()
	assert.Equal(t, 2.5, custom.SafetyFactor)
	assert.Equal(t, 1.2, custom.LiquefactionThreshold)
	assert.Equal(t, 10, custom.IntegrationSteps)
}
