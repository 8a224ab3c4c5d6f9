package sliding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stratum/internal/soil"
)

// Dry sand base, hand-checked:
//
//	V = 100 * 6 = 600 kN, base = 600 * 0.5 / 1.1 = 272.73 kN
//	Kp = tan^2(60) = 3, passive X = 2 * 0.5 * 1 * 18 * 3 = 54 kN
//	resistance X = 272.73 + 0.3 * 54 / 1.4 = 284.30 kN
func TestCompute_DryBaseFriction(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 10, Class: soil.ClassGranular,
			GammaKNM3: 18, FrictionAngleDeg: 30},
	}, 8)
	require.NoError(t, err)

	f := soil.Foundation{
		WidthM: 2, LengthM: 3, DepthM: 1, PressureKPa: 100,
		HorizontalLoadXKN: 50, HorizontalLoadYKN: 300,
		SurfaceFriction: 0.5,
	}
	res, err := Compute(p, f, soil.Config{})
	require.NoError(t, err)

	assert.InDelta(t, 600.0, res.VerticalLoadKN, 1e-9)
	assert.InDelta(t, 3.0, res.Kp, 1e-9)
	assert.InDelta(t, 272.73, res.BaseKN, 0.01)
	assert.InDelta(t, 54.0, res.PassiveXKN, 1e-9)
	assert.InDelta(t, 284.30, res.ResistanceXKN, 0.01)

	assert.True(t, res.IsSafeX)
	assert.False(t, res.IsSafeY)
}

func TestCompute_SubmergedBaseUsesAdhesion(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 10, Class: soil.ClassCohesive,
			GammaKNM3: 17, GammaSatKNM3: 19, CohesionKPa: 60},
	}, 0)
	require.NoError(t, err)

	f := soil.Foundation{
		WidthM: 2, LengthM: 3, DepthM: 1, PressureKPa: 100,
		HorizontalLoadXKN: 100,
	}
	res, err := Compute(p, f, soil.Config{})
	require.NoError(t, err)

	// Adhesion over the full contact area: 2 * 3 * 60 / 1.1.
	assert.InDelta(t, 327.27, res.BaseKN, 0.01)
	assert.True(t, res.IsSafeX)
}

func TestCompute_MissingParameters(t *testing.T) {
	t.Run("submerged base without cohesion", func(t *testing.T) {
		p, err := soil.NewProfile([]soil.Layer{
			{FromDepthM: 0, ToDepthM: 10, Class: soil.ClassGranular,
				GammaKNM3: 18, GammaSatKNM3: 20, FrictionAngleDeg: 30},
		}, 0)
		require.NoError(t, err)

		f := soil.Foundation{WidthM: 2, LengthM: 3, DepthM: 1, PressureKPa: 100}
		_, err = Compute(p, f, soil.Config{})
		assert.ErrorIs(t, err, soil.ErrIncompleteInput)
	})

	t.Run("dry base without friction coefficient", func(t *testing.T) {
		p, err := soil.NewProfile([]soil.Layer{
			{FromDepthM: 0, ToDepthM: 10, Class: soil.ClassGranular,
				GammaKNM3: 18, FrictionAngleDeg: 30},
		}, 8)
		require.NoError(t, err)

		f := soil.Foundation{WidthM: 2, LengthM: 3, DepthM: 1, PressureKPa: 100}
		_, err = Compute(p, f, soil.Config{})
		assert.ErrorIs(t, err, soil.ErrIncompleteInput)
	})
}

func TestCompute_SurfaceFootingWarns(t *testing.T) {
	p, err := soil.NewProfile([]soil.Layer{
		{FromDepthM: 0, ToDepthM: 10, Class: soil.ClassGranular,
			GammaKNM3: 18, FrictionAngleDeg: 30},
	}, 8)
	require.NoError(t, err)

	f := soil.Foundation{WidthM: 2, LengthM: 3, DepthM: 0, PressureKPa: 100, SurfaceFriction: 0.5}
	res, err := Compute(p, f, soil.Config{})
	require.NoError(t, err)

	assert.Zero(t, res.PassiveXKN)
	assert.NotEmpty(t, res.Warnings)
}
