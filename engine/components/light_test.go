package components

import (
	gomath "math"
	"testing"

	"github.com/spaghettifunk/spl/engine/math"
	"github.com/spaghettifunk/spl/engine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointLight(t *testing.T) {
	l := NewPointLight(math.Vector3f{1, 2, 3}, math.RGBAf{1, 1, 1, 1})
	assert.Equal(t, types.LightPoint, l.Kind)
	assert.Equal(t, math.Vector4f{1, 2, 3, 1}, l.Position)
	assert.Equal(t, math.Vector3f{}, l.Direction)
	assert.True(t, l.ToLight(math.Vector3f{1, 2, 0}).Compare(math.Vector3f{0, 0, 1}, 1e-6))
	assert.True(t, l.Illuminates(math.Vector3f{-100, 0, 0}))
	assert.NotEqual(t, l.ID, NewPointLight(math.Vector3f{}, math.RGBAf{}).ID)
}

func TestDirectionalLight(t *testing.T) {
	l := NewDirectionalLight(math.Vector3f{0, -10, 0}, math.RGBAf{1, 1, 1, 1})
	assert.Equal(t, types.LightDirectional, l.Kind)
	assert.Equal(t, math.Vector3f{0, -1, 0}, l.Direction)
	assert.Equal(t, math.Vector4f{0, 1, 0, 0}, l.Position)
	assert.Equal(t, math.Vector3f{0, 1, 0}, l.ToLight(math.Vector3f{5, 5, 5}))

	l.SetDirection(math.Vector3f{3, 0, 4})
	assert.InDelta(t, 1, l.Direction.Length(), 1e-6)

	l.SetDirection(math.Vector3f{})
	assert.Equal(t, math.Vector3f{}, l.Direction, "zero direction stays zero")
}

func TestSpotLight(t *testing.T) {
	l := NewSpotLight(math.Vector3f{0, 10, 0}, math.Vector3f{0, -2, 0}, gomath.Pi/6, math.RGBAf{1, 1, 1, 1})
	assert.Equal(t, types.LightSpot, l.Kind)
	assert.Equal(t, math.Vector3f{0, -1, 0}, l.Direction)

	assert.True(t, l.Illuminates(math.Vector3f{0, 0, 0}))
	assert.True(t, l.Illuminates(math.Vector3f{5, 0, 0}), "about 27 degrees off axis")
	assert.False(t, l.Illuminates(math.Vector3f{10, 0, 0}), "45 degrees off axis")
	assert.False(t, l.Illuminates(math.Vector3f{0, 20, 0}))

	assert.Panics(t, func() { NewSpotLight(math.Vector3f{}, math.Vector3f{0, -1, 0}, 0, math.RGBAf{}) })
	assert.Panics(t, func() { NewSpotLight(math.Vector3f{}, math.Vector3f{0, -1, 0}, 2, math.RGBAf{}) })
}

func TestLightTag(t *testing.T) {
	l := NewSpotLight(math.Vector3f{}, math.Vector3f{0, 0, -1}, 0.5, math.RGBAf{})
	buf, err := types.AppendTag(nil, l.Tag())
	require.NoError(t, err)

	tag, rest, err := types.ReadTag(buf)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, types.LightSpot, tag)
	assert.Equal(t, types.LightSpot.ID(), tag.ID())
}
