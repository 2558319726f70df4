package components

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/math"
	"github.com/spaghettifunk/spl/engine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMaterial(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "material.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMaterialConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeMaterial(t, `
name = "brick"
opacity = 0.5
shininess = 32.0
ambient = "0.1 0.1 0.1 1"
diffuse = "0.8 0.2 0.1 1"
specular = "1 1 1 1"
emission = "0 0 0 1"
approximation = "linear"
`)
		cfg, err := LoadMaterialConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "brick", cfg.Name)
		assert.Equal(t, float32(0.5), cfg.Opacity)
		assert.Equal(t, float32(32), cfg.Shininess)
		assert.Equal(t, math.RGBAf{0.8, 0.2, 0.1, 1}, cfg.Diffuse)
		assert.Equal(t, types.MaterialApproxLinear, cfg.Approximation)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadMaterialConfig(writeMaterial(t, `name = "plain"`))
		require.NoError(t, err)
		def := DefaultMaterialConfig()
		def.Name = "plain"
		assert.Equal(t, def, *cfg)
	})

	t.Run("invalid files", func(t *testing.T) {
		for name, content := range map[string]string{
			"missing name":        `name = ""`,
			"unknown key":         "name = \"x\"\nshader = \"builtin\"",
			"short colour":        "name = \"x\"\ndiffuse = \"1 1 1\"",
			"colour out of range": "name = \"x\"\ndiffuse = \"2 0 0 1\"",
			"negative shininess":  "name = \"x\"\nshininess = -1.0",
			"opacity":             "name = \"x\"\nopacity = 1.5",
			"approximation":       "name = \"x\"\napproximation = \"cubic\"",
		} {
			_, err := LoadMaterialConfig(writeMaterial(t, content))
			assert.Error(t, err, name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMaterialConfig(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMaterialChannels(t *testing.T) {
	cfg := DefaultMaterialConfig()
	cfg.Opacity = 0.75
	cfg.Shininess = 8
	cfg.Diffuse = math.RGBAf{0.5, 0.25, 1, 1}
	m := NewMaterial(cfg)

	assert.NotEqual(t, NewMaterial(cfg).ID, m.ID)
	assert.Equal(t, uint32(0), m.Generation)
	assert.Equal(t, float32(0.75), m.Opacity())
	assert.Equal(t, float32(8), m.Shininess())
	assert.Equal(t, math.RGBAf{0.5, 0.25, 1, 0.75}, m.Diffuse(), "alpha follows opacity")

	v, err := m.Value(types.MaterialDiffuseGreen)
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), v)

	require.NoError(t, m.SetValue(types.MaterialIsosurface, 0.3))
	v, err = m.Value(types.MaterialIsosurface)
	require.NoError(t, err)
	assert.Equal(t, float32(0.3), v)
	assert.Equal(t, uint32(1), m.Generation)

	m.SetSpecular(math.RGBAf{1, 0, 0, 0})
	assert.Equal(t, math.RGBAf{1, 0, 0, 0.75}, m.Specular())
	m.SetAmbient(math.RGBAf{0.1, 0.1, 0.1, 1})
	m.SetEmission(math.RGBAf{0, 0, 0.2, 1})
	m.SetDiffuse(math.RGBAf{1, 1, 1, 1})
	assert.Equal(t, math.RGBAf{0, 0, 0.2, 0.75}, m.Emission())
	assert.Equal(t, math.RGBAf{0.1, 0.1, 0.1, 0.75}, m.Ambient())
	assert.Equal(t, uint32(5), m.Generation)

	a, err := m.Approx(types.MaterialOpacity)
	require.NoError(t, err)
	assert.Equal(t, types.MaterialApproxConstant, a)
	require.NoError(t, m.SetApprox(types.MaterialOpacity, types.MaterialApproxQuadratic))
	a, err = m.Approx(types.MaterialOpacity)
	require.NoError(t, err)
	assert.Equal(t, types.MaterialApproxQuadratic, a)

	_, err = m.Value(types.MaterialChannelInvalid)
	assert.ErrorIs(t, err, core.ErrUnsupportedType)
	assert.ErrorIs(t, m.SetValue(types.MaterialChannel(100), 1), core.ErrUnsupportedType)
	_, err = m.Approx(types.MaterialChannel(-1))
	assert.ErrorIs(t, err, core.ErrUnsupportedType)
	assert.ErrorIs(t, m.SetApprox(types.MaterialGradient, types.MaterialApproxInvalid), core.ErrUnsupportedType)
}

func TestMaterialShade(t *testing.T) {
	cfg := DefaultMaterialConfig()
	cfg.Diffuse = math.RGBAf{1, 0, 0, 1}
	cfg.Ambient = math.RGBAf{0.1, 0.1, 0.1, 1}
	m := NewMaterial(cfg)

	white := math.RGBAf{1, 1, 1, 1}
	up := math.Vector3f{0, 1, 0}

	lit := m.Shade(white, up, up, up)
	assert.True(t, lit.Compare(math.RGBAf{1, 0.1, 0.1, 1}, 1e-6), lit.String())

	behind := m.Shade(white, up, up.Neg(), up)
	assert.True(t, behind.Compare(math.RGBAf{0.1, 0.1, 0.1, 1}, 1e-6), behind.String())

	grazing := m.Shade(white, up, math.Vector3f{1, 1, 0}, up)
	assert.InDelta(t, 0.1+0.70710678, grazing.R(), 1e-5)

	tinted := m.Shade(math.RGBAf{0.5, 0.5, 0.5, 1}, up, up, up)
	assert.InDelta(t, 0.55, tinted.R(), 1e-6)
}
