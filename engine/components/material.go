package components

import (
	"errors"
	"fmt"
	gomath "math"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/math"
	"github.com/spaghettifunk/spl/engine/types"
)

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/**
 * @brief Material configuration typically loaded from
 * a file or created in code to load a material from.
 * Colours are written as "r g b a" strings.
 */
type MaterialConfig struct {
	/** @brief The name of the material. */
	Name string `toml:"name"`
	/** @brief The opacity, also used as the alpha of every colour. */
	Opacity float32 `toml:"opacity"`
	/** @brief The shininess of the material. */
	Shininess float32 `toml:"shininess"`
	Ambient   math.RGBAf `toml:"ambient"`
	Diffuse   math.RGBAf `toml:"diffuse"`
	Specular  math.RGBAf `toml:"specular"`
	Emission  math.RGBAf `toml:"emission"`
	/** @brief The approximation applied to every channel. */
	Approximation types.MaterialApprox `toml:"approximation"`
}

// DefaultMaterialConfig is an opaque white diffuse material.
func DefaultMaterialConfig() MaterialConfig {
	return MaterialConfig{
		Name:          DefaultMaterialName,
		Opacity:       1,
		Ambient:       math.RGBAf{0, 0, 0, 1},
		Diffuse:       math.RGBAf{1, 1, 1, 1},
		Specular:      math.RGBAf{0, 0, 0, 1},
		Emission:      math.RGBAf{0, 0, 0, 1},
		Approximation: types.MaterialApproxConstant,
	}
}

// LoadMaterialConfig reads a TOML material file. Keys missing from the file keep
// the values of DefaultMaterialConfig.
func LoadMaterialConfig(path string) (*MaterialConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := DefaultMaterialConfig()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return nil, fmt.Errorf("material %s: %w", path, err)
	}
	if err := validateMaterial(&cfg); err != nil {
		return nil, fmt.Errorf("material %s: %w", path, err)
	}
	return &cfg, nil
}

func validateMaterial(cfg *MaterialConfig) error {
	if cfg.Name == "" {
		return errors.New("material name is required")
	}
	if !inRange(cfg.Opacity) {
		return errors.New("opacity must be between 0.0 and 1.0")
	}
	if cfg.Shininess < 0 {
		return errors.New("shininess must be a non-negative value")
	}
	for _, c := range []struct {
		name   string
		colour math.RGBAf
	}{
		{"ambient", cfg.Ambient},
		{"diffuse", cfg.Diffuse},
		{"specular", cfg.Specular},
		{"emission", cfg.Emission},
	} {
		if !isValidColour(c.colour) {
			return fmt.Errorf("%s values must be between 0.0 and 1.0", c.name)
		}
	}
	if !cfg.Approximation.Valid() {
		return fmt.Errorf("approximation %s: %w", cfg.Approximation, core.ErrUnsupportedType)
	}
	return nil
}

func isValidColour(c math.RGBAf) bool {
	return inRange(c.R()) && inRange(c.G()) && inRange(c.B()) && inRange(c.A())
}

func inRange(value float32) bool {
	return value >= 0.0 && value <= 1.0
}

/**
 * @brief A material, which represents various properties
 * of a surface such as colour, opacity and shininess.
 * Every property is a scalar channel named by types.MaterialChannel,
 * interpolated with its own types.MaterialApprox.
 */
type Material struct {
	/** @brief The material id. */
	ID uuid.UUID
	/** @brief The material name. */
	Name string
	/** @brief The material generation. Incremented every time the material is changed. */
	Generation uint32

	values [types.MaterialChannelCount]float32
	approx [types.MaterialChannelCount]types.MaterialApprox
}

// NewMaterial creates a material from cfg.
func NewMaterial(cfg MaterialConfig) *Material {
	m := &Material{ID: uuid.New(), Name: cfg.Name}
	for i := range m.approx {
		m.approx[i] = cfg.Approximation
	}
	m.values[types.MaterialOpacity-1] = cfg.Opacity
	m.values[types.MaterialShininess-1] = cfg.Shininess
	m.setColour(types.MaterialAmbientRed, cfg.Ambient)
	m.setColour(types.MaterialDiffuseRed, cfg.Diffuse)
	m.setColour(types.MaterialSpecularRed, cfg.Specular)
	m.setColour(types.MaterialEmissionRed, cfg.Emission)
	m.Generation = 0
	return m
}

func checkChannel(ch types.MaterialChannel) error {
	if !ch.Valid() {
		return fmt.Errorf("material channel %s: %w", ch, core.ErrUnsupportedType)
	}
	return nil
}

func (m *Material) Value(ch types.MaterialChannel) (float32, error) {
	if err := checkChannel(ch); err != nil {
		return 0, err
	}
	return m.values[ch-1], nil
}

func (m *Material) SetValue(ch types.MaterialChannel, value float32) error {
	if err := checkChannel(ch); err != nil {
		return err
	}
	m.values[ch-1] = value
	m.Generation++
	return nil
}

func (m *Material) Approx(ch types.MaterialChannel) (types.MaterialApprox, error) {
	if err := checkChannel(ch); err != nil {
		return types.MaterialApproxInvalid, err
	}
	return m.approx[ch-1], nil
}

func (m *Material) SetApprox(ch types.MaterialChannel, approx types.MaterialApprox) error {
	if err := checkChannel(ch); err != nil {
		return err
	}
	if !approx.Valid() {
		return fmt.Errorf("material approximation %s: %w", approx, core.ErrUnsupportedType)
	}
	m.approx[ch-1] = approx
	m.Generation++
	return nil
}

// colour reads the red, green and blue channels starting at red. Alpha is the opacity.
func (m *Material) colour(red types.MaterialChannel) math.RGBAf {
	i := red - 1
	return math.RGBAf{m.values[i], m.values[i+1], m.values[i+2], m.values[types.MaterialOpacity-1]}
}

// setColour writes r, g and b. Alpha is ignored, opacity is a channel of its own.
func (m *Material) setColour(red types.MaterialChannel, c math.RGBAf) {
	i := red - 1
	m.values[i], m.values[i+1], m.values[i+2] = c.R(), c.G(), c.B()
	m.Generation++
}

func (m *Material) Opacity() float32   { return m.values[types.MaterialOpacity-1] }
func (m *Material) Shininess() float32 { return m.values[types.MaterialShininess-1] }

func (m *Material) Ambient() math.RGBAf  { return m.colour(types.MaterialAmbientRed) }
func (m *Material) Diffuse() math.RGBAf  { return m.colour(types.MaterialDiffuseRed) }
func (m *Material) Specular() math.RGBAf { return m.colour(types.MaterialSpecularRed) }
func (m *Material) Emission() math.RGBAf { return m.colour(types.MaterialEmissionRed) }

func (m *Material) SetAmbient(c math.RGBAf)  { m.setColour(types.MaterialAmbientRed, c) }
func (m *Material) SetDiffuse(c math.RGBAf)  { m.setColour(types.MaterialDiffuseRed, c) }
func (m *Material) SetSpecular(c math.RGBAf) { m.setColour(types.MaterialSpecularRed, c) }
func (m *Material) SetEmission(c math.RGBAf) { m.setColour(types.MaterialEmissionRed, c) }

// Shade returns the colour of a surface lit by light from the direction toLight
// (pointing away from the surface) with the given normal, seen from toEye.
// The result is ambient + diffuse*lambert + specular*phong, modulated by the
// light colour and clamped to 0..1.
func (m *Material) Shade(light math.RGBAf, normal, toLight, toEye math.Vector3f) math.RGBAf {
	n := math.Normalized3(normal)
	l := math.Normalized3(toLight)
	lambert := math.Clamp(n.Dot(l), 0, 1)

	var phong float32
	if lambert > 0 {
		reflected := n.MulScalar(2 * n.Dot(l)).Sub(l)
		phong = float32(gomath.Pow(float64(math.Clamp(reflected.Dot(math.Normalized3(toEye)), 0, 1)), float64(m.Shininess())))
	}

	out := m.Ambient().
		Add(m.Diffuse().MulScalar(lambert)).
		Add(m.Specular().MulScalar(phong)).
		Mul(light)
	for i := 0; i < 3; i++ {
		out[i] = math.Clamp(out[i], 0, 1)
	}
	out.SetA(m.Opacity())
	return out
}
