package components

import (
	gomath "math"

	"github.com/google/uuid"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/math"
	"github.com/spaghettifunk/spl/engine/types"
)

// Light is a point, directional or spot light source. Position is homogeneous:
// w is 1 for lights with a location and 0 for directional lights.
type Light struct {
	ID     uuid.UUID
	Kind   types.LightKind
	Colour math.RGBAf

	Position math.Vector4f
	// Direction always has unit length, or is zero when unset.
	Direction math.Vector3f
	// Cutoff is the half angle of a spot light cone, in radians.
	Cutoff float32
}

func NewPointLight(position math.Vector3f, colour math.RGBAf) *Light {
	return &Light{
		ID:       uuid.New(),
		Kind:     types.LightPoint,
		Colour:   colour,
		Position: position.Extend(1),
	}
}

func NewDirectionalLight(direction math.Vector3f, colour math.RGBAf) *Light {
	l := &Light{
		ID:     uuid.New(),
		Kind:   types.LightDirectional,
		Colour: colour,
	}
	l.SetDirection(direction)
	return l
}

// NewSpotLight creates a spot light. cutoff has to be within (0, pi/2].
func NewSpotLight(position, direction math.Vector3f, cutoff float32, colour math.RGBAf) *Light {
	core.Assert(cutoff > 0 && cutoff <= gomath.Pi/2, "NewSpotLight", "cutoff %g outside (0, pi/2]", cutoff)
	l := &Light{
		ID:       uuid.New(),
		Kind:     types.LightSpot,
		Colour:   colour,
		Position: position.Extend(1),
		Cutoff:   cutoff,
	}
	l.SetDirection(direction)
	return l
}

// SetDirection stores direction with unit length. A zero direction stays zero.
func (l *Light) SetDirection(direction math.Vector3f) {
	math.Normalize3(&direction)
	l.Direction = direction
	if l.Kind == types.LightDirectional {
		l.Position = direction.Neg().Extend(0)
	}
}

// ToLight returns the unit vector from point toward the light.
func (l *Light) ToLight(point math.Vector3f) math.Vector3f {
	if l.Kind == types.LightDirectional {
		return l.Direction.Neg()
	}
	return math.Normalized3(math.NewVector3FromVector4(l.Position).Sub(point))
}

// Illuminates reports whether point receives light. Only spot lights can miss.
func (l *Light) Illuminates(point math.Vector3f) bool {
	if l.Kind != types.LightSpot {
		return true
	}
	toPoint := l.ToLight(point).Neg()
	return float64(toPoint.Dot(l.Direction)) >= gomath.Cos(float64(l.Cutoff))
}

// Tag returns the registry tag of the light kind.
func (l *Light) Tag() types.Tag {
	return l.Kind
}
