package types

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/spl/engine/core"
)

// MaterialChannel identifies a single scalar channel of a material.
type MaterialChannel int32

const (
	MaterialChannelInvalid MaterialChannel = iota
	MaterialOpacity
	MaterialEmissionRed
	MaterialEmissionGreen
	MaterialEmissionBlue
	MaterialAmbientRed
	MaterialAmbientGreen
	MaterialAmbientBlue
	MaterialDiffuseRed
	MaterialDiffuseGreen
	MaterialDiffuseBlue
	MaterialSpecularRed
	MaterialSpecularGreen
	MaterialSpecularBlue
	MaterialShininess
	MaterialIsosurface
	MaterialGradient
	MaterialExt0
	materialChannelMax
)

// MaterialChannelCount is the number of valid material channels.
const MaterialChannelCount = int(materialChannelMax) - 1

var materialChannelNames = [materialChannelMax]string{
	"invalid",
	"opacity",
	"emission_red", "emission_green", "emission_blue",
	"ambient_red", "ambient_green", "ambient_blue",
	"diffuse_red", "diffuse_green", "diffuse_blue",
	"specular_red", "specular_green", "specular_blue",
	"shininess", "isosurface", "gradient", "ext0",
}

func (m MaterialChannel) Valid() bool {
	return m > MaterialChannelInvalid && m < materialChannelMax
}

func (m MaterialChannel) Partition() Partition { return PartitionMaterial }

func (m MaterialChannel) ID() int32 {
	return PartitionMaterial.Base() + int32(m)
}

func (m MaterialChannel) String() string {
	if m < MaterialChannelInvalid || m >= materialChannelMax {
		return fmt.Sprintf("materialchannel(%d)", int32(m))
	}
	return materialChannelNames[m]
}

func MaterialChannelFromID(id int32) (MaterialChannel, error) {
	n, ok := ordinal(id, PartitionMaterial.Base(), PartitionMaterial.Base()+int32(materialChannelMax))
	if !ok {
		return MaterialChannelInvalid, unsupported("material channel", id)
	}
	return MaterialChannel(n), nil
}

// MaterialApprox is the approximation used to interpolate a material channel.
// Its ids live in the material partition, right after the channel range.
type MaterialApprox int32

const (
	MaterialApproxInvalid MaterialApprox = iota
	MaterialApproxConstant
	MaterialApproxLinear
	MaterialApproxQuadratic
	materialApproxMax
)

var materialApproxNames = [materialApproxMax]string{"invalid", "constant", "linear", "quadratic"}

// materialApproxBase is the APPROX_MIN sentinel, one past the channel MAX sentinel.
func materialApproxBase() int32 {
	return PartitionMaterial.Base() + int32(materialChannelMax) + 1
}

func (a MaterialApprox) Valid() bool {
	return a > MaterialApproxInvalid && a < materialApproxMax
}

func (a MaterialApprox) Partition() Partition { return PartitionMaterial }

func (a MaterialApprox) ID() int32 {
	return materialApproxBase() + int32(a)
}

func (a MaterialApprox) String() string {
	if a < MaterialApproxInvalid || a >= materialApproxMax {
		return fmt.Sprintf("materialapprox(%d)", int32(a))
	}
	return materialApproxNames[a]
}

// MarshalText lets approximations appear by name in configuration files.
func (a MaterialApprox) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("material approximation %d: %w", int32(a), core.ErrUnsupportedType)
	}
	return []byte(a.String()), nil
}

func (a *MaterialApprox) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for v := MaterialApproxConstant; v < materialApproxMax; v++ {
		if materialApproxNames[v] == name {
			*a = v
			return nil
		}
	}
	return fmt.Errorf("material approximation %q: %w", name, core.ErrUnsupportedType)
}

func MaterialApproxFromID(id int32) (MaterialApprox, error) {
	n, ok := ordinal(id, materialApproxBase(), materialApproxBase()+int32(materialApproxMax))
	if !ok {
		return MaterialApproxInvalid, unsupported("material approximation", id)
	}
	return MaterialApprox(n), nil
}
