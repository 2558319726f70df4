package types

import "fmt"

// LightKind identifies the type of a light source.
type LightKind int32

const (
	LightInvalid LightKind = iota
	LightPoint
	LightDirectional
	LightSpot
	lightMax
)

var lightNames = [lightMax]string{"invalid", "point", "directional", "spot"}

func (l LightKind) Valid() bool {
	return l > LightInvalid && l < lightMax
}

func (l LightKind) Partition() Partition { return PartitionLight }

func (l LightKind) ID() int32 {
	return PartitionLight.Base() + int32(l)
}

func (l LightKind) String() string {
	if l < LightInvalid || l >= lightMax {
		return fmt.Sprintf("light(%d)", int32(l))
	}
	return lightNames[l]
}

func LightKindFromID(id int32) (LightKind, error) {
	n, ok := ordinal(id, PartitionLight.Base(), PartitionLight.Base()+int32(lightMax))
	if !ok {
		return LightInvalid, unsupported("light", id)
	}
	return LightKind(n), nil
}
