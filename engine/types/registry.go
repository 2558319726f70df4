package types

import (
	"fmt"

	"github.com/spaghettifunk/spl/engine/core"
)

// Partition identifies one of the disjoint id ranges of the registry.
type Partition int32

const (
	PartitionType Partition = iota
	PartitionFileIO
	PartitionCamera
	PartitionMaterial
	PartitionLight
	partitionCount
)

// The id layout is an interchange format: persisted data embeds these values,
// so neither constant may ever change.
const (
	enumFirst int32 = 0x0FFF0000
	enumRange int32 = 0x00002000
)

var partitionNames = [partitionCount]string{"type", "fileio", "camera", "material", "light"}

// Base returns the MIN sentinel of the partition. Valid ids start at Base()+1.
func (p Partition) Base() int32 {
	return enumFirst + enumRange*int32(p)
}

func (p Partition) Valid() bool {
	return p >= 0 && p < partitionCount
}

func (p Partition) String() string {
	if !p.Valid() {
		return fmt.Sprintf("partition(%d)", int32(p))
	}
	return partitionNames[p]
}

// partitionOf returns the partition whose range contains id.
func partitionOf(id int32) (Partition, bool) {
	if id < enumFirst {
		return 0, false
	}
	p := Partition((id - enumFirst) / enumRange)
	return p, p.Valid()
}

// ordinal converts id into a 1-based position within a run of ids that starts
// right after min and ends right before max.
func ordinal(id, min, max int32) (int32, bool) {
	if id <= min || id >= max {
		return 0, false
	}
	return id - min, true
}

func unsupported(what string, id int32) error {
	return fmt.Errorf("%s id %#x: %w", what, id, core.ErrUnsupportedType)
}
