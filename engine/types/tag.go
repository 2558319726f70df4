package types

import (
	"encoding/binary"
	"fmt"

	"github.com/spaghettifunk/spl/engine/core"
)

// Tag is any registry value. It is the tagged variant used where an id coming
// from an unknown partition has to be carried or decoded, e.g. the element
// type stored in a grid header.
type Tag interface {
	ID() int32
	Partition() Partition
	String() string
}

var (
	_ Tag = Kind(0)
	_ Tag = FileFormat(0)
	_ Tag = CameraMatrix(0)
	_ Tag = MaterialChannel(0)
	_ Tag = MaterialApprox(0)
	_ Tag = LightKind(0)
)

// Decode returns the typed registry value for id. Sentinels and ids outside
// every partition are rejected with core.ErrUnsupportedType.
func Decode(id int32) (Tag, error) {
	p, ok := partitionOf(id)
	if !ok {
		return nil, unsupported("registry", id)
	}

	var (
		t   Tag
		err error
	)
	switch p {
	case PartitionType:
		t, err = KindFromID(id)
	case PartitionFileIO:
		t, err = FileFormatFromID(id)
	case PartitionCamera:
		t, err = CameraMatrixFromID(id)
	case PartitionMaterial:
		if id < materialApproxBase() {
			t, err = MaterialChannelFromID(id)
		} else {
			t, err = MaterialApproxFromID(id)
		}
	case PartitionLight:
		t, err = LightKindFromID(id)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

const tagSize = 4

// AppendTag appends the id of t as 4 little-endian bytes. Sentinels and values
// whose id decodes to something else than t are rejected and b is returned as is.
func AppendTag(b []byte, t Tag) ([]byte, error) {
	if t == nil {
		return b, fmt.Errorf("appending nil tag: %w", core.ErrUnsupportedType)
	}
	d, err := Decode(t.ID())
	if err != nil {
		return b, err
	}
	if d != t {
		return b, fmt.Errorf("%s %s encodes as %s %s: %w", t.Partition(), t, d.Partition(), d, core.ErrUnsupportedType)
	}
	return binary.LittleEndian.AppendUint32(b, uint32(t.ID())), nil
}

// ReadTag decodes the tag at the start of b and returns the remaining bytes.
func ReadTag(b []byte) (Tag, []byte, error) {
	if len(b) < tagSize {
		return nil, b, fmt.Errorf("reading tag from %d bytes: %w", len(b), core.ErrShortBuffer)
	}
	t, err := Decode(int32(binary.LittleEndian.Uint32(b)))
	if err != nil {
		return nil, b, err
	}
	return t, b[tagSize:], nil
}
