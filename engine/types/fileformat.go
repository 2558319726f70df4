package types

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/spl/engine/core"
)

// FileFormat identifies the on-disk format of a stored grid.
type FileFormat int32

const (
	FileFormatInvalid FileFormat = iota
	FileFormatPGM
	FileFormatPPM
	FileFormatRAW
	FileFormatPNG
	FileFormatTIF
	FileFormatNII
	FileFormatVTR
	fileFormatMax
)

var fileFormatExtensions = [fileFormatMax]string{"", "pgm", "ppm", "raw", "png", "tif", "nii", "vtr"}

func (f FileFormat) Valid() bool {
	return f > FileFormatInvalid && f < fileFormatMax
}

func (f FileFormat) Partition() Partition { return PartitionFileIO }

func (f FileFormat) ID() int32 {
	return PartitionFileIO.Base() + int32(f)
}

// Extension returns the file name extension without the leading dot.
func (f FileFormat) Extension() string {
	if !f.Valid() {
		return ""
	}
	return fileFormatExtensions[f]
}

func (f FileFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("fileformat(%d)", int32(f))
	}
	return fileFormatExtensions[f]
}

// FileFormatFromExtension accepts extensions with or without the leading dot,
// in any case.
func FileFormatFromExtension(ext string) (FileFormat, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for f := FileFormatPGM; f < fileFormatMax; f++ {
		if fileFormatExtensions[f] == ext {
			return f, nil
		}
	}
	return FileFormatInvalid, fmt.Errorf("file extension %q: %w", ext, core.ErrUnsupportedType)
}

func FileFormatFromID(id int32) (FileFormat, error) {
	n, ok := ordinal(id, PartitionFileIO.Base(), PartitionFileIO.Base()+int32(fileFormatMax))
	if !ok {
		return FileFormatInvalid, unsupported("file format", id)
	}
	return FileFormat(n), nil
}
