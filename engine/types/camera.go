package types

import "fmt"

// CameraMatrix names the role a 4x4 matrix plays inside a camera. The role is
// metadata only: it never changes how the matrix itself behaves.
type CameraMatrix int32

const (
	CameraMatrixInvalid CameraMatrix = iota
	CameraMatrixModelView
	// orthographic projection
	CameraMatrixOrtho
	// perspective projection
	CameraMatrixFrustum
	CameraMatrixViewport
	cameraMatrixMax
)

// CameraMatrixCount is the number of valid camera matrix roles.
const CameraMatrixCount = int(cameraMatrixMax) - 1

var cameraMatrixNames = [cameraMatrixMax]string{"invalid", "modelview", "ortho", "frustum", "viewport"}

func (c CameraMatrix) Valid() bool {
	return c > CameraMatrixInvalid && c < cameraMatrixMax
}

func (c CameraMatrix) Partition() Partition { return PartitionCamera }

func (c CameraMatrix) ID() int32 {
	return PartitionCamera.Base() + int32(c)
}

func (c CameraMatrix) String() string {
	if c < CameraMatrixInvalid || c >= cameraMatrixMax {
		return fmt.Sprintf("cameramatrix(%d)", int32(c))
	}
	return cameraMatrixNames[c]
}

// IsProjection reports whether c is one of the two projection roles.
func (c CameraMatrix) IsProjection() bool {
	return c == CameraMatrixOrtho || c == CameraMatrixFrustum
}

func CameraMatrixFromID(id int32) (CameraMatrix, error) {
	n, ok := ordinal(id, PartitionCamera.Base(), PartitionCamera.Base()+int32(cameraMatrixMax))
	if !ok {
		return CameraMatrixInvalid, unsupported("camera matrix", id)
	}
	return CameraMatrix(n), nil
}
