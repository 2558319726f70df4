package components

import (
	"fmt"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/math"
	"github.com/spaghettifunk/spl/engine/types"
)

/**
 * @brief Represents a camera that can be used for
 * a variety of things, especially rendering. It holds one
 * matrix per types.CameraMatrix role.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the model-view matrix is recalculated when needed.
	 */
	Position math.Vector3f
	/** @brief The point the camera looks at. Use SetTarget(). */
	Target math.Vector3f
	/** @brief The up direction of the camera. Use SetUp(). */
	Up math.Vector3f
	/** @brief Internal flag used to determine when the model-view matrix needs to be rebuilt. */
	IsDirty bool

	projection types.CameraMatrix
	matrices   [types.CameraMatrixCount]math.Matrix4f
}

/** @brief The name of the default camera. */
const DefaultCameraName string = "default"

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset puts the camera at the origin looking down -z with every matrix set to
// identity and the orthographic projection selected.
func (c *Camera) Reset() {
	c.Position = math.Vector3f{}
	c.Target = math.Vector3f{0, 0, -1}
	c.Up = math.Vector3f{0, 1, 0}
	for i := range c.matrices {
		c.matrices[i] = math.Identity4[float32]()
	}
	c.projection = types.CameraMatrixOrtho
	c.IsDirty = true
}

func (c *Camera) SetPosition(position math.Vector3f) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) SetTarget(target math.Vector3f) {
	c.Target = target
	c.IsDirty = true
}

func (c *Camera) SetUp(up math.Vector3f) {
	c.Up = up
	c.IsDirty = true
}

func (c *Camera) slot(role types.CameraMatrix) *math.Matrix4f {
	return &c.matrices[role-1]
}

// ModelView returns the model-view matrix, rebuilding it from the position,
// target and up vectors when one of them changed.
func (c *Camera) ModelView() math.Matrix4f {
	if c.IsDirty {
		*c.slot(types.CameraMatrixModelView) = math.LookAt(c.Position, c.Target, c.Up)
		c.IsDirty = false
	}
	return *c.slot(types.CameraMatrixModelView)
}

func (c *Camera) SetOrthographic(left, right, bottom, top, near, far float32) {
	*c.slot(types.CameraMatrixOrtho) = math.Orthographic(left, right, bottom, top, near, far)
}

func (c *Camera) SetFrustum(left, right, bottom, top, near, far float32) {
	*c.slot(types.CameraMatrixFrustum) = math.Frustum(left, right, bottom, top, near, far)
}

// SetPerspective stores a symmetric frustum built from a vertical field of view.
func (c *Camera) SetPerspective(fov, aspect, near, far float32) {
	*c.slot(types.CameraMatrixFrustum) = math.Perspective(fov, aspect, near, far)
}

func (c *Camera) SetViewport(x, y, width, height float32) {
	*c.slot(types.CameraMatrixViewport) = math.Viewport(x, y, width, height)
}

// Matrix returns the matrix held for role.
func (c *Camera) Matrix(role types.CameraMatrix) (math.Matrix4f, error) {
	if !role.Valid() {
		return math.Matrix4f{}, fmt.Errorf("camera matrix %s: %w", role, core.ErrUnsupportedType)
	}
	if role == types.CameraMatrixModelView {
		return c.ModelView(), nil
	}
	return *c.slot(role), nil
}

// UseProjection selects which projection Project applies.
func (c *Camera) UseProjection(role types.CameraMatrix) error {
	if !role.IsProjection() {
		return fmt.Errorf("camera matrix %s is not a projection: %w", role, core.ErrUnsupportedType)
	}
	c.projection = role
	return nil
}

func (c *Camera) Projection() types.CameraMatrix {
	return c.projection
}

// Project maps a world point to window coordinates. ok is false when the point
// lies on the camera plane and has no projection.
func (c *Camera) Project(point math.Vector3f) (window math.Vector3f, ok bool) {
	clip := c.slot(c.projection).Mul(c.ModelView()).MulVector(point.Extend(1))
	if clip.W() == 0 {
		return math.Vector3f{}, false
	}
	ndc := math.NewVector3FromVector4(clip).DivScalar(clip.W())
	return c.slot(types.CameraMatrixViewport).TransformPoint(ndc), true
}

// Unproject maps window coordinates back into the world, undoing Project.
func (c *Camera) Unproject(window math.Vector3f) (point math.Vector3f, ok bool) {
	viewport, ok := math.Inverse4(*c.slot(types.CameraMatrixViewport))
	if !ok {
		core.LogWarn("camera: cannot unproject %s, the viewport is singular", window)
		return math.Vector3f{}, false
	}
	inv, ok := math.Inverse4(c.slot(c.projection).Mul(c.ModelView()))
	if !ok {
		core.LogWarn("camera: cannot unproject %s, the %s projection is singular", window, c.projection)
		return math.Vector3f{}, false
	}
	world := inv.MulVector(viewport.TransformPoint(window).Extend(1))
	if world.W() == 0 {
		return math.Vector3f{}, false
	}
	return math.NewVector3FromVector4(world).DivScalar(world.W()), true
}
