package components

import (
	gomath "math"
	"testing"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/math"
	"github.com/spaghettifunk/spl/engine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera() *Camera {
	c := NewCamera()
	c.SetPosition(math.Vector3f{0, 0, 5})
	c.SetTarget(math.Vector3f{})
	c.SetOrthographic(-1, 1, -1, 1, 0.1, 100)
	c.SetPerspective(gomath.Pi/2, 1, 1, 100)
	c.SetViewport(0, 0, 100, 100)
	return c
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.True(t, c.IsDirty)
	assert.Equal(t, types.CameraMatrixOrtho, c.Projection())

	for _, role := range []types.CameraMatrix{
		types.CameraMatrixModelView,
		types.CameraMatrixOrtho,
		types.CameraMatrixFrustum,
		types.CameraMatrixViewport,
	} {
		mt, err := c.Matrix(role)
		require.NoError(t, err, role.String())
		assert.True(t, mt.IsIdentity(), role.String())
	}
	assert.False(t, c.IsDirty)
}

func TestCameraMatrixRoles(t *testing.T) {
	c := newTestCamera()

	_, err := c.Matrix(types.CameraMatrixInvalid)
	assert.ErrorIs(t, err, core.ErrUnsupportedType)
	_, err = c.Matrix(types.CameraMatrix(42))
	assert.ErrorIs(t, err, core.ErrUnsupportedType)

	assert.ErrorIs(t, c.UseProjection(types.CameraMatrixViewport), core.ErrUnsupportedType)
	assert.ErrorIs(t, c.UseProjection(types.CameraMatrixModelView), core.ErrUnsupportedType)
	require.NoError(t, c.UseProjection(types.CameraMatrixFrustum))
	assert.Equal(t, types.CameraMatrixFrustum, c.Projection())

	frustum, err := c.Matrix(types.CameraMatrixFrustum)
	require.NoError(t, err)
	assert.Equal(t, math.Perspective[float32](gomath.Pi/2, 1, 1, 100), frustum)

	ortho, err := c.Matrix(types.CameraMatrixOrtho)
	require.NoError(t, err)
	assert.NotEqual(t, ortho, frustum)
}

func TestCameraModelView(t *testing.T) {
	c := newTestCamera()
	mv := c.ModelView()
	assert.True(t, mv.TransformPoint(math.Vector3f{}).Compare(math.Vector3f{0, 0, -5}, 1e-6))

	c.SetPosition(math.Vector3f{0, 0, 10})
	assert.True(t, c.IsDirty)
	mv = c.ModelView()
	assert.False(t, c.IsDirty)
	assert.True(t, mv.TransformPoint(math.Vector3f{}).Compare(math.Vector3f{0, 0, -10}, 1e-6))

	c.Reset()
	assert.True(t, c.ModelView().IsIdentity())
}

func TestCameraProject(t *testing.T) {
	c := newTestCamera()

	t.Run("orthographic", func(t *testing.T) {
		w, ok := c.Project(math.Vector3f{})
		require.True(t, ok)
		assert.InDelta(t, 50, w.X(), 1e-4)
		assert.InDelta(t, 50, w.Y(), 1e-4)

		w, ok = c.Project(math.Vector3f{1, 1, 0})
		require.True(t, ok)
		assert.InDelta(t, 100, w.X(), 1e-4)
		assert.InDelta(t, 100, w.Y(), 1e-4)
	})

	t.Run("perspective", func(t *testing.T) {
		require.NoError(t, c.UseProjection(types.CameraMatrixFrustum))
		w, ok := c.Project(math.Vector3f{1, 1, 0})
		require.True(t, ok)
		assert.InDelta(t, 60, w.X(), 1e-3)
		assert.InDelta(t, 60, w.Y(), 1e-3)

		_, ok = c.Project(math.Vector3f{1, 0, 5})
		assert.False(t, ok, "points on the camera plane have no projection")
	})

	t.Run("unproject", func(t *testing.T) {
		for _, role := range []types.CameraMatrix{types.CameraMatrixOrtho, types.CameraMatrixFrustum} {
			require.NoError(t, c.UseProjection(role))
			p := math.Vector3f{0.5, -0.25, 1}
			w, ok := c.Project(p)
			require.True(t, ok)
			back, ok := c.Unproject(w)
			require.True(t, ok)
			assert.True(t, back.Compare(p, 1e-3), "%s: %s != %s", role, back, p)
		}
	})
}
