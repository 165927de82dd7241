package components

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestCamera() *CameraData {
	return &CameraData{FOV: 70, Near: 0.1, Far: 500, EyeHeight: 1.7}
}

func TestCameraForward(t *testing.T) {
	tests := []struct {
		yaw, pitch float64
		want       mgl64.Vec3
	}{
		{0, 0, mgl64.Vec3{0, 0, -1}},
		{90, 0, mgl64.Vec3{1, 0, 0}},
		{180, 0, mgl64.Vec3{0, 0, 1}},
		{0, 90, mgl64.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		c := &CameraData{Yaw: tt.yaw, Pitch: tt.pitch}
		if got := c.Forward(); !got.ApproxEqualThreshold(tt.want, 1e-9) {
			t.Errorf("Forward(yaw=%v, pitch=%v) = %v, want %v", tt.yaw, tt.pitch, got, tt.want)
		}
	}
}

func TestCameraEye(t *testing.T) {
	c := newTestCamera()
	if got := c.Eye(mgl64.Vec3{1, 2, 3}); !got.ApproxEqualThreshold(mgl64.Vec3{1, 3.7, 3}, 1e-9) {
		t.Errorf("Eye = %v", got)
	}
}

func TestCameraProject(t *testing.T) {
	c := newTestCamera()
	const w, h = 640, 360

	ahead := c.Project(mgl64.Vec3{}, mgl64.Vec3{0, 1.7, -10}, w, h)
	if math.Abs(ahead.X-320) > 1e-9 || math.Abs(ahead.Y-180) > 1e-9 {
		t.Errorf("point straight ahead projected to (%v, %v), want centre", ahead.X, ahead.Y)
	}
	if math.Abs(ahead.Depth-10) > 1e-9 {
		t.Errorf("depth = %v, want 10", ahead.Depth)
	}

	right := c.Project(mgl64.Vec3{}, mgl64.Vec3{2, 1.7, -10}, w, h)
	if right.X <= 320 {
		t.Errorf("point to the right projected to x=%v", right.X)
	}
	above := c.Project(mgl64.Vec3{}, mgl64.Vec3{0, 4, -10}, w, h)
	if above.Y >= 180 {
		t.Errorf("point above projected to y=%v", above.Y)
	}

	behind := c.Project(mgl64.Vec3{}, mgl64.Vec3{2, 1.7, 10}, w, h)
	if behind.Depth >= 0 {
		t.Errorf("point behind has depth %v, want negative", behind.Depth)
	}
	if behind.X >= 320 {
		t.Errorf("point behind-right should mirror to the left, got x=%v", behind.X)
	}
}

func TestCameraProjectFollowsYaw(t *testing.T) {
	c := newTestCamera()
	c.Yaw = 90 // looking down +X

	p := c.Project(mgl64.Vec3{}, mgl64.Vec3{10, 1.7, 0}, 640, 360)
	if math.Abs(p.X-320) > 1e-6 || p.Depth <= 0 {
		t.Errorf("point ahead after turning projected to %+v", p)
	}
}

func TestCameraProjectDegenerate(t *testing.T) {
	c := newTestCamera()

	if got := c.Project(mgl64.Vec3{}, mgl64.Vec3{0, 0, -5}, 0, 360); got != (Projection{}) {
		t.Errorf("empty canvas projection = %+v, want zero", got)
	}

	// On the camera plane.
	got := c.Project(mgl64.Vec3{}, mgl64.Vec3{10, 1.7, 0}, 640, 360)
	if got != (Projection{X: 320, Y: 180}) {
		t.Errorf("camera plane projection = %+v, want centre with zero depth", got)
	}
}

func TestHealthIsDepleted(t *testing.T) {
	tests := []struct {
		current float64
		want    bool
	}{
		{100, false},
		{0.5, false},
		{0, true},
		{-3, true},
	}
	for _, tt := range tests {
		h := HealthData{Current: tt.current, Max: 100}
		if got := h.IsDepleted(); got != tt.want {
			t.Errorf("IsDepleted(%v) = %v, want %v", tt.current, got, tt.want)
		}
	}
}
