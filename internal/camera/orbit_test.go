package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitPosition(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{10, 0, -5}, 20)
	o.Angle = math.Pi / 2
	if got, want := o.Position(), (mgl32.Vec3{-10, 20, -5}); !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("position = %v, want %v", got, want)
	}
	o.Angle = 0
	if got, want := o.Position(), (mgl32.Vec3{10, 20, -25}); !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("position = %v, want %v", got, want)
	}
}

func TestOrbitLooksAtFocus(t *testing.T) {
	for _, angle := range []float32{0, 0.5, 2, 3.14, 4.5, 6.2} {
		o := NewOrbit(mgl32.Vec3{3, 1, 7}, 15)
		o.Angle = angle
		tr := o.DeriveTransform()
		want := o.Focus.Sub(tr.Position).Normalize()
		if got := tr.Forward(); !got.ApproxEqualThreshold(want, eps) {
			t.Fatalf("angle %v: forward %v, want %v", angle, got, want)
		}
		if right := tr.Rotation.Rotate(mgl32.Vec3{1, 0, 0}); math.Abs(float64(right.Y())) > eps {
			t.Fatalf("angle %v: right axis %v has roll", angle, right)
		}
	}
}

// TestOrbitZeroDistance verifies the degenerate pose keeps the limit orientation
func TestOrbitZeroDistance(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{1, 2, 3}, 0)
	o.Angle = 1.2
	tr := o.DeriveTransform()
	if tr.Position != o.Focus {
		t.Fatalf("position = %v, want focus %v", tr.Position, o.Focus)
	}
	o.Distance = 1
	near := o.DeriveTransform()
	if !tr.Forward().ApproxEqualThreshold(near.Forward(), eps) {
		t.Fatalf("zero-distance forward %v, look-at forward %v", tr.Forward(), near.Forward())
	}
}

func TestOrbitZoomClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	o := NewOrbit(mgl32.Vec3{}, 50)
	for i := 0; i < 5000; i++ {
		amount := float32(rng.ExpFloat64() * 40)
		if rng.Intn(2) == 0 {
			o.ApplyCommand(ZoomIn(amount))
		} else {
			o.ApplyCommand(ZoomOut(amount))
		}
		if o.Distance < MinZoom || o.Distance > MaxZoom {
			t.Fatalf("step %d: distance %v outside [%d, %d]", i, o.Distance, MinZoom, MaxZoom)
		}
	}
}

func TestOrbitZoomDirection(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{}, 10)
	o.ZoomIn(5)
	if o.Distance != 15 {
		t.Fatalf("ZoomIn(5) from 10 = %v, want 15", o.Distance)
	}
	o.ZoomOut(20)
	if o.Distance != 0 {
		t.Fatalf("ZoomOut(20) from 15 = %v, want 0", o.Distance)
	}
	o.ZoomIn(500)
	if o.Distance != MaxZoom {
		t.Fatalf("ZoomIn(500) = %v, want %d", o.Distance, MaxZoom)
	}
}

func TestOrbitAngleWrap(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	o := NewOrbit(mgl32.Vec3{}, 10)
	o.Sensitivity = 0.05
	for i := 0; i < 5000; i++ {
		o.ApplyCommand(Rotate(float32(rng.NormFloat64()*200), float32(rng.NormFloat64())))
		if o.Angle < 0 || o.Angle >= twoPi {
			t.Fatalf("step %d: angle %v outside [0, 2π)", i, o.Angle)
		}
	}
}

func TestOrbitRotateUsesHorizontalDelta(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{}, 10)
	o.Sensitivity = 0.01
	o.ApplyCommand(Rotate(10, 999))
	if math.Abs(float64(o.Angle-0.1)) > eps {
		t.Fatalf("angle = %v, want 0.1", o.Angle)
	}
}

func TestOrbitPanFollowsView(t *testing.T) {
	for _, angle := range []float32{0, 1, 2.5, 5} {
		o := NewOrbit(mgl32.Vec3{}, 10)
		o.Angle = angle
		view := o.DeriveTransform().Forward()
		o.ApplyCommand(MoveForward(0.1))
		moved := o.Focus.Normalize()
		flat := mgl32.Vec3{view.X(), 0, view.Z()}.Normalize()
		if !moved.ApproxEqualThreshold(flat, eps) {
			t.Fatalf("angle %v: panned along %v, view ground direction %v", angle, moved, flat)
		}
		if got := o.Focus.Len(); math.Abs(float64(got-o.Speed*0.1)) > eps {
			t.Fatalf("angle %v: panned %v, want %v", angle, got, o.Speed*0.1)
		}
	}
}

func TestOrbitPanLeftRight(t *testing.T) {
	o := NewOrbit(mgl32.Vec3{}, 10)
	o.ApplyCommand(MoveLeft(0.1))
	// camera at -Z looking +Z: left is +X
	if !o.Focus.ApproxEqualThreshold(mgl32.Vec3{10, 0, 0}, eps) {
		t.Fatalf("focus after left = %v", o.Focus)
	}
	o.ApplyCommand(MoveRight(0.1))
	o.ApplyCommand(MoveUp(1))
	if !o.Focus.ApproxEqualThreshold(mgl32.Vec3{}, eps) {
		t.Fatalf("focus after right = %v", o.Focus)
	}
}

// TestModesShareContract verifies callers drive both modes through Camera alike
func TestModesShareContract(t *testing.T) {
	frame := []Command{SetLook(true), SetSprint(true), MoveForward(0.016), Rotate(3, 1), ZoomIn(2)}
	for _, m := range []Mode{NewFreeFly(mgl32.Vec3{0, 50, 0}), NewOrbit(mgl32.Vec3{}, 30)} {
		cam := New(m)
		before := cam.DeriveTransform()
		cam.Update(frame)
		after := cam.DeriveTransform()
		if before.Position == after.Position {
			t.Errorf("%T: position unchanged", m)
		}
		if cam.Mode() != m {
			t.Errorf("%T: Mode() returned a different mode", m)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{-1, twoPi - 1},
		{twoPi + 0.5, 0.5},
		{-1e-9, 0},
		{50, float32(math.Mod(50, twoPi))},
		{-50, float32(math.Mod(-50, twoPi) + twoPi)},
	}
	for _, tt := range tests {
		got := wrapAngle(tt.in)
		if got < 0 || got >= twoPi || math.Abs(float64(got-tt.want)) > eps {
			t.Errorf("wrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCommandKindString(t *testing.T) {
	if got := CommandRotate.String(); got != "Rotate" {
		t.Errorf("String() = %q", got)
	}
	if got := CommandKind(99).String(); got != "Unknown" {
		t.Errorf("String() = %q", got)
	}
}
