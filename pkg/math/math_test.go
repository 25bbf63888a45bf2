package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"identity", Identity(), Vec3{2, 3, 4}, Vec3{2, 3, 4}},
		{"translate", Translate(Vec3{X: 10, Y: 20, Z: 30}), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(Vec3{X: 2, Y: 2, Z: 2}), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(Degree(90).Radians())
	got := m.TransformPoint(Vec3{X: 1})

	// (1,0,0) turns to (0,0,-1)
	if !near(got, Vec3{Z: -1}) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestQuatMatchesRotateY(t *testing.T) {
	angle := Degree(37).Radians()
	a := QuatFromAxisAngle(Vec3{Y: 1}, angle).ToMat4()
	b := RotateY(angle)
	for i := range a {
		if abs(a[i]-b[i]) > 1e-5 {
			t.Fatalf("element %d: quat %f, RotateY %f", i, a[i], b[i])
		}
	}
}

func TestQuatFromEulerSingleAxis(t *testing.T) {
	q := QuatFromEuler(0, Degree(90).Radians(), 0)
	got := q.ToMat4().TransformPoint(Vec3{X: 1})
	if !near(got, Vec3{Z: -1}) {
		t.Errorf("Euler Y 90: got %v", got)
	}
}

func TestCompose(t *testing.T) {
	m := Compose(Vec3{X: 10}, QuatIdentity(), Vec3{X: 2, Y: 2, Z: 2})
	got := m.TransformPoint(Vec3{X: 1, Y: 1, Z: 1})
	want := Vec3{X: 12, Y: 2, Z: 2}
	if got != want {
		t.Errorf("Compose: got %v, want %v", got, want)
	}
}

func TestInverse(t *testing.T) {
	m := Compose(Vec3{X: 1, Y: -2, Z: 3}, QuatFromEuler(0.3, 0.5, 0.1), Vec3{X: 2, Y: 1, Z: 0.5})
	p := Vec3{X: 4, Y: 5, Z: 6}
	back := m.Inverse().TransformPoint(m.TransformPoint(p))
	if !near(back, p) {
		t.Errorf("inverse round trip: got %v, want %v", back, p)
	}
}

func TestInvertSingular(t *testing.T) {
	if _, ok := Scale(Vec3{X: 1, Y: 0, Z: 1}).Invert(); ok {
		t.Error("Invert of a flattening scale should fail")
	}
	if got := (Mat4{}).Inverse(); got != Identity() {
		t.Errorf("Inverse of zero matrix = %v, want identity", got)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{X: 5, Y: 5, Z: 5}).Mul(Scale(Vec3{X: 2, Y: 2, Z: 2}))
	if got, want := m.TransformDirection(Vec3{X: 1}), (Vec3{X: 2}); got != want {
		t.Errorf("TransformDirection = %v, want %v", got, want)
	}
}

func TestTransformPointIgnoresW(t *testing.T) {
	m := Identity()
	m[15] = 2 // w becomes 2 for every point
	if got, want := m.TransformPoint(Vec3{X: 4, Y: 6, Z: 8}), (Vec3{X: 4, Y: 6, Z: 8}); got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMulOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(Vec3{X: 1}).Mul(Scale(Vec3{X: 3, Y: 3, Z: 3}))
	if got, want := m.TransformPoint(Vec3{X: 1}), (Vec3{X: 4}); got != want {
		t.Errorf("T*S applied to (1,0,0) = %v, want %v", got, want)
	}
	if m.At(0, 3) != 1 || m.At(0, 0) != 3 {
		t.Errorf("At: got translation %v, scale %v", m.At(0, 3), m.At(0, 0))
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Degree(45).Radians(), 1.0, 0.1, 100.0)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -1, -2}
	if got, want := a.Min(b), (Vec3{1, -1, -2}); got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{3, 5, -2}); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestAngleConversion(t *testing.T) {
	r := Degree(180).Radians()
	if abs(float32(r)-math.Pi) > 1e-6 {
		t.Errorf("180 degrees = %v rad, want pi", r)
	}
	if d := Radian(math.Pi / 2).Degrees(); abs(float32(d)-90) > 1e-4 {
		t.Errorf("pi/2 = %v degrees, want 90", d)
	}
}

func near(a, b Vec3) bool {
	return abs(a.X-b.X) < 1e-4 && abs(a.Y-b.Y) < 1e-4 && abs(a.Z-b.Z) < 1e-4
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
