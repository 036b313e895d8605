package types

import (
	"math"
	"testing"
)

func TestVec3Ops(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, 5, 6)

	if got := a.Add(b); got != XYZ(5, 7, 9) {
		t.Fatalf("expected Add to return (5, 7, 9); got %v", got)
	}
	if got := b.Sub(a); got != XYZ(3, 3, 3) {
		t.Fatalf("expected Sub to return (3, 3, 3); got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("expected Dot to return 32; got %f", got)
	}
	if got := XYZ(1, 0, 0).Cross(XYZ(0, 1, 0)); got != XYZ(0, 0, 1) {
		t.Fatalf("expected X cross Y to be Z; got %v", got)
	}
	if got := XYZ(0, 0, 0).Normalize(); got != (Vec3{}) {
		t.Fatalf("expected normalized zero vector to stay zero; got %v", got)
	}
	if got := XYZ(3, 0, 4).Normalize().Len(); math.Abs(float64(got-1)) > 1e-6 {
		t.Fatalf("expected normalized vector to have unit length; got %f", got)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := XYZ(0, 2, 3)
	view := LookAtV(eye, XYZ(0, 0.5, 0), XYZ(0, 1, 0))

	got := view.Mul4x1(eye.Vec4(1)).Vec3()
	if !got.ApproxEqual(Vec3{}, 1e-5) {
		t.Fatalf("expected eye to map to the view space origin; got %v", got)
	}
}

func TestInverseViewProjection(t *testing.T) {
	view := LookAtV(XYZ(1, 2, 3), XYZ(0, 0, 0), XYZ(0, 1, 0))
	proj := Perspective4(60, 4.0/3.0, 1, 2)
	viewProj := proj.Mul4(view)
	ident := viewProj.Mul4(viewProj.Inv())

	exp := Ident4()
	for i := range ident {
		if math.Abs(float64(ident[i]-exp[i])) > 1e-4 {
			t.Fatalf("expected M * inv(M) to be identity; element %d is %f", i, ident[i])
		}
	}
}
