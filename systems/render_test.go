package systems

import (
	"image/color"
	"math"
	"testing"

	cfg "github.com/automoto/parkour/config"
	"github.com/go-gl/mathgl/mgl64"
)

func testViewProjection() mgl64.Mat4 {
	view := mgl64.LookAtV(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(cfg.Camera.FOV, 16.0/9.0, cfg.Camera.Near, cfg.Camera.Far)
	return proj.Mul4(view)
}

func TestProjectPoint(t *testing.T) {
	vp := testViewProjection()

	x, y, ok := projectPoint(vp, mgl64.Vec3{0, 0, -5}, 960, 540)
	if !ok || math.Abs(float64(x)-480) > 1e-3 || math.Abs(float64(y)-270) > 1e-3 {
		t.Fatalf("point ahead = (%v, %v, %v), want the screen centre", x, y, ok)
	}

	_, up, _ := projectPoint(vp, mgl64.Vec3{0, 1, -5}, 960, 540)
	if up >= 270 {
		t.Fatalf("point above the eye projected to y = %v, want above the centre", up)
	}

	if _, _, ok := projectPoint(vp, mgl64.Vec3{0, 0, 5}, 960, 540); ok {
		t.Fatal("point behind the eye should not project")
	}
}

func TestAppendBoxFaces_CullsBackFaces(t *testing.T) {
	vp := testViewProjection()
	box := renderBox{center: mgl64.Vec3{0, 0, -10}, half: mgl64.Vec3{1, 1, 1}, color: cfg.Grey}

	faces := appendBoxFaces(nil, box, mgl64.Vec3{}, vp, 960, 540, color.RGBA{}, 0)
	if len(faces) != 1 {
		t.Fatalf("visible faces = %d, want only the front face", len(faces))
	}
	if faces[0].depth != 9 {
		t.Fatalf("depth = %v, want 9", faces[0].depth)
	}
}

func TestFogColor(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	fog := color.RGBA{R: 0, G: 0, B: 200, A: 255}

	if got := fogColor(c, fog, 0, 100); got != c {
		t.Fatalf("no distance: %v", got)
	}
	if got := fogColor(c, fog, 250, 100); got != (color.RGBA{R: 0, G: 0, B: 200, A: 255}) {
		t.Fatalf("past the fog distance: %v", got)
	}
	if got := fogColor(c, fog, 50, 0); got != c {
		t.Fatalf("fog disabled: %v", got)
	}
}
