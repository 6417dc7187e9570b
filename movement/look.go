package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Look is the camera orientation in radians. Yaw 0 faces -Z, positive yaw
// turns left. Pitch is positive looking up.
type Look struct {
	Yaw   float64
	Pitch float64
}

// Apply turns the camera by a pointer delta. Pitch never leaves
// [-pitchLimit, pitchLimit].
func (l *Look) Apply(dx, dy, sensitivity, pitchLimit float64) {
	l.Yaw -= dx * sensitivity
	l.Pitch -= dy * sensitivity
	l.Pitch = math.Max(-pitchLimit, math.Min(pitchLimit, l.Pitch))
}

// Forward is the unit facing direction on the XZ plane.
func (l Look) Forward() mgl64.Vec3 {
	sin, cos := math.Sincos(l.Yaw)
	return mgl64.Vec3{-sin, 0, -cos}
}

// Direction is the full view direction including pitch.
func (l Look) Direction() mgl64.Vec3 {
	sy, cy := math.Sincos(l.Yaw)
	sp, cp := math.Sincos(l.Pitch)
	return mgl64.Vec3{-sy * cp, sp, -cy * cp}
}
