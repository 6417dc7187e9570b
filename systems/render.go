package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawTriangles takes 16 bit indices
const maxBatchVertices = math.MaxUint16 - 4

// renderBox is one solid box queued for drawing.
type renderBox struct {
	center mgl64.Vec3
	half   mgl64.Vec3
	color  color.RGBA
}

// renderFace is one visible, projected quad.
type renderFace struct {
	screen [4][2]float32
	color  color.RGBA
	depth  float64
}

// boxFace lists the corner signs of each face with its outward normal.
type boxFace struct {
	normal  mgl64.Vec3
	corners [4]mgl64.Vec3
	shade   float64
}

var boxFaces = [6]boxFace{
	{normal: mgl64.Vec3{0, 1, 0}, shade: 1, corners: [4]mgl64.Vec3{{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1}}},
	{normal: mgl64.Vec3{0, -1, 0}, shade: 0.45, corners: [4]mgl64.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, -1, -1}, {-1, -1, -1}}},
	{normal: mgl64.Vec3{1, 0, 0}, shade: 0.8, corners: [4]mgl64.Vec3{{1, -1, -1}, {1, -1, 1}, {1, 1, 1}, {1, 1, -1}}},
	{normal: mgl64.Vec3{-1, 0, 0}, shade: 0.7, corners: [4]mgl64.Vec3{{-1, -1, 1}, {-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1}}},
	{normal: mgl64.Vec3{0, 0, 1}, shade: 0.65, corners: [4]mgl64.Vec3{{1, -1, 1}, {-1, -1, 1}, {-1, 1, 1}, {1, 1, 1}}},
	{normal: mgl64.Vec3{0, 0, -1}, shade: 0.55, corners: [4]mgl64.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}}},
}

// Reusable buffers to avoid per frame allocations
var (
	renderBoxes  []renderBox
	renderFaces  []renderFace
	renderVerts  []ebiten.Vertex
	renderIdx    []uint16
	bodyRoles    = make(map[physics.BodyID]components.BoxRole)
	whiteImage   *ebiten.Image
	drawTriOpts  = &ebiten.DrawTrianglesOptions{}
	beaconHalf   = mgl64.Vec3{0.2, 1.25, 0.2}
	swordHalf    = mgl64.Vec3{0.08, 0.6, 0.08}
	goalHalfSize = mgl64.Vec3{0.6, 1.5, 0.6}
)

// DrawWorld renders the level as flat shaded boxes sorted back to front.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	session, ok := GetSession(e)
	if !ok {
		return
	}

	theme := levelTheme(session.LevelNumber)
	sky := rgb(theme.Sky)
	screen.Fill(sky)

	renderBoxes = collectBoxes(e, session, theme, renderBoxes[:0])

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := camera.Projection.Mul4(camera.View)
	renderFaces = renderFaces[:0]
	for _, b := range renderBoxes {
		renderFaces = appendBoxFaces(renderFaces, b, camera.Eye, vp, float64(w), float64(h), sky, theme.Fog)
	}

	// Painter's order: farthest first
	sort.Slice(renderFaces, func(i, j int) bool {
		return renderFaces[i].depth > renderFaces[j].depth
	})
	drawFaces(screen, renderFaces)
}

func levelTheme(number int) cfg.Theme {
	info, ok := cfg.LevelByNumber(number)
	if !ok {
		return cfg.ThemeFor("")
	}
	return cfg.ThemeFor(info.Theme)
}

func collectBoxes(e *ecs.ECS, session *components.SessionData, theme cfg.Theme, out []renderBox) []renderBox {
	clear(bodyRoles)
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		bodyRoles[body.ID] = body.Role
	})

	session.World.Each(func(b *physics.Body) {
		role, ok := bodyRoles[b.ID]
		if !ok || role == components.RolePlayer {
			return
		}
		out = append(out, renderBox{center: b.Position, half: b.HalfSize, color: roleColor(role, theme)})
	})

	components.KillZone.Each(e.World, func(entry *donburi.Entry) {
		kz := components.KillZone.Get(entry)
		out = append(out, renderBox{center: kz.Center, half: kz.HalfSize, color: rgb(theme.Hazard)})
	})
	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		cp := components.Checkpoint.Get(entry)
		c := cfg.Grey
		if cp.Activated {
			c = cfg.Gold
		}
		out = append(out, renderBox{center: cp.Position.Add(mgl64.Vec3{0, beaconHalf.Y(), 0}), half: beaconHalf, color: c})
	})
	components.Goal.Each(e.World, func(entry *donburi.Entry) {
		goal := components.Goal.Get(entry)
		half := goalHalfSize.Mul(goal.Scale)
		out = append(out, renderBox{center: goal.Position.Add(mgl64.Vec3{0, half.Y(), 0}), half: half, color: cfg.BrightGreen})
	})
	components.Pickup.Each(e.World, func(entry *donburi.Entry) {
		p := components.Pickup.Get(entry)
		if p.Collected {
			return
		}
		center := p.Position.Add(mgl64.Vec3{0, swordHalf.Y() + p.Offset, 0})
		out = append(out, renderBox{center: center, half: swordHalf, color: cfg.HUD.SwordColor})
	})
	mobHalf := mgl64.Vec3(cfg.Mob.Size).Mul(0.5)
	components.Mob.Each(e.World, func(entry *donburi.Entry) {
		mob := components.Mob.Get(entry)
		if !mob.Alive {
			return
		}
		out = append(out, renderBox{center: mob.Position, half: mobHalf, color: rgb(theme.Mob)})
	})
	return out
}

func roleColor(role components.BoxRole, theme cfg.Theme) color.RGBA {
	switch role {
	case components.RoleGround:
		return rgb(theme.Ground)
	case components.RoleMoving:
		return rgb(theme.Moving)
	case components.RoleHazard:
		return rgb(theme.Hazard)
	case components.RoleMob:
		return rgb(theme.Mob)
	}
	return rgb(theme.Static)
}

// appendBoxFaces projects the faces of b that point toward the eye. Faces
// reaching behind the near plane are dropped.
func appendBoxFaces(out []renderFace, b renderBox, eye mgl64.Vec3, vp mgl64.Mat4, w, h float64, fog color.RGBA, fogDist float64) []renderFace {
	for _, f := range boxFaces {
		faceCenter := b.center.Add(mulElem(f.normal, b.half))
		if f.normal.Dot(faceCenter.Sub(eye)) >= 0 {
			continue
		}

		var rf renderFace
		visible := true
		for i, c := range f.corners {
			x, y, ok := projectPoint(vp, b.center.Add(mulElem(c, b.half)), w, h)
			if !ok {
				visible = false
				break
			}
			rf.screen[i] = [2]float32{x, y}
		}
		if !visible {
			continue
		}

		rf.depth = faceCenter.Sub(eye).Len()
		rf.color = fogColor(shadeColor(b.color, f.shade), fog, rf.depth, fogDist)
		out = append(out, rf)
	}
	return out
}

// projectPoint maps a world point to screen pixels. ok is false for points
// at or behind the near plane.
func projectPoint(vp mgl64.Mat4, p mgl64.Vec3, w, h float64) (x, y float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= cfg.Camera.Near {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return float32((ndcX + 1) / 2 * w), float32((1 - ndcY) / 2 * h), true
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func shadeColor(c color.RGBA, shade float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * shade),
		G: uint8(float64(c.G) * shade),
		B: uint8(float64(c.B) * shade),
		A: c.A,
	}
}

// fogColor blends c toward the fog colour, fully fogged at fogDist.
func fogColor(c, fog color.RGBA, dist, fogDist float64) color.RGBA {
	if fogDist <= 0 {
		return c
	}
	t := math.Min(dist/fogDist, 1)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{R: lerp(c.R, fog.R), G: lerp(c.G, fog.G), B: lerp(c.B, fog.B), A: c.A}
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

func drawFaces(screen *ebiten.Image, faces []renderFace) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}

	renderVerts = renderVerts[:0]
	renderIdx = renderIdx[:0]
	for _, f := range faces {
		if len(renderVerts) >= maxBatchVertices {
			screen.DrawTriangles(renderVerts, renderIdx, whiteImage, drawTriOpts)
			renderVerts = renderVerts[:0]
			renderIdx = renderIdx[:0]
		}
		base := uint16(len(renderVerts))
		r, g, b, a := float32(f.color.R)/255, float32(f.color.G)/255, float32(f.color.B)/255, float32(f.color.A)/255
		for _, p := range f.screen {
			renderVerts = append(renderVerts, ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		renderIdx = append(renderIdx, base, base+1, base+2, base, base+2, base+3)
	}
	if len(renderIdx) > 0 {
		screen.DrawTriangles(renderVerts, renderIdx, whiteImage, drawTriOpts)
	}
}
