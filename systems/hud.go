package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/fonts"
	"github.com/automoto/parkour/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	hudPanelWidth  = 230
	hudPanelHeight = 78
	hudLineHeight  = 18
)

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(e *ecs.ECS) *components.HUDData {
	if _, ok := components.HUD.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.HUD))
		components.HUD.SetValue(ent, components.HUDData{ShowDebug: cfg.Debug.Overlay})
	}
	ent, _ := components.HUD.First(e.World)
	return components.HUD.Get(ent)
}

// ShowBanner starts the checkpoint banner: fade in, hold, fade out.
func ShowBanner(e *ecs.ECS) {
	hold := float32(cfg.Trigger.BannerDuration)
	GetOrCreateHUD(e).Banner = gween.NewSequence(
		gween.New(0, 1, 0.2, ease.OutQuad),
		gween.New(1, 1, hold, ease.Linear),
		gween.New(1, 0, 0.4, ease.InQuad),
	)
}

// UpdateHUD advances the banner and toggles the debug overlay.
func UpdateHUD(e *ecs.ECS) {
	hud := GetOrCreateHUD(e)
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		hud.ShowDebug = !hud.ShowDebug
	}

	if hud.Banner == nil || !IsPlaying(e) {
		return
	}
	v, _, done := hud.Banner.Update(float32(stepDt()))
	hud.BannerAlpha = float64(v)
	if done {
		hud.Banner = nil
		hud.BannerAlpha = 0
	}
}

// DrawHUD renders the crosshair, the level badge and the run stats.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	game := GetOrCreateGame(e)
	if game.Phase == cfg.PhaseMenu {
		return
	}
	session, ok := GetSession(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawCrosshair(screen, math.NewVec2(width/2, height/2))

	margin := cfg.HUD.Margin
	vector.FillRect(screen, float32(margin), float32(margin), hudPanelWidth, hudPanelHeight, cfg.HUD.PanelColor, false)

	face := fonts.Regular.Get()
	x := int(margin) + 8
	y := int(margin) + hudLineHeight

	if info, ok := cfg.LevelByNumber(game.Level); ok {
		text.Draw(screen, fmt.Sprintf("Level %d: %s", info.Number, info.Name), face, x, y, cfg.HUD.TextColor)
	}
	y += hudLineHeight
	text.Draw(screen, "Time "+FormatTime(game.Elapsed), face, x, y, cfg.HUD.TextColor)
	y += hudLineHeight
	text.Draw(screen, fmt.Sprintf("Checkpoints %d/%d", len(game.Checkpoints), len(session.Level.Checkpoints)), face, x, y, cfg.HUD.TextColor)

	if game.HasSword {
		label := "Sword"
		if session.Signals.AttackedWithin(session.Clock, cfg.Mob.AttackWindow) {
			label = "Sword  *swing*"
		}
		text.Draw(screen, label, face, int(width)-int(margin)-110, int(margin)+hudLineHeight, cfg.HUD.SwordColor)
	}

	drawBanner(e, screen, width)
}

func drawCrosshair(screen *ebiten.Image, center math.Vec2) {
	s := cfg.HUD.CrosshairSize
	c := cfg.HUD.CrosshairColor
	cx, cy := float32(center.X), float32(center.Y)
	vector.FillRect(screen, cx-s, cy-1, 2*s, 2, c, false)
	vector.FillRect(screen, cx-1, cy-s, 2, 2*s, c, false)
}

func drawBanner(e *ecs.ECS, screen *ebiten.Image, width float64) {
	hud := GetOrCreateHUD(e)
	if hud.Banner == nil || hud.BannerAlpha <= 0 {
		return
	}
	face := fonts.Bold.Get()
	msg := cfg.HUD.BannerText
	c := cfg.HUD.BannerColor
	c.A = uint8(255 * hud.BannerAlpha)
	text.Draw(screen, msg, face, centerTextX(msg, face, width), 120, color.NRGBA(c))
}

// FormatTime renders seconds as mm:ss.t
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	tenths := int(seconds * 10)
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}

// DrawDebug shows the controller internals and a top down map of the
// trigger space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateHUD(e).ShowDebug {
		return
	}
	session, ok := GetSession(e)
	if !ok {
		return
	}

	face := fonts.Small.Get()
	x, y := int(cfg.HUD.Margin)+8, int(cfg.HUD.Margin)+hudPanelHeight+24
	line := func(format string, args ...any) {
		text.Draw(screen, fmt.Sprintf(format, args...), face, x, y, cfg.HUD.TextColor)
		y += 14
	}

	c := session.Controller
	pos, _ := session.World.Position(c.Body)
	vel, _ := session.World.Velocity(c.Body)
	contact := c.Contact()
	line("pos %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z())
	line("vel %.2f %.2f %.2f", vel.X(), vel.Y(), vel.Z())
	line("grounded %v  body %d  dist %.2f", contact.Grounded, contact.Body, contact.Distance)
	line("jump %v  buffer %.2f", c.Jump.State(), c.Jump.Buffer())
	line("yaw %.2f  pitch %.2f", c.Look.Yaw, c.Look.Pitch)
	line("phase %v  respawns %d", GetOrCreateGame(e).Phase, session.Respawn.Count())

	drawTriggerMap(e, screen)
}

// drawTriggerMap outlines every footprint in the trigger space, centred on
// the player.
func drawTriggerMap(e *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	const mapSize = 180.0
	const zoom = 0.12 // screen pixels per space unit
	width := float64(screen.Bounds().Dx())
	ox := width - mapSize - cfg.HUD.Margin
	oy := cfg.HUD.Margin + 40
	vector.FillRect(screen, float32(ox), float32(oy), mapSize, mapSize, cfg.HUD.PanelColor, false)

	var center math.Vec2
	if playerEntry, ok := tags.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry)
		center = math.NewVec2(obj.X+obj.W/2, obj.Y+obj.H/2)
	}

	for _, obj := range space.Objects() {
		x := ox + mapSize/2 + (obj.X-center.X)*zoom
		y := oy + mapSize/2 + (obj.Y-center.Y)*zoom
		w, h := obj.W*zoom, obj.H*zoom
		if x+w < ox || x > ox+mapSize || y+h < oy || y > oy+mapSize {
			continue
		}

		c := cfg.Cyan
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.HUD.PlayerMarkColor
		case obj.HasTags(tags.ResolvMob):
			c = cfg.Red
		case obj.HasTags(tags.ResolvKillZone):
			c = cfg.Orange
		case obj.HasTags(tags.ResolvGoal):
			c = cfg.BrightGreen
		case obj.HasTags(tags.ResolvCheckpoint):
			c = cfg.Gold
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
	}
}
