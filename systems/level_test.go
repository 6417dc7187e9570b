package systems

import (
	"testing"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	prev := setCursorMode
	setCursorMode = func(ebiten.CursorModeType) {}
	t.Cleanup(func() { setCursorMode = prev })
	useMemoryStore(t)

	e := ecs.NewECS(donburi.NewWorld())
	SubscribeGameEvents(e)
	return e
}

func startLevel(t *testing.T, e *ecs.ECS, level int) *components.SessionData {
	t.Helper()
	if err := StartRun(e, level, false); err != nil {
		t.Fatalf("StartRun(%d): %v", level, err)
	}
	session, ok := GetSession(e)
	if !ok {
		t.Fatal("no session after StartRun")
	}
	return session
}

// teleport moves the player body and its trigger footprint.
func teleport(e *ecs.ECS, session *components.SessionData, p mgl64.Vec3) {
	session.World.SetPosition(session.Signals.Body(), p)
	UpdateObjects(e)
}

func count(e *ecs.ECS, q interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	q.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestStartRun_BuildsLevel(t *testing.T) {
	e := newTestECS(t)
	session := startLevel(t, e, 1)

	if game := GetOrCreateGame(e); game.Phase != cfg.PhasePlaying || game.Level != 1 {
		t.Fatalf("game = %+v", game)
	}
	UpdateMovingPlatforms(e)
	if got := session.Platforms.Len(); got != 2 {
		t.Fatalf("registered platforms = %d, want 2", got)
	}
	pos, ok := PlayerPosition(e)
	if !ok || !pos.ApproxEqual(mgl64.Vec3(cfg.Player.Spawn)) {
		t.Fatalf("player at %v, want the spawn", pos)
	}
	if p := LoadProgress(); p.Level != 1 || p.HasCheckpoint {
		t.Fatalf("saved progress = %+v", p)
	}
}

func TestLoadLevel_ReplacesPrevious(t *testing.T) {
	e := newTestECS(t)
	startLevel(t, e, 1)

	if err := LoadLevel(e, 2); err != nil {
		t.Fatal(err)
	}
	if n := count(e, components.Session); n != 1 {
		t.Fatalf("sessions = %d, want 1", n)
	}
	if n := count(e, tags.Player); n != 1 {
		t.Fatalf("players = %d, want 1", n)
	}
	if n := count(e, tags.KillZone); n != 3 {
		t.Fatalf("kill zones = %d, want level 2's three", n)
	}
	if session, _ := GetSession(e); session.LevelNumber != 2 {
		t.Fatalf("session level = %d", session.LevelNumber)
	}
}

func TestLoadLevel_Unknown(t *testing.T) {
	e := newTestECS(t)
	if err := LoadLevel(e, 99); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestTeardownLevel(t *testing.T) {
	e := newTestECS(t)
	session := startLevel(t, e, 1)

	TeardownLevel(e)
	if session.Platforms.Len() != 0 {
		t.Fatalf("platforms still registered: %d", session.Platforms.Len())
	}
	if _, ok := GetSession(e); ok {
		t.Fatal("session survived teardown")
	}
	if _, ok := PlayerPosition(e); ok {
		t.Fatal("player survived teardown")
	}
}

func TestCheckpoint_ActivatesOnce(t *testing.T) {
	e := newTestECS(t)
	session := startLevel(t, e, 1)

	entry, ok := components.Checkpoint.First(e.World)
	if !ok {
		t.Fatal("level 1 has no checkpoint")
	}
	cp := components.Checkpoint.Get(entry)

	teleport(e, session, cp.Position)
	UpdateCheckpoints(e)

	game := GetOrCreateGame(e)
	if !cp.Activated || len(game.Checkpoints) != 1 || game.Checkpoints[0] != cp.ID {
		t.Fatalf("checkpoint %+v, reached %v", cp, game.Checkpoints)
	}
	wantPoint := cp.Position.Add(mgl64.Vec3{0, cfg.Respawn.Checkpoint, 0})
	if !session.Respawn.Point().ApproxEqual(wantPoint) {
		t.Fatalf("respawn point = %v, want %v", session.Respawn.Point(), wantPoint)
	}
	wantY := cp.Position.Y() + cfg.Respawn.Checkpoint + cfg.Respawn.Offset
	if got := session.Respawn.Target().Y(); got != wantY {
		t.Fatalf("respawn target y = %v, want %v", got, wantY)
	}
	if p := LoadProgress(); !p.HasCheckpoint || p.Checkpoint != cp.ID || p.Level != 1 {
		t.Fatalf("saved progress = %+v", p)
	}

	ProcessEvents(e)
	if GetOrCreateHUD(e).Banner == nil {
		t.Fatal("checkpoint banner not shown")
	}

	UpdateCheckpoints(e)
	if len(game.Checkpoints) != 1 {
		t.Fatalf("checkpoint counted twice: %v", game.Checkpoints)
	}
}

func TestStartRun_ContinueRestoresCheckpoint(t *testing.T) {
	e := newTestECS(t)
	session := startLevel(t, e, 1)
	entry, _ := components.Checkpoint.First(e.World)
	cp := components.Checkpoint.Get(entry)
	teleport(e, session, cp.Position)
	UpdateCheckpoints(e)

	resumed := ecs.NewECS(donburi.NewWorld())
	if err := StartRun(resumed, 1, true); err != nil {
		t.Fatal(err)
	}
	session, _ = GetSession(resumed)
	if session.Respawn.Count() != 1 {
		t.Fatalf("respawns = %d, want the restore", session.Respawn.Count())
	}
	pos, _ := PlayerPosition(resumed)
	want := cp.Position.Add(mgl64.Vec3{0, cfg.Respawn.Checkpoint + cfg.Respawn.Offset, 0})
	if !pos.ApproxEqual(want) {
		t.Fatalf("player at %v, want %v above the checkpoint", pos, want)
	}
	if !GetOrCreateGame(resumed).HasCheckpoint(cp.ID) {
		t.Fatal("restored checkpoint not marked reached")
	}

	// A fresh start on the same level forgets the checkpoint
	fresh := ecs.NewECS(donburi.NewWorld())
	if err := StartRun(fresh, 1, false); err != nil {
		t.Fatal(err)
	}
	if LoadProgress().HasCheckpoint {
		t.Fatal("new game kept the old checkpoint")
	}
}

func TestKillZone_FiresOncePerEntry(t *testing.T) {
	e := newTestECS(t)
	session := startLevel(t, e, 2)

	entry, ok := tags.KillZone.First(e.World)
	if !ok {
		t.Fatal("level 2 has no kill zone")
	}
	zone := components.KillZone.Get(entry)

	teleport(e, session, zone.Center)
	UpdateKillZones(e)
	if session.Respawn.Count() != 1 {
		t.Fatalf("respawns = %d, want 1", session.Respawn.Count())
	}

	// Back inside before any sample outside
	teleport(e, session, zone.Center)
	UpdateKillZones(e)
	if session.Respawn.Count() != 1 {
		t.Fatalf("re-entry without leaving fired: %d", session.Respawn.Count())
	}

	teleport(e, session, mgl64.Vec3(cfg.Player.Spawn))
	UpdateKillZones(e)
	teleport(e, session, zone.Center)
	UpdateKillZones(e)
	if session.Respawn.Count() != 2 {
		t.Fatalf("respawns = %d after a fresh entry, want 2", session.Respawn.Count())
	}
}

func TestMob_TouchRespawnsSwordKills(t *testing.T) {
	e := newTestECS(t)
	session := startLevel(t, e, 2)

	entry, ok := tags.Mob.First(e.World)
	if !ok {
		t.Fatal("level 2 has no mob")
	}
	mob := components.Mob.Get(entry)
	id := mob.ID

	teleport(e, session, mob.Position)
	UpdateMobContact(e)
	if session.Respawn.Count() != 1 {
		t.Fatalf("touch respawns = %d, want 1", session.Respawn.Count())
	}

	game := GetOrCreateGame(e)
	PickUpSword(game)
	teleport(e, session, mob.Position)
	session.Signals.PublishForward(mgl64.Vec3{0, 0, 1})
	session.Signals.PublishAttack(session.Clock)
	UpdateMobContact(e)
	if mob.Alive {
		t.Fatal("mob survived a sword hit")
	}
	if session.Respawn.Count() != 1 {
		t.Fatal("a killing blow should not respawn the player")
	}

	ProcessEvents(e)
	if !game.MobKilled(id) {
		t.Fatalf("kill of %s not recorded: %v", id, game.MobsKilled)
	}
	if n := count(e, tags.Mob); n != 2 {
		t.Fatalf("mobs left = %d, want 2", n)
	}
}

func TestPickup_GrantsSword(t *testing.T) {
	e := newTestECS(t)
	session := startLevel(t, e, 2)

	entry, ok := tags.Pickup.First(e.World)
	if !ok {
		t.Fatal("level 2 has no pickup")
	}
	pickup := components.Pickup.Get(entry)

	teleport(e, session, pickup.Position)
	UpdatePickups(e)
	if !pickup.Collected {
		t.Fatal("pickup not collected")
	}

	game := GetOrCreateGame(e)
	if game.HasSword {
		t.Fatal("sword granted before events were processed")
	}
	ProcessEvents(e)
	if !game.HasSword {
		t.Fatal("sword not granted")
	}
}

func TestGoal_CompletesAndAdvances(t *testing.T) {
	e := newTestECS(t)
	session := startLevel(t, e, 1)
	game := GetOrCreateGame(e)
	game.Elapsed = 12.5

	entry, ok := tags.Goal.First(e.World)
	if !ok {
		t.Fatal("level 1 has no goal")
	}
	teleport(e, session, components.Goal.Get(entry).Position)
	UpdateGoal(e)

	if game.Phase != cfg.PhaseLevelComplete {
		t.Fatalf("phase = %v, want level complete", game.Phase)
	}
	lc := GetOrCreateLevelComplete(e)
	if lc.LevelTime != 12.5 || !lc.NewBest {
		t.Fatalf("level complete = %+v", lc)
	}
	if p := LoadProgress(); p.Unlocked != 2 || p.BestTimes[1] != 12.5 {
		t.Fatalf("saved progress = %+v", p)
	}

	input := GetInput(e)
	input.Current[cfg.ActionMenuSelect] = true
	NewUpdateLevelComplete(func() { t.Fatal("went back to the menu") })(e)

	if game.Phase != cfg.PhasePlaying || game.Level != 2 {
		t.Fatalf("game = %+v, want playing level 2", game)
	}
	if session, _ := GetSession(e); session.LevelNumber != 2 {
		t.Fatalf("session level = %d", session.LevelNumber)
	}
	if GetOrCreateLevelComplete(e).Recorded {
		t.Fatal("overlay data not cleared")
	}
}
