package levels

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
)

var testDefaults = Defaults{PlatformSpeed: 1.2, PlatformSize: mgl64.Vec3{3, 0.5, 3}, MobSpeed: 0.7}

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="9" nextobjectid="20">
 <objectgroup id="1" name="Meta">
  <object id="1" name="meta" x="0" y="0">
   <properties>
    <property name="origin_x" type="float" value="10"/>
    <property name="origin_z" type="float" value="10"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
`

const spawnAndGoal = ` <objectgroup id="2" name="Spawn">
  <object id="2" name="spawn" x="160" y="32">
   <properties><property name="y" type="float" value="3"/></properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Goal">
  <object id="3" name="goal" x="160" y="288">
   <properties><property name="y" type="float" value="12.8"/></properties>
   <point/>
  </object>
 </objectgroup>
`

const fullLevel = header + spawnAndGoal + ` <objectgroup id="4" name="Platforms">
  <object id="4" type="platform" x="144" y="144" width="32" height="48">
   <properties>
    <property name="y" type="float" value="2.5"/>
    <property name="height" type="float" value="0.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="MovingPlatforms">
  <object id="5" name="lift" x="160" y="160">
   <properties>
    <property name="y" type="float" value="9.5"/>
    <property name="end_y" type="float" value="12"/>
    <property name="speed" type="float" value="0.8"/>
   </properties>
   <polyline points="0,0 0,32"/>
  </object>
 </objectgroup>
 <objectgroup id="6" name="KillZones">
  <object id="6" x="0" y="0" width="320" height="32">
   <properties>
    <property name="y" type="float" value="0.5"/>
    <property name="height" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="7" name="Checkpoints">
  <object id="8" x="192" y="240">
   <properties>
    <property name="id" type="int" value="1"/>
    <property name="y" type="float" value="9"/>
   </properties>
   <point/>
  </object>
  <object id="7" x="192" y="200">
   <properties>
    <property name="id" type="int" value="0"/>
    <property name="y" type="float" value="7.8"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="8" name="Pickups">
  <object id="9" type="sword" x="160" y="224">
   <properties><property name="y" type="float" value="9.2"/></properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="9" name="Mobs">
  <object id="10" name="mob-a" x="128" y="256">
   <properties><property name="y" type="float" value="8.6"/></properties>
   <polyline points="0,0 64,0"/>
  </object>
 </objectgroup>
</map>
`

func approxVec(t *testing.T, got, want mgl64.Vec3, field string) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
}

func TestLoad_ParsesEveryGroup(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(fullLevel)}}

	level, err := Load(fsys, "levels/test.tmx", testDefaults)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	approxVec(t, level.Spawn, mgl64.Vec3{0, 3, -8}, "spawn")
	approxVec(t, level.Goal, mgl64.Vec3{0, 12.8, 8}, "goal")

	if len(level.Platforms) != 1 {
		t.Fatalf("platforms = %d, want 1", len(level.Platforms))
	}
	pl := level.Platforms[0]
	if pl.Kind != "platform" {
		t.Errorf("kind = %q", pl.Kind)
	}
	approxVec(t, pl.Center, mgl64.Vec3{0, 2.5, 0.5}, "platform centre")
	approxVec(t, pl.Size, mgl64.Vec3{2, 0.5, 3}, "platform size")

	if len(level.MovingPlatforms) != 1 {
		t.Fatalf("moving platforms = %d, want 1", len(level.MovingPlatforms))
	}
	mp := level.MovingPlatforms[0]
	approxVec(t, mp.Start, mgl64.Vec3{0, 9.5, 0}, "lift start")
	approxVec(t, mp.End, mgl64.Vec3{0, 12, 2}, "lift end")
	approxVec(t, mp.Size, testDefaults.PlatformSize, "lift default size")
	if mp.Speed != 0.8 {
		t.Errorf("lift speed = %v, want 0.8", mp.Speed)
	}

	if len(level.KillZones) != 1 {
		t.Fatalf("kill zones = %d", len(level.KillZones))
	}
	approxVec(t, level.KillZones[0].HalfSize(), mgl64.Vec3{10, 0.75, 1}, "kill zone half size")

	if len(level.Checkpoints) != 2 || level.Checkpoints[0].ID != 0 || level.Checkpoints[1].ID != 1 {
		t.Fatalf("checkpoints = %+v, want sorted by id", level.Checkpoints)
	}
	approxVec(t, level.Checkpoints[0].Position, mgl64.Vec3{2, 7.8, 2.5}, "checkpoint 0")

	if len(level.Pickups) != 1 || level.Pickups[0].Kind != "sword" {
		t.Fatalf("pickups = %+v", level.Pickups)
	}

	if len(level.Mobs) != 1 {
		t.Fatalf("mobs = %d", len(level.Mobs))
	}
	mob := level.Mobs[0]
	if mob.ID != "mob-a" || mob.Speed != testDefaults.MobSpeed {
		t.Errorf("mob = %+v", mob)
	}
	approxVec(t, mob.A, mgl64.Vec3{-2, 8.6, 6}, "mob A")
	approxVec(t, mob.B, mgl64.Vec3{2, 8.6, 6}, "mob B")
}

func TestLoad_Errors(t *testing.T) {
	badMob := header + spawnAndGoal + ` <objectgroup id="9" name="Mobs">
  <object id="10" name="stuck" x="128" y="256">
   <properties><property name="y" type="float" value="8.6"/></properties>
  </object>
 </objectgroup>
</map>
`
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"missing spawn", header + "</map>\n", "spawn"},
		{"missing goal", header + ` <objectgroup id="2" name="Spawn">
  <object id="2" name="spawn" x="0" y="0"><point/></object>
 </objectgroup>
</map>
`, "goal"},
		{"mob without path", badMob, "polyline"},
		{"not a map", "<nope", "load TMX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.tmx": {Data: []byte(tt.data)}}
			_, err := Load(fsys, "bad.tmx", testDefaults)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "levels/none.tmx", testDefaults); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
