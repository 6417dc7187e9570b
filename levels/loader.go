package levels

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string, def Defaults) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	p := parser{def: def}
	for _, og := range levelMap.ObjectGroups {
		if og.Name == "Meta" && len(og.Objects) > 0 {
			p.originX = og.Objects[0].Properties.GetFloat("origin_x")
			p.originZ = og.Objects[0].Properties.GetFloat("origin_z")
		}
	}

	level := &Level{Path: tmxPath}
	spawnFound, goalFound := false, false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Spawn":
			for _, o := range og.Objects {
				level.Spawn = p.point(o)
				spawnFound = true
			}
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Box{
					Kind:   objectClass(o),
					Center: p.rectCenter(o),
					Size:   p.rectSize(o),
				})
			}
		case "MovingPlatforms":
			for _, o := range og.Objects {
				start, end, err := p.path(o)
				if err != nil {
					return nil, fmt.Errorf("%s: moving platform %q: %w", tmxPath, o.Name, err)
				}
				size := mgl64.Vec3{
					o.Properties.GetFloat("width"),
					o.Properties.GetFloat("height"),
					o.Properties.GetFloat("depth"),
				}
				if size.X() <= 0 || size.Y() <= 0 || size.Z() <= 0 {
					size = def.PlatformSize
				}
				level.MovingPlatforms = append(level.MovingPlatforms, MovingPlatform{
					Name:  o.Name,
					Start: start,
					End:   end,
					Size:  size,
					Speed: orDefault(o.Properties.GetFloat("speed"), def.PlatformSpeed),
				})
			}
		case "KillZones":
			for _, o := range og.Objects {
				level.KillZones = append(level.KillZones, KillZone{
					Center: p.rectCenter(o),
					Size:   p.rectSize(o),
				})
			}
		case "Checkpoints":
			for _, o := range og.Objects {
				level.Checkpoints = append(level.Checkpoints, Checkpoint{
					ID:       o.Properties.GetInt("id"),
					Position: p.point(o),
				})
			}
		case "Goal":
			for _, o := range og.Objects {
				level.Goal = p.point(o)
				goalFound = true
			}
		case "Pickups":
			for _, o := range og.Objects {
				level.Pickups = append(level.Pickups, Pickup{
					Kind:     objectClass(o),
					Position: p.point(o),
				})
			}
		case "Mobs":
			for _, o := range og.Objects {
				a, b, err := p.path(o)
				if err != nil {
					return nil, fmt.Errorf("%s: mob %q: %w", tmxPath, o.Name, err)
				}
				level.Mobs = append(level.Mobs, Mob{
					ID:    o.Name,
					A:     a,
					B:     b,
					Speed: orDefault(o.Properties.GetFloat("speed"), def.MobSpeed),
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: no spawn point defined", tmxPath)
	}
	if !goalFound {
		return nil, fmt.Errorf("%s: no goal defined", tmxPath)
	}

	sort.Slice(level.Checkpoints, func(i, j int) bool {
		return level.Checkpoints[i].ID < level.Checkpoints[j].ID
	})
	return level, nil
}

type parser struct {
	def              Defaults
	originX, originZ float64
}

func (p parser) point(o *tiled.Object) mgl64.Vec3 {
	return mgl64.Vec3{
		o.X/PixelsPerMetre - p.originX,
		o.Properties.GetFloat("y"),
		o.Y/PixelsPerMetre - p.originZ,
	}
}

func (p parser) rectCenter(o *tiled.Object) mgl64.Vec3 {
	return mgl64.Vec3{
		(o.X+o.Width/2)/PixelsPerMetre - p.originX,
		o.Properties.GetFloat("y"),
		(o.Y+o.Height/2)/PixelsPerMetre - p.originZ,
	}
}

func (p parser) rectSize(o *tiled.Object) mgl64.Vec3 {
	return mgl64.Vec3{
		o.Width / PixelsPerMetre,
		o.Properties.GetFloat("height"),
		o.Height / PixelsPerMetre,
	}
}

// path reads a two point polyline. The start Y is the "y" property and the
// end Y is "end_y", defaulting to the start.
func (p parser) path(o *tiled.Object) (start, end mgl64.Vec3, err error) {
	if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil || len(*o.PolyLines[0].Points) < 2 {
		return start, end, fmt.Errorf("needs a polyline with two points")
	}
	points := *o.PolyLines[0].Points
	last := points[len(points)-1]

	start = p.point(o)
	endY := start.Y()
	if o.Properties.GetString("end_y") != "" {
		endY = o.Properties.GetFloat("end_y")
	}
	end = mgl64.Vec3{
		(o.X+last.X)/PixelsPerMetre - p.originX,
		endY,
		(o.Y+last.Y)/PixelsPerMetre - p.originZ,
	}
	return start, end, nil
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

// LoadAll loads every path in order and stops at the first error.
func LoadAll(fsys fs.FS, paths []string, def Defaults) ([]*Level, error) {
	out := make([]*Level, 0, len(paths))
	for _, path := range paths {
		l, err := Load(fsys, path, def)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
