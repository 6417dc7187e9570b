package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/levels"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded asset tree.
func FS() fs.FS { return assetFS }

// LevelLoader caches parsed maps by level number.
type LevelLoader struct {
	fsys  fs.FS
	cache map[int]*levels.Level
}

func NewLevelLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys, cache: make(map[int]*levels.Level)}
}

// LevelDefaults builds the loader defaults from the current configuration.
func LevelDefaults() levels.Defaults {
	return levels.Defaults{
		PlatformSpeed: config.Platform.DefaultSpeed,
		PlatformSize:  mgl64.Vec3(config.Platform.DefaultSize),
		MobSpeed:      config.Mob.DefaultSpeed,
	}
}

// Load returns the level with the given 1-based number.
func (l *LevelLoader) Load(number int) (*levels.Level, error) {
	if lvl, ok := l.cache[number]; ok {
		return lvl, nil
	}
	info, ok := config.LevelByNumber(number)
	if !ok {
		return nil, fmt.Errorf("unknown level %d", number)
	}
	lvl, err := levels.Load(l.fsys, info.MapPath, LevelDefaults())
	if err != nil {
		return nil, err
	}
	l.cache[number] = lvl
	return lvl, nil
}

func (l *LevelLoader) MustLoad(number int) *levels.Level {
	lvl, err := l.Load(number)
	if err != nil {
		panic(err)
	}
	return lvl
}

var levelLoader = NewLevelLoader(assetFS)

// LoadLevel loads a level from the embedded maps.
func LoadLevel(number int) (*levels.Level, error) {
	return levelLoader.Load(number)
}

// MustLoadLevel is LoadLevel for callers that validated the maps at startup.
func MustLoadLevel(number int) *levels.Level {
	return levelLoader.MustLoad(number)
}

// LoadAllLevels parses every catalogue entry so broken maps fail at startup.
func LoadAllLevels() error {
	for _, info := range config.Levels {
		if _, err := levelLoader.Load(info.Number); err != nil {
			return err
		}
	}
	return nil
}
