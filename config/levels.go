package config

// LevelInfo describes one entry of the level catalogue.
type LevelInfo struct {
	Number   int
	Name     string
	Subtitle string
	Theme    string
	MapPath  string // path inside the embedded assets filesystem
}

// Theme holds the palette a level is drawn with.
type Theme struct {
	Sky    [3]uint8
	Ground [3]uint8
	Static [3]uint8
	Moving [3]uint8
	Hazard [3]uint8
	Mob    [3]uint8
	Fog    float64 // distance at which colours are fully blended into the sky
}

var Levels []LevelInfo
var Themes map[string]Theme

func init() {
	Levels = []LevelInfo{
		{Number: 1, Name: "The Poor Town", Subtitle: "Escape the slums", Theme: "town", MapPath: "levels/town.tmx"},
		{Number: 2, Name: "The Mountains", Subtitle: "Climb to the peaks", Theme: "mountains", MapPath: "levels/mountains.tmx"},
		{Number: 3, Name: "Le Château Mystique", Subtitle: "Conquer the mythic castle", Theme: "castle", MapPath: "levels/castle.tmx"},
	}

	Themes = map[string]Theme{
		"town": {
			Sky: [3]uint8{150, 170, 190}, Ground: [3]uint8{90, 80, 70}, Static: [3]uint8{140, 110, 90},
			Moving: [3]uint8{200, 150, 60}, Hazard: [3]uint8{180, 40, 40}, Mob: [3]uint8{120, 40, 140}, Fog: 90,
		},
		"mountains": {
			Sky: [3]uint8{120, 170, 230}, Ground: [3]uint8{70, 100, 70}, Static: [3]uint8{130, 130, 140},
			Moving: [3]uint8{220, 170, 70}, Hazard: [3]uint8{200, 60, 40}, Mob: [3]uint8{150, 50, 150}, Fog: 120,
		},
		"castle": {
			Sky: [3]uint8{40, 30, 70}, Ground: [3]uint8{50, 50, 60}, Static: [3]uint8{110, 105, 120},
			Moving: [3]uint8{190, 140, 220}, Hazard: [3]uint8{160, 30, 60}, Mob: [3]uint8{200, 70, 70}, Fog: 110,
		},
	}
}

// LevelByNumber returns the catalogue entry for a 1-based level number.
func LevelByNumber(n int) (LevelInfo, bool) {
	if n < 1 || n > len(Levels) {
		return LevelInfo{}, false
	}
	return Levels[n-1], true
}

// LastLevel is the number of the final level.
func LastLevel() int { return len(Levels) }

// ThemeFor returns the named theme, falling back to the first level's.
func ThemeFor(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["town"]
}
