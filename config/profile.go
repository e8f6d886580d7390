package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/beka-birhanu/vinom-levels/game/maze"
)

// levelProfileFile is the layout of a decoration profile file:
//
//	[decoration]
//	roll = 100
//	collectible_below = 5
//	hazard_below = 15
//	obstacle_below = 35
type levelProfileFile struct {
	Decoration maze.Profile `toml:"decoration"`
}

// LoadLevelProfile reads a decoration profile from a TOML file. Keys missing
// from the file keep their default values. An empty path yields the default
// profile.
func LoadLevelProfile(path string) (maze.Profile, error) {
	file := levelProfileFile{Decoration: maze.DefaultProfile()}
	if path == "" {
		return file.Decoration, nil
	}

	if _, err := toml.DecodeFile(path, &file); err != nil {
		return maze.Profile{}, fmt.Errorf("reading level profile %s: %w", path, err)
	}
	if err := file.Decoration.Validate(); err != nil {
		return maze.Profile{}, fmt.Errorf("level profile %s: %w", path, err)
	}
	return file.Decoration, nil
}
