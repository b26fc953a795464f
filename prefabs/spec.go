package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ScreenSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameSpec holds the tunables shared by the level loader, the save store
// and the host program.
type GameSpec struct {
	Name       string     `yaml:"name"`
	World      string     `yaml:"world"`
	TileSize   int        `yaml:"tile_size"`
	LevelCount int        `yaml:"level_count"`
	SaveKey    string     `yaml:"save_key"`
	XPPerStar  int        `yaml:"xp_per_star"`
	Screen     ScreenSpec `yaml:"screen"`
	FallMargin float64    `yaml:"fall_margin"`
}

func DefaultGameSpec() GameSpec {
	return GameSpec{
		Name:       "MathBuilder",
		World:      "world1",
		TileSize:   64,
		LevelCount: 10,
		SaveKey:    "mathbuilder_save",
		XPPerStar:  10,
		Screen:     ScreenSpec{Width: 800, Height: 600},
		FallMargin: 100,
	}
}

// withDefaults fills zero fields from DefaultGameSpec.
func (g GameSpec) withDefaults() GameSpec {
	def := DefaultGameSpec()
	if g.Name == "" {
		g.Name = def.Name
	}
	if g.World == "" {
		g.World = def.World
	}
	if g.TileSize <= 0 {
		g.TileSize = def.TileSize
	}
	if g.LevelCount <= 0 {
		g.LevelCount = def.LevelCount
	}
	if g.SaveKey == "" {
		g.SaveKey = def.SaveKey
	}
	if g.XPPerStar <= 0 {
		g.XPPerStar = def.XPPerStar
	}
	if g.Screen.Width <= 0 || g.Screen.Height <= 0 {
		g.Screen = def.Screen
	}
	if g.FallMargin <= 0 {
		g.FallMargin = def.FallMargin
	}
	return g
}

func LoadGameSpec() (GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return GameSpec{}, err
	}
	return spec.withDefaults(), nil
}

// BridgeSpec times the pop-in of bridge blocks. Durations are seconds.
type BridgeSpec struct {
	Name          string  `yaml:"name"`
	BlockDuration float32 `yaml:"block_duration"`
	BlockStagger  float32 `yaml:"block_stagger"`
	Ease          string  `yaml:"ease"`
}

func DefaultBridgeSpec() BridgeSpec {
	return BridgeSpec{Name: "bridge", BlockDuration: 0.2, BlockStagger: 0.08, Ease: "out_back"}
}

func LoadBridgeSpec() (BridgeSpec, error) {
	spec, err := LoadSpec[BridgeSpec]("bridge.yaml")
	if err != nil {
		return BridgeSpec{}, err
	}
	def := DefaultBridgeSpec()
	if spec.BlockDuration <= 0 {
		spec.BlockDuration = def.BlockDuration
	}
	if spec.BlockStagger < 0 {
		spec.BlockStagger = def.BlockStagger
	}
	if spec.Ease == "" {
		spec.Ease = def.Ease
	}
	return spec, nil
}
