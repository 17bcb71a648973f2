package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

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

const (
	PlayerFile = "player.yaml"
	LevelFile  = "level.yaml"

	TelemetryScript = "telemetry.tengo"
)

type PlayerSpec struct {
	Name         string                        `yaml:"name"`
	MoveSpeed    float64                       `yaml:"move_speed"`
	InitialState string                        `yaml:"initial_state"`
	Money        float64                       `yaml:"money"`
	Transform    TransformSpec                 `yaml:"transform"`
	Shape        ShapeSpec                     `yaml:"shape"`
	Animations   map[string]AnimationFrameSpec `yaml:"animations"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AnimationFrameSpec struct {
	First         int     `yaml:"first"`
	Last          int     `yaml:"last"`
	FrameDuration float64 `yaml:"frame_duration"`
	Mode          string  `yaml:"mode"`
}

type LevelSpec struct {
	Name      string         `yaml:"name"`
	Zones     []ZoneSpec     `yaml:"zones"`
	Buildings []BuildingSpec `yaml:"buildings"`
	Boat      *BoatSpec      `yaml:"boat"`
	Sun       *SunSpec       `yaml:"sun"`
	Scenery   []ShapeSpec    `yaml:"scenery"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ZoneSpec struct {
	Name      string  `yaml:"name"`
	Kind      string  `yaml:"kind"`
	X         float64 `yaml:"x"`
	HalfWidth float64 `yaml:"half_width"`
}

type BuildingSpec struct {
	Name        string    `yaml:"name"`
	ActionRange float64   `yaml:"action_range"`
	Shape       ShapeSpec `yaml:"shape"`
}

type BoatSpec struct {
	DockX float64   `yaml:"dock_x"`
	Shape ShapeSpec `yaml:"shape"`
}

type SunSpec struct {
	Amplitude float64   `yaml:"amplitude"`
	Speed     float64   `yaml:"speed"`
	Shape     ShapeSpec `yaml:"shape"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type LayerSpec struct {
	Depth    float64 `yaml:"depth"`
	Parallax float64 `yaml:"parallax"`
}

type ShapeSpec struct {
	Name   string     `yaml:"name"`
	Kind   string     `yaml:"kind"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
	Layer  LayerSpec  `yaml:"layer"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
