package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	SceneFile    = "scene.yaml"
	CameraFile   = "camera.yaml"
	SectionsFile = "sections.yaml"
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

// Vec3 is written as a three element sequence: [x, y, z].
type Vec3 [3]float64

type BoxSpec struct {
	Name     string    `yaml:"name"`
	Size     Vec3      `yaml:"size"`
	Position Vec3      `yaml:"position"`
	Color    YAMLColor `yaml:"color"`
	Emissive float64   `yaml:"emissive"`
	// World boxes are placed in world space instead of under the scene group.
	World bool `yaml:"world"`
}

type LightSpec struct {
	Name      string    `yaml:"name"`
	Kind      string    `yaml:"kind"`
	Position  Vec3      `yaml:"position"`
	Color     YAMLColor `yaml:"color"`
	Intensity float64   `yaml:"intensity"`
	World     bool      `yaml:"world"`
}

type HotspotSpec struct {
	Section  string    `yaml:"section"`
	Label    string    `yaml:"label"`
	Position Vec3      `yaml:"position"`
	Size     Vec3      `yaml:"size"`
	Color    YAMLColor `yaml:"color"`
	Text     TextSpec  `yaml:"text"`
}

type TextSpec struct {
	Size   float64   `yaml:"size"`
	Color  YAMLColor `yaml:"color"`
	Offset Vec3      `yaml:"offset"`
}

type SkySpec struct {
	Top    YAMLColor `yaml:"top"`
	Middle YAMLColor `yaml:"middle"`
	Bottom YAMLColor `yaml:"bottom"`
}

type SceneSpec struct {
	Name        string        `yaml:"name"`
	GroupOffset Vec3          `yaml:"group_offset"`
	Sky         SkySpec       `yaml:"sky"`
	Ambient     LightSpec     `yaml:"ambient"`
	Boxes       []BoxSpec     `yaml:"boxes"`
	Lights      []LightSpec   `yaml:"lights"`
	Hotspots    []HotspotSpec `yaml:"hotspots"`
	PropsScript string        `yaml:"props_script"`
}

type OrbitSpec struct {
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	MinPolarDeg float64 `yaml:"min_polar_deg"`
	MaxPolarDeg float64 `yaml:"max_polar_deg"`
	Pivot       Vec3    `yaml:"pivot"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	EnableZoom  bool    `yaml:"enable_zoom"`
	EnablePan   bool    `yaml:"enable_pan"`
}

type CameraSpec struct {
	HomePosition  Vec3      `yaml:"home_position"`
	LookAt        Vec3      `yaml:"look_at"`
	FocusOffset   Vec3      `yaml:"focus_offset"`
	SmoothingRate float64   `yaml:"smoothing_rate"`
	TransitionMS  int       `yaml:"transition_ms"`
	LoadingMS     int       `yaml:"loading_ms"`
	FOV           float64   `yaml:"fov"`
	Near          float64   `yaml:"near"`
	Far           float64   `yaml:"far"`
	RestorePose   bool      `yaml:"restore_pose"`
	Orbit         OrbitSpec `yaml:"orbit"`
}

// MinPolar returns the orbit's lower polar bound in radians.
func (o OrbitSpec) MinPolar() float64 { return o.MinPolarDeg * math.Pi / 180 }

// MaxPolar returns the orbit's upper polar bound in radians.
func (o OrbitSpec) MaxPolar() float64 { return o.MaxPolarDeg * math.Pi / 180 }

type LinkSpec struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

// BlockSpec is one piece of panel content. Kind is one of paragraph,
// heading, subheading, list, tags, links, meta or copy.
type BlockSpec struct {
	Kind  string     `yaml:"kind"`
	Text  string     `yaml:"text"`
	Items []string   `yaml:"items"`
	Links []LinkSpec `yaml:"links"`
}

type SectionSpec struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title"`
	Blocks []BlockSpec `yaml:"blocks"`
}

type SectionsSpec struct {
	Email    string        `yaml:"email"`
	Social   []LinkSpec    `yaml:"social"`
	Sections []SectionSpec `yaml:"sections"`
}

func LoadSceneSpec() (SceneSpec, error) { return LoadSpec[SceneSpec](SceneFile) }

func LoadCameraSpec() (CameraSpec, error) { return LoadSpec[CameraSpec](CameraFile) }

func LoadSectionsSpec() (SectionsSpec, error) { return LoadSpec[SectionsSpec](SectionsFile) }

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as color.RGBA, or fallback when unset.
func (c YAMLColor) RGBA8(fallback color.RGBA) color.RGBA {
	if c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor accepts #rrggbb and #rrggbbaa, with or without the hash.
func ParseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", hex)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
