package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/automoto/doomerang-hud/components"
	"gopkg.in/yaml.v3"
)

const (
	HUDFile         = "hud.yaml"
	DamageTypesFile = "damage_types.yaml"
	ArenaFile       = "arena.yaml"
)

type HUDSpec struct {
	DamageIndicator   IndicatorSpec        `yaml:"damage_indicator"`
	DeathOverlayColor *YAMLColor           `yaml:"death_overlay_color"`
	Loading           LoadingSpec          `yaml:"loading"`
	DamageColors      map[string]YAMLColor `yaml:"damage_colors"`
}

type IndicatorSpec struct {
	SizeX    float64 `yaml:"size_x"`
	SizeY    float64 `yaml:"size_y"`
	FadeTime float64 `yaml:"fade_time"`
	Ease     string  `yaml:"ease"`
}

type LoadingSpec struct {
	Label     string     `yaml:"label"`
	Font      string     `yaml:"font"`
	BoxColor  *YAMLColor `yaml:"box_color"`
	TextColor *YAMLColor `yaml:"text_color"`
}

type DamageTypesSpec struct {
	DamageTypes []DamageTypeSpec `yaml:"damage_types"`
}

type DamageTypeSpec struct {
	Name          string `yaml:"name"`
	CausedByWorld bool   `yaml:"caused_by_world"`
}

type ArenaSpec struct {
	PlayerSpawn SpawnSpec    `yaml:"player_spawn"`
	Hazards     []HazardSpec `yaml:"hazards"`
}

type SpawnSpec struct {
	X   float64 `yaml:"x"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

type HazardSpec struct {
	Name       string  `yaml:"name"`
	DamageType string  `yaml:"damage_type"`
	Damage     float64 `yaml:"damage"`
	X          float64 `yaml:"x"`
	Z          float64 `yaml:"z"`
	Size       float64 `yaml:"size"`
	Cooldown   float64 `yaml:"cooldown"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := ParseSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func ParseSpec[T any](data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// Validate rejects values the HUD cannot draw with.
func (s *HUDSpec) Validate() error {
	ind := s.DamageIndicator
	if ind.SizeX < 0 || ind.SizeX > 1 || ind.SizeY < 0 || ind.SizeY > 1 {
		return fmt.Errorf("prefabs: damage_indicator size must be within [0,1], got %v x %v", ind.SizeX, ind.SizeY)
	}
	if ind.FadeTime < 0 {
		return fmt.Errorf("prefabs: damage_indicator fade_time must not be negative, got %v", ind.FadeTime)
	}
	return nil
}

// DamageTypeCatalog resolves damage type names to shared DamageType values.
type DamageTypeCatalog map[string]*components.DamageType

func NewDamageTypeCatalog(spec DamageTypesSpec) (DamageTypeCatalog, error) {
	catalog := make(DamageTypeCatalog, len(spec.DamageTypes))
	for _, dt := range spec.DamageTypes {
		if dt.Name == "" {
			return nil, fmt.Errorf("prefabs: damage type without a name")
		}
		if _, dup := catalog[dt.Name]; dup {
			return nil, fmt.Errorf("prefabs: duplicate damage type %q", dt.Name)
		}
		catalog[dt.Name] = &components.DamageType{
			Name:          dt.Name,
			CausedByWorld: dt.CausedByWorld,
		}
	}
	return catalog, nil
}

// Get returns the named damage type or an error naming it.
func (c DamageTypeCatalog) Get(name string) (*components.DamageType, error) {
	dt, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("prefabs: unknown damage type %q", name)
	}
	return dt, nil
}

// YAMLColor is a "#rrggbb" or "#rrggbbaa" colour with straight alpha. RGBA
// returns it premultiplied.
type YAMLColor struct {
	color.NRGBA
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

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Premultiplied converts to the color.RGBA the renderers take.
func (c YAMLColor) Premultiplied() color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA).(color.RGBA)
}
