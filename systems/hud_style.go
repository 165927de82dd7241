package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/doomerang-hud/components"
	cfg "github.com/automoto/doomerang-hud/config"
	"github.com/automoto/doomerang-hud/fonts"
	"github.com/automoto/doomerang-hud/prefabs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// DefaultHUDStyle builds a style from config.HUD. No damage type has a
// colour until hud.yaml is applied.
func DefaultHUDStyle() components.HUDStyle {
	fn, ok := EaseByName(cfg.HUD.FadeEase)
	if !ok {
		fn = ease.Linear
	}
	face, _ := fonts.Lookup(fonts.Regular)
	return components.HUDStyle{
		DamageTypeColors:  map[string]color.RGBA{},
		DeathOverlayColor: cfg.HUD.DeathOverlayColor,
		IndicatorSize:     mgl64.Vec2{cfg.HUD.IndicatorSizeX, cfg.HUD.IndicatorSizeY},
		FadeTime:          cfg.HUD.FadeTime,
		FadeEase:          fn,
		LoadingLabel:      cfg.HUD.LoadingLabel,
		LoadingFont:       face,
		LoadingBoxColor:   cfg.HUD.LoadingBoxColor,
		LoadingTextColor:  cfg.HUD.LoadingTextColor,
	}
}

// StyleFromSpec overlays a hud.yaml spec on base. Fields the spec leaves
// empty keep base's value; damage_colors replaces the whole mapping.
func StyleFromSpec(spec prefabs.HUDSpec, base components.HUDStyle) (components.HUDStyle, error) {
	if err := spec.Validate(); err != nil {
		return base, err
	}

	style := base
	ind := spec.DamageIndicator
	if ind.SizeX > 0 {
		style.IndicatorSize[0] = ind.SizeX
	}
	if ind.SizeY > 0 {
		style.IndicatorSize[1] = ind.SizeY
	}
	if ind.FadeTime > 0 {
		style.FadeTime = ind.FadeTime
	}
	if ind.Ease != "" {
		fn, ok := EaseByName(ind.Ease)
		if !ok {
			return base, fmt.Errorf("hud: unknown ease %q", ind.Ease)
		}
		style.FadeEase = fn
	}

	if spec.DeathOverlayColor != nil {
		style.DeathOverlayColor = spec.DeathOverlayColor.Premultiplied()
	}

	if spec.Loading.Label != "" {
		style.LoadingLabel = spec.Loading.Label
	}
	if spec.Loading.Font != "" {
		face, ok := fonts.Lookup(fonts.FontName(spec.Loading.Font))
		if !ok {
			log.Printf("Warning: hud font %q not loaded, keeping current font", spec.Loading.Font)
		} else {
			style.LoadingFont = face
		}
	}
	if spec.Loading.BoxColor != nil {
		style.LoadingBoxColor = spec.Loading.BoxColor.Premultiplied()
	}
	if spec.Loading.TextColor != nil {
		style.LoadingTextColor = spec.Loading.TextColor.Premultiplied()
	}

	if spec.DamageColors != nil {
		colors := make(map[string]color.RGBA, len(spec.DamageColors))
		for name, c := range spec.DamageColors {
			colors[name] = c.Premultiplied()
		}
		style.DamageTypeColors = colors
	}
	return style, nil
}

// LoadHUDStyle reads hud.yaml and overlays it on base.
func LoadHUDStyle(base components.HUDStyle) (components.HUDStyle, error) {
	spec, err := prefabs.LoadSpec[prefabs.HUDSpec](prefabs.HUDFile)
	if err != nil {
		return base, err
	}
	return StyleFromSpec(spec, base)
}
