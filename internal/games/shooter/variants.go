package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

// Register variants with the global registry.
func init() {
	registry.Register(registry.Variant{
		ID:          config.VariantClassic,
		Title:       "Classic",
		Description: "One shot per key press, 250 ms cooldown, exits after game over",
		Defaults:    config.Classic,
	})
	registry.Register(registry.Variant{
		ID:          config.VariantArcade,
		Title:       "Arcade",
		Description: "Hold to autofire, faster bullets, starfield, press R to restart",
		Defaults:    config.Arcade,
	})
}
