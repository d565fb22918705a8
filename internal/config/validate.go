package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Palette is the parsed form of ColorConfig.
type Palette struct {
	Player   core.Color
	Enemy    core.Color
	Bullet   core.Color
	Text     core.Color
	GameOver core.Color
}

// Palette parses the configured colors.
func (c ShooterConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"player", c.Colors.Player, &p.Player},
		{"enemy", c.Colors.Enemy, &p.Enemy},
		{"bullet", c.Colors.Bullet, &p.Bullet},
		{"text", c.Colors.Text, &p.Text},
		{"game_over", c.Colors.GameOver, &p.GameOver},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Validate checks that the configuration describes a playable session.
// All problems are reported together.
func (c ShooterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Width <= c.Screen.Width && c.Player.Height <= c.Screen.Height, "player must fit on screen")
	check(c.Player.Speed >= 0, "player.speed must not be negative")
	check(c.Player.BottomMargin >= 0 && c.Player.BottomMargin+c.Player.Height <= c.Screen.Height, "player.bottom_margin out of range")

	check(c.Weapon.CooldownMs >= 0, "weapon.cooldown_ms must not be negative")
	check(c.Weapon.FireMode == FirePress || c.Weapon.FireMode == FireHeld, "weapon.fire_mode must be %q or %q, got %q", FirePress, FireHeld, c.Weapon.FireMode)
	check(c.Weapon.BulletWidth > 0 && c.Weapon.BulletHeight > 0, "bullet size must be positive")
	check(c.Weapon.BulletSpeed > 0, "weapon.bullet_speed must be positive")

	check(c.Enemies.Count > 0, "enemies.count must be positive")
	check(c.Enemies.Width > 0 && c.Enemies.Height > 0, "enemy size must be positive")
	check(c.Enemies.Width < c.Screen.Width, "enemy must be narrower than the screen")
	check(c.Enemies.SpeedX.Min < c.Enemies.SpeedX.Max, "enemies.speed_x is empty")
	check(c.Enemies.SpeedY.Min < c.Enemies.SpeedY.Max, "enemies.speed_y is empty")
	check(c.Enemies.SpeedY.Min > 0, "enemies.speed_y.min must be positive so enemies descend")
	check(c.Enemies.SpawnY.Min < c.Enemies.SpawnY.Max, "enemies.spawn_y is empty")

	if c.Starfield.Enabled {
		check(c.Starfield.Count >= 0, "starfield.count must not be negative")
		check(c.Starfield.Size.Min > 0 && c.Starfield.Size.Min < c.Starfield.Size.Max, "starfield.size is empty")
		check(c.Starfield.Brightness.Min >= 0 && c.Starfield.Brightness.Min < c.Starfield.Brightness.Max && c.Starfield.Brightness.Max <= 256, "starfield.brightness must lie within [0, 256)")
		check(c.Starfield.Speed.Min < c.Starfield.Speed.Max, "starfield.speed is empty")
	}

	check(c.GameOver.HoldMs >= 0, "game_over.hold_ms must not be negative")
	check(c.Terminal.HoldTicks > 0, "terminal.hold_ticks must be positive")

	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
