package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// Variant names shipped with the game.
const (
	VariantClassic = "classic"
	VariantArcade  = "arcade"

	DefaultVariant = VariantClassic
)

// Classic returns the slower tuning: 250 ms fire rate, one shot per key
// press, no starfield, exit after the game-over screen.
func Classic() ShooterConfig {
	return ShooterConfig{
		Variant: VariantClassic,
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		TickRate: 60,
		Player: PlayerConfig{
			Width:        50,
			Height:       50,
			Speed:        8,
			BottomMargin: 10,
		},
		Weapon: WeaponConfig{
			CooldownMs:   250,
			FireMode:     FirePress,
			BulletWidth:  5,
			BulletHeight: 10,
			BulletSpeed:  10,
		},
		Enemies: EnemyConfig{
			Count:  8,
			Width:  30,
			Height: 30,
			SpeedX: Range{Min: -2, Max: 2},
			SpeedY: Range{Min: 1, Max: 5},
			SpawnY: Range{Min: -100, Max: -40},
		},
		Starfield: StarfieldConfig{
			Enabled:    false,
			Count:      100,
			Size:       Range{Min: 1, Max: 4},
			Brightness: Range{Min: 150, Max: 255},
			Speed:      Range{Min: 1, Max: 3},
		},
		GameOver: GameOverConfig{
			HoldMs:       3000,
			AllowRestart: false,
		},
		HUD: HUDConfig{
			ShowHighScore: false,
		},
		Colors: ColorConfig{
			Player:   "#00ff00",
			Enemy:    "#ff0000",
			Bullet:   "#0000ff",
			Text:     "#ffffff",
			GameOver: "#ff0000",
		},
		Terminal: TerminalConfig{
			HoldTicks: 8,
		},
	}
}

// Arcade returns the faster tuning: held-fire autofire, quicker bullets,
// a scrolling starfield, restart after game over and a session high score.
func Arcade() ShooterConfig {
	cfg := Classic()
	cfg.Variant = VariantArcade
	cfg.Weapon.CooldownMs = 150
	cfg.Weapon.FireMode = FireHeld
	cfg.Weapon.BulletSpeed = 15
	cfg.Starfield.Enabled = true
	cfg.GameOver.AllowRestart = true
	cfg.HUD.ShowHighScore = true
	cfg.Colors.Bullet = "#6464ff"
	return cfg
}

// DefaultYAML returns the embedded, commented configuration template.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
