// Package config provides YAML-based configuration loading and variant
// presets for the space shooter.
package config

// ShooterConfig contains all tuning constants for one play session.
// Values are fixed at startup; nothing here changes while a session runs.
type ShooterConfig struct {
	Variant   string          `yaml:"variant,omitempty"`
	Screen    ScreenConfig    `yaml:"screen"`
	TickRate  int             `yaml:"tick_rate"`
	Player    PlayerConfig    `yaml:"player"`
	Weapon    WeaponConfig    `yaml:"weapon"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Starfield StarfieldConfig `yaml:"starfield"`
	GameOver  GameOverConfig  `yaml:"game_over"`
	HUD       HUDConfig       `yaml:"hud"`
	Colors    ColorConfig     `yaml:"colors"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// ScreenConfig defines the logical playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Pixels per tick per held direction
	BottomMargin int `yaml:"bottom_margin"` // Gap between ship and screen bottom at spawn
}

// FireMode selects how the fire key triggers shots.
type FireMode string

const (
	FirePress FireMode = "press" // One shot attempt per key-down event
	FireHeld  FireMode = "held"  // Shoot continuously while held, gated by cooldown
)

// WeaponConfig defines shooting and bullets.
type WeaponConfig struct {
	CooldownMs   int      `yaml:"cooldown_ms"`
	FireMode     FireMode `yaml:"fire_mode"`
	BulletWidth  int      `yaml:"bullet_width"`
	BulletHeight int      `yaml:"bullet_height"`
	BulletSpeed  int      `yaml:"bullet_speed"` // Pixels per tick, upward
}

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// EnemyConfig defines the descending enemy pool.
type EnemyConfig struct {
	Count  int   `yaml:"count"`
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	SpeedX Range `yaml:"speed_x"`
	SpeedY Range `yaml:"speed_y"`
	SpawnY Range `yaml:"spawn_y"` // Vertical spawn band above the screen
}

// StarfieldConfig defines the cosmetic scrolling background.
type StarfieldConfig struct {
	Enabled    bool  `yaml:"enabled"`
	Count      int   `yaml:"count"`
	Size       Range `yaml:"size"`
	Brightness Range `yaml:"brightness"`
	Speed      Range `yaml:"speed"`
}

// GameOverConfig defines what happens after the player is hit.
type GameOverConfig struct {
	HoldMs       int  `yaml:"hold_ms"`       // Wall-clock display time before exit
	AllowRestart bool `yaml:"allow_restart"` // Restart key starts a new session during the hold
}

// HUDConfig toggles text overlays.
type HUDConfig struct {
	ShowHighScore bool `yaml:"show_high_score"`
}

// ColorConfig holds "#rrggbb" colors for each element.
type ColorConfig struct {
	Player   string `yaml:"player"`
	Enemy    string `yaml:"enemy"`
	Bullet   string `yaml:"bullet"`
	Text     string `yaml:"text"`
	GameOver string `yaml:"game_over"`
}

// TerminalConfig tunes the terminal frontend.
type TerminalConfig struct {
	// HoldTicks is how many ticks a key counts as held after its last
	// press or auto-repeat. Terminals do not report key releases.
	HoldTicks int `yaml:"hold_ticks"`
}
