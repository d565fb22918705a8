package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func testResolver(name string) (ShooterConfig, error) {
	switch name {
	case VariantClassic:
		return Classic(), nil
	case VariantArcade:
		return Arcade(), nil
	}
	return ShooterConfig{}, fmt.Errorf("unknown variant %q", name)
}

// isolate points the well-known search locations at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedYAMLMatchesClassic(t *testing.T) {
	var cfg ShooterConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Classic()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, Classic())
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, cfg := range []ShooterConfig{Classic(), Arcade()} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v, expected nil", cfg.Variant, err)
		}
	}
}

func TestArcadeDiffersFromClassic(t *testing.T) {
	c, a := Classic(), Arcade()

	if a.Weapon.CooldownMs != 150 || c.Weapon.CooldownMs != 250 {
		t.Errorf("cooldowns = %d/%d, expected 250/150", c.Weapon.CooldownMs, a.Weapon.CooldownMs)
	}
	if a.Weapon.FireMode != FireHeld || c.Weapon.FireMode != FirePress {
		t.Errorf("fire modes = %s/%s", c.Weapon.FireMode, a.Weapon.FireMode)
	}
	if a.Weapon.BulletSpeed != 15 || c.Weapon.BulletSpeed != 10 {
		t.Errorf("bullet speeds = %d/%d", c.Weapon.BulletSpeed, a.Weapon.BulletSpeed)
	}
	if !a.Starfield.Enabled || c.Starfield.Enabled {
		t.Error("only arcade should have a starfield")
	}
	if a.Screen != c.Screen || a.Player != c.Player || !reflect.DeepEqual(a.Enemies, c.Enemies) {
		t.Error("variants should share screen, player and enemy tuning")
	}
}

func TestLoadBuiltin(t *testing.T) {
	isolate(t)

	tests := []struct {
		variant string
		want    ShooterConfig
	}{
		{"", Classic()},
		{VariantClassic, Classic()},
		{VariantArcade, Arcade()},
	}

	for _, tc := range tests {
		t.Run("variant="+tc.variant, func(t *testing.T) {
			cfg, source, err := Load("", tc.variant, testResolver)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if source != SourceBuiltin {
				t.Errorf("source = %q, expected %q", source, SourceBuiltin)
			}
			if !reflect.DeepEqual(cfg, tc.want) {
				t.Errorf("Load() = %+v, expected %+v", cfg, tc.want)
			}
		})
	}
}

func TestLoadCustomOverlay(t *testing.T) {
	isolate(t)
	path := writeFile(t, "variant: arcade\nweapon:\n  cooldown_ms: 90\n")

	cfg, source, err := Load(path, "", testResolver)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Variant != VariantArcade {
		t.Errorf("Variant = %q, expected arcade", cfg.Variant)
	}
	if cfg.Weapon.CooldownMs != 90 {
		t.Errorf("CooldownMs = %d, expected 90", cfg.Weapon.CooldownMs)
	}
	// Untouched keys keep the arcade values.
	if cfg.Weapon.FireMode != FireHeld || cfg.Weapon.BulletSpeed != 15 {
		t.Errorf("weapon = %+v, expected arcade defaults besides cooldown", cfg.Weapon)
	}
}

func TestLoadVariantArgumentWins(t *testing.T) {
	isolate(t)
	path := writeFile(t, "variant: arcade\n")

	cfg, _, err := Load(path, VariantClassic, testResolver)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Variant != VariantClassic || cfg.Weapon.FireMode != FirePress {
		t.Errorf("Load() variant = %q fire = %s, expected classic/press", cfg.Variant, cfg.Weapon.FireMode)
	}
}

func TestLoadTemplateKeepsRequestedVariant(t *testing.T) {
	isolate(t)
	path := writeFile(t, string(DefaultYAML()))

	cfg, _, err := Load(path, VariantArcade, testResolver)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Arcade()
	if cfg.Weapon != want.Weapon {
		t.Errorf("Weapon = %+v, expected %+v", cfg.Weapon, want.Weapon)
	}
	if !cfg.Starfield.Enabled || !cfg.GameOver.AllowRestart || !cfg.HUD.ShowHighScore {
		t.Errorf("starfield=%v restart=%v high score=%v, expected arcade features",
			cfg.Starfield.Enabled, cfg.GameOver.AllowRestart, cfg.HUD.ShowHighScore)
	}
}

func TestLoadOtherVariantFileSharedSections(t *testing.T) {
	isolate(t)
	path := writeFile(t, `variant: classic
weapon:
  cooldown_ms: 400
colors:
  bullet: "#00ff00"
terminal:
  hold_ticks: 12
`)

	cfg, _, err := Load(path, VariantArcade, testResolver)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Weapon.CooldownMs != Arcade().Weapon.CooldownMs {
		t.Errorf("CooldownMs = %d, expected arcade's %d", cfg.Weapon.CooldownMs, Arcade().Weapon.CooldownMs)
	}
	if cfg.Colors.Bullet != "#00ff00" {
		t.Errorf("Colors.Bullet = %q, expected #00ff00", cfg.Colors.Bullet)
	}
	if cfg.Colors.Player != Arcade().Colors.Player {
		t.Errorf("Colors.Player = %q, expected untouched", cfg.Colors.Player)
	}
	if cfg.Terminal.HoldTicks != 12 {
		t.Errorf("Terminal.HoldTicks = %d, expected 12", cfg.Terminal.HoldTicks)
	}
}

func TestLoadLocalConfigDir(t *testing.T) {
	isolate(t)
	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "shooter.yaml"), []byte("enemies:\n  count: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("", "", testResolver)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if source != filepath.Join("configs", "shooter.yaml") {
		t.Errorf("source = %q", source)
	}
	if cfg.Enemies.Count != 3 {
		t.Errorf("Enemies.Count = %d, expected 3", cfg.Enemies.Count)
	}
}

func TestLoadSkipsBrokenLocalConfig(t *testing.T) {
	isolate(t)
	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "shooter.yaml"), []byte("screen: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, source, err := Load("", "", testResolver)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if source != SourceBuiltin {
		t.Errorf("source = %q, expected built-in", source)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		path    string
		variant string
		wantSub string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), "", "failed to read"},
		{"malformed file", writeFile(t, "screen: [not a map"), "", "failed to parse"},
		{"unknown variant", "", "turbo", "unknown variant"},
		{"invalid values", writeFile(t, "tick_rate: 0\n"), "", "tick_rate"},
		{"bad fire mode", writeFile(t, "weapon:\n  fire_mode: burst\n"), "", "fire_mode"},
		{"bad color", writeFile(t, "colors:\n  enemy: red\n"), "", "colors.enemy"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Load(tc.path, tc.variant, testResolver)
			if err == nil {
				t.Fatal("Load() error = nil, expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("Load() error = %q, expected it to mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Classic()
	cfg.TickRate = 0
	cfg.Enemies.Count = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected an error")
	}
	for _, sub := range []string{"tick_rate", "enemies.count"} {
		if !strings.Contains(err.Error(), sub) {
			t.Errorf("Validate() = %q, expected it to mention %q", err, sub)
		}
	}
}

func TestPalette(t *testing.T) {
	p, err := Arcade().Palette()
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if p.Bullet.Hex() != "#6464ff" {
		t.Errorf("Bullet = %s, expected #6464ff", p.Bullet.Hex())
	}
	if p.Player.Hex() != "#00ff00" {
		t.Errorf("Player = %s, expected #00ff00", p.Player.Hex())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Arcade())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "fire_mode: held") {
		t.Errorf("Marshal() output missing fire_mode:\n%s", data)
	}
}
