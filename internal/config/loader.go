package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Resolver maps a variant name to that variant's default configuration.
type Resolver func(name string) (ShooterConfig, error)

// SourceBuiltin is reported when no configuration file was found.
const SourceBuiltin = "built-in"

// Load builds the session configuration.
// File search order: customPath -> ~/.shooter/shooter.yaml -> ./configs/shooter.yaml.
// The base variant is the variant argument if set, else the file's
// "variant" key, else DefaultVariant. Keys present in the file override the
// base variant's defaults. A file written for another variant only
// contributes its colors and terminal settings. Returns the config and
// where it came from.
func Load(customPath, variant string, resolve Resolver) (ShooterConfig, string, error) {
	data, source, err := readConfigFile(customPath)
	if err != nil {
		return ShooterConfig{}, "", err
	}

	var fileVariant string
	if data != nil {
		var probe struct {
			Variant string `yaml:"variant"`
		}
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return ShooterConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", source, err)
		}
		fileVariant = probe.Variant
	}

	base := variant
	if base == "" {
		base = fileVariant
	}
	if base == "" {
		base = DefaultVariant
	}

	cfg, err := resolve(base)
	if err != nil {
		return ShooterConfig{}, "", err
	}

	if data != nil {
		if err := overlay(&cfg, data, fileVariant == "" || fileVariant == base); err != nil {
			return ShooterConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", source, err)
		}
	}
	cfg.Variant = base

	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, "", fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// overlay applies file keys to cfg. Unless full is set only the sections
// that do not define a variant's feel are applied.
func overlay(cfg *ShooterConfig, data []byte, full bool) error {
	if full {
		return yaml.Unmarshal(data, cfg)
	}
	shared := struct {
		Colors   ColorConfig    `yaml:"colors"`
		Terminal TerminalConfig `yaml:"terminal"`
	}{cfg.Colors, cfg.Terminal}
	if err := yaml.Unmarshal(data, &shared); err != nil {
		return err
	}
	cfg.Colors, cfg.Terminal = shared.Colors, shared.Terminal
	return nil
}

// readConfigFile returns the first configuration file found.
// A custom path must exist and parse; the well-known locations are skipped
// silently when missing or malformed. Returns nil data when nothing is found.
func readConfigFile(customPath string) ([]byte, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, new(ShooterConfig)); err != nil {
			return nil, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return data, customPath, nil
	}

	for _, path := range []string{userConfigPath("shooter.yaml"), filepath.Join("configs", "shooter.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, new(ShooterConfig)); err != nil {
			continue
		}
		return data, path, nil
	}

	return nil, SourceBuiltin, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", filename)
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
