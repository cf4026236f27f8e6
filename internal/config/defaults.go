package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultArcadeConfig returns the hardcoded platform configuration.
func DefaultArcadeConfig() ArcadeConfig {
	return ArcadeConfig{
		Display: DisplayConfig{
			TickRate:  60,
			HoldTicks: 8,
		},
		Storage: StorageConfig{
			DBPath: "~/.arcade/scores.db",
		},
		Server: ServerConfig{
			Address:     ":2222",
			HostKeyPath: ".ssh/arcade_host_key",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArcadeYAML
}
