// FILE: memlog/src/internal/config/saver.go
package config

import (
	"fmt"

	lconfig "github.com/lixenwraith/config"
)

// Saves the configuration to the specified file path as TOML.
func (c *Config) SaveToFile(path string) error {
	if path == "" {
		return fmt.Errorf("cannot save config: path is empty")
	}

	// One-shot CLI actions are not persisted
	snapshot := *c
	snapshot.SaveConfig = ""
	snapshot.ShowVersion = false

	// Temporary lconfig instance holding only the snapshot, used for the atomic write
	lcfg, err := lconfig.NewBuilder().
		WithTarget(&snapshot).
		WithArgs(nil).
		WithSources(lconfig.SourceDefault).
		WithFileFormat("toml").
		Build()
	if err != nil {
		return fmt.Errorf("failed to create config builder: %w", err)
	}

	if err := lcfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
