package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search directories.
const FileName = "quest.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.quest/configs/quest.yaml -> ./configs/quest.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
// The returned path is the file that was used, or empty for the embedded default.
func Load(customPath string) (QuestConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultQuestYAML)
	if err != nil {
		return DefaultQuestConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// LoadFile reads and parses a single YAML file.
func LoadFile(path string) (QuestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultQuestConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultQuestConfig.
func Parse(data []byte) (QuestConfig, error) {
	cfg := DefaultQuestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultQuestConfig(), err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg QuestConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quest", "configs", filename)
}
