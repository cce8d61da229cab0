package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DeckDir         string `toml:"deck_dir"`
	DefaultHandSize int    `toml:"default_hand_size"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the path to the saved-deck library, honoring
// a deck_dir override from the config file
func GetDeckLibraryPath() string {
	config, err := LoadConfig()
	if err == nil && config.DeckDir != "" {
		return config.DeckDir
	}
	return filepath.Join(GetXDGDataHome(), "deckhand", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "deckhand", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := &Config{
		DefaultHandSize: 5,
	}

	// Create the file
	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}

// GetDeckPath resolves the path to a saved deck, either in the deck
// library or as a literal file path
func GetDeckPath(deckName string) (string, error) {
	// First, try to find the deck in the deck library
	libraryPath := GetDeckLibraryPath()
	deckPath := filepath.Join(libraryPath, deckName)

	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a literal path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// SavePath returns the path a deck of the given name should be saved to,
// creating the deck library directory if needed. Names containing a path
// separator are used as-is.
func SavePath(deckName string) (string, error) {
	if filepath.Base(deckName) != deckName {
		return deckName, nil
	}

	libraryPath := GetDeckLibraryPath()
	if err := os.MkdirAll(libraryPath, 0755); err != nil {
		return "", fmt.Errorf("error creating deck library: %v", err)
	}

	return filepath.Join(libraryPath, deckName), nil
}

// GetDefaultHandSize returns the default hand size from config
func GetDefaultHandSize() (int, error) {
	config, err := LoadConfig()
	if err != nil {
		return 0, err
	}

	return config.DefaultHandSize, nil
}
