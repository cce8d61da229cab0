package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestHomes points both XDG directories at fresh temp dirs so tests never
// touch the real user config.
func setTestHomes(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	return configHome, dataHome
}

func TestGetXDGHomes(t *testing.T) {
	configHome, dataHome := setTestHomes(t)

	assert.Equal(t, configHome, GetXDGConfigHome())
	assert.Equal(t, dataHome, GetXDGDataHome())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	configHome, _ := setTestHomes(t)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, config.DefaultHandSize)
	assert.Empty(t, config.DeckDir)

	// The default config file is written on first load
	assert.FileExists(t, filepath.Join(configHome, "deckhand", "config.toml"))
}

func TestLoadConfigReadsExisting(t *testing.T) {
	configHome, _ := setTestHomes(t)

	configDir := filepath.Join(configHome, "deckhand")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	contents := "deck_dir = \"/tmp/decks\"\ndefault_hand_size = 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(contents), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/decks", config.DeckDir)
	assert.Equal(t, 7, config.DefaultHandSize)
}

func TestGetDeckLibraryPath(t *testing.T) {
	_, dataHome := setTestHomes(t)

	assert.Equal(t, filepath.Join(dataHome, "deckhand", "decks"), GetDeckLibraryPath())
}

func TestGetDeckPath(t *testing.T) {
	_, dataHome := setTestHomes(t)

	libraryPath := filepath.Join(dataHome, "deckhand", "decks")
	require.NoError(t, os.MkdirAll(libraryPath, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(libraryPath, "evening-game"), []byte{}, 0644))

	path, err := GetDeckPath("evening-game")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(libraryPath, "evening-game"), path)

	_, err = GetDeckPath("no-such-deck")
	assert.Error(t, err)
}

func TestGetDeckPathLiteral(t *testing.T) {
	setTestHomes(t)

	literal := filepath.Join(t.TempDir(), "table.deck")
	require.NoError(t, os.WriteFile(literal, []byte{}, 0644))

	path, err := GetDeckPath(literal)
	require.NoError(t, err)
	assert.Equal(t, literal, path)
}

func TestSavePath(t *testing.T) {
	_, dataHome := setTestHomes(t)

	path, err := SavePath("evening-game")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "deckhand", "decks", "evening-game"), path)

	// Bare names create the library directory on demand
	assert.DirExists(t, filepath.Join(dataHome, "deckhand", "decks"))
}

func TestSavePathLiteral(t *testing.T) {
	setTestHomes(t)

	literal := filepath.Join(t.TempDir(), "table.deck")
	path, err := SavePath(literal)
	require.NoError(t, err)
	assert.Equal(t, literal, path)
}

func TestGetDefaultHandSize(t *testing.T) {
	setTestHomes(t)

	size, err := GetDefaultHandSize()
	require.NoError(t, err)
	assert.Equal(t, 5, size)
}
