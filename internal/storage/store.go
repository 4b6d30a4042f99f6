// Package storage persists the best score per game.
// Two backends are available: a plain file holding a single integer, and
// SQLite via the pure-Go modernc.org/sqlite driver.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps the high score for each game.
type Store interface {
	// HighScore returns the best score for the game, or 0 if none is recorded.
	HighScore(gameID string) (int, error)

	// Submit records a score. It returns true when the score beat the
	// previous best and was stored.
	Submit(gameID string, score int) (bool, error)

	// Clear forgets the game's high score. Clearing an empty record is not an error.
	Clear(gameID string) error

	// Close releases the backend.
	Close() error
}

// Kind selects a storage backend.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

// DefaultPath returns the default location for a backend.
func DefaultPath(kind Kind) string {
	if kind == KindSQLite {
		return "~/.duosnake/scores.db"
	}
	return "~/.duosnake/highscores"
}

// Open opens the backend of the given kind at path.
// A leading ~ is expanded to the home directory.
func Open(kind Kind, path string) (Store, error) {
	if path == "" {
		path = DefaultPath(kind)
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindFile, "":
		s, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q (want file or sqlite)", kind)
	}
}

// expandHome expands ~ to the home directory.
func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// validGameID rejects IDs that cannot be used as a file name.
func validGameID(gameID string) error {
	if gameID == "" || strings.ContainsAny(gameID, `/\`) || gameID == "." || gameID == ".." {
		return fmt.Errorf("storage: invalid game id %q", gameID)
	}
	return nil
}
