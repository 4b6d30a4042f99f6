package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps each game's high score as a single decimal integer in
// <dir>/<gameID>.
type FileStore struct {
	dir string
}

// OpenFile creates the directory if needed.
func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file that holds the game's score.
func (s *FileStore) Path(gameID string) string {
	return filepath.Join(s.dir, gameID)
}

// HighScore reads the stored integer. A missing file reads as 0.
func (s *FileStore) HighScore(gameID string) (int, error) {
	if err := validGameID(gameID); err != nil {
		return 0, err
	}
	data, err := os.ReadFile(s.Path(gameID))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score file %s: %w", s.Path(gameID), err)
	}
	return score, nil
}

// Submit writes score if it beats the stored one.
// The file is replaced atomically so a crash never leaves a partial number.
func (s *FileStore) Submit(gameID string, score int) (bool, error) {
	best, err := s.HighScore(gameID)
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}

	tmp, err := os.CreateTemp(s.dir, gameID+".*.tmp")
	if err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		tmp.Close()
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(gameID)); err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return true, nil
}

// Clear removes the game's score file.
func (s *FileStore) Clear(gameID string) error {
	if err := validGameID(gameID); err != nil {
		return err
	}
	err := os.Remove(s.Path(gameID))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
