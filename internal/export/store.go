package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var ErrArtifactNotFound = errors.New("report artifact not found")

// ArtifactStore writes report artifacts under a base directory, one
// subdirectory per user.
type ArtifactStore struct {
	baseDir string
}

// NewArtifactStore creates a store rooted at baseDir, creating the
// directory if needed.
func NewArtifactStore(baseDir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &ArtifactStore{baseDir: baseDir}, nil
}

// Save persists an artifact and returns its path relative to the base
// directory. The relative path is what gets stored on the report row so
// the base directory can move between deployments.
func (s *ArtifactStore) Save(userID, reportID uuid.UUID, extension string, data []byte) (string, error) {
	userDir := filepath.Join(s.baseDir, userID.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user artifact directory: %w", err)
	}

	relPath := filepath.Join(userID.String(), fmt.Sprintf("%s.%s", reportID, extension))
	if err := os.WriteFile(filepath.Join(s.baseDir, relPath), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return relPath, nil
}

// Resolve turns a stored relative path into an absolute path, verifying
// the artifact still exists on disk.
func (s *ArtifactStore) Resolve(relPath string) (string, error) {
	fullPath := filepath.Join(s.baseDir, relPath)
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", ErrArtifactNotFound
		}
		return "", fmt.Errorf("failed to stat artifact: %w", err)
	}
	return fullPath, nil
}

// Remove deletes an artifact. A missing file is not an error; the row
// is the source of truth and the file may already be gone.
func (s *ArtifactStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.baseDir, relPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove artifact: %w", err)
	}
	return nil
}
