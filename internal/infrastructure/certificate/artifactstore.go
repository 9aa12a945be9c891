package certificate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"certhub/internal/domain/certificate"
	"certhub/internal/shared/id"
)

// FSArtifactStore keeps rendered certificates on the local filesystem under a
// single non-listable directory. File names carry a random suffix so they
// cannot be guessed from the public ID alone.
type FSArtifactStore struct {
	dir string
}

func NewFSArtifactStore(dir string) (*FSArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &FSArtifactStore{dir: dir}, nil
}

// Store writes the rendered bytes and returns the generated file name.
func (s *FSArtifactStore) Store(kind certificate.TemplateKind, publicID string, data []byte) (string, error) {
	suffix, err := id.RandomHex(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate artifact suffix: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%s.pdf", kind, publicID, suffix)
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return filename, nil
}

// Path returns the absolute path of a stored artifact. The filename is
// confined to the artifact directory; traversal segments are rejected.
func (s *FSArtifactStore) Path(filename string) (string, error) {
	if filename == "" || strings.Contains(filename, "/") || strings.Contains(filename, "\\") || strings.Contains(filename, "..") {
		return "", fmt.Errorf("invalid artifact filename: %q", filename)
	}

	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("artifact not found: %w", err)
	}

	return path, nil
}

// Remove deletes a stored artifact. A missing file is not an error.
func (s *FSArtifactStore) Remove(filename string) error {
	path, err := s.Path(filename)
	if err != nil {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove artifact: %w", err)
	}
	return nil
}
