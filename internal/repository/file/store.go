package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/utafrali/mangomarket/pkg/errors"
)

const (
	checkoutDir = "checkout"
	cartDir     = "cart"
)

// Store keeps one JSON document per device and kind under a root directory:
// <root>/checkout/<device>.json and <root>/cart/<device>.json.
type Store struct {
	root string
}

// NewStore creates the directory layout under root.
func NewStore(root string) (*Store, error) {
	for _, dir := range []string{checkoutDir, cartDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}
	return &Store{root: root}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) path(kind, deviceID string) (string, error) {
	name := deviceID + ".json"
	if deviceID == "" || !filepath.IsLocal(name) || strings.ContainsAny(deviceID, `/\`) {
		return "", fmt.Errorf("device id %q: %w", deviceID, apperrors.ErrInvalidInput)
	}
	return filepath.Join(s.root, kind, name), nil
}

func (s *Store) read(kind, deviceID string) ([]byte, error) {
	p, err := s.path(kind, deviceID)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

// write replaces the document atomically so readers never see a partial file.
func (s *Store) write(kind, deviceID string, data []byte) error {
	p, err := s.path(kind, deviceID)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func (s *Store) remove(kind, deviceID string) error {
	p, err := s.path(kind, deviceID)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Sweep deletes every document last written before cutoff and returns how
// many were removed.
func (s *Store) Sweep(cutoff time.Time) (int, error) {
	removed := 0
	for _, kind := range []string{checkoutDir, cartDir} {
		entries, err := os.ReadDir(filepath.Join(s.root, kind))
		if err != nil {
			return removed, fmt.Errorf("list %s: %w", kind, err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(filepath.Join(s.root, kind, e.Name())); err == nil {
					removed++
				}
			}
		}
	}
	return removed, nil
}
