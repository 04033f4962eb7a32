package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shwenadi/goldshop-api/internal/imagestore"
)

type Store struct {
	basePath string
}

func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}
	return &Store{basePath: basePath}, nil
}

func (s *Store) Save(_ context.Context, prefix, ext string, data []byte) (string, error) {
	key := fmt.Sprintf("%s-%d%s", prefix, time.Now().UnixNano(), ext)

	if err := os.WriteFile(filepath.Join(s.basePath, key), data, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile -> %w", err)
	}

	return key, nil
}

func (s *Store) Get(_ context.Context, storageKey string) ([]byte, string, error) {
	path, err := s.safeJoin(storageKey)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", imagestore.ErrImageNotFound
		}
		return nil, "", fmt.Errorf("os.ReadFile -> %w", err)
	}

	return data, extToContentType(path), nil
}

func (s *Store) Delete(_ context.Context, storageKey string) error {
	path, err := s.safeJoin(storageKey)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return imagestore.ErrImageNotFound
		}
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}

// safeJoin resolves storageKey under basePath and rejects directory traversal.
func (s *Store) safeJoin(storageKey string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("filepath.Abs -> %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, storageKey))
	if err != nil {
		return "", fmt.Errorf("filepath.Abs -> %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage key %q", storageKey)
	}

	return absPath, nil
}

func extToContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}
