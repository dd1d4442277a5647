package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore хранит изображения в локальном каталоге, который раздаётся
// по адресу baseURL.
type FileStore struct {
	dir     string
	baseURL string
}

// NewFileStore создаёт FileStore и при необходимости каталог dir.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	const op = "media.NewFileStore"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &FileStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir возвращает корневой каталог хранилища.
func (f *FileStore) Dir() string {
	return f.dir
}

// Save записывает файл name относительно корня хранилища.
func (f *FileStore) Save(ctx context.Context, name, _ string, data []byte) (string, error) {
	const op = "media.FileStore.Save"
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	clean := filepath.Clean("/" + name)
	path := filepath.Join(f.dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return f.baseURL + filepath.ToSlash(clean), nil
}

// Remove удаляет файл, на который указывает ref.
func (f *FileStore) Remove(ctx context.Context, ref string) error {
	const op = "media.FileStore.Remove"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	name, ok := strings.CutPrefix(ref, f.baseURL+"/")
	if !ok || name == "" {
		return fmt.Errorf("%s: %w: %s", op, ErrForeignRef, ref)
	}
	path := filepath.Join(f.dir, filepath.Clean("/"+filepath.FromSlash(name)))
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
