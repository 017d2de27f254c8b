package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// FileStorage はキーごとに1ファイルを置くローカル保存（デフォルト）。
type FileStorage struct {
	dir string
}

// DI
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get はキーの値を読む。ファイルが無ければ ok=false。
func (s *FileStorage) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Set はキーの値を上書き保存する。
func (s *FileStorage) Set(key string, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o644)
}

// Remove はキーを削除する。無ければ何もしない。
func (s *FileStorage) Remove(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
