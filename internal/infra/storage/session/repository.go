package session

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// Repository файловое хранилище состояния клиента (токен, пользователь, тема)
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository создает хранилище поверх TOML файла
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load читает состояние из файла
// Отсутствующий файл означает пустое состояние
func (r *Repository) Load() (*State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &State{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrReadState, r.path, err)
	}

	var state State
	if _, err := toml.Decode(string(data), &state); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeState, r.path, err)
	}
	return &state, nil
}

// Save атомарно записывает состояние (через временный файл и rename)
func (r *Repository) Save(state *State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(state); err != nil {
		return fmt.Errorf("%w: failed to encode: %v", ErrWriteState, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("%w: failed to create dir %s: %v", ErrWriteState, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.toml")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", ErrWriteState, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to write temp file: %v", ErrWriteState, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to chmod temp file: %v", ErrWriteState, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %v", ErrWriteState, err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %v", ErrWriteState, r.path, err)
	}
	return nil
}
