package cart

import (
	"encoding/json"
	"errors"
	"os"
)

// Storage persists the serialized cart line array under a single key,
// the way a browser cart lives under one localStorage entry.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

// FileStorage keeps the cart in one JSON file.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (s *FileStorage) Load() ([]Line, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *FileStorage) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// MemoryStorage holds the serialized cart in memory. It round-trips
// through JSON like the durable backends so tests exercise the same
// serialization path.
type MemoryStorage struct {
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]Line, error) {
	if s.data == nil {
		return nil, nil
	}
	var lines []Line
	if err := json.Unmarshal(s.data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *MemoryStorage) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}
