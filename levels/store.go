package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrNoPath = errors.New("levels: store has no path")

// Store reads and writes one descriptor. An empty Path reads the embedded
// default level and refuses to save. With Fallback set, a Path that does
// not exist yet also reads the embedded level.
type Store struct {
	Path     string
	Blocks   BlockSet
	Fallback bool
}

// Load reads, parses and validates the descriptor.
func (s Store) Load() (Descriptor, error) {
	var (
		data []byte
		err  error
	)
	if s.Path == "" {
		data, err = LoadFromFS(DefaultName)
	} else {
		data, err = os.ReadFile(s.Path)
		if errors.Is(err, fs.ErrNotExist) && s.Fallback {
			data, err = LoadFromFS(DefaultName)
		} else if err != nil {
			err = fmt.Errorf("levels: read %s: %w", s.Path, err)
		}
	}
	if err != nil {
		return nil, err
	}

	d, err := Decode(data, s.Blocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	return d, nil
}

// Save validates d and replaces the file through a temp file and rename.
func (s Store) Save(d Descriptor) error {
	if s.Path == "" {
		return ErrNoPath
	}
	if err := Validate(d, s.Blocks); err != nil {
		return err
	}
	data, err := Marshal(d)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("levels: save %s: %w", s.Path, err)
	}
	tmp, err := os.CreateTemp(dir, ".level-*.json")
	if err != nil {
		return fmt.Errorf("levels: save %s: %w", s.Path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("levels: save %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("levels: save %s: %w", s.Path, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("levels: save %s: %w", s.Path, err)
	}
	return nil
}

// Name is the path, or the embedded level name when no path is set.
func (s Store) Name() string {
	if s.Path == "" {
		return "embedded:" + DefaultName
	}
	return s.Path
}
