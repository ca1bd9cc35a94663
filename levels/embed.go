package levels

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultName = "default.json"

func LoadFromFS(name string) ([]byte, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}
