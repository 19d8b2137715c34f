package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the level loaded when none is named.
const DefaultLevel = "classic"

// Level is the on-disk description of a maze: one string per grid row and a
// list of spawn entities in cell coordinates.
type Level struct {
	Name     string   `json:"name"`
	TileSize int      `json:"tile_size"`
	Rows     []string `json:"rows"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity is a spawn marker. X is the column and Y the row.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decodeLevel(data)
}

// Load reads a level by name. A path to an existing file on disk wins over
// the embedded levels; otherwise name is looked up in LevelsFS with an
// optional .json extension.
func Load(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if data, err := os.ReadFile(name); err == nil {
		return decodeLevel(data)
	}
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	return LoadLevelFromFS(filepath.ToSlash(filepath.Base(name)))
}

func decodeLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}
