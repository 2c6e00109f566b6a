package config

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultName is the embedded binding file used when no other is given.
const DefaultName = "bindings.yaml"

//go:embed defaults/*.yaml defaults/*.toml
var DefaultsFS embed.FS

// Read returns the file at name on disk, or the embedded default of the
// same base name when the disk has none.
func Read(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return DefaultsFS.ReadFile(embeddedPath(name))
}

func embeddedPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		s = after
	}
	s = strings.TrimPrefix(s, "defaults/")
	return path.Join("defaults", path.Base(s))
}
