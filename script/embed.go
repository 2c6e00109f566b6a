package script

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Read returns the script at name on disk, or the embedded script of the
// same base name. The .tengo extension may be omitted.
func Read(name string) ([]byte, error) {
	if filepath.Ext(name) == "" {
		name += ".tengo"
	}
	data, err := os.ReadFile(name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return ScriptsFS.ReadFile(path.Join("scripts", path.Base(strings.TrimPrefix(filepath.ToSlash(name), "scripts/"))))
}
