package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var ConfigFS embed.FS

// DefaultFile is the embedded configuration shipped with the binary.
const DefaultFile = "scrubber.yaml"

// Load returns the named config file, preferring a copy on disk under config/
// over the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanConfigPath(name)
	if data, err := os.ReadFile(diskConfigPath(clean)); err == nil {
		return data, nil
	}
	return ConfigFS.ReadFile(clean)
}

func cleanConfigPath(path string) string {
	if path == "" {
		return DefaultFile
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		return after
	}
	return s
}

func diskConfigPath(clean string) string {
	return filepath.Join("config", filepath.FromSlash(clean))
}
