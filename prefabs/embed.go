package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

var (
	dirMu   sync.RWMutex
	diskDir = "prefabs"
)

// SetDir changes the directory checked for on-disk overrides. An empty dir
// disables overrides so only the embedded copies are used.
func SetDir(dir string) {
	dirMu.Lock()
	diskDir = dir
	dirMu.Unlock()
}

// Dir returns the current override directory.
func Dir() string {
	dirMu.RLock()
	defer dirMu.RUnlock()
	return diskDir
}

// Load reads a spec, preferring the on-disk copy so edits are picked up
// without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if path, ok := diskPath(clean); ok {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript reads a tengo script with the same disk-first rule.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if path, ok := diskPath(clean); ok {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return ScriptsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	path, ok := diskPath(cleanPrefabPath(name))
	if !ok {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPath(clean string) (string, bool) {
	dir := Dir()
	if dir == "" || clean == "" {
		return "", false
	}
	return filepath.Join(dir, filepath.FromSlash(clean)), true
}
