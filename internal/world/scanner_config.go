package world

import (
	"path/filepath"
	"strings"

	"frontbundle/internal/config"
)

// SelectorConfig controls what the selector considers and where it looks.
type SelectorConfig struct {
	Root        string
	Trail       []string
	TargetDirs  []string
	SkipDirs    map[string]bool
	Extensions  []string
	BarrelFiles map[string]bool
}

// SelectorConfigFrom adapts the loaded world config.
func SelectorConfigFrom(w config.WorldConfig) SelectorConfig {
	barrels := make(map[string]bool, len(w.BarrelFiles))
	for _, b := range w.BarrelFiles {
		barrels[b] = true
	}
	root := w.Root
	if root == "" {
		root = "."
	}
	return SelectorConfig{
		Root:        root,
		Trail:       append([]string(nil), w.Trail...),
		TargetDirs:  append([]string(nil), w.TargetDirs...),
		SkipDirs:    w.SkipSet(),
		Extensions:  append([]string(nil), w.Extensions...),
		BarrelFiles: barrels,
	}
}

// isSourceFile reports whether a file name carries a recognized extension
// and is not a barrel file. Matching is case-sensitive.
func (c SelectorConfig) isSourceFile(name string) bool {
	if c.BarrelFiles[name] {
		return false
	}
	for _, ext := range c.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// resolve maps a configured path onto the filesystem.
func (c SelectorConfig) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root, p)
}
