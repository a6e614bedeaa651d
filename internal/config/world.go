package config

import (
	"fmt"
	"strings"
)

// WorldConfig controls which files are selected and how they are read.
type WorldConfig struct {
	// Root is the directory trail and target paths are resolved against.
	Root string `yaml:"root"`
	// Trail lists architecturally significant files, included first in this order.
	Trail []string `yaml:"trail"`
	// TargetDirs are walked recursively after the trail.
	TargetDirs []string `yaml:"target_dirs"`
	// SkipDirs names directories pruned at any depth.
	SkipDirs []string `yaml:"skip_dirs"`
	// Extensions are the recognized source suffixes (case-sensitive).
	Extensions []string `yaml:"extensions"`
	// BarrelFiles are exact file names excluded from directory walks.
	BarrelFiles []string `yaml:"barrel_files"`
	// Encoding is the text encoding files are decoded with.
	Encoding string `yaml:"encoding"`
}

// SkipSet returns SkipDirs as a lookup set.
func (w WorldConfig) SkipSet() map[string]bool {
	set := make(map[string]bool, len(w.SkipDirs))
	for _, d := range w.SkipDirs {
		set[d] = true
	}
	return set
}

func (w WorldConfig) validate() error {
	if len(w.Extensions) == 0 {
		return fmt.Errorf("at least one extension is required")
	}
	for _, ext := range w.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	for _, d := range w.SkipDirs {
		if d == "" || strings.ContainsAny(d, `/\`) {
			return fmt.Errorf("skip dir %q must be a bare directory name", d)
		}
	}
	switch strings.ToLower(w.Encoding) {
	case "utf-8", "utf8":
	default:
		return fmt.Errorf("unsupported encoding %q", w.Encoding)
	}
	return nil
}
