package world

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"frontbundle/internal/logging"
	"frontbundle/internal/types"
)

// Selector picks the ordered, duplicate-free list of files to bundle.
type Selector struct {
	cfg SelectorConfig
}

func NewSelector(cfg SelectorConfig) *Selector {
	return &Selector{cfg: cfg}
}

// SelectResult represents the outcome of one selection pass.
type SelectResult struct {
	Candidates     []types.Candidate
	TrailMissing   []string // trail entries not found on disk
	DirectoryCount int      // directories listed during the walk
	PrunedDirs     int      // directories skipped by name
	Duplicates     int      // files dropped because their canonical path was already selected
}

// selection is the state of a single Select call.
type selection struct {
	absRoot string
	seen    map[string]bool
	result  *SelectResult
}

// Select runs the trail pass and then walks each target directory.
// Missing trail files and missing target directories are skipped silently.
func (s *Selector) Select(ctx context.Context) (*SelectResult, error) {
	absRoot, err := filepath.Abs(s.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", s.cfg.Root, err)
	}
	st := &selection{
		absRoot: absRoot,
		seen:    make(map[string]bool),
		result:  &SelectResult{Candidates: make([]types.Candidate, 0)},
	}

	for _, p := range s.cfg.Trail {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		full := s.cfg.resolve(p)
		if _, err := os.Stat(full); err != nil {
			logging.SelectDebug("trail entry %s not found: %v", p, err)
			st.result.TrailMissing = append(st.result.TrailMissing, p)
			continue
		}
		st.add(p, full, types.OriginTrail)
	}

	for _, dir := range s.cfg.TargetDirs {
		info, err := os.Stat(s.cfg.resolve(dir))
		if err != nil || !info.IsDir() {
			logging.SelectDebug("target directory %s not present, skipping", dir)
			continue
		}
		if err := s.walk(ctx, st, dir); err != nil {
			return nil, err
		}
	}

	logging.Select("selected %d files (%d trail missing, %d duplicates, %d pruned dirs)",
		len(st.result.Candidates), len(st.result.TrailMissing), st.result.Duplicates, st.result.PrunedDirs)
	return st.result, nil
}

// walk visits dir top-down: its eligible files in lexical order first, then
// each non-skipped subdirectory in lexical order. Skipped names are pruned
// before descending, so nested occurrences are never visited.
func (s *Selector) walk(ctx context.Context, st *selection, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full := s.cfg.resolve(dir)
	entries, err := os.ReadDir(full)
	if err != nil {
		logging.Get(logging.CategorySelect).Warn("skipping unreadable directory %s: %v", dir, err)
		return nil
	}
	st.result.DirectoryCount++

	var subdirs []string
	for _, e := range entries {
		name := e.Name()
		path := filepath.Join(dir, name)

		kind := entryKind(e, filepath.Join(full, name))
		switch kind {
		case kindDir:
			if s.cfg.SkipDirs[name] {
				logging.SelectDebug("pruned %s", path)
				st.result.PrunedDirs++
				continue
			}
			subdirs = append(subdirs, path)
		case kindLinkedDir, kindOther:
			// Linked directories are not followed; devices, sockets and pipes are never read.
		case kindFile:
			if !s.cfg.isSourceFile(name) {
				continue
			}
			st.add(path, filepath.Join(full, name), types.OriginWalk)
		}
	}

	for _, sub := range subdirs {
		if err := s.walk(ctx, st, sub); err != nil {
			return err
		}
	}
	return nil
}

type entryType int

const (
	kindFile entryType = iota
	kindDir
	kindLinkedDir
	kindOther
)

// entryKind classifies a directory entry. Symlinks to directories are
// reported separately; dangling symlinks count as files so they surface
// as unreadable entries.
func entryKind(e fs.DirEntry, full string) entryType {
	mode := e.Type()
	switch {
	case mode.IsDir():
		return kindDir
	case mode.IsRegular():
		return kindFile
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(full)
		if err != nil {
			return kindFile
		}
		if info.IsDir() {
			return kindLinkedDir
		}
		if info.Mode().IsRegular() {
			return kindFile
		}
		return kindOther
	default:
		return kindOther
	}
}

// add appends a candidate unless its canonical path was already selected.
func (st *selection) add(path, full string, origin types.Origin) {
	canonical := full
	if !filepath.IsAbs(canonical) {
		canonical = filepath.Join(st.absRoot, path)
	}
	canonical = filepath.Clean(canonical)

	if st.seen[canonical] {
		logging.SelectDebug("duplicate %s (%s) skipped", path, canonical)
		st.result.Duplicates++
		return
	}
	st.seen[canonical] = true
	st.result.Candidates = append(st.result.Candidates, types.Candidate{
		Path:      path,
		FullPath:  full,
		Canonical: canonical,
		Origin:    origin,
	})
}
