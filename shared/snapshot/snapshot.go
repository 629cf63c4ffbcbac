// Package snapshot discovers and loads the per-step position files that the
// viewer plays back. It has no dependencies on ebitengine or donburi.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("snapshot not found")
	ErrParse    = errors.New("snapshot parse failed")
	ErrNoSteps  = errors.New("no snapshot files found")
)

// Record is one object's position in a snapshot file.
type Record struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Loader returns the records stored under a step identifier.
type Loader interface {
	Load(id string) ([]Record, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(id string) ([]Record, error)

func (f LoaderFunc) Load(id string) ([]Record, error) {
	return f(id)
}

// DirLoader reads JSON snapshot files from a file system. Callers pass
// os.DirFS for a data directory or an fstest.MapFS in tests.
type DirLoader struct {
	FS fs.FS
}

// NewDirLoader returns a loader reading from fsys.
func NewDirLoader(fsys fs.FS) *DirLoader {
	return &DirLoader{FS: fsys}
}

// Load reads and parses the snapshot id.
func (l *DirLoader) Load(id string) ([]Record, error) {
	data, err := fs.ReadFile(l.FS, id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read snapshot %s: %w", id, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, id, err)
	}
	return records, nil
}

// DiscoverSteps lists the .json files at the root of fsys ordered by
// modification time, oldest first. Files with equal times keep name order.
func DiscoverSteps(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	type step struct {
		name string
		mod  int64
	}
	var steps []step
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat snapshot %s: %w", entry.Name(), err)
		}
		steps = append(steps, step{name: entry.Name(), mod: info.ModTime().UnixNano()})
	}
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	// ReadDir returns entries sorted by name, so a stable sort keeps name order for ties.
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].mod < steps[j].mod
	})

	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.name
	}
	return ids, nil
}
