package maps

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading maps from a directory tree.
type Loader struct {
	fsys fs.FS
	name string
}

// NewLoader creates a loader for the maps under root. A leading ~ is
// expanded to the home directory.
func NewLoader(root string) *Loader {
	if strings.HasPrefix(root, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, root[1:])
		}
	}
	return &Loader{fsys: os.DirFS(root), name: root}
}

// NewFSLoader creates a loader over any file system.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{fsys: fsys, name: name}
}

// Builtin returns a loader for the maps shipped with the game.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return NewFSLoader(sub, "builtin")
}

// LoadAll recursively scans and loads all map files.
// Invalid files are skipped. Returns maps sorted by ID.
func (l *Loader) LoadAll() ([]Map, error) {
	var all []Map

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		m, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		all = append(all, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.name, err)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

// LoadFile loads a single map file relative to the loader root.
func (l *Loader) LoadFile(p string) (Map, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	m, err := parseByExtension(data, path.Ext(p))
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	m.FilePath = path.Join(l.name, p)
	return m, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}
	for _, m := range all {
		if m.ID == id {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("map not found: %s", id)
}

// ListIDs returns all map IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, m := range all {
		ids[i] = m.ID
	}
	return ids, nil
}

// LoadPath loads a map file from anywhere on disk.
func LoadPath(p string) (Map, error) {
	return NewLoader(filepath.Dir(p)).LoadFile(filepath.Base(p))
}

// Resolve finds a map by file path or ID. A path to an existing file wins,
// then the first loader that knows the ID.
func Resolve(ref string, loaders ...*Loader) (Map, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadPath(ref)
	}
	for _, l := range loaders {
		if m, err := l.LoadByID(ref); err == nil {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("map not found: %s", ref)
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}

func parseByExtension(data []byte, ext string) (Map, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Map{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
