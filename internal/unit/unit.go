// Package unit abstracts the packaging artifacts the composer reads
// metadata from. A unit is one package, bundle or metadata directory; the
// scanner processes each unit into its own result store.
package unit

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/StinkyLord/metacompose/internal/model"
)

// Unit is a single packaging artifact the composer can read files from.
type Unit interface {
	// ID is the bundle/package name of the unit.
	ID() string
	// BundleKind describes the unit's packaging.
	BundleKind() model.BundleKind
	// ListFiles returns all file paths in the unit, relative to its root,
	// in sorted order.
	ListFiles() ([]string, error)
	// ReadData returns the contents of a file previously returned by
	// ListFiles.
	ReadData(path string) ([]byte, error)
}

// DirUnit is a unit backed by a plain directory tree, e.g. an unpacked
// package or a loose metadata drop.
type DirUnit struct {
	root       string
	id         string
	bundleKind model.BundleKind
}

// NewDirUnit creates a unit for the given directory. The directory's base
// name becomes the unit ID.
func NewDirUnit(root string, bundleKind model.BundleKind) (*DirUnit, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve unit directory %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("unit directory %q does not exist: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", abs)
	}
	return &DirUnit{
		root:       abs,
		id:         filepath.Base(abs),
		bundleKind: bundleKind,
	}, nil
}

func (u *DirUnit) ID() string { return u.id }

func (u *DirUnit) BundleKind() model.BundleKind { return u.bundleKind }

// ListFiles walks the unit directory and returns all regular files as
// slash-separated relative paths, sorted.
func (u *DirUnit) ListFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(u.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".git") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(u.root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking unit %q: %w", u.id, err)
	}
	sort.Strings(files)
	return files, nil
}

// ReadData reads a file from the unit. Paths escaping the unit root are
// rejected.
func (u *DirUnit) ReadData(path string) ([]byte, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("path %q escapes unit %q", path, u.id)
	}
	return os.ReadFile(filepath.Join(u.root, clean))
}
