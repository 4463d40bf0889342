package project

import (
	"path/filepath"
)

// Detect walks up the directory tree from startPath looking for the marker
// directory. See the package documentation for the stopping rules.
func (d *detector) Detect(startPath string) (*Context, error) {
	dir, err := filepath.Abs(startPath)
	if err != nil {
		return nil, err
	}
	home := ""
	if d.home != "" {
		if home, err = filepath.Abs(d.home); err != nil {
			return nil, err
		}
	}

	for {
		if dir != home {
			if candidate := filepath.Join(dir, d.marker); d.isDir(candidate) {
				return &Context{RootPath: dir, DataDir: candidate}, nil
			}
		}
		if d.isDir(filepath.Join(dir, ".git")) {
			return nil, ErrNoProjectFound
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoProjectFound
		}
		dir = parent
	}
}

func (d *detector) isDir(path string) bool {
	info, err := d.fs.Stat(path)
	return err == nil && info.IsDir()
}
