// Package project finds the family data directory that belongs to the
// current working directory.
//
// A family can live next to the files it documents (a genealogy research
// folder, a repository of scanned records) in a .familywing directory. Running
// familywing anywhere below that folder should use it, the same way git finds
// its repository from a subdirectory.
//
// Detection walks up from the start path:
//  1. A directory containing the marker directory wins immediately.
//  2. A .git directory marks a repository boundary; the walk stops there so a
//     family in an enclosing folder is not picked up by an unrelated repo.
//  3. The user's home directory is never matched. ~/.familywing is the
//     global fallback and is resolved separately.
package project

import (
	"errors"

	"github.com/spf13/afero"
)

// ErrNoProjectFound is returned when no marker directory is found.
var ErrNoProjectFound = errors.New("no project root found")

// Context describes a detected family project.
type Context struct {
	// RootPath is the directory that contains the marker directory.
	RootPath string
	// DataDir is the marker directory itself.
	DataDir string
	// GitRoot is the repository boundary the walk stopped at, if any.
	GitRoot string
}

// Detector finds the project for a start path.
type Detector interface {
	Detect(startPath string) (*Context, error)
}

// detector implements Detector using an afero filesystem.
type detector struct {
	fs     afero.Fs
	marker string
	home   string
}

// NewDetector creates a Detector that looks for marker on fs. home, when set,
// is never treated as a project root.
// Use afero.NewOsFs() for real filesystem operations,
// or afero.NewMemMapFs() for testing.
func NewDetector(fs afero.Fs, marker, home string) Detector {
	return &detector{fs: fs, marker: marker, home: home}
}
