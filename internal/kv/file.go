package kv

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const (
	fileExt        = ".json"
	checksumSuffix = ".checksum"
	tempSuffix     = ".tmp"
	lockSuffix     = ".lock"
	backupSuffix   = ".bak"
)

// FileSlot stores each key as its own file under a directory.
// Writes go to a temp file first and are renamed into place; a SHA256 checksum
// sidecar is written alongside and verified on read.
type FileSlot struct {
	fs  afero.Fs
	dir string
	// locks are only taken on the OS filesystem; afero's in-memory fs has no fds.
	useLock bool
}

// NewFileSlot creates a file slot rooted at dir on fs. The directory is created if needed.
func NewFileSlot(fsys afero.Fs, dir string) (*FileSlot, error) {
	if dir == "" {
		dir = "."
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	_, isOS := fsys.(*afero.OsFs)
	return &FileSlot{fs: fsys, dir: dir, useLock: isOS}, nil
}

// Path returns the data file used for key.
func (s *FileSlot) Path(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

func (s *FileSlot) lock(key string) (func(), error) {
	if !s.useLock {
		return func() {}, nil
	}
	flk := flock.New(s.Path(key) + lockSuffix)
	if err := flk.Lock(); err != nil {
		return nil, fmt.Errorf("could not lock %s: %w", s.Path(key), err)
	}
	return func() { _ = flk.Unlock() }, nil
}

// Get reads the value for key and verifies its checksum when a sidecar exists.
func (s *FileSlot) Get(key string) ([]byte, error) {
	unlock, err := s.lock(key)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.read(s.Path(key))
}

// read loads path and checks it against its checksum sidecar.
func (s *FileSlot) read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	checksumPath := path + checksumSuffix
	expected, err := afero.ReadFile(s.fs, checksumPath)
	switch {
	case err == nil:
		if actual := calculateChecksum(data); strings.TrimSpace(string(expected)) != actual {
			return nil, fmt.Errorf("checksum mismatch for %s - file is corrupt or tampered", path)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Written by something other than this slot; accepted as-is.
	default:
		return nil, fmt.Errorf("error reading checksum file %s: %w", checksumPath, err)
	}
	return data, nil
}

// backupUnreadable copies the current data file to a .bak sibling when it
// fails verification, so an overwrite never loses a hand-edited or half-written file.
func (s *FileSlot) backupUnreadable(path string) error {
	_, err := s.read(path)
	if err == nil || errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	data, readErr := afero.ReadFile(s.fs, path)
	if readErr != nil {
		return fmt.Errorf("failed to read %s for backup: %w", path, readErr)
	}
	backupPath := path + backupSuffix
	if err := afero.WriteFile(s.fs, backupPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to back up %s: %w", path, err)
	}
	slog.Warn("replacing unreadable data file, previous contents kept", "path", path, "backup", backupPath, "reason", err)
	return nil
}

// Set writes value for key atomically, then its checksum.
func (s *FileSlot) Set(key string, value []byte) error {
	unlock, err := s.lock(key)
	if err != nil {
		return err
	}
	defer unlock()

	path := s.Path(key)
	tempPath := path + tempSuffix
	checksumPath := path + checksumSuffix
	tempChecksumPath := checksumPath + tempSuffix

	defer func() { _ = s.fs.Remove(tempPath) }()
	defer func() { _ = s.fs.Remove(tempChecksumPath) }()

	if err := s.backupUnreadable(path); err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, tempPath, value, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary data file %s: %w", tempPath, err)
	}
	if err := afero.WriteFile(s.fs, tempChecksumPath, []byte(calculateChecksum(value)), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary checksum file %s: %w", tempChecksumPath, err)
	}
	if err := s.fs.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tempPath, path, err)
	}
	if err := s.fs.Rename(tempChecksumPath, checksumPath); err != nil {
		// Data is in place but the old checksum would now reject it.
		_ = s.fs.Remove(checksumPath)
		return fmt.Errorf("data file %s updated, but failed to update checksum file: %w", path, err)
	}
	return nil
}

// Close is a no-op; locks are held only for the duration of each call.
func (s *FileSlot) Close() error {
	return nil
}
