package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DirStatus tells whether a directory exists and accepts new files.
// Err explains why it is not usable.
type DirStatus struct {
	Exists   bool
	Writable bool
	Err      error
}

// FileExists reports whether path names a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureDir creates dirPath and its parents if needed.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile encodes data as TOML into filePath.
// The file is written next to its destination and renamed into place, so a
// failed write never leaves a truncated config behind.
func SaveTOMLFile(data any, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := EnsureDir(dir); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}

	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filePath)
}

// CheckDir creates dirPath when missing and tries to write a file in it.
func CheckDir(dirPath string) DirStatus {
	info, err := os.Stat(dirPath)
	switch {
	case err == nil && !info.IsDir():
		return DirStatus{Exists: true, Err: fmt.Errorf("%s is not a directory", dirPath)}
	case err != nil:
		if err := EnsureDir(dirPath); err != nil {
			return DirStatus{Err: err}
		}
	}

	status := DirStatus{Exists: true}
	if err := checkWritable(dirPath); err != nil {
		status.Err = err
		return status
	}
	status.Writable = true
	return status
}

func checkWritable(dirPath string) error {
	file, err := os.CreateTemp(dirPath, ".write_test-*")
	if err != nil {
		return err
	}
	file.Close()
	return os.Remove(file.Name())
}
