package utils

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppDirName is the directory name used under the platform config dir.
const AppDirName = "wordcheck"

// PathResolver resolves config and data file locations for the wordcheck binary
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", AppDirName)
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, "."+AppDirName)
	}
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}

// GetConfigPath returns the full path for a file in the config directory.
// Falls back to ~/.wordcheck, the temp dir and finally the executable dir
// when the preferred directory is not writable.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	candidates := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, "."+AppDirName),
		filepath.Join(os.TempDir(), AppDirName),
		pr.executableDir,
	}

	errs := []error{os.ErrPermission}
	for _, dir := range candidates {
		status := CheckDir(dir)
		if !status.Writable {
			log.Debugf("Config dir %s not usable: %v", dir, status.Err)
			errs = append(errs, status.Err)
			continue
		}
		path := filepath.Join(dir, filename)
		if len(errs) > 1 {
			log.Warnf("Using fallback config location %s (%s: %v)", path, candidates[0], errs[1])
		}
		return path, nil
	}
	return "", errors.Join(errs...)
}

// ResolveWordFile finds a word file given as absolute, executable-relative
// or working-dir-relative path. The input is returned unchanged if nothing matches.
func (pr *PathResolver) ResolveWordFile(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	candidates := []string{filepath.Join(pr.executableDir, path)}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	for _, c := range candidates {
		if FileExists(c) {
			log.Debugf("Resolved word file %s -> %s", path, c)
			return c
		}
	}
	return ResolveFile(path)
}

// ResolveFile returns an absolute version of path, or "" for an empty path.
// A path that cannot be made absolute is returned as given.
func ResolveFile(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
