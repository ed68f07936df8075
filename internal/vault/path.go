package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveBasePath joins path and name into the absolute directory the
// vault is generated under. An empty path means the current directory.
func ResolveBasePath(path, name string) (string, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(filepath.Join(path, name))
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// DefaultBasePath resolves the historical default target: a folder
// named name three directory levels above the running executable.
func DefaultBasePath(name string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	// Three levels up from the executable's directory.
	root := filepath.Dir(exe)
	for i := 0; i < 3; i++ {
		root = filepath.Dir(root)
	}

	return filepath.Join(root, name), nil
}

// Exists reports whether the base path already exists as a directory.
func Exists(basePath string) bool {
	info, err := os.Stat(basePath)
	return err == nil && info.IsDir()
}
