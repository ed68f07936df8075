package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caldernotes/vaultgen/internal/constants"
)

// EnsureDirectory ensures a directory exists, creating it if necessary
func EnsureDirectory(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, constants.StandardDirPerms)
	} else if err != nil {
		return err
	}
	return nil
}

// IsVaultGenerated checks if the given path contains a generated vault
// by looking for its metadata directory.
func IsVaultGenerated(basePath string) bool {
	metaDir := filepath.Join(basePath, constants.MetaDirName)
	info, err := os.Stat(metaDir)
	return err == nil && info.IsDir()
}

// VerifyDirAndReturnInfo verifies that a path exists and is a directory.
func VerifyDirAndReturnInfo(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path does not exist: %s", path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("permission denied: %s", path)
		}
		return nil, fmt.Errorf("error accessing path: %v", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}
	return info, nil
}
