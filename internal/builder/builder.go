// Package builder realizes a template tree as directories and
// placeholder files on disk.
package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caldernotes/vaultgen/internal/constants"
	"github.com/caldernotes/vaultgen/internal/progress"
	"github.com/caldernotes/vaultgen/internal/template"
)

// Options configures a Builder.
type Options struct {
	// DryRun reports what would be created without touching the filesystem.
	DryRun bool
}

// Builder walks a template tree and creates its folders and files.
type Builder struct {
	options  Options
	progress *progress.Manager
}

// New creates a Builder reporting through pm.
func New(options Options, pm *progress.Manager) *Builder {
	if pm == nil {
		pm = progress.NewManager(progress.Options{})
	}
	return &Builder{options: options, progress: pm}
}

// Run creates the base directory and realizes the whole tree under it,
// framed by start and finish trace lines. A failed filesystem operation
// aborts the traversal immediately; whatever was already created stays.
func (b *Builder) Run(basePath string, root template.Node) error {
	b.progress.PrintInfo("Starting template generation in %s...\n", basePath)

	if !b.options.DryRun {
		if err := os.MkdirAll(basePath, constants.StandardDirPerms); err != nil {
			return fmt.Errorf("failed to create base directory %s: %w", basePath, err)
		}
	}

	if err := b.Build(basePath, root); err != nil {
		return err
	}

	b.progress.Finish()
	b.progress.PrintInfo("Finished generating template.\n")
	return nil
}

// Build recursively realizes node under currentPath. Directory creation
// is idempotent; existing files are overwritten with the canonical
// placeholder content.
func (b *Builder) Build(currentPath string, node template.Node) error {
	switch v := node.(type) {
	case template.Branch:
		for _, child := range v {
			path := filepath.Join(currentPath, child.Name)
			if err := b.createFolder(path); err != nil {
				return err
			}
			if err := b.Build(path, child.Node); err != nil {
				return err
			}
		}
		return nil

	case template.Leaf:
		for _, fileName := range v {
			if err := b.createFile(filepath.Join(currentPath, fileName), fileName); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown template node type %T", node)
	}
}

func (b *Builder) createFolder(path string) error {
	if !b.options.DryRun {
		if err := os.MkdirAll(path, constants.StandardDirPerms); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	b.progress.PrintInfo("Created folder: %s\n", path)
	return nil
}

func (b *Builder) createFile(path, fileName string) error {
	if !b.options.DryRun {
		content := PlaceholderContent(fileName)
		if err := os.WriteFile(path, []byte(content), constants.StandardFilePerms); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}
	b.progress.PrintInfo("Created file: %s\n", path)
	b.progress.Step()
	return nil
}
