/*
Copyright © 2026 caldernotes
*/
package cmd

import (
	"fmt"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/caldernotes/vaultgen/internal/builder"
	"github.com/caldernotes/vaultgen/internal/constants"
	"github.com/caldernotes/vaultgen/internal/manifest"
	"github.com/caldernotes/vaultgen/internal/progress"
	"github.com/caldernotes/vaultgen/internal/template"
	"github.com/caldernotes/vaultgen/internal/ui"
	"github.com/caldernotes/vaultgen/internal/vault"
)

func runGenerate(templateName, path, name string, dryRun, writeManifest, quiet, verbose bool) error {
	basePath, err := resolveTarget(path, name)
	if err != nil {
		return err
	}
	return runGenerateAt(templateName, basePath, dryRun, writeManifest, quiet, verbose)
}

// runGenerateAt generates into an already-resolved base path, so callers
// that inspect or confirm the target first act on the same directory the
// build will use.
func runGenerateAt(templateName, basePath string, dryRun, writeManifest, quiet, verbose bool) error {
	spec, err := template.Load(templateName)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	pm := progress.NewManager(progress.Options{Quiet: quiet, Verbose: verbose})
	pm.InitProgress(int64(template.CountFiles(spec.Structure.Root)), "Creating files")

	b := builder.New(builder.Options{DryRun: dryRun}, pm)
	if err := b.Run(basePath, spec.Structure.Root); err != nil {
		return err
	}

	if dryRun {
		ui.PrintDryRunNotice()
		return nil
	}

	if writeManifest {
		m := manifest.Build(spec)
		if err := manifest.Write(basePath, m); err != nil {
			return fmt.Errorf("failed to write generation manifest: %w", err)
		}
		pm.PrintVerbose("Manifest written: %s generation %s\n", spec.Name, m.GenerationID)
	}

	if !quiet {
		ui.PrintSuccessMessage(spec, basePath)
	}

	return nil
}

// resolveTarget picks the base path: an explicit --path wins, otherwise
// the historical convention of three levels above the executable.
func resolveTarget(path, name string) (string, error) {
	if name == "" {
		name = constants.DefaultVaultName
	}
	if path != "" {
		return vault.ResolveBasePath(path, name)
	}
	return vault.DefaultBasePath(name)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a template vault on disk",
	Long: dedent.Dedent(`
		Generate materializes a vault template as folders and placeholder
		files. Existing directories are reused and existing placeholder
		files are overwritten, so re-running is always safe.

		Without --path the vault is created as 'Template_Vault' three
		directory levels above the vaultgen executable, matching the
		plugin layout this tool was originally built for.

		Examples:
		  vaultgen generate
		  vaultgen generate --path ~/notes --name "My Vault"
		  vaultgen generate --template research --dry-run
		  vaultgen generate --path . --manifest
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateName, _ := cmd.Flags().GetString("template")
		path, _ := cmd.Flags().GetString("path")
		name, _ := cmd.Flags().GetString("name")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		writeManifest, _ := cmd.Flags().GetBool("manifest")
		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")

		return runGenerate(templateName, path, name, dryRun, writeManifest, quiet, verbose)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("template", "t", template.DefaultName, "Template to generate")
	generateCmd.Flags().StringP("path", "p", "", "Directory to create the vault in (default: three levels above the executable)")
	generateCmd.Flags().StringP("name", "n", constants.DefaultVaultName, "Name of the vault folder")
	generateCmd.Flags().Bool("dry-run", false, "Show what would be created without writing anything")
	generateCmd.Flags().Bool("manifest", false, "Record a generation manifest under .vaultgen/")
}
