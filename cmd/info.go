/*
Copyright © 2026 caldernotes
*/
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/caldernotes/vaultgen/internal/fs"
	"github.com/caldernotes/vaultgen/internal/manifest"
	"github.com/caldernotes/vaultgen/internal/vault"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the generation manifest of a vault",
	Long: `Info reads the .vaultgen/manifest.yaml of a vault that was generated
with --manifest and prints what produced it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		name, _ := cmd.Flags().GetString("name")

		basePath, err := vault.ResolveBasePath(path, name)
		if err != nil {
			return err
		}

		if _, err := fs.VerifyDirAndReturnInfo(basePath); err != nil {
			return err
		}
		if !fs.IsVaultGenerated(basePath) {
			return fmt.Errorf("no generation manifest found at %s (generate with --manifest to record one)", basePath)
		}

		m, err := manifest.Load(basePath)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		// #nosec G104 - console output errors are not critical
		bold.Printf("Vault: %s\n", basePath)
		fmt.Printf("  • Template:     %s", m.Template)
		if m.Version != "" {
			fmt.Printf(" (v%s)", m.Version)
		}
		fmt.Println()
		fmt.Printf("  • Generated at: %s\n", m.GeneratedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("  • Generation:   %s\n", m.GenerationID)
		fmt.Printf("  • Contents:     %d folders, %d files\n", m.Folders, m.Files)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringP("path", "p", ".", "Directory containing the vault")
	infoCmd.Flags().StringP("name", "n", "", "Vault folder name (defaults to the path itself)")
}
