/*
Copyright © 2026 caldernotes
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vaultgen",
	Short: "vaultgen - bootstrap a note-taking vault skeleton",
	Long: `vaultgen generates a nested directory-and-file skeleton ("template vault")
for personal note-taking. The built-in template covers university, work
and personal notes; custom templates can be dropped into
~/.config/vaultgen/templates as YAML files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Disable progress bars and reduce output")
}
