/*
Copyright © 2026 caldernotes
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caldernotes/vaultgen/internal/ui"
	"github.com/caldernotes/vaultgen/internal/vault"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively generate a template vault",
	Long: `Init walks through template choice and destination with prompts,
then generates the vault. Use 'generate' for the non-interactive form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := ui.PromptForInputs()
		if err != nil {
			return err
		}

		basePath, err := resolveTarget(inputs.Path, inputs.Name)
		if err != nil {
			return err
		}

		if vault.Exists(basePath) {
			ok, err := ui.ConfirmOverwrite(basePath, os.Stdin, os.Stdout)
			if err != nil {
				return fmt.Errorf("confirmation failed: %w", err)
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")

		return runGenerateAt(inputs.Template, basePath, false, false, quiet, verbose)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
