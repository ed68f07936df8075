/*
Copyright © 2026 caldernotes
*/
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/caldernotes/vaultgen/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available vault templates",
	Long: `Templates lists the built-in template and any custom templates found
in ~/.config/vaultgen/templates. Custom templates are YAML files whose
'structure' key nests folder mappings and file lists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := template.EnsureTemplatesDirectory(); err != nil {
			return fmt.Errorf("failed to ensure templates directory: %w", err)
		}

		templates, err := template.ListAvailable()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		if len(templates) == 0 {
			fmt.Println("No templates available.")
			return nil
		}

		bold := color.New(color.Bold)

		fmt.Println("Available templates:")
		for _, name := range templates {
			spec, err := template.Load(name)
			if err != nil {
				fmt.Printf("  %s (unreadable: %v)\n", name, err)
				continue
			}

			// #nosec G104 - console output errors are not critical
			bold.Printf("  %s", spec.Name)
			if spec.Version != "" {
				fmt.Printf(" (v%s)", spec.Version)
			}
			if spec.Description != "" {
				fmt.Printf(" - %s", spec.Description)
			}
			fmt.Println()
			fmt.Printf("    %d folders, %d files\n",
				template.CountDirs(spec.Structure.Root),
				template.CountFiles(spec.Structure.Root))
		}

		templatesDir, err := template.TemplatesDirectory()
		if err == nil {
			fmt.Printf("\nCustom templates are read from: %s\n", templatesDir)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
