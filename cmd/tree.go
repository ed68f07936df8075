/*
Copyright © 2026 caldernotes
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/ddddddO/gtree"
	"github.com/spf13/cobra"

	"github.com/caldernotes/vaultgen/internal/template"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Preview a template as an ASCII tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		templateName, _ := cmd.Flags().GetString("template")

		spec, err := template.Load(templateName)
		if err != nil {
			return fmt.Errorf("failed to load template: %w", err)
		}

		root := gtree.NewRoot(spec.Name)
		addTemplateNodes(root, spec.Structure.Root)

		if err := gtree.OutputProgrammably(os.Stdout, root); err != nil {
			return fmt.Errorf("failed to render tree: %w", err)
		}

		return nil
	},
}

func addTemplateNodes(parent *gtree.Node, node template.Node) {
	switch v := node.(type) {
	case template.Branch:
		for _, child := range v {
			addTemplateNodes(parent.Add(child.Name), child.Node)
		}
	case template.Leaf:
		for _, fileName := range v {
			parent.Add(fileName)
		}
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringP("template", "t", template.DefaultName, "Template to preview")
}
