package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/caldernotes/vaultgen/internal/template"
)

// PrintSuccessMessage summarizes a finished generation run.
func PrintSuccessMessage(spec *template.Spec, basePath string) {
	separator := strings.Repeat("─", 50)

	green := color.New(color.FgGreen, color.Bold)
	faint := color.New(color.Faint)

	// #nosec G104 - console output errors are not critical
	green.Println("\n✅ Vault successfully generated!")
	fmt.Println(separator)

	fmt.Println("📦 Vault Details:")
	fmt.Printf("  • Template:  %s", spec.Name)
	if spec.Version != "" {
		fmt.Printf(" (v%s)", spec.Version)
	}
	fmt.Println()
	fmt.Printf("  • Location:  %s\n", basePath)
	fmt.Printf("  • Folders:   %d\n", template.CountDirs(spec.Structure.Root))
	fmt.Printf("  • Files:     %d\n", template.CountFiles(spec.Structure.Root))

	if len(spec.Tags) > 0 {
		fmt.Printf("  • Tags:      %s\n", strings.Join(spec.Tags, ", "))
	}

	fmt.Println("\n" + separator)
	fmt.Println("🚀 Next Steps:")
	fmt.Println("  • Open the folder in your note-taking app of choice")
	fmt.Println("  • Re-run 'vaultgen generate' any time to restore the skeleton")
	// #nosec G104 - console output errors are not critical
	faint.Println("  • Placeholder files are overwritten on every run")
}

// PrintDryRunNotice reminds the user nothing was written.
func PrintDryRunNotice() {
	yellow := color.New(color.FgYellow)
	// #nosec G104 - console output errors are not critical
	yellow.Println("\nDry run: no folders or files were created.")
}
