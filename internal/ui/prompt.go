package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/caldernotes/vaultgen/internal/constants"
	"github.com/caldernotes/vaultgen/internal/template"
)

// GenerateInputs holds everything the interactive flow collects.
type GenerateInputs struct {
	Template string
	Name     string
	Path     string
}

// PromptForInputs guides the user through an interactive generation.
func PromptForInputs() (*GenerateInputs, error) {
	inputs := &GenerateInputs{}

	fmt.Println("📦 Setting up a new template vault")
	fmt.Println("==================================")
	fmt.Println()

	if err := promptTemplate(inputs); err != nil {
		return nil, err
	}
	if err := promptDestination(inputs); err != nil {
		return nil, err
	}

	confirmPrompt := promptui.Prompt{
		Label:     fmt.Sprintf("Generate '%s' into %s", inputs.Template, inputs.Name),
		IsConfirm: true,
		Default:   "y",
	}

	_, err := confirmPrompt.Run()
	if err != nil {
		if err == promptui.ErrAbort {
			return nil, errors.New("operation cancelled")
		}
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	return inputs, nil
}

func promptTemplate(inputs *GenerateInputs) error {
	if err := template.EnsureTemplatesDirectory(); err != nil {
		return fmt.Errorf("failed to ensure templates directory: %w", err)
	}

	templates, err := template.ListAvailable()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	templatePrompt := promptui.Select{
		Label: "Template",
		Items: templates,
		Templates: &promptui.SelectTemplates{
			Selected: "Template: {{ . }}",
			Active:   "▸ {{ . }}",
			Inactive: "  {{ . }}",
		},
	}

	_, result, err := templatePrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	inputs.Template = result
	return nil
}

func promptDestination(inputs *GenerateInputs) error {
	namePrompt := promptui.Prompt{
		Label:     "Vault folder name",
		Default:   constants.DefaultVaultName,
		AllowEdit: true,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("name must not be empty")
			}
			if strings.ContainsAny(input, `/\`) {
				return errors.New("name must not contain path separators")
			}
			return nil
		},
	}

	name, err := namePrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	inputs.Name = name

	pathPrompt := promptui.Prompt{
		Label:     "Destination directory",
		Default:   ".",
		AllowEdit: true,
	}

	path, err := pathPrompt.Run()
	if err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	inputs.Path = path
	return nil
}
