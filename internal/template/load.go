package template

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/caldernotes/vaultgen/internal/fs"
)

// Spec is a vault template as stored on disk.
type Spec struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Version     string   `yaml:"version"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Structure   Tree     `yaml:"structure"`
}

// Tree wraps a Node so the branch/leaf union can be decoded from YAML.
type Tree struct {
	Root Node
}

// UnmarshalYAML decodes a nested YAML mapping into the Branch/Leaf tree.
// Mappings become branches, sequences become leaves. An empty or null
// value is an empty branch, so `Archive: {}` stays a plain directory.
func (t *Tree) UnmarshalYAML(value *yaml.Node) error {
	root, err := decodeNode(value)
	if err != nil {
		return err
	}
	t.Root = root
	return nil
}

func decodeNode(value *yaml.Node) (Node, error) {
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}

	switch value.Kind {
	case yaml.MappingNode:
		branch := make(Branch, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			child, err := decodeNode(value.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key.Value, err)
			}
			branch = append(branch, Child{Name: key.Value, Node: child})
		}
		return branch, nil

	case yaml.SequenceNode:
		leaf := make(Leaf, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("file list entries must be names, got %s at line %d", kindName(item.Kind), item.Line)
			}
			leaf = append(leaf, item.Value)
		}
		return leaf, nil

	case yaml.ScalarNode:
		if value.Tag == "!!null" || value.Value == "" {
			return Branch{}, nil
		}
		return nil, fmt.Errorf("unexpected value %q at line %d: want a mapping of folders or a list of files", value.Value, value.Line)

	default:
		return nil, fmt.Errorf("unexpected %s at line %d: want a mapping of folders or a list of files", kindName(value.Kind), value.Line)
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}

// TemplatesDirectory returns the path to the user templates directory,
// which is ~/.config/vaultgen/templates.
func TemplatesDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "vaultgen", "templates"), nil
}

// EnsureTemplatesDirectory creates the user templates directory if needed.
func EnsureTemplatesDirectory() error {
	templatesDir, err := TemplatesDirectory()
	if err != nil {
		return err
	}
	return fs.EnsureDirectory(templatesDir)
}

// ListAvailable lists user templates plus the built-in default.
func ListAvailable() ([]string, error) {
	templatesDir, err := TemplatesDirectory()
	if err != nil {
		return nil, err
	}

	var templates []string

	if _, err := os.Stat(templatesDir); !os.IsNotExist(err) {
		entries, err := os.ReadDir(templatesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read templates directory: %v", err)
		}

		for _, entry := range entries {
			if !entry.IsDir() && filepath.Ext(entry.Name()) == ".yaml" {
				templates = append(templates, strings.TrimSuffix(entry.Name(), ".yaml"))
			}
		}
	}

	if !slices.Contains(templates, DefaultName) {
		templates = append(templates, DefaultName)
	}

	return templates, nil
}

// Load resolves a template by name. The built-in default is returned
// directly; anything else is read from the user templates directory.
func Load(name string) (*Spec, error) {
	if name == "" || name == DefaultName {
		return &Spec{
			Name:        DefaultName,
			Description: "University, work and personal note-taking skeleton",
			Version:     "1.0",
			Structure:   Tree{Root: Default()},
		}, nil
	}

	templatesDir, err := TemplatesDirectory()
	if err != nil {
		return nil, err
	}

	templatePath := filepath.Join(templatesDir, name+".yaml")
	data, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("template '%s' not found in %s", name, templatesDir)
		}
		return nil, fmt.Errorf("failed to read template file: %v", err)
	}

	return Parse(data)
}

// Parse decodes and validates a template spec.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse template file: %v", err)
	}
	if spec.Structure.Root == nil {
		spec.Structure.Root = Branch{}
	}
	if err := Validate(spec.Structure.Root); err != nil {
		return nil, fmt.Errorf("invalid template structure: %w", err)
	}
	return &spec, nil
}
