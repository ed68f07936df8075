// Package template defines the vault template tree and the built-in
// note-taking structure generated by vaultgen.
package template

import (
	"fmt"
	"strings"
)

// Node is one level of a vault template. A node is either a Branch
// (named subdirectories) or a Leaf (the files of a single directory).
type Node interface {
	node()
}

// Branch holds named children in declaration order. Sibling names
// must be unique.
type Branch []Child

// Child pairs a directory name with its subtree.
type Child struct {
	Name string
	Node Node
}

// Leaf lists the placeholder files of one directory, in order.
type Leaf []string

func (Branch) node() {}
func (Leaf) node()   {}

// Validate checks that every name in the tree is a usable path segment
// and that no two siblings share a name.
func Validate(n Node) error {
	switch v := n.(type) {
	case Branch:
		seen := make(map[string]struct{}, len(v))
		for _, child := range v {
			if err := validateName(child.Name); err != nil {
				return err
			}
			if _, dup := seen[child.Name]; dup {
				return fmt.Errorf("duplicate entry %q", child.Name)
			}
			seen[child.Name] = struct{}{}
			if err := Validate(child.Node); err != nil {
				return fmt.Errorf("%s: %w", child.Name, err)
			}
		}
		return nil
	case Leaf:
		seen := make(map[string]struct{}, len(v))
		for _, file := range v {
			if err := validateName(file); err != nil {
				return err
			}
			if _, dup := seen[file]; dup {
				return fmt.Errorf("duplicate file %q", file)
			}
			seen[file] = struct{}{}
		}
		return nil
	default:
		return fmt.Errorf("unknown template node type %T", n)
	}
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name %q must not contain path separators", name)
	}
	return nil
}

// CountFiles returns the number of placeholder files in the tree.
func CountFiles(n Node) int {
	switch v := n.(type) {
	case Branch:
		total := 0
		for _, child := range v {
			total += CountFiles(child.Node)
		}
		return total
	case Leaf:
		return len(v)
	default:
		return 0
	}
}

// CountDirs returns the number of directories the tree will create,
// excluding the base path itself.
func CountDirs(n Node) int {
	switch v := n.(type) {
	case Branch:
		total := len(v)
		for _, child := range v {
			total += CountDirs(child.Node)
		}
		return total
	case Leaf:
		return 0
	default:
		return 0
	}
}
