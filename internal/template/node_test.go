package template

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{
			name:    "built-in default template",
			node:    Default(),
			wantErr: false,
		},
		{
			name:    "empty branch",
			node:    Branch{},
			wantErr: false,
		},
		{
			name:    "empty leaf",
			node:    Leaf{},
			wantErr: false,
		},
		{
			name: "duplicate sibling directories",
			node: Branch{
				{Name: "Notes", Node: Branch{}},
				{Name: "Notes", Node: Leaf{"a.md"}},
			},
			wantErr: true,
		},
		{
			name:    "duplicate files in a leaf",
			node:    Leaf{"a.md", "a.md"},
			wantErr: true,
		},
		{
			name: "empty directory name",
			node: Branch{
				{Name: "", Node: Branch{}},
			},
			wantErr: true,
		},
		{
			name:    "file name with separator",
			node:    Leaf{"sub/file.md"},
			wantErr: true,
		},
		{
			name: "dot-dot directory name",
			node: Branch{
				{Name: "..", Node: Branch{}},
			},
			wantErr: true,
		},
		{
			name: "nested invalid name is reported",
			node: Branch{
				{Name: "Work", Node: Branch{
					{Name: "Projects", Node: Leaf{""}},
				}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.node)
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestCountFilesDefault(t *testing.T) {
	if got := CountFiles(Default()); got != 20 {
		t.Errorf("CountFiles(Default()) = %d, want 20", got)
	}
}

func TestCountDirsDefault(t *testing.T) {
	if got := CountDirs(Default()); got != 17 {
		t.Errorf("CountDirs(Default()) = %d, want 17", got)
	}
}

func TestCountsOnSmallTrees(t *testing.T) {
	tree := Branch{
		{Name: "A", Node: Leaf{"x.md", "y.md"}},
		{Name: "B", Node: Branch{
			{Name: "C", Node: Leaf{"z.md"}},
		}},
		{Name: "Empty", Node: Branch{}},
	}

	if got := CountFiles(tree); got != 3 {
		t.Errorf("CountFiles() = %d, want 3", got)
	}
	if got := CountDirs(tree); got != 4 {
		t.Errorf("CountDirs() = %d, want 4", got)
	}
}

func TestDefaultIsFreshPerCall(t *testing.T) {
	a := Default().(Branch)
	b := Default().(Branch)

	a[0].Name = "mutated"
	if b[0].Name == "mutated" {
		t.Error("Default() must return an independent tree on every call")
	}
}
