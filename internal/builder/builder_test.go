package builder

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/caldernotes/vaultgen/internal/progress"
	"github.com/caldernotes/vaultgen/internal/template"
	"github.com/caldernotes/vaultgen/testutil"
)

func quietBuilder(opts Options) *Builder {
	return New(opts, progress.NewManager(progress.Options{Quiet: true}))
}

func TestRunCreatesFullDefaultStructure(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-full")

	b := quietBuilder(Options{})
	if err := b.Run(basePath, template.Default()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// Every branch directory from the built-in template must exist.
	expectedDirs := []string{
		"University",
		"University/Semester 1",
		"University/Semester 1/Computer Science 101",
		"University/Semester 1/Mathematics",
		"University/Semester 1/Physics",
		"University/Resources",
		"Work",
		"Work/Projects",
		"Work/Projects/Alpha",
		"Work/Projects/Beta",
		"Work/Meetings",
		"Work/Admin",
		"Notes",
		"Notes/Reading List",
		"Notes/Ideas",
		"Notes/Journal",
		"Archive",
	}
	for _, dir := range expectedDirs {
		testutil.AssertDirExists(t, filepath.Join(basePath, filepath.FromSlash(dir)))
	}

	// Every listed file must exist directly inside its directory.
	expectedFiles := []string{
		"University/Semester 1/Computer Science 101/Syllabus.md",
		"University/Semester 1/Computer Science 101/Notes.md",
		"University/Semester 1/Computer Science 101/Assignment_1.md",
		"University/Semester 1/Mathematics/Calculus_Notes.md",
		"University/Semester 1/Mathematics/Formula_Sheet.md",
		"University/Semester 1/Physics/Lab_Report.md",
		"University/Resources/Library_Links.md",
		"University/Resources/Student_Handbook.md",
		"Work/Projects/Alpha/Spec.md",
		"Work/Projects/Alpha/Timeline.md",
		"Work/Projects/Beta/Feedback.md",
		"Work/Meetings/Weekly_Sync.md",
		"Work/Meetings/One_on_One.md",
		"Work/Admin/Timesheet.md",
		"Work/Admin/Expenses.md",
		"Notes/Reading List/Books_to_Read.md",
		"Notes/Reading List/Articles.md",
		"Notes/Ideas/App_Idea.md",
		"Notes/Ideas/Blog_Posts.md",
		"Notes/Journal/2024-01-01.md",
	}
	for _, file := range expectedFiles {
		testutil.AssertFileExists(t, filepath.Join(basePath, filepath.FromSlash(file)))
	}
}

func TestRunSyllabusContent(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-syllabus")

	b := quietBuilder(Options{})
	if err := b.Run(basePath, template.Default()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	syllabus := filepath.Join(basePath, "University", "Semester 1", "Computer Science 101", "Syllabus.md")
	testutil.AssertFileContent(t, syllabus, "# Syllabus\n\nTemplate content for Syllabus.md.")
}

func TestRunArchiveIsEmptyDirectory(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-archive")

	b := quietBuilder(Options{})
	if err := b.Run(basePath, template.Default()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	archive := filepath.Join(basePath, "Archive")
	testutil.AssertDirExists(t, archive)

	entries, err := os.ReadDir(archive)
	if err != nil {
		t.Fatalf("Failed to read Archive: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Archive should be empty, found %d entries", len(entries))
	}
}

func TestRunIsIdempotent(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-idempotent")
	root := template.Default()

	b := quietBuilder(Options{})
	if err := b.Run(basePath, root); err != nil {
		t.Fatalf("first Run() failed: %v", err)
	}

	syllabus := filepath.Join(basePath, "University", "Semester 1", "Computer Science 101", "Syllabus.md")
	first, err := os.ReadFile(syllabus)
	if err != nil {
		t.Fatalf("Failed to read file after first run: %v", err)
	}

	if err := b.Run(basePath, root); err != nil {
		t.Fatalf("second Run() failed: %v", err)
	}

	second, err := os.ReadFile(syllabus)
	if err != nil {
		t.Fatalf("Failed to read file after second run: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("file contents differ between runs: %q vs %q", first, second)
	}
}

func TestRunOverwritesModifiedFiles(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-overwrite")
	root := template.Branch{
		{Name: "Meetings", Node: template.Leaf{"Weekly_Sync.md"}},
	}

	b := quietBuilder(Options{})
	if err := b.Run(basePath, root); err != nil {
		t.Fatalf("first Run() failed: %v", err)
	}

	target := filepath.Join(basePath, "Meetings", "Weekly_Sync.md")
	if err := os.WriteFile(target, []byte("scribbles"), 0o644); err != nil {
		t.Fatalf("Failed to modify file: %v", err)
	}

	if err := b.Run(basePath, root); err != nil {
		t.Fatalf("second Run() failed: %v", err)
	}

	testutil.AssertFileContent(t, target, "# Weekly Sync\n\nTemplate content for Weekly_Sync.md.")
}

func TestRunPreservesUnrelatedFiles(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-unrelated")
	testutil.CreateTestFile(t, basePath, "Archive/keepsake.md", "mine")

	b := quietBuilder(Options{})
	if err := b.Run(basePath, template.Default()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	testutil.AssertFileContent(t, filepath.Join(basePath, "Archive", "keepsake.md"), "mine")
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	basePath := filepath.Join(testutil.TempDir(t, "vaultgen-dry"), "vault")

	var out bytes.Buffer
	pm := progress.NewManager(progress.Options{Out: &out})
	b := New(Options{DryRun: true}, pm)

	if err := b.Run(basePath, template.Default()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	testutil.AssertFileNotExists(t, basePath)

	// The trace still reports every entry that would be created.
	if !strings.Contains(out.String(), "Created folder:") {
		t.Error("dry-run trace is missing folder lines")
	}
	if !strings.Contains(out.String(), "Created file:") {
		t.Error("dry-run trace is missing file lines")
	}
}

func TestRunTraceLines(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-trace")
	root := template.Branch{
		{Name: "Ideas", Node: template.Leaf{"App_Idea.md"}},
	}

	var out bytes.Buffer
	pm := progress.NewManager(progress.Options{Out: &out})
	b := New(Options{}, pm)

	if err := b.Run(basePath, root); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("trace = %d lines, want 4 (start, folder, file, finish):\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], basePath) {
		t.Errorf("start line should name the base path, got %q", lines[0])
	}
}

func TestRunQuietSuppressesTrace(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-quiet")

	var out bytes.Buffer
	pm := progress.NewManager(progress.Options{Quiet: true, Out: &out})
	b := New(Options{}, pm)

	if err := b.Run(basePath, template.Default()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("quiet run produced output: %q", out.String())
	}
}

func TestBuildNilNode(t *testing.T) {
	basePath := testutil.TempDir(t, "vaultgen-badnode")

	b := quietBuilder(Options{})
	err := b.Build(basePath, nil)
	if err == nil {
		t.Fatal("Build() with a nil node should fail")
	}
}

func TestRunFailsInReadOnlyTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping permission test on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("Skipping permission test when running as root")
	}

	parent := testutil.TempDir(t, "vaultgen-readonly")
	restricted := filepath.Join(parent, "restricted")
	if err := os.MkdirAll(restricted, 0o555); err != nil {
		t.Fatalf("Failed to create restricted directory: %v", err)
	}
	t.Cleanup(func() {
		os.Chmod(restricted, 0o755)
	})

	b := quietBuilder(Options{})
	err := b.Run(filepath.Join(restricted, "vault"), template.Default())
	if err == nil {
		t.Error("Run() expected error in read-only location but got none")
	}
}
