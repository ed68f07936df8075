package template

// DefaultName is the name of the built-in template.
const DefaultName = "default"

// Default returns the built-in note-taking vault structure.
func Default() Node {
	return Branch{
		{Name: "University", Node: Branch{
			{Name: "Semester 1", Node: Branch{
				{Name: "Computer Science 101", Node: Leaf{"Syllabus.md", "Notes.md", "Assignment_1.md"}},
				{Name: "Mathematics", Node: Leaf{"Calculus_Notes.md", "Formula_Sheet.md"}},
				{Name: "Physics", Node: Leaf{"Lab_Report.md"}},
			}},
			{Name: "Resources", Node: Leaf{"Library_Links.md", "Student_Handbook.md"}},
		}},
		{Name: "Work", Node: Branch{
			{Name: "Projects", Node: Branch{
				{Name: "Alpha", Node: Leaf{"Spec.md", "Timeline.md"}},
				{Name: "Beta", Node: Leaf{"Feedback.md"}},
			}},
			{Name: "Meetings", Node: Leaf{"Weekly_Sync.md", "One_on_One.md"}},
			{Name: "Admin", Node: Leaf{"Timesheet.md", "Expenses.md"}},
		}},
		{Name: "Notes", Node: Branch{
			{Name: "Reading List", Node: Leaf{"Books_to_Read.md", "Articles.md"}},
			{Name: "Ideas", Node: Leaf{"App_Idea.md", "Blog_Posts.md"}},
			{Name: "Journal", Node: Leaf{"2024-01-01.md"}},
		}},
		{Name: "Archive", Node: Branch{}},
	}
}
