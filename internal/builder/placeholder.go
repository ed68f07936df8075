package builder

import "strings"

// PlaceholderContent derives the generated content for a placeholder
// file. The title is the file name with a trailing .md stripped and
// underscores replaced by spaces.
func PlaceholderContent(fileName string) string {
	title := strings.TrimSuffix(fileName, ".md")
	title = strings.ReplaceAll(title, "_", " ")
	return "# " + title + "\n\nTemplate content for " + fileName + "."
}
