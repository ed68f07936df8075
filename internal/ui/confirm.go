package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmOverwrite asks before regenerating into an existing directory.
// Anything other than y/yes declines.
func ConfirmOverwrite(target string, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintf(out, "%s already exists, files inside will be overwritten. Continue? (y/N): ", target)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
