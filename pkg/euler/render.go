package euler

import (
	"fmt"
	"strings"
)

// BuildReadme renders the README document for a fetched challenge: a heading
// with the problem number and title, followed by the converted description.
func BuildReadme(res *Result) string {
	var sb strings.Builder

	if res.Title != "" {
		sb.WriteString(fmt.Sprintf("# Problem %d: %s\n\n", res.Number, res.Title))
	} else {
		sb.WriteString(fmt.Sprintf("# Problem %d\n\n", res.Number))
	}

	sb.WriteString(res.Markdown)
	if !strings.HasSuffix(res.Markdown, "\n") {
		sb.WriteString("\n")
	}

	return sb.String()
}
