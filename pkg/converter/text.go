package converter

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// operatorNameRegex matches "\operatorname{A}B=" with both captures
// non-greedy, so each rewrite stops at the first following equals sign instead
// of consuming across multiple expressions.
var operatorNameRegex = regexp.MustCompile(`\\operatorname\{(.+?)\}(.+?)=`)

// SanitizeText extracts the block's plain text content and normalizes it for
// Markdown. Run it after ConvertLinks so the rewritten links appear literally
// in the output.
//
// Every newline becomes a hard Markdown line break (two trailing spaces plus
// the newline); single newlines would otherwise collapse when rendered. When
// githubWorkaround is set, occurrences of "\operatorname{A}B=" are rewritten
// to "\mathop{\text{A}}B=" because GitHub's renderer no longer supports the
// \operatorname macro (github/markup#1688). No other transformation is
// applied.
func SanitizeText(content *goquery.Selection, githubWorkaround bool) string {
	text := strings.ReplaceAll(content.Text(), "\n", "  \n")

	if githubWorkaround && strings.Contains(text, `\operatorname`) {
		text = operatorNameRegex.ReplaceAllString(text, `\mathop{\text{${1}}}${2}=`)
	}

	return text
}
