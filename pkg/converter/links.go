package converter

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// reservedFileNameChars are rejected by at least one common filesystem.
const reservedFileNameChars = `<>:"|?*`

// ConvertLinks rewrites every anchor inside the content block to a Markdown
// link "[text](target)" and collects remote resources into a Manifest.
//
// Link targets are rewritten by category:
//   - challenge references point at the canonical challenge page
//     (ChallengeBaseURL + number)
//   - resource references point at a local file ("./<name>") and the remote
//     URL (BaseURL + href) is recorded in the manifest under that name
//   - about references point at the site page (BaseURL + href)
//
// The block is mutated in place: each anchor element is replaced with a plain
// text node holding the Markdown syntax, so a later text extraction sees the
// rewritten links literally. Find("a") snapshots the matched anchors before
// the loop runs, which keeps the replacement safe during iteration.
//
// A nil Manifest is returned when no resource links were present, so callers
// can distinguish "nothing to download" from a populated manifest. Processing
// stops at the first duplicate manifest name (DuplicateResourceError) or
// unclassifiable href (UnknownLinkError).
func (c *Converter) ConvertLinks(content *goquery.Selection) (Manifest, error) {
	var manifest Manifest
	var convErr error

	content.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")

		var target string
		switch cl := classify(href); cl.kind {
		case linkChallenge:
			target = c.config.ChallengeBaseURL + cl.number

		case linkResource:
			fileName := SanitizeFileName(cl.fileName)
			if _, exists := manifest[fileName]; exists {
				convErr = &DuplicateResourceError{FileName: fileName}
				return false
			}
			if manifest == nil {
				manifest = make(Manifest)
			}
			manifest[fileName] = c.config.BaseURL + href
			target = "./" + fileName

		case linkAbout:
			target = c.config.BaseURL + href

		default:
			convErr = &UnknownLinkError{Href: href}
			return false
		}

		// Replace with a raw text node rather than ReplaceWithHtml so that
		// brackets and angle characters in the display text are never
		// re-parsed as HTML.
		link.ReplaceWithNodes(&html.Node{
			Type: html.TextNode,
			Data: "[" + link.Text() + "](" + target + ")",
		})
		return true
	})

	if convErr != nil {
		return nil, convErr
	}
	return manifest, nil
}

// SanitizeFileName makes a captured resource file name safe to use as a local
// path component and Markdown link target. Path separators, whitespace,
// control characters, and characters reserved on common filesystems are each
// replaced with an underscore. The mapping is per-rune, so sanitizing an
// already-sanitized name is a no-op.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsSpace(r) || unicode.IsControl(r):
			return '_'
		case strings.ContainsRune(reservedFileNameChars, r):
			return '_'
		}
		return r
	}, name)
}
