package converter

import "regexp"

// linkKind identifies the category of a hyperlink href.
type linkKind int

const (
	// linkChallenge is a reference to another challenge ("problem=<digits>").
	linkChallenge linkKind = iota
	// linkResource is a reference to a downloadable file such as an image or
	// data file ("resources/..." or "images/...", optionally under "project/").
	linkResource
	// linkAbout is a reference to one of the site's about pages ("about=<word>").
	linkAbout
	// linkUnknown matched none of the known patterns.
	linkUnknown
)

var (
	challengeRegex = regexp.MustCompile(`^problem=(\d+)`)
	resourceRegex  = regexp.MustCompile(`^(?:project/)?(?:resources|images)/(?:.+/)?(.+)`)
	aboutRegex     = regexp.MustCompile(`^about=\w+`)
)

// classification is the result of matching an href against the known link
// patterns. Only the field for the matched kind is populated.
type classification struct {
	kind linkKind

	// number is the captured challenge number for linkChallenge.
	number string

	// fileName is the trailing file name component for linkResource. The
	// leading directories are consumed greedily, so this is everything after
	// the last path separator.
	fileName string
}

// classify matches href against the known link patterns. The patterns are not
// mutually exclusive, so evaluation order encodes precedence: challenge, then
// resource, then about. Anything else is linkUnknown.
func classify(href string) classification {
	if m := challengeRegex.FindStringSubmatch(href); m != nil {
		return classification{kind: linkChallenge, number: m[1]}
	}
	if m := resourceRegex.FindStringSubmatch(href); m != nil {
		return classification{kind: linkResource, fileName: m[1]}
	}
	if aboutRegex.MatchString(href) {
		return classification{kind: linkAbout}
	}
	return classification{kind: linkUnknown}
}
