// Package converter rewrites a challenge description block into Markdown-ready
// form. Hyperlinks are classified by href and replaced in place with Markdown
// link text, remote resources are collected into a download manifest, and the
// block's text content is normalized for Markdown line-break semantics.
//
// The package operates on an already-parsed goquery selection and performs no
// network or file I/O; fetching pages and downloading manifest entries is the
// caller's job.
package converter

// Config holds the site URLs used to build rewritten link targets.
// Both values are supplied by the caller so the converter stays independent of
// any particular site configuration.
type Config struct {
	// BaseURL is the root of the source site, e.g. "https://projecteuler.net/".
	// Resource and about hrefs are relative to it.
	BaseURL string

	// ChallengeBaseURL is the base of canonical challenge pages,
	// e.g. "https://projecteuler.net/problem=". The captured challenge number
	// is appended verbatim.
	ChallengeBaseURL string
}

// Manifest maps sanitized local file names to the remote URLs they must be
// downloaded from. A nil Manifest means no remote resources were referenced.
type Manifest map[string]string

// Converter rewrites links and text inside a challenge description block.
type Converter struct {
	config Config
}

// New creates a Converter for the given site configuration.
func New(config Config) *Converter {
	return &Converter{config: config}
}
