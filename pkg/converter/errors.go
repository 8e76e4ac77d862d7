package converter

import "fmt"

// DuplicateResourceError is returned when two distinct resource links sanitize
// to the same local file name within one invocation. Overwriting the earlier
// manifest entry would silently lose a resource, so this is fatal.
// Use errors.As to check for this error type.
type DuplicateResourceError struct {
	FileName string
}

func (e *DuplicateResourceError) Error() string {
	return fmt.Sprintf("multiple resources found with the name %q", e.FileName)
}

// UnknownLinkError is returned when an href matches none of the known link
// patterns. Passing an unrecognized link through could publish a broken
// reference, so processing stops instead; the offending href is included so
// the classification rules can be extended.
// Use errors.As to check for this error type.
type UnknownLinkError struct {
	Href string
}

func (e *UnknownLinkError) Error() string {
	return fmt.Sprintf("link to an unknown resource type: %q", e.Href)
}
