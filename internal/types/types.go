// Package types holds the data model shared by selection, reading and reporting.
package types

import "strings"

// Origin records why a candidate was selected.
type Origin int

const (
	OriginTrail Origin = iota // listed in the priority trail
	OriginWalk                // found under a target directory
)

func (o Origin) String() string {
	switch o {
	case OriginTrail:
		return "trail"
	case OriginWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// Candidate is a file chosen for the bundle.
type Candidate struct {
	// Path is the path as given (trail entry) or as joined during the walk.
	// It is what the report shows.
	Path string
	// FullPath is Path resolved against the bundle root; used for I/O.
	FullPath string
	// Canonical is the absolute, cleaned path. It is the deduplication key.
	Canonical string
	Origin    Origin
}

// PayloadEntry is one rendered batch: a candidate's path and its text content.
type PayloadEntry struct {
	Path    string
	Content string
	// ReadFailed is set when Content is a placeholder rather than file text.
	ReadFailed bool
}

// LineCount is the number of newline characters in Content.
func (e PayloadEntry) LineCount() int {
	return strings.Count(e.Content, "\n")
}
