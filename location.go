package nested

import (
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the URL scheme of nested locations.
const Scheme = "nested"

// Separator splits the outer archive path from the nested entry name.
const Separator = "/!"

// Location is a parsed nested location: an outer archive path and the name
// of an entry inside it.
//
// Location is an immutable value and is safe to share between goroutines.
// The zero value is not a valid location.
type Location struct {
	path      string
	entryName string
}

// New creates a Location from an archive path and a nested entry name.
//
// Unlike [Parse], New requires path to be set. Both the path and the entry
// name are used verbatim.
func New(path, entryName string) (Location, error) {
	if path == "" {
		return Location{}, fmt.Errorf("%w: 'path' must not be null", ErrInvalidArgument)
	}
	return newLocation(path, entryName)
}

// newLocation permits an empty path, which marks a location whose archive
// is resolved by the caller.
func newLocation(path, entryName string) (Location, error) {
	if strings.TrimFunc(entryName, isBlank) == "" {
		return Location{}, fmt.Errorf("%w: 'nestedEntryName' must not be empty", ErrInvalidArgument)
	}
	return Location{path: path, entryName: entryName}, nil
}

// isBlank reports whether r is trimmed from entry names before the empty
// check: ASCII control characters and space, not Unicode whitespace.
func isBlank(r rune) bool {
	return r <= ' '
}

// Path returns the path of the archive that contains the nested entry.
// It is empty when the location has no path; see [Location.HasPath].
func (l Location) Path() string {
	return l.path
}

// HasPath reports whether the location names an archive path.
func (l Location) HasPath() bool {
	return l.path != ""
}

// EntryName returns the name of the entry inside the archive.
func (l Location) EntryName() string {
	return l.entryName
}

// String returns the location in "<path>/!<entry>" form.
// Parsing the result yields an equal Location.
func (l Location) String() string {
	return l.path + Separator + l.entryName
}

// URL returns the location as a "nested:" URL.
// Path characters are percent-encoded except '!', so the rendered URL keeps
// the separator readable.
func (l Location) URL() *url.URL {
	u := &url.URL{
		Scheme:   Scheme,
		Path:     l.String(),
		OmitHost: true,
	}
	u.RawPath = strings.ReplaceAll(u.EscapedPath(), "%21", "!")
	return u
}
