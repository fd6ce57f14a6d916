package nested

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/meigma/nested/internal/memo"
)

// Parser parses nested locations and memoizes the results.
//
// Results are keyed by the exact raw text and kept until ClearCache is
// called. A Parser is safe for concurrent use; concurrent parses of the same
// text compute the location once, and parses of different text never wait
// on each other.
type Parser struct {
	cache  memo.Cache[Location]
	logger *slog.Logger
}

// defaultParser backs the package-level functions.
var defaultParser = NewParser()

// NewParser creates a Parser with an empty cache.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// log returns the logger, falling back to a discard logger if nil.
func (p *Parser) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.logger
}

// Parse parses raw, an already decoded "<path>/!<entry>" string.
//
// The separator is matched at its last occurrence. An empty path leaves
// the Location without a path. Errors wrap [ErrInvalidArgument] and are
// never cached.
func (p *Parser) Parse(raw string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("%w: 'path' must not be empty", ErrInvalidArgument)
	}
	idx := strings.LastIndex(raw, Separator)
	if idx == -1 {
		return Location{}, fmt.Errorf("%w: 'path' must contain '%s'", ErrInvalidArgument, Separator)
	}
	return p.cache.GetOrCompute(raw, func() (Location, error) {
		loc, err := newLocation(raw[:idx], raw[idx+len(Separator):])
		if err != nil {
			return Location{}, err
		}
		p.log().Debug("parsed nested location",
			"location", raw,
			"path", loc.path,
			"entry", loc.entryName)
		return loc, nil
	})
}

// FromURL parses a "nested:" URL.
//
// The scheme is compared case-insensitively. The location is taken from
// the decoded URL path, or from the opaque part for URLs such as
// "nested:app.jar/!lib/a.jar".
func (p *Parser) FromURL(u *url.URL) (Location, error) {
	if u == nil || !strings.EqualFold(u.Scheme, Scheme) {
		return Location{}, schemeError("url", "protocol")
	}
	if u.Opaque == "" {
		return p.Parse(u.Path)
	}
	raw, err := url.PathUnescape(u.Opaque)
	if err != nil {
		return Location{}, fmt.Errorf("%w: 'url' has invalid escaping: %w", ErrInvalidArgument, err)
	}
	return p.Parse(raw)
}

// FromURI parses a "nested:" URI string.
//
// The scheme is compared case-insensitively. The location is the
// percent-decoded scheme-specific part: everything after the first ':' up
// to any fragment.
func (p *Parser) FromURI(uri string) (Location, error) {
	scheme, ssp, ok := strings.Cut(uri, ":")
	if !ok {
		return Location{}, schemeError("uri", "scheme")
	}
	return p.fromScheme("uri", "scheme", scheme, ssp)
}

// fromScheme checks scheme against Scheme and parses the percent-encoded
// scheme-specific part.
func (p *Parser) fromScheme(subject, noun, scheme, ssp string) (Location, error) {
	if !strings.EqualFold(scheme, Scheme) {
		return Location{}, schemeError(subject, noun)
	}
	ssp, _, _ = strings.Cut(ssp, "#")
	raw, err := url.PathUnescape(ssp)
	if err != nil {
		return Location{}, fmt.Errorf("%w: '%s' has invalid escaping: %w", ErrInvalidArgument, subject, err)
	}
	return p.Parse(raw)
}

// ClearCache removes every memoized location.
func (p *Parser) ClearCache() {
	p.cache.Clear()
}

func schemeError(subject, noun string) error {
	return fmt.Errorf("%w: '%s' must not be null and must use '%s' %s", ErrInvalidArgument, subject, Scheme, noun)
}

// Parse parses raw with the process-wide parser. See [Parser.Parse].
func Parse(raw string) (Location, error) {
	return defaultParser.Parse(raw)
}

// FromURL parses u with the process-wide parser. See [Parser.FromURL].
func FromURL(u *url.URL) (Location, error) {
	return defaultParser.FromURL(u)
}

// FromURI parses uri with the process-wide parser. See [Parser.FromURI].
func FromURI(uri string) (Location, error) {
	return defaultParser.FromURI(uri)
}

// ClearCache resets the process-wide parser's cache.
// It exists for test isolation; normal operation never needs it.
func ClearCache() {
	defaultParser.ClearCache()
}
