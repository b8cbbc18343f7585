package categorize

import (
	"github.com/dlclark/regexp2"
	"github.com/guiyumin/urlcat/internal/logger"
	"github.com/guiyumin/urlcat/internal/urlparts"
)

// Provider is one entry of the registry: a pattern plus the two transforms
// applied when it matches.
type Provider interface {
	Name() string
	ResourceType() ResourceType
	// Pattern returns the source of the match expression (ECMAScript syntax)
	Pattern() string
	// Match reports whether the pattern matches anywhere in raw
	Match(raw string) bool
	// ExtractResource pulls the provider-specific ID out of raw, or nil
	ExtractResource(raw string) *string
	// CanonicalURL builds the shareable URL from the result built so far
	CanonicalURL(r Result) string
}

type definition struct {
	name         string
	resourceType ResourceType
	re           *regexp2.Regexp
	extract      func(d *definition, raw string) *string
	canonical    func(r Result) string
}

func define(name string, rt ResourceType, pattern string,
	extract func(d *definition, raw string) *string, canonical func(r Result) string) *definition {
	// No MatchTimeout: results must not depend on host speed
	re := regexp2.MustCompile(pattern, regexp2.ECMAScript)
	return &definition{
		name:         name,
		resourceType: rt,
		re:           re,
		extract:      extract,
		canonical:    canonical,
	}
}

func (d *definition) Name() string               { return d.name }
func (d *definition) ResourceType() ResourceType { return d.resourceType }
func (d *definition) Pattern() string            { return d.re.String() }

func (d *definition) Match(raw string) bool {
	ok, err := d.re.MatchString(raw)
	if err != nil {
		currentLogger().Debug("pattern evaluation failed",
			logger.String("provider", d.name),
			logger.String("resource_type", string(d.resourceType)),
			logger.Err(err))
		return false
	}
	return ok
}

func (d *definition) ExtractResource(raw string) *string {
	return d.extract(d, raw)
}

func (d *definition) CanonicalURL(r Result) string {
	return d.canonical(r)
}

// group returns capture group n of the first match in raw
func (d *definition) group(raw string, n int) (string, bool) {
	m, err := d.re.FindStringMatch(raw)
	if err != nil || m == nil {
		return "", false
	}
	g := m.GroupByNumber(n)
	if g == nil {
		return "", false
	}
	return g.String(), true
}

// pathSegment extracts the i-th path segment of the URL
func pathSegment(i int) func(*definition, string) *string {
	return func(_ *definition, raw string) *string {
		seg, ok := urlparts.Decompose(raw).Segment(i)
		if !ok {
			return nil
		}
		return &seg
	}
}

// queryParam extracts the decoded value of a query parameter
func queryParam(key string) func(*definition, string) *string {
	return func(_ *definition, raw string) *string {
		v, ok := urlparts.Decompose(raw).Param(key)
		if !ok {
			return nil
		}
		return &v
	}
}

// inputURL is the canonical form for providers whose URLs are already
// shareable as given
func inputURL(r Result) string {
	return r.URL
}
