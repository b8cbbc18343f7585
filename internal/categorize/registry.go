// Package categorize classifies social-media URLs against a fixed, ordered
// table of providers.
package categorize

import (
	"sync/atomic"

	"github.com/guiyumin/urlcat/internal/logger"
)

// registry is ordered by priority: when several providers match a URL the
// one declared last wins. Never mutated after init.
var registry = []Provider{
	youtubeUser,
	youtubeMedia,
	instagramUser,
	instagramMedia,
	facebookMedia,
	twitterMedia,
	twitterUser,
}

var diagLog atomic.Pointer[logger.Logger]

// SetLogger installs the logger used for pattern engine diagnostics
func SetLogger(l logger.Logger) {
	diagLog.Store(&l)
}

func currentLogger() logger.Logger {
	if l := diagLog.Load(); l != nil {
		return *l
	}
	return logger.NewNop()
}

// Classify runs raw through every provider in order. Each matching provider
// overwrites the result, so the last match wins. It never fails; a URL that
// matches nothing yields the zero Result.
func Classify(raw string) Result {
	var r Result
	for _, p := range registry {
		if !p.Match(raw) {
			continue
		}
		r.URL = raw
		r.Provider = p.Name()
		r.ResourceType = p.ResourceType()
		r.Resource = p.ExtractResource(raw)
		canonical := p.CanonicalURL(r)
		r.CanonicalURL = &canonical
	}
	return r
}

// Matches returns every provider whose pattern matches raw, in registry
// order. The last element is the one Classify reports.
func Matches(raw string) []Provider {
	var matched []Provider
	for _, p := range registry {
		if p.Match(raw) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Providers returns the registry in declared order
func Providers() []Provider {
	out := make([]Provider, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds the provider with the given name and resource type
func Lookup(name string, rt ResourceType) (Provider, bool) {
	for _, p := range registry {
		if p.Name() == name && p.ResourceType() == rt {
			return p, true
		}
	}
	return nil, false
}

// Info is the serialisable description of a provider
type Info struct {
	Priority     int          `json:"priority" yaml:"priority"`
	Name         string       `json:"provider" yaml:"provider"`
	ResourceType ResourceType `json:"resource_type" yaml:"resource_type"`
	Pattern      string       `json:"pattern" yaml:"pattern"`
}

// Describe lists every provider with its position in the registry
func Describe() []Info {
	infos := make([]Info, 0, len(registry))
	for i, p := range registry {
		infos = append(infos, describe(i, p))
	}
	return infos
}

// DescribeMatches describes the providers returned by Matches
func DescribeMatches(raw string) []Info {
	var infos []Info
	for _, p := range Matches(raw) {
		for i, q := range registry {
			if p == q {
				infos = append(infos, describe(i, p))
				break
			}
		}
	}
	return infos
}

func describe(i int, p Provider) Info {
	return Info{
		Priority:     i + 1,
		Name:         p.Name(),
		ResourceType: p.ResourceType(),
		Pattern:      p.Pattern(),
	}
}
