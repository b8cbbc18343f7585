package categorize

import (
	"encoding/json"
)

// ResourceType classifies what a matched URL points at
type ResourceType string

const (
	ResourceUser  ResourceType = "user"
	ResourceMedia ResourceType = "media"
)

// Result is the outcome of classifying one URL. The zero value means no
// provider matched.
type Result struct {
	URL          string
	Provider     string
	ResourceType ResourceType
	// Resource is nil when the matching provider could not extract an ID
	Resource *string
	// CanonicalURL is nil when no provider matched
	CanonicalURL *string
}

// Matched reports whether any provider matched
func (r Result) Matched() bool {
	return r.Provider != ""
}

// ResourceOrEmpty returns the resource ID, or "" when extraction failed
func (r Result) ResourceOrEmpty() string {
	if r.Resource == nil {
		return ""
	}
	return *r.Resource
}

// CanonicalOrEmpty returns the canonical URL, or "" when nothing matched
func (r Result) CanonicalOrEmpty() string {
	if r.CanonicalURL == nil {
		return ""
	}
	return *r.CanonicalURL
}

// wire is the encoded shape of a Result. Unset fields encode as null.
type wire struct {
	URL          *string `json:"url" yaml:"url"`
	Provider     *string `json:"provider" yaml:"provider"`
	ResourceType *string `json:"resource_type" yaml:"resource_type"`
	Resource     *string `json:"resource" yaml:"resource"`
	CanonicalURL *string `json:"canonical_url" yaml:"canonical_url"`
}

func (r Result) toWire() wire {
	w := wire{
		URL:          nonEmpty(r.URL),
		Provider:     nonEmpty(r.Provider),
		ResourceType: nonEmpty(string(r.ResourceType)),
		Resource:     r.Resource,
		CanonicalURL: r.CanonicalURL,
	}
	return w
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

func (r Result) MarshalYAML() (interface{}, error) {
	return r.toWire(), nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
