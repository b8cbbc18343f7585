package categorize

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ptr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Result
	}{
		{
			name: "youtube channel",
			url:  "https://www.youtube.com/channel/UC123abc",
			want: Result{
				URL:          "https://www.youtube.com/channel/UC123abc",
				Provider:     "youtube",
				ResourceType: ResourceUser,
				Resource:     ptr("UC123abc"),
				CanonicalURL: ptr("https://www.youtube.com/watch?v=UC123abc"),
			},
		},
		{
			name: "youtube watch",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: Result{
				URL:          "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Provider:     "youtube",
				ResourceType: ResourceMedia,
				Resource:     ptr("dQw4w9WgXcQ"),
				CanonicalURL: ptr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
			},
		},
		{
			name: "youtube short id",
			url:  "https://www.youtube.com/watch?v=short",
			want: Result{
				URL:          "https://www.youtube.com/watch?v=short",
				Provider:     "youtube",
				ResourceType: ResourceMedia,
				Resource:     nil,
				CanonicalURL: ptr("https://www.youtube.com/watch?v="),
			},
		},
		{
			name: "youtu.be short link",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: Result{
				URL:          "https://youtu.be/dQw4w9WgXcQ",
				Provider:     "youtube",
				ResourceType: ResourceMedia,
				Resource:     ptr("dQw4w9WgXcQ"),
				CanonicalURL: ptr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
			},
		},
		{
			name: "youtube embed with query",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1",
			want: Result{
				URL:          "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1",
				Provider:     "youtube",
				ResourceType: ResourceMedia,
				Resource:     ptr("dQw4w9WgXcQ"),
				CanonicalURL: ptr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
			},
		},
		{
			name: "youtube watch with timestamp first",
			url:  "https://www.youtube.com/watch?t=30&v=dQw4w9WgXcQ",
			want: Result{
				URL:          "https://www.youtube.com/watch?t=30&v=dQw4w9WgXcQ",
				Provider:     "youtube",
				ResourceType: ResourceMedia,
				Resource:     ptr("dQw4w9WgXcQ"),
				CanonicalURL: ptr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
			},
		},
		{
			name: "instagram post",
			url:  "https://instagram.com/p/BxYz12/",
			want: Result{
				URL:          "https://instagram.com/p/BxYz12/",
				Provider:     "instagram",
				ResourceType: ResourceMedia,
				Resource:     ptr("BxYz12"),
				CanonicalURL: ptr("https://instagram.com/p/BxYz12/"),
			},
		},
		{
			name: "instagram profile",
			url:  "https://www.instagram.com/natgeo",
			want: Result{
				URL:          "https://www.instagram.com/natgeo",
				Provider:     "instagram",
				ResourceType: ResourceUser,
				Resource:     ptr("natgeo"),
				CanonicalURL: ptr("https://instagram.com/p/natgeo/"),
			},
		},
		{
			name: "instagr.am post",
			url:  "http://instagr.am/p/abc123/",
			want: Result{
				URL:          "http://instagr.am/p/abc123/",
				Provider:     "instagram",
				ResourceType: ResourceMedia,
				Resource:     ptr("abc123"),
				CanonicalURL: ptr("https://instagram.com/p/abc123/"),
			},
		},
		{
			name: "facebook video",
			url:  "https://www.facebook.com/video.php?v=998877",
			want: Result{
				URL:          "https://www.facebook.com/video.php?v=998877",
				Provider:     "facebook",
				ResourceType: ResourceMedia,
				Resource:     ptr("998877"),
				CanonicalURL: ptr("https://www.facebook.com/video.php?v=998877"),
			},
		},
		{
			name: "twitter status",
			url:  "https://twitter.com/jack/status/20",
			want: Result{
				URL:          "https://twitter.com/jack/status/20",
				Provider:     "twitter",
				ResourceType: ResourceMedia,
				Resource:     ptr("20"),
				CanonicalURL: ptr("https://twitter.com/jack/status/20"),
			},
		},
		{
			name: "twitter profile",
			url:  "https://twitter.com/jack",
			want: Result{
				URL:          "https://twitter.com/jack",
				Provider:     "twitter",
				ResourceType: ResourceUser,
				Resource:     ptr("jack"),
				CanonicalURL: ptr("https://twitter.com/jack"),
			},
		},
		{
			name: "instagram post with malformed escape",
			url:  "https://instagram.com/p/abc%zz/",
			want: Result{
				URL:          "https://instagram.com/p/abc%zz/",
				Provider:     "instagram",
				ResourceType: ResourceMedia,
				Resource:     ptr("abc%zz"),
				CanonicalURL: ptr("https://instagram.com/p/abc%zz/"),
			},
		},
		{
			name: "twitter status with trailing percent",
			url:  "https://twitter.com/jack/status/20%",
			want: Result{
				URL:          "https://twitter.com/jack/status/20%",
				Provider:     "twitter",
				ResourceType: ResourceMedia,
				Resource:     ptr("20%"),
				CanonicalURL: ptr("https://twitter.com/jack/status/20%"),
			},
		},
		{
			name: "unknown platform",
			url:  "https://example.com/not-a-known-platform",
			want: Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.url))
		})
	}
}

func TestClassifyLastMatchWins(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		matched      int
		wantProvider string
		wantType     ResourceType
		wantResource *string
	}{
		{
			// youtube/user matches first, youtube/media later on "v/"
			name:         "youtube channel path holding a video",
			url:          "https://www.youtube.com/channel/v/dQw4w9WgXcQ",
			matched:      2,
			wantProvider: "youtube",
			wantType:     ResourceMedia,
			wantResource: ptr("dQw4w9WgXcQ"),
		},
		{
			// the later media match fails extraction but still replaces the user result
			name:         "later match with failed extraction",
			url:          "https://www.youtube.com/user/dev/",
			matched:      2,
			wantProvider: "youtube",
			wantType:     ResourceMedia,
			wantResource: nil,
		},
		{
			name:         "instagram profile beats earlier youtube embed match",
			url:          "https://instagram.com/embed/x",
			matched:      2,
			wantProvider: "instagram",
			wantType:     ResourceUser,
			wantResource: ptr("embed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Matches(tt.url)
			require.Len(t, matches, tt.matched)

			got := Classify(tt.url)
			last := matches[len(matches)-1]
			assert.Equal(t, last.Name(), got.Provider)
			assert.Equal(t, last.ResourceType(), got.ResourceType)
			assert.Equal(t, tt.wantProvider, got.Provider)
			assert.Equal(t, tt.wantType, got.ResourceType)
			assert.Equal(t, tt.wantResource, got.Resource)
			require.NotNil(t, got.CanonicalURL)
		})
	}
}

func TestClassifyNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"null",
		"undefined",
		"no slashes or queries",
		"?",
		"#",
		"/",
		"://",
		"http://[::1",
		"https://instagram.com",
		"https://www.facebook.com/video.php?v=",
		"https://twitter.com/ab",
		"%%%",
		"https://www.youtube.com/watch?v=\n",
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() { Classify(in) }, "input %q", in)
	}

	assert.Equal(t, Result{}, Classify(""))
	assert.False(t, Classify("no slashes or queries").Matched())
}

func TestClassifyLongInput(t *testing.T) {
	raw := "https://youtu.be/dQw4w9WgXcQ?x=" + strings.Repeat("a", 1_000_000)

	got := Classify(raw)
	assert.Equal(t, "youtube", got.Provider)
	assert.Equal(t, ResourceMedia, got.ResourceType)
	assert.Equal(t, ptr("dQw4w9WgXcQ"), got.Resource)
	assert.Equal(t, got, Classify(raw))
}

func TestClassifyIsIdempotent(t *testing.T) {
	for _, u := range []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://instagram.com/embed/x",
		"https://example.com",
	} {
		assert.Equal(t, Classify(u), Classify(u))
	}
}

func TestClassifyConcurrent(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/channel/UC123abc",
		"https://instagram.com/p/BxYz12/",
		"https://twitter.com/jack/status/20",
		"https://www.facebook.com/video.php?v=998877",
	}
	want := make([]Result, len(urls))
	for i, u := range urls {
		want[i] = Classify(u)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, u := range urls {
				assert.Equal(t, want[i], Classify(u))
			}
		}()
	}
	wg.Wait()
}

func TestSingleMatchUsesDeclaredValues(t *testing.T) {
	for _, u := range []string{
		"https://instagram.com/p/BxYz12/",
		"https://www.facebook.com/video.php?v=998877",
		"https://twitter.com/jack",
	} {
		matches := Matches(u)
		require.Len(t, matches, 1, u)
		got := Classify(u)
		assert.Equal(t, matches[0].Name(), got.Provider)
		assert.Equal(t, matches[0].ResourceType(), got.ResourceType)
	}
}

func TestProvidersOrder(t *testing.T) {
	want := []struct {
		name string
		rt   ResourceType
	}{
		{"youtube", ResourceUser},
		{"youtube", ResourceMedia},
		{"instagram", ResourceUser},
		{"instagram", ResourceMedia},
		{"facebook", ResourceMedia},
		{"twitter", ResourceMedia},
		{"twitter", ResourceUser},
	}

	providers := Providers()
	require.Len(t, providers, len(want))
	for i, p := range providers {
		assert.Equal(t, want[i].name, p.Name())
		assert.Equal(t, want[i].rt, p.ResourceType())
	}

	// callers get a copy
	providers[0] = nil
	assert.NotNil(t, Providers()[0])
}

func TestLookupAndDescribe(t *testing.T) {
	p, ok := Lookup("instagram", ResourceMedia)
	require.True(t, ok)
	assert.Contains(t, p.Pattern(), `\/p\/`)

	_, ok = Lookup("tiktok", ResourceMedia)
	assert.False(t, ok)

	matched := DescribeMatches("https://instagram.com/embed/x")
	require.Len(t, matched, 2)
	assert.Equal(t, 2, matched[0].Priority)
	assert.Equal(t, ResourceMedia, matched[0].ResourceType)
	assert.Equal(t, 3, matched[1].Priority)
	assert.Equal(t, "instagram", matched[1].Name)
	assert.Empty(t, DescribeMatches("https://example.com"))

	infos := Describe()
	require.Len(t, infos, 7)
	assert.Equal(t, 1, infos[0].Priority)
	assert.Equal(t, "twitter", infos[6].Name)
	assert.Equal(t, ResourceUser, infos[6].ResourceType)
}

func TestResultEncoding(t *testing.T) {
	data, err := json.Marshal(Classify("https://example.com"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":null,"provider":null,"resource_type":null,"resource":null,"canonical_url":null}`, string(data))

	data, err = json.Marshal(Classify("https://www.youtube.com/watch?v=short"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"url":"https://www.youtube.com/watch?v=short",
		"provider":"youtube",
		"resource_type":"media",
		"resource":null,
		"canonical_url":"https://www.youtube.com/watch?v="
	}`, string(data))

	out, err := yaml.Marshal(Classify("https://twitter.com/jack"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "resource_type: user")
	assert.Contains(t, string(out), "resource: jack")
}
