// Package resolver discovers playable media URLs for events by observing
// network traffic while each event's reference page loads.
package resolver

import (
	"context"
	"sort"
	"strings"
)

const (
	manifestMarker = ".m3u8"
	indexManifest  = "index.m3u8"
	altTrackPath   = "tracks-v1a1/mono.ts.m3u8"
)

// Prober observes a page load and reports every manifest URL seen within
// the wait budget. Navigation failure or timeout yields an empty slice, not
// an error the caller must handle: an unresolvable event is an expected
// outcome.
type Prober interface {
	Probe(ctx context.Context, pageURL string) []string
}

// Canonicalize rewrites a top-level manifest URL to its alternate track
// path form. Other URLs pass through unchanged.
func Canonicalize(url string) string {
	if strings.HasSuffix(url, indexManifest) {
		return strings.Replace(url, indexManifest, altTrackPath, 1)
	}
	return url
}

// Select filters discovered URLs down to the preferred manifest forms,
// canonicalizes them, and deduplicates. When nothing matches the preferred
// patterns the full discovered set is kept rather than returning nothing.
// The result is sorted so resolution output is deterministic.
func Select(discovered []string) []string {
	var preferred []string
	for _, u := range discovered {
		if strings.HasSuffix(u, indexManifest) || strings.Contains(u, "/"+altTrackPath) {
			preferred = append(preferred, u)
		}
	}
	if len(preferred) == 0 {
		preferred = discovered
	}

	seen := make(map[string]struct{}, len(preferred))
	out := make([]string, 0, len(preferred))
	for _, u := range preferred {
		c := Canonicalize(u)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
