package webcast

import "strings"

// Encode renders ordered events and their resolved URLs into a fresh
// Document dated date.
//
// Display names are deduplicated case-insensitively in one pass; because
// events arrive sorted live-first, the surviving entry carries the most
// relevant status. Each resolved URL becomes its own block. An event with
// no URLs still produces exactly one placeholder block with the sentinel
// URL and the NO_STREAM marker in place of its computed status.
func Encode(events []Event, urls map[string][]string, date string) *Document {
	doc := &Document{Date: date}
	seen := make(map[string]struct{}, len(events))

	for _, ev := range events {
		nameKey := strings.ToLower(ev.Name)
		if _, dup := seen[nameKey]; dup {
			continue
		}
		seen[nameKey] = struct{}{}

		resolved := urls[ev.Key()]
		if len(resolved) == 0 {
			doc.Entries = append(doc.Entries, placeholderEntry(ev))
			continue
		}
		for _, u := range resolved {
			lines := make([]string, 0, len(customHeaders)+1)
			lines = append(lines, customHeaders...)
			lines = append(lines, u)
			doc.Entries = append(doc.Entries, Entry{
				TvgID:  ev.Category.TvgID(),
				Status: ev.Status,
				Logo:   logoFor(ev),
				Group:  ev.Category.Group(),
				Name:   ev.Name,
				Lines:  lines,
			})
		}
	}
	return doc
}

func placeholderEntry(ev Event) Entry {
	lines := make([]string, 0, len(customHeaders)+1)
	lines = append(lines, customHeaders...)
	lines = append(lines, UnavailableURL)
	return Entry{
		TvgID:  ev.Category.TvgID(),
		Status: StatusNoStream,
		Logo:   logoFor(ev),
		Group:  ev.Category.Group(),
		Name:   NoStreamPrefix + ev.Name,
		Lines:  lines,
	}
}

// logoFor prefers the event's own poster over the category logo.
func logoFor(ev Event) string {
	if ev.Poster != "" {
		return ev.Poster
	}
	return ev.Category.Logo()
}
