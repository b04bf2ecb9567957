package webcast

import "sort"

// MergeStats summarizes one reconciliation for logging and metrics.
type MergeStats struct {
	Carried     int // prior entries that survived the day-boundary check
	Fresh       int // distinct keys reported by the current run
	ForcedEnded int // entries ended because the source stopped reporting them
}

// Reconcile merges a freshly encoded document with the previous run's
// artifact and produces the final ordered document for date.
//
// The prior document is discarded wholesale when it is nil or carries a
// different date marker (day-boundary reset). Otherwise entries are keyed
// by their normalized display name; fresh entries overwrite prior ones,
// with one exception: an entry that already reached ENDED never regresses
// to an earlier status. Entries the source stopped reporting are forced to
// ENDED and moved to the ended group.
func Reconcile(prior, fresh *Document, date string) (*Document, MergeStats) {
	priorByKey := map[string]Entry{}
	if prior != nil && prior.Date == date {
		priorByKey = entriesByKey(prior)
	}
	freshByKey := entriesByKey(fresh)
	stats := MergeStats{Carried: len(priorByKey), Fresh: len(freshByKey)}

	merged := make(map[string]Entry, len(priorByKey)+len(freshByKey))
	for key, e := range priorByKey {
		merged[key] = e
	}
	for key, e := range freshByKey {
		if old, ok := merged[key]; ok && old.Status == StatusEnded && e.Status != StatusEnded {
			// Forward-only lifecycle: fresh data may not revive an ended entry.
			e.Status = StatusEnded
		}
		merged[key] = e
	}

	for key, e := range merged {
		if _, stillReported := freshByKey[key]; stillReported {
			continue
		}
		if e.Status != StatusEnded {
			e.Status = StatusEnded
			e.Group = EndedGroup
			merged[key] = e
			stats.ForcedEnded++
		}
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := merged[keys[i]].Status.Rank(), merged[keys[j]].Status.Rank()
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})

	out := &Document{Date: date, Entries: make([]Entry, 0, len(keys))}
	for _, key := range keys {
		out.Entries = append(out.Entries, merged[key])
	}
	return out, stats
}

// entriesByKey indexes a document's entries by merge key. Later duplicates
// win, mirroring how the block map was built from raw lines.
func entriesByKey(doc *Document) map[string]Entry {
	byKey := make(map[string]Entry, len(doc.Entries))
	for _, e := range doc.Entries {
		byKey[e.Key()] = e
	}
	return byKey
}
