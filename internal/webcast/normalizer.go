package webcast

import (
	"sort"
	"strings"
	"time"

	"sports-webcast/internal/catalog"
)

// TimeZoneName is the fixed target zone for day boundaries and the
// display-time annotation.
const TimeZoneName = "Asia/Manila"

// timeSuffix is appended to every formatted start time.
const timeSuffix = "PHT"

// admissionWindow spans today and tomorrow in the target zone.
const admissionWindow = 48 * time.Hour

// Normalizer turns raw catalog groups into canonical Events. The zero
// value is not usable; construct with NewNormalizer.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

// NewNormalizer returns a Normalizer pinned to the target time zone. If the
// zone database is unavailable the fixed UTC+8 offset is used instead, so
// normalization never fails at startup.
func NewNormalizer() *Normalizer {
	loc, err := time.LoadLocation(TimeZoneName)
	if err != nil {
		loc = time.FixedZone(timeSuffix, 8*3600)
	}
	return &Normalizer{loc: loc, now: time.Now}
}

// newNormalizerAt pins the clock for tests.
func newNormalizerAt(now time.Time) *Normalizer {
	n := NewNormalizer()
	n.now = func() time.Time { return now }
	return n
}

// Normalize admits, classifies and orders the feed's entries.
//
// Continuous ("24/7") categories and entries without a start time are
// skipped. An entry is admitted only when its start falls inside
// [startOfLocalDay, startOfLocalDay+48h). The result is sorted live first,
// then soonest upcoming, then ended.
func (n *Normalizer) Normalize(feed *catalog.Feed) []Event {
	now := n.now().In(n.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, n.loc)
	windowStart := dayStart.Unix()
	windowEnd := dayStart.Add(admissionWindow).Unix()

	var events []Event
	for _, group := range feed.Streams {
		rawCat := strings.TrimSpace(group.Category)
		if rawCat == "" {
			rawCat = "Misc"
		}
		if strings.Contains(rawCat, "24/7") {
			continue
		}

		for _, s := range group.Streams {
			startsAt := int64(s.StartsAt)
			if startsAt == 0 {
				continue
			}
			if startsAt < windowStart || startsAt >= windowEnd {
				continue
			}

			endsAt := int64(s.EndsAt)
			if endsAt == 0 {
				endsAt = startsAt + int64(DefaultEventDuration.Seconds())
			}

			baseName := strings.TrimSpace(s.Name)
			if baseName == "" {
				baseName = "Unnamed Event"
			}

			ev := Event{
				Name:        n.displayName(baseName, startsAt, s.Tag),
				Category:    refineCategory(rawCat, baseName),
				RawCategory: rawCat,
				Iframe:      s.Iframe,
				Poster:      s.Poster,
				StartsAt:    startsAt,
				EndsAt:      endsAt,
			}
			ev.Status = ev.StatusAt(now)
			events = append(events, ev)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Status.Rank() != events[j].Status.Rank() {
			return events[i].Status.Rank() < events[j].Status.Rank()
		}
		return events[i].StartsAt < events[j].StartsAt
	})
	return events
}

// displayName builds "Base Name (Jan 05 @ 08:00 PM PHT) [tag]". A start
// time that cannot be formatted drops the annotation but keeps the name.
func (n *Normalizer) displayName(base string, startsAt int64, tag string) string {
	name := base
	if annot := n.formatStart(startsAt); annot != "" {
		name += " (" + annot + ")"
	}
	if tag != "" {
		name += " [" + tag + "]"
	}
	return name
}

// formatStart renders the start time in the target zone, e.g.
// "Jan 05 @ 08:00 PM PHT". Returns "" for unformattable timestamps.
func (n *Normalizer) formatStart(ts int64) string {
	if ts <= 0 {
		return ""
	}
	t := time.Unix(ts, 0).In(n.loc)
	return t.Format("Jan 02 @ 03:04 PM") + " " + timeSuffix
}

// Today returns the current calendar date in the target zone, in the
// format used by the document date marker.
func (n *Normalizer) Today() string {
	return n.now().In(n.loc).Format("2006-01-02")
}
