package webcast

import "strings"

// ParseDocument reconstructs a Document from a previously rendered artifact.
//
// The parser is deliberately forgiving: an entry starts at an #EXTINF line
// and extends to the line before the next #EXTINF line or end of input, and
// anything it cannot make sense of simply yields fewer entries. Callers
// decide whether a missing or stale date marker invalidates the result; the
// parser only reports what it found.
func ParseDocument(content string) *Document {
	doc := &Document{}
	lines := strings.Split(content, "\n")

	var current *Entry
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, datePrefix):
			doc.Date = strings.TrimSpace(strings.TrimPrefix(line, datePrefix))
		case strings.HasPrefix(line, "#EXTM3U"):
			// format header, nothing to keep
		case strings.HasPrefix(line, "#EXTINF"):
			doc.Entries = append(doc.Entries, parseHeader(line))
			current = &doc.Entries[len(doc.Entries)-1]
		case line == "":
			// blank lines between blocks are dropped
		default:
			if current != nil {
				current.Lines = append(current.Lines, line)
			}
		}
	}
	return doc
}

// parseHeader decodes one #EXTINF line into an Entry, splitting the status
// out of the tvg-id attribute. Legacy documents carried the status as a
// glyph in the display name instead; both forms are recognized.
func parseHeader(line string) Entry {
	e := Entry{
		Logo:  attrValue(line, "tvg-logo"),
		Group: attrValue(line, "group-title"),
	}

	if idx := strings.Index(line, ","); idx != -1 {
		e.Name = strings.TrimSpace(line[idx+1:])
	}

	id := attrValue(line, "tvg-id")
	e.TvgID = id
	e.Status = StatusUpcoming
	if cut := strings.LastIndex(id, "|"); cut != -1 {
		if suffix := strings.ToUpper(id[cut+1:]); isStatus(suffix) {
			e.Status = Status(suffix)
			e.TvgID = id[:cut]
		}
	}

	lower := strings.ToLower(line)
	if strings.Contains(lower, "🟢 live") {
		e.Status = StatusLive
	} else if strings.Contains(lower, "🔴 ended") {
		e.Status = StatusEnded
	}
	return e
}

// attrValue extracts a quoted key="value" attribute from an EXTINF line,
// returning "" when absent.
func attrValue(line, key string) string {
	marker := key + `="`
	idx := strings.Index(line, marker)
	if idx == -1 {
		return ""
	}
	rest := line[idx+len(marker):]
	end := strings.Index(rest, `"`)
	if end == -1 {
		return ""
	}
	return rest[:end]
}
