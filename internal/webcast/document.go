package webcast

import (
	"fmt"
	"strings"
)

// FormatHeader is the fixed first line of every document.
const FormatHeader = `#EXTM3U url-tvg="https://epgshare01.online/epgshare01/epg_ripper_DUMMY_CHANNELS.xml.gz"`

// datePrefix introduces the date marker line, e.g. "#DATE: 2026-08-30".
const datePrefix = "#DATE: "

// customHeaders are the protocol option directives emitted with every entry.
var customHeaders = []string{
	"#EXTVLCOPT:http-origin=https://ppv.to",
	"#EXTVLCOPT:http-referrer=https://ppv.to/",
	"#EXTVLCOPT:http-user-agent=Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:143.0) Gecko/20100101 Firefox/143.0",
}

// UnavailableURL is the sentinel emitted for events with no resolved stream.
const UnavailableURL = "https://example.com/stream_unavailable.m3u8"

// NoStreamPrefix marks placeholder entry names.
const NoStreamPrefix = "❌ NO STREAM - "

// EndedGroup is the group entries are moved to when they vanish from the
// source before their time window closed.
const EndedGroup = "Ended Games"

// Entry is one renderable playlist block: a header line plus the directive
// and URL lines that follow it. Status is carried as a structured field and
// only folded into the tvg-id attribute at render time.
type Entry struct {
	TvgID  string // base id without the status suffix
	Status Status
	Logo   string
	Group  string
	Name   string
	Lines  []string // directive and URL lines, in order
}

// Header renders the entry's #EXTINF line.
func (e *Entry) Header() string {
	return fmt.Sprintf(`#EXTINF:-1 tvg-id="%s|%s" tvg-logo="%s" group-title="%s",%s`,
		e.TvgID, e.Status, e.Logo, e.Group, e.Name)
}

// Key returns the entry's merge identity.
func (e *Entry) Key() string {
	return MergeKey(e.Name)
}

// Document is an ordered playlist: format header, date marker, entries.
type Document struct {
	Date    string // local calendar date, "2006-01-02"
	Entries []Entry
}

// Render produces the full newline-delimited document text.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString(FormatHeader)
	b.WriteString("\n")
	b.WriteString(datePrefix)
	b.WriteString(d.Date)
	b.WriteString("\n")
	for i := range d.Entries {
		e := &d.Entries[i]
		b.WriteString(e.Header())
		b.WriteString("\n")
		for _, line := range e.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
