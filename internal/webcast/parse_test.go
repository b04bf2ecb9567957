package webcast

import (
	"strings"
	"testing"
)

const sampleDoc = `#EXTM3U url-tvg="https://epgshare01.online/epgshare01/epg_ripper_DUMMY_CHANNELS.xml.gz"
#DATE: 2026-03-10
#EXTINF:-1 tvg-id="NBA.Basketball.Dummy.us|LIVE" tvg-logo="http://logo/nba.png" group-title="NBA Games",Lakers vs Celtics (Mar 10 @ 08:00 PM PHT)
#EXTVLCOPT:http-origin=https://ppv.to
#EXTVLCOPT:http-referrer=https://ppv.to/
#EXTVLCOPT:http-user-agent=Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:143.0) Gecko/20100101 Firefox/143.0
https://cdn.example/x/tracks-v1a1/mono.ts.m3u8
#EXTINF:-1 tvg-id="Darts.Dummy.us|NO_STREAM" tvg-logo="" group-title="Darts",❌ NO STREAM - A vs B (Mar 10 @ 09:00 PM PHT)
#EXTVLCOPT:http-origin=https://ppv.to
#EXTVLCOPT:http-referrer=https://ppv.to/
#EXTVLCOPT:http-user-agent=Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:143.0) Gecko/20100101 Firefox/143.0
https://example.com/stream_unavailable.m3u8
`

func TestParseDocument_blocks(t *testing.T) {
	doc := ParseDocument(sampleDoc)

	if doc.Date != "2026-03-10" {
		t.Errorf("date marker: got %q", doc.Date)
	}
	if len(doc.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(doc.Entries))
	}

	first := doc.Entries[0]
	if first.TvgID != "NBA.Basketball.Dummy.us" {
		t.Errorf("tvg-id base: got %q", first.TvgID)
	}
	if first.Status != StatusLive {
		t.Errorf("status: got %s", first.Status)
	}
	if first.Group != "NBA Games" {
		t.Errorf("group: got %q", first.Group)
	}
	if first.Name != "Lakers vs Celtics (Mar 10 @ 08:00 PM PHT)" {
		t.Errorf("name: got %q", first.Name)
	}
	if len(first.Lines) != 4 || first.Lines[3] != "https://cdn.example/x/tracks-v1a1/mono.ts.m3u8" {
		t.Errorf("lines: got %v", first.Lines)
	}

	second := doc.Entries[1]
	if second.Status != StatusNoStream {
		t.Errorf("placeholder status: got %s", second.Status)
	}
}

func TestParseDocument_roundtrip(t *testing.T) {
	doc := ParseDocument(sampleDoc)
	if got := doc.Render(); got != sampleDoc {
		t.Errorf("parse+render should reproduce the document:\ngot:\n%s\nwant:\n%s", got, sampleDoc)
	}
}

func TestParseDocument_missing_date(t *testing.T) {
	content := strings.ReplaceAll(sampleDoc, "#DATE: 2026-03-10\n", "")
	doc := ParseDocument(content)
	if doc.Date != "" {
		t.Errorf("missing marker should leave date empty, got %q", doc.Date)
	}
	if len(doc.Entries) != 2 {
		t.Errorf("entries should still parse, got %d", len(doc.Entries))
	}
}

func TestParseDocument_legacy_glyph_status(t *testing.T) {
	content := "#EXTINF:-1 tvg-id=\"NBA.Basketball.Dummy.us\" tvg-logo=\"\" group-title=\"NBA Games\",🟢 LIVE - Lakers vs Celtics\nhttps://cdn.example/x.m3u8\n"
	doc := ParseDocument(content)
	if len(doc.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(doc.Entries))
	}
	if doc.Entries[0].Status != StatusLive {
		t.Errorf("legacy glyph should map to LIVE, got %s", doc.Entries[0].Status)
	}
}

func TestParseDocument_unlabeled_status_defaults_upcoming(t *testing.T) {
	content := "#EXTINF:-1 tvg-id=\"Misc.Dummy.us\" tvg-logo=\"\" group-title=\"Misc\",A vs B\nhttps://cdn.example/x.m3u8\n"
	doc := ParseDocument(content)
	if doc.Entries[0].Status != StatusUpcoming {
		t.Errorf("unlabeled entries default to UPCOMING, got %s", doc.Entries[0].Status)
	}
}

func TestParseDocument_garbage_degrades_to_empty(t *testing.T) {
	doc := ParseDocument("complete nonsense\nno headers here\n")
	if len(doc.Entries) != 0 || doc.Date != "" {
		t.Errorf("garbage input should yield an empty document, got %+v", doc)
	}
}

func TestParseDocument_orphan_lines_before_first_header(t *testing.T) {
	doc := ParseDocument("https://stray.example/x.m3u8\n" + sampleDoc)
	if len(doc.Entries) != 2 {
		t.Errorf("stray lines before the first header are dropped, got %d entries", len(doc.Entries))
	}
	if len(doc.Entries[0].Lines) != 4 {
		t.Errorf("stray line must not attach to the first entry: %v", doc.Entries[0].Lines)
	}
}
