package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "playlist.m3u8")
	store := NewFileStore(path)

	want := []byte("#EXTM3U\n#DATE: 2026-03-10\n")
	if err := store.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Read = %q, want %q", got, want)
	}
}

func TestFileStore_missingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.m3u8"))
	if _, err := store.Read(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestFileStore_overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.m3u8")
	store := NewFileStore(path)

	if err := store.Write([]byte("first\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := store.Write([]byte("second\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "second\n" {
		t.Errorf("overwrite should replace content, got %q", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files should not linger, dir has %d entries", len(entries))
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()
	if _, err := store.Read(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("empty store should report os.ErrNotExist, got %v", err)
	}

	if err := store.Write([]byte("doc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "doc" {
		t.Errorf("Read = %q", got)
	}
}
