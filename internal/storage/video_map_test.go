package storage

import (
	"path/filepath"
	"testing"
)

func TestVideoMapBindUppercasesUID(t *testing.T) {
	s := NewVideoMapStore(filepath.Join(t.TempDir(), "map.json"))
	if err := s.Bind(" ab12cd34 ", "intro.mp4"); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	m := s.Load()
	if m["AB12CD34"] != "intro.mp4" {
		t.Fatalf("uid not uppercased at write time: %v", m)
	}
	if _, ok := m["ab12cd34"]; ok {
		t.Fatalf("lowercase key should not exist: %v", m)
	}
}

func TestVideoMapLookupIsCaseInsensitive(t *testing.T) {
	s := NewVideoMapStore(filepath.Join(t.TempDir(), "map.json"))
	if err := s.Bind("AB12", "a.mp4"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if f, ok := s.Lookup("ab12"); !ok || f != "a.mp4" {
		t.Fatalf("Lookup(ab12) = %q, %v", f, ok)
	}
}

func TestVideoMapUnbind(t *testing.T) {
	s := NewVideoMapStore(filepath.Join(t.TempDir(), "map.json"))
	if err := s.Bind("AB12", "a.mp4"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := s.Unbind("ab12"); err != nil {
		t.Fatalf("Unbind: %v", err)
	}
	if len(s.Load()) != 0 {
		t.Fatalf("binding not removed: %v", s.Load())
	}

	// Unknown UID is a no-op, not an error.
	if err := s.Unbind("MISSING"); err != nil {
		t.Fatalf("Unbind unknown uid: %v", err)
	}
}

func TestVideoMapLoadMissingFile(t *testing.T) {
	s := NewVideoMapStore(filepath.Join(t.TempDir(), "map.json"))
	m := s.Load()
	if m == nil || len(m) != 0 {
		t.Fatalf("missing file should load as empty map, got %v", m)
	}
}

func TestVideoMapBindRejectsEmpty(t *testing.T) {
	s := NewVideoMapStore(filepath.Join(t.TempDir(), "map.json"))
	if err := s.Bind("", "a.mp4"); err == nil {
		t.Fatalf("empty uid should be rejected")
	}
	if err := s.Bind("AB", ""); err == nil {
		t.Fatalf("empty filename should be rejected")
	}
}
