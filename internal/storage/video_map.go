package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// VideoMapStore persists the RFID UID -> video filename bindings.
// UIDs are uppercased at write time so reader hex casing never matters.
type VideoMapStore struct {
	Path string
}

func NewVideoMapStore(path string) *VideoMapStore {
	return &VideoMapStore{Path: path}
}

// Load returns the current bindings, or an empty map on any failure.
func (s *VideoMapStore) Load() map[string]string {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return map[string]string{}
	}
	return m
}

func (s *VideoMapStore) Save(m map[string]string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode video map: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write video map: %w", err)
	}
	return nil
}

// Bind maps a UID to a video filename.
func (s *VideoMapStore) Bind(uid, filename string) error {
	uid = strings.ToUpper(strings.TrimSpace(uid))
	filename = strings.TrimSpace(filename)
	if uid == "" || filename == "" {
		return fmt.Errorf("bind: empty uid or filename")
	}
	m := s.Load()
	m[uid] = filename
	return s.Save(m)
}

// Unbind removes a UID binding. Unknown UIDs are a no-op.
func (s *VideoMapStore) Unbind(uid string) error {
	uid = strings.ToUpper(strings.TrimSpace(uid))
	m := s.Load()
	if _, ok := m[uid]; !ok {
		return nil
	}
	delete(m, uid)
	return s.Save(m)
}

// Lookup resolves a UID to its bound filename.
func (s *VideoMapStore) Lookup(uid string) (string, bool) {
	m := s.Load()
	f, ok := m[strings.ToUpper(strings.TrimSpace(uid))]
	return f, ok
}
