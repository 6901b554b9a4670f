package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// RotationStore persists the idle-page headline pointer. The stored
// index can be stale relative to the current item count, so callers
// must reduce it modulo the count before dereferencing.
type RotationStore struct {
	Path string
}

func NewRotationStore(path string) *RotationStore {
	return &RotationStore{Path: path}
}

type rotationState struct {
	Index int `json:"index"`
}

// Read returns the persisted index, or 0 on any failure.
func (s *RotationStore) Read() int {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0
	}
	var st rotationState
	if err := json.Unmarshal(data, &st); err != nil {
		return 0
	}
	if st.Index < 0 {
		return 0
	}
	return st.Index
}

func (s *RotationStore) Write(index int) error {
	data, err := json.Marshal(rotationState{Index: index})
	if err != nil {
		return fmt.Errorf("encode rotation state: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write rotation state: %w", err)
	}
	return nil
}

// Advance moves the pointer to (index+1) mod total and persists it.
// A total of zero (or less) resets the pointer. Returns the new index.
func (s *RotationStore) Advance(total int) int {
	next := 0
	if total > 0 {
		next = (s.Read() + 1) % total
	}
	if err := s.Write(next); err != nil {
		log.Printf("rotation: %v", err)
	}
	return next
}
