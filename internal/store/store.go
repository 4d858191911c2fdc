// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/thatcatcamp/colorstudio/internal/colors"
)

// Storage keys and ring buffer sizes
const (
	HistoryKey   = "cs_history_v1"
	SavedKey     = "cs_palettes_v1"
	HistoryLimit = 8
	SavedLimit   = 30
)

// PaletteStore keeps palette history and saved palettes as bounded,
// newest-first lists on top of a Backend.
type PaletteStore struct {
	backend Backend
	mu      sync.Mutex
}

// NewPaletteStore creates a store over the given backend
func NewPaletteStore(backend Backend) *PaletteStore {
	return &PaletteStore{backend: backend}
}

// PushHistory records p as the newest history entry, evicting the oldest
// beyond HistoryLimit.
func (s *PaletteStore) PushHistory(ctx context.Context, p colors.Palette) error {
	return s.push(ctx, HistoryKey, HistoryLimit, p)
}

// PushSaved records p as the newest saved palette, evicting the oldest
// beyond SavedLimit.
func (s *PaletteStore) PushSaved(ctx context.Context, p colors.Palette) error {
	return s.push(ctx, SavedKey, SavedLimit, p)
}

// LoadHistory returns history newest first. Missing or corrupt data reads as empty.
func (s *PaletteStore) LoadHistory(ctx context.Context) []colors.Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, HistoryKey)
}

// LoadSaved returns saved palettes newest first. Missing or corrupt data reads as empty.
func (s *PaletteStore) LoadSaved(ctx context.Context) []colors.Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, SavedKey)
}

// ClearHistory drops all history entries
func (s *PaletteStore) ClearHistory(ctx context.Context) error {
	return s.clear(ctx, HistoryKey)
}

// ClearSaved drops all saved palettes
func (s *PaletteStore) ClearSaved(ctx context.Context) error {
	return s.clear(ctx, SavedKey)
}

func (s *PaletteStore) push(ctx context.Context, key string, limit int, p colors.Palette) error {
	if len(p) == 0 {
		return fmt.Errorf("refusing to store an empty palette under %s", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(ctx, key)
	entries = append([]colors.Palette{p.Clone()}, entries...)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	raw := make([][]string, len(entries))
	for i, e := range entries {
		raw[i] = e.Strings()
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// load never fails: a broken entry must not stop the caller from working.
func (s *PaletteStore) load(ctx context.Context, key string) []colors.Palette {
	data, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("failed to read %s, treating as empty: %v", key, err)
		}
		return []colors.Palette{}
	}

	var raw [][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("corrupt %s, treating as empty: %v", key, err)
		return []colors.Palette{}
	}

	entries := make([]colors.Palette, 0, len(raw))
	for _, r := range raw {
		if p := colors.FilterValid(r); len(p) > 0 {
			entries = append(entries, p)
		}
	}
	return entries
}

func (s *PaletteStore) clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", key, err)
	}
	return nil
}
