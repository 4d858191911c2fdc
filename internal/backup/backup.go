// Package backup writes and restores JSON copies of the palette history and
// saved palettes.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thatcatcamp/colorstudio/internal/colors"
)

const (
	// Version is written into every backup file
	Version = "1"
	// DefaultKeep is how many backup files survive pruning
	DefaultKeep = 10

	filePrefix = "palettes-"
	fileSuffix = ".json"
	timeLayout = "20060102-150405.000"
)

// Library is the palette storage a backup reads from and restores into
type Library interface {
	LoadHistory(ctx context.Context) []colors.Palette
	LoadSaved(ctx context.Context) []colors.Palette
	PushHistory(ctx context.Context, p colors.Palette) error
	PushSaved(ctx context.Context, p colors.Palette) error
	ClearHistory(ctx context.Context) error
	ClearSaved(ctx context.Context) error
}

// BackupMetadata represents metadata about a backup
type BackupMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Note      string    `json:"note,omitempty"`
}

// Backup is the on-disk format. Lists are newest first, as stored.
type Backup struct {
	BackupMetadata
	History [][]string `json:"history"`
	Saved   [][]string `json:"saved"`
}

// BackupManager handles all backup operations
type BackupManager struct {
	BackupPath string // ~/.colorstudio/backups
	Keep       int
	library    Library
	now        func() time.Time
}

// NewBackupManager creates a new backup manager
func NewBackupManager(backupPath string, library Library) *BackupManager {
	return &BackupManager{
		BackupPath: backupPath,
		Keep:       DefaultKeep,
		library:    library,
		now:        time.Now,
	}
}

// CreateBackup writes the current history and saved palettes to a new file
// and prunes the oldest files beyond Keep. It returns the new file's path.
func (m *BackupManager) CreateBackup(ctx context.Context, note string) (string, error) {
	if err := os.MkdirAll(m.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	now := m.now().UTC()
	b := Backup{
		BackupMetadata: BackupMetadata{Timestamp: now, Version: Version, Note: note},
		History:        toStrings(m.library.LoadHistory(ctx)),
		Saved:          toStrings(m.library.LoadSaved(ctx)),
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}

	path := filepath.Join(m.BackupPath, filePrefix+now.Format(timeLayout)+fileSuffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.prune(); err != nil {
		return path, err
	}
	return path, nil
}

// ListBackups returns backup file names, newest first
func (m *BackupManager) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// ReadBackup loads a backup file. A bare file name is looked up in BackupPath.
func (m *BackupManager) ReadBackup(name string) (*Backup, error) {
	data, err := os.ReadFile(m.resolve(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse backup %s: %w", name, err)
	}
	return &b, nil
}

// RestoreBackup replaces history and saved palettes with the backup's
// contents. Invalid colors in the file are dropped.
func (m *BackupManager) RestoreBackup(ctx context.Context, name string) error {
	b, err := m.ReadBackup(name)
	if err != nil {
		return err
	}

	if err := m.library.ClearHistory(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	if err := m.library.ClearSaved(ctx); err != nil {
		return fmt.Errorf("failed to clear saved palettes: %w", err)
	}

	// Push oldest first so the stored order comes back newest first
	if err := replay(ctx, b.History, m.library.PushHistory); err != nil {
		return fmt.Errorf("failed to restore history: %w", err)
	}
	if err := replay(ctx, b.Saved, m.library.PushSaved); err != nil {
		return fmt.Errorf("failed to restore saved palettes: %w", err)
	}
	return nil
}

// DeleteBackup removes one backup file
func (m *BackupManager) DeleteBackup(name string) error {
	if err := os.Remove(m.resolve(name)); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

func (m *BackupManager) prune() error {
	if m.Keep <= 0 {
		return nil
	}
	names, err := m.ListBackups()
	if err != nil {
		return err
	}
	for _, name := range names[min(len(names), m.Keep):] {
		if err := os.Remove(filepath.Join(m.BackupPath, name)); err != nil {
			return fmt.Errorf("failed to prune backup %s: %w", name, err)
		}
	}
	return nil
}

func (m *BackupManager) resolve(name string) string {
	if filepath.Base(name) == name {
		return filepath.Join(m.BackupPath, name)
	}
	return name
}

func replay(ctx context.Context, lists [][]string, push func(context.Context, colors.Palette) error) error {
	for i := len(lists) - 1; i >= 0; i-- {
		p := colors.FilterValid(lists[i])
		if len(p) == 0 {
			continue
		}
		if err := push(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func toStrings(list []colors.Palette) [][]string {
	out := make([][]string, len(list))
	for i, p := range list {
		out[i] = p.Strings()
	}
	return out
}
