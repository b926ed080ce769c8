// Package storage persists named chrome presets so developers can
// replay layout decisions against saved panel configurations. Only
// panel geometry is stored; node positions never are.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/crewstudio/crewcanvas/pkg/canvas"
)

// ErrPresetNotFound is returned when a named preset does not exist.
var ErrPresetNotFound = errors.New("preset not found")

// Preset is a saved chrome configuration.
type Preset struct {
	Name      string
	Chrome    canvas.ChromeState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SQLitePresetRepository stores chrome presets in SQLite.
// Database location: ~/.crewcanvas/crewcanvas.db
type SQLitePresetRepository struct {
	db *sql.DB
}

// NewSQLitePresetRepository creates a repository at the default path.
func NewSQLitePresetRepository() (*SQLitePresetRepository, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewSQLitePresetRepositoryWithPath(filepath.Join(homeDir, ".crewcanvas", "crewcanvas.db"))
}

// NewSQLitePresetRepositoryWithPath creates a repository with a custom
// database path. Useful for testing.
func NewSQLitePresetRepositoryWithPath(dbPath string) (*SQLitePresetRepository, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initializeSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &SQLitePresetRepository{db: db}, nil
}

// initializeSchema creates the presets table if it does not exist.
func initializeSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS chrome_presets (
		name       TEXT PRIMARY KEY,
		chrome     TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	_, err := db.Exec(schema)
	return err
}

// Close closes the database connection.
func (r *SQLitePresetRepository) Close() error {
	return r.db.Close()
}

// Save persists a preset, replacing any existing preset of the same
// name while preserving its creation time.
func (r *SQLitePresetRepository) Save(name string, chrome canvas.ChromeState) error {
	if name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}

	chromeJSON, err := json.Marshal(chrome)
	if err != nil {
		return fmt.Errorf("failed to serialize chrome state: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.Exec(`
		INSERT INTO chrome_presets (name, chrome, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET chrome = excluded.chrome, updated_at = excluded.updated_at`,
		name, string(chromeJSON), now, now)
	if err != nil {
		return fmt.Errorf("failed to save preset %s: %w", name, err)
	}
	return nil
}

// Get loads a preset by name.
func (r *SQLitePresetRepository) Get(name string) (*Preset, error) {
	row := r.db.QueryRow(`
		SELECT name, chrome, created_at, updated_at
		FROM chrome_presets WHERE name = ?`, name)

	preset, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preset %s: %w", name, err)
	}
	return preset, nil
}

// List returns all presets ordered by name.
func (r *SQLitePresetRepository) List() ([]*Preset, error) {
	rows, err := r.db.Query(`
		SELECT name, chrome, created_at, updated_at
		FROM chrome_presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var presets []*Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate presets: %w", err)
	}
	return presets, nil
}

// Delete removes a preset by name.
func (r *SQLitePresetRepository) Delete(name string) error {
	result, err := r.db.Exec(`DELETE FROM chrome_presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete preset %s: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(s scanner) (*Preset, error) {
	var preset Preset
	var chromeJSON string
	if err := s.Scan(&preset.Name, &chromeJSON, &preset.CreatedAt, &preset.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(chromeJSON), &preset.Chrome); err != nil {
		return nil, fmt.Errorf("failed to deserialize chrome state: %w", err)
	}
	return &preset, nil
}
