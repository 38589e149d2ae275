package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrNotInitialized = errors.New("storage: store not initialized")

// Store keeps one directory per saved maze (metadata.json + maze.txt) and an
// sqlite index of all runs for listing.
type Store struct {
	baseDir string
	db      *sql.DB
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	created_at  INTEGER NOT NULL,
	width       INTEGER NOT NULL,
	height      INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	perfect     INTEGER NOT NULL,
	path_length INTEGER NOT NULL
)`

func (s *Store) Init() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", filepath.Join(s.baseDir, "index.db"))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("storage: create index: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Entry     string             `json:"entry"`
	Exit      string             `json:"exit"`
	Perfect   bool               `json:"perfect"`
	Path      string             `json:"path"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Save stores a snapshot under a new run ID and returns it.
func (s *Store) Save(seed int64, perfect bool, snap *Snapshot, metrics map[string]float64) (string, error) {
	if s.db == nil {
		return "", ErrNotInitialized
	}
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now().UTC(),
		Seed:      seed,
		Width:     snap.Grid.Width(),
		Height:    snap.Grid.Height(),
		Entry:     snap.Entry.String(),
		Exit:      snap.Exit.String(),
		Perfect:   perfect,
		Path:      snap.Path,
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := SaveFile(filepath.Join(runDir, "maze.txt"), snap); err != nil {
		return "", err
	}

	_, err = s.db.Exec(`INSERT INTO runs (id, created_at, width, height, seed, perfect, path_length)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, meta.Timestamp.UnixNano(), meta.Width, meta.Height, seed, perfect, len(snap.Path))
	if err != nil {
		return "", fmt.Errorf("storage: index run %s: %w", runID, err)
	}
	return runID, nil
}

// List returns all runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := s.db.Query(`SELECT id FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(ids))
	for _, id := range ids {
		meta, err := s.Load(id)
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadMaze(runID string) (*Snapshot, error) {
	return LoadFile(filepath.Join(s.baseDir, runID, "maze.txt"))
}
