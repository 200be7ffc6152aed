package runlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mazegen/internal/geometry"
)

const fileName = "runs.jsonl"

// RunLog records one successful generation. The seed is enough to
// reproduce the layout with the same boundary, width and orientation.
type RunLog struct {
	ID          string               `json:"id"`
	Timestamp   time.Time            `json:"timestamp"`
	Seed        int64                `json:"seed"`
	Width       int                  `json:"width"`
	Orientation geometry.Orientation `json:"orientation"`
	Boundary    geometry.Quad        `json:"boundary"`
	Walls       int                  `json:"walls"`
	Rooms       int                  `json:"rooms"`
	Scene       string               `json:"scene"`
}

// New stamps a record with a fresh ID and the current time.
func New() RunLog {
	return RunLog{ID: uuid.NewString(), Timestamp: time.Now().UTC()}
}

// Store appends and reads run records in Dir/runs.jsonl.
type Store struct {
	Dir    string
	Logger *zap.Logger
}

// Open returns a store rooted at dir, or at the default data directory
// when dir is empty.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{Dir: dir, Logger: logger}, nil
}

// Path is the location of the history file.
func (s *Store) Path() string { return filepath.Join(s.Dir, fileName) }

// Save appends the run as a single JSON line. Errors are logged and
// returned but callers treat history as best effort.
func (s *Store) Save(rl RunLog) error {
	if err := s.save(rl); err != nil {
		s.Logger.Warn("run log: not saved", zap.String("path", s.Path()), zap.Error(err))
		return err
	}
	s.Logger.Debug("run log: saved", zap.String("run_id", rl.ID), zap.Int64("seed", rl.Seed))
	return nil
}

func (s *Store) save(rl RunLog) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(rl)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.Write(data)
	return err
}

// List returns up to limit most recent runs, oldest first. limit <= 0
// returns everything. Lines that fail to decode are skipped with a warning.
func (s *Store) List(limit int) ([]RunLog, error) {
	f, err := os.Open(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var runs []RunLog
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var rl RunLog
		if err := json.Unmarshal(sc.Bytes(), &rl); err != nil {
			s.Logger.Warn("run log: skipping bad line", zap.Int("line", line), zap.Error(err))
			continue
		}
		runs = append(runs, rl)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path(), err)
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[len(runs)-limit:]
	}
	return runs, nil
}

// Find returns the run whose ID starts with prefix.
func (s *Store) Find(prefix string) (RunLog, error) {
	runs, err := s.List(0)
	if err != nil {
		return RunLog{}, err
	}
	var match []RunLog
	for _, rl := range runs {
		if len(prefix) > 0 && len(rl.ID) >= len(prefix) && rl.ID[:len(prefix)] == prefix {
			match = append(match, rl)
		}
	}
	switch len(match) {
	case 0:
		return RunLog{}, fmt.Errorf("no run matches %q", prefix)
	case 1:
		return match[0], nil
	}
	return RunLog{}, fmt.Errorf("%d runs match %q", len(match), prefix)
}

// DefaultDir returns the directory where run logs are stored.
// Follows the XDG Base Directory layout: $XDG_DATA_HOME/mazegen,
// defaulting to ~/.local/share/mazegen.
func DefaultDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "mazegen"), nil
}
