package history

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// Config defines settings for the run history store.
type Config struct {
	// Path of the JSONL file. Empty disables history.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation when the file exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = 10
	}
}

// Record describes one reporter run.
type Record struct {
	ID        string              `json:"id"`
	Timestamp time.Time           `json:"timestamp"`
	Source    string              `json:"source"`
	Alphas    []float64           `json:"alphas"`
	Entries   []model.ReportEntry `json:"entries"`
	Failures  []string            `json:"failures,omitempty"`
}

// NewRecord stamps a record with a fresh id and the current time.
func NewRecord(source string, alphas []float64, entries []model.ReportEntry, failures []string) Record {
	return Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    source,
		Alphas:    alphas,
		Entries:   entries,
		Failures:  failures,
	}
}

// Query selects records by time. Zero bounds are open.
type Query struct {
	Start time.Time
	End   time.Time
	Limit int
}

// Store appends run records to a JSONL file with automatic rotation.
type Store struct {
	logger *lumberjack.Logger
	path   string
}

// NewStore creates a store with rotation options in megabytes and days.
func NewStore(cfg Config) (*Store, error) {
	cfg.SetDefaults()
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return &Store{logger: lj, path: cfg.Path}, nil
}

// Append writes the record and triggers rotation if needed.
func (s *Store) Append(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return json.NewEncoder(s.logger).Encode(rec)
}

// Query reads the current and rotated files and returns matching records,
// oldest first. Unparsable lines are skipped.
func (s *Store) Query(ctx context.Context, q Query) ([]Record, error) {
	files, err := s.files()
	if err != nil {
		return nil, err
	}
	var res []Record
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recs, err := readFile(f, q)
		if err != nil {
			continue
		}
		res = append(res, recs...)
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Timestamp.Before(res[j].Timestamp) })
	if q.Limit > 0 && len(res) > q.Limit {
		res = res[len(res)-q.Limit:]
	}
	return res, nil
}

// files returns the active file and its rotated backups. Backups are named
// <name>-<timestamp><ext> by lumberjack.
func (s *Store) files() ([]string, error) {
	ext := filepath.Ext(s.path)
	prefix := s.path[:len(s.path)-len(ext)]
	backups, err := filepath.Glob(prefix + "-*" + ext)
	if err != nil {
		return nil, err
	}
	files := append(backups, s.path)
	return files, nil
}

func readFile(path string, q Query) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	var res []Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var r Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			continue
		}
		if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
			continue
		}
		if !q.End.IsZero() && r.Timestamp.After(q.End) {
			continue
		}
		res = append(res, r)
	}
	return res, scanner.Err()
}

// Close closes the underlying writer.
func (s *Store) Close() error {
	return s.logger.Close()
}
