// Package audit appends scan records to a local JSONL log so an assessment
// can be reconstructed later: which trees were scanned, with which check,
// and what the counters were.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ScanRecord is one completed scan.
type ScanRecord struct {
	ScanID        string    `json:"scan_id"`
	Timestamp     time.Time `json:"timestamp"`
	Command       string    `json:"command"`
	Root          string    `json:"root"`
	Visited       int       `json:"visited"`
	Matched       int       `json:"matched"`
	SkippedDirs   int       `json:"skipped_dirs"`
	Indeterminate int       `json:"indeterminate"`
	Duration      string    `json:"duration"`
}

// Log is an append-only JSONL audit log.
type Log struct {
	path string
}

// New returns the audit log at its default location,
// $XDG_STATE_HOME/ferret/audit.jsonl (falling back to ~/.local/state).
func New() *Log {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".local", "state")
	}
	return &Log{path: filepath.Join(base, "ferret", "audit.jsonl")}
}

// At returns an audit log at an explicit path. Used by tests.
func At(path string) *Log { return &Log{path: path} }

// Append writes one record, assigning a scan ID when missing. The log file
// is owner-only: it reveals what was scanned and where.
func (l *Log) Append(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns all records, newest first.
func (l *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var r ScanRecord
		if err := dec.Decode(&r); err != nil {
			break
		}
		records = append(records, r)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
