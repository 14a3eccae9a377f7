// Package ledger persists the history of generated salary files and guards
// against generating two files for the same salary month.
package ledger

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fjacquet/salary-sif/internal/fileutils"
	"fjacquet/salary-sif/internal/logging"
	"fjacquet/salary-sif/internal/models"
)

// DefaultFile is the ledger file name used when none is configured.
const DefaultFile = "sif_history.yaml"

// Ledger is the in-memory list of past runs, oldest first.
type Ledger struct {
	Entries []models.HistoryEntry `yaml:"entries"`
}

// FindByMonth returns the entry recorded for the salary month token, if any.
func (l *Ledger) FindByMonth(month string) (*models.HistoryEntry, bool) {
	for i := range l.Entries {
		if l.Entries[i].SalaryMonth == month {
			return &l.Entries[i], true
		}
	}
	return nil, false
}

// Append adds entry at the end of the ledger.
func (l *Ledger) Append(entry models.HistoryEntry) {
	l.Entries = append(l.Entries, entry)
}

// Store loads and saves a Ledger as YAML. It takes no lock: two processes
// writing the same file at once may lose an entry.
type Store struct {
	Path   string
	logger logging.Logger
}

// NewStore creates a store for the ledger at path.
func NewStore(path string, logger logging.Logger) *Store {
	if path == "" {
		path = DefaultFile
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Store{Path: path, logger: logger}
}

// Load reads the ledger. A missing file yields an empty ledger. An unreadable
// or corrupt file also yields an empty ledger, with a warning; Load never
// fails on account of the file's content.
func (s *Store) Load() (*Ledger, error) {
	if !fileutils.FileExists(s.Path) && !fileutils.DirectoryExists(s.Path) {
		s.logger.WithField(logging.FieldLedgerFile, s.Path).Debug("No ledger yet, starting empty")
		return &Ledger{}, nil
	}

	data, err := fileutils.ReadFile(s.Path)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldLedgerFile, s.Path).
			Warn("Cannot read ledger, treating it as empty")
		return &Ledger{}, nil
	}

	var l Ledger
	if err := yaml.Unmarshal(data, &l); err != nil {
		s.logger.WithError(err).WithField(logging.FieldLedgerFile, s.Path).
			Warn("Ledger is corrupt, treating it as empty")
		return &Ledger{}, nil
	}

	s.logger.WithFields(
		logging.F(logging.FieldLedgerFile, s.Path),
		logging.F(logging.FieldCount, len(l.Entries)),
	).Debug("Loaded ledger")
	return &l, nil
}

// Persist writes the whole ledger, replacing the file atomically.
func (s *Store) Persist(l *Ledger) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("error marshaling ledger: %w", err)
	}

	if err := fileutils.WriteFileAtomic(s.Path, data, 0644); err != nil {
		return fmt.Errorf("error writing ledger %s: %w", s.Path, err)
	}

	s.logger.WithFields(
		logging.F(logging.FieldLedgerFile, s.Path),
		logging.F(logging.FieldCount, len(l.Entries)),
	).Debug("Saved ledger")
	return nil
}
