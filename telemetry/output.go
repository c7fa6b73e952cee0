package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/kennel/config"
)

// OutputManager handles session output with CSV logging.
type OutputManager struct {
	dir         string
	eventFile   *os.File
	sessionFile *os.File

	// Track if headers have been written
	eventHeaderWritten   bool
	sessionHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "events.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating events.csv: %w", err)
	}
	om.eventFile = f

	f, err = os.Create(filepath.Join(dir, "sessions.csv"))
	if err != nil {
		om.eventFile.Close()
		return nil, fmt.Errorf("creating sessions.csv: %w", err)
	}
	om.sessionFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEvent appends an event row to events.csv.
func (om *OutputManager) WriteEvent(session string, e Event) error {
	if om == nil {
		return nil
	}

	records := []EventCSV{e.ToCSV(session)}

	if !om.eventHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.eventFile); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
		om.eventHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.eventFile); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
	}

	return nil
}

// WriteSession appends a stats record to sessions.csv.
func (om *OutputManager) WriteSession(stats SessionStats) error {
	if om == nil {
		return nil
	}

	records := []SessionStats{stats}

	if !om.sessionHeaderWritten {
		if err := gocsv.Marshal(records, om.sessionFile); err != nil {
			return fmt.Errorf("writing session stats: %w", err)
		}
		om.sessionHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.sessionFile); err != nil {
			return fmt.Errorf("writing session stats: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.eventFile != nil {
		if err := om.eventFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.sessionFile != nil {
		if err := om.sessionFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
