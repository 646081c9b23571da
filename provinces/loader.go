package provinces

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Loader reads the province content dataset once per session and hands out
// the cached records afterwards. Safe for concurrent use; the returned slice
// is shared and must be treated as read-only.
type Loader struct {
	logger   *logrus.Logger
	filename string
	cache    atomic.Pointer[[]Province]
}

func NewLoader(logger *logrus.Logger, config Config) (*Loader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Loader{
		logger:   logger,
		filename: config.Filename,
	}, nil
}

// Load returns the records in file order. The first successful read is kept
// for the lifetime of the session.
func (loader *Loader) Load(ctx context.Context) ([]Province, error) {
	if cached := loader.cache.Load(); cached != nil {
		return *cached, nil
	}
	return loader.Reload(ctx)
}

// Reload bypasses the session cache and re-reads the dataset file.
func (loader *Loader) Reload(ctx context.Context) ([]Province, error) {
	records, err := loadFile(loader.filename)
	if err != nil {
		return nil, err
	}

	loader.logger.Infof("PROVINCES: loaded %d record(s) from '%s'", len(records), loader.filename)
	loader.cache.Store(&records)

	return records, nil
}

// loadFile decodes and validates the dataset. A record missing either field
// fails the whole load; silently dropping rows would desync the joined table
// from the source data.
func loadFile(filename string) ([]Province, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &DataLoadError{Filename: filename, Err: err}
	}
	defer f.Close()

	var records []Province

	decoder := json.NewDecoder(f)
	if err := decoder.Decode(&records); err != nil {
		return nil, &DataLoadError{Filename: filename, Err: fmt.Errorf("bad json: %w", err)}
	}

	if len(records) == 0 {
		return nil, &DataLoadError{Filename: filename, Err: fmt.Errorf("dataset contains no records")}
	}

	for idx, record := range records {
		if record.Name == "" {
			return nil, &DataLoadError{Filename: filename, Err: fmt.Errorf("record %d is missing 'name'", idx)}
		}
		if record.Culture == "" {
			return nil, &DataLoadError{Filename: filename, Err: fmt.Errorf("record %d ('%s') is missing 'culture'", idx, record.Name)}
		}
	}

	return records, nil
}
