package jsonfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/fileutil"
	"github.com/custodia-labs/safedrive/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.RecordRepository = (*Store)(nil)

var log = logger.Component("jsonfile")

// filePerm is the mode of saved record files.
const filePerm os.FileMode = 0o644

// Store is a file-based implementation of driven.RecordRepository.
type Store struct {
	path string
}

// NewStore creates a store for the document at path.
// If path is empty, defaults to safedrive_data.json in the working directory.
// Nothing is read or created until Load or Save is called.
func NewStore(path string) *Store {
	if path == "" {
		path = domain.DefaultDataPath
	}
	return &Store{path: path}
}

// Load reads the document. A missing file yields empty records.
func (s *Store) Load(ctx context.Context) (domain.Records, error) {
	if err := ctx.Err(); err != nil {
		return domain.Records{}, domain.NewIOFailure("load", s.path, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run - start empty
			log.Debug("no file at %s, starting empty", s.path)
			return domain.Records{}.Clone(), nil
		}
		return domain.Records{}, domain.NewIOFailure("load", s.path, err)
	}

	records, err := Decode(data)
	if err != nil {
		return domain.Records{}, domain.NewCorruptStateError(s.path, err)
	}
	log.Debug("read %d bytes from %s", len(data), s.path)
	return records, nil
}

// Save replaces the document with records.
// The parent directory is created when missing.
func (s *Store) Save(ctx context.Context, records domain.Records) error {
	if err := ctx.Err(); err != nil {
		return domain.NewIOFailure("save", s.path, err)
	}

	data, err := Encode(records)
	if err != nil {
		return domain.NewIOFailure("save", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return domain.NewIOFailure("save", s.path, err)
	}
	if err := fileutil.WriteAtomic(s.path, data, filePerm); err != nil {
		return domain.NewIOFailure("save", s.path, err)
	}
	log.Debug("wrote %d bytes to %s", len(data), s.path)
	return nil
}

// Location returns the document path.
func (s *Store) Location() string {
	return s.path
}
