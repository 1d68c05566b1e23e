package history

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tri-tranminh/gold-tracker/internal/model"
)

var header = []string{"date", "gold_type", "buy_price", "sell_price"}

// StorageError reports an unusable history file: an inaccessible path or a
// structurally unreadable record.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "history " + e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// Repository persists daily gold prices as an append-only CSV file.
// Rows are never updated or deleted once written.
type Repository struct {
	logger *slog.Logger
	path   string
}

func NewRepository(logger *slog.Logger, path string) *Repository {
	return &Repository{logger: logger.With("component", "history"), path: path}
}

// LoadExistingKeys returns every (date, gold type) pair already persisted.
// A missing file means an empty history. Rows too short to carry both key
// columns are skipped rather than aborting the whole read.
func (that *Repository) LoadExistingKeys(_ context.Context) (map[model.Key]struct{}, error) {
	keys := make(map[model.Key]struct{})

	f, err := os.Open(that.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return keys, nil
		}
		return nil, &StorageError{Op: "open", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	head, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return keys, nil
		}
		return nil, &StorageError{Op: "read header", Err: err}
	}

	dateCol, typeCol := -1, -1
	for i, name := range head {
		switch name {
		case "date":
			dateCol = i
		case "gold_type":
			typeCol = i
		}
	}
	if dateCol < 0 || typeCol < 0 {
		return nil, &StorageError{Op: "read header", Err: fmt.Errorf("missing date/gold_type columns: %v", head)}
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &StorageError{Op: "read row", Err: err}
		}
		if len(record) <= dateCol || len(record) <= typeCol {
			that.logger.Warn("skipping short history row", "row", record)
			continue
		}
		keys[model.Key{Date: record[dateCol], GoldType: record[typeCol]}] = struct{}{}
	}

	return keys, nil
}

// Append writes the given rows to the end of the history file, creating the
// data directory and the header on first use. Existing content is never
// rewritten or reordered. Returns the number of rows durably written.
func (that *Repository) Append(_ context.Context, rows []*model.GoldPrice) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	if dir := filepath.Dir(that.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, &StorageError{Op: "create data dir", Err: err}
		}
	}

	f, err := os.OpenFile(that.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, &StorageError{Op: "open for append", Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return 0, &StorageError{Op: "stat", Err: err}
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err = w.Write(header); err != nil {
			_ = f.Close()
			return 0, &StorageError{Op: "write header", Err: err}
		}
	}

	for _, row := range rows {
		record := []string{
			row.Date,
			row.GoldType,
			strconv.FormatInt(row.BuyPrice, 10),
			strconv.FormatInt(row.SellPrice, 10),
		}
		if err = w.Write(record); err != nil {
			_ = f.Close()
			return 0, &StorageError{Op: "write row", Err: err}
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		_ = f.Close()
		return 0, &StorageError{Op: "flush", Err: err}
	}
	if err = f.Close(); err != nil {
		return 0, &StorageError{Op: "close", Err: err}
	}

	return len(rows), nil
}
