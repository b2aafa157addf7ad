// Package csv persists extraction progress and final output as CSV files.
package csv

import (
	"context"
	"encoding/csv"
	"os"
	"slices"

	"github.com/sutaryash32/expodex"
)

// Ensure ProgressStore implements expodex.ProgressStore at compile time.
var _ expodex.ProgressStore = (*ProgressStore)(nil)

// header is the fixed column order shared by the progress file and the
// final output file. Absent values are serialized as the literal NA marker.
var header = []string{"Exhibitor Name", "Website URL", "Booth Location", "Contact Info", "Detail Page URL"}

// ProgressStore implements expodex.ProgressStore on two CSV files: a
// progress file rewritten at every checkpoint and a final output file
// written once all pending links are processed. Both share the same schema,
// so the progress file is directly resumable and the final file is a
// superset-or-equal copy of the last checkpoint.
type ProgressStore struct {
	progressPath string
	finalPath    string
}

// NewProgressStore creates a ProgressStore writing progress to progressPath
// and the terminal output to finalPath.
func NewProgressStore(progressPath, finalPath string) *ProgressStore {
	return &ProgressStore{
		progressPath: progressPath,
		finalPath:    finalPath,
	}
}

// Load parses previously persisted records in their persisted order.
// A missing progress file yields no records and no error. A file that
// exists but cannot be parsed returns EINVALID; the caller decides whether
// to recover.
func (s *ProgressStore) Load(ctx context.Context) ([]expodex.Exhibitor, error) {
	f, err := os.Open(s.progressPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, expodex.Errorf(expodex.EINVALID, "progress file %q is corrupt: %v", s.progressPath, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if !slices.Equal(rows[0], header) {
		return nil, expodex.Errorf(expodex.EINVALID, "progress file %q has unexpected header %v", s.progressPath, rows[0])
	}

	records := make([]expodex.Exhibitor, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, expodex.Exhibitor{
			Name:      row[0],
			Website:   row[1],
			Booth:     row[2],
			Contact:   row[3],
			SourceURL: row[4],
		})
	}

	return records, nil
}

// Checkpoint writes the entire accumulated record set to the progress file.
// The write goes to a temporary file first and is renamed into place, so an
// interrupted checkpoint never leaves a truncated progress file behind.
func (s *ProgressStore) Checkpoint(ctx context.Context, records []expodex.Exhibitor) error {
	return writeAll(s.progressPath, records)
}

// Finalize writes the terminal output file from the accumulated records.
func (s *ProgressStore) Finalize(ctx context.Context, records []expodex.Exhibitor) error {
	return writeAll(s.finalPath, records)
}

// Finalized reports whether the terminal output file already exists.
func (s *ProgressStore) Finalized() bool {
	_, err := os.Stat(s.finalPath)
	return err == nil
}

// writeAll writes header plus one row per record to path via temp-and-rename.
func writeAll(path string, records []expodex.Exhibitor) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	_ = w.Write(header)
	for _, r := range records {
		_ = w.Write([]string{r.Name, r.Website, r.Booth, r.Contact, r.SourceURL})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
