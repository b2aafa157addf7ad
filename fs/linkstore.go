// Package fs provides file-based persistence for the discovered link set.
package fs

import (
	"context"
	"os"
	"strings"

	"github.com/sutaryash32/expodex"
)

// Ensure LinkStore implements expodex.LinkStore at compile time.
var _ expodex.LinkStore = (*LinkStore)(nil)

// LinkStore persists the link set as a newline-delimited file: one absolute
// URL per line in discovery order, no header.
type LinkStore struct {
	path string
}

// NewLinkStore creates a LinkStore backed by the file at path.
func NewLinkStore(path string) *LinkStore {
	return &LinkStore{path: path}
}

// Load reads the cached link set, order preserved.
// Returns ENOTFOUND if the file does not exist; an existing empty file is a
// valid empty set.
func (s *LinkStore) Load(ctx context.Context) (expodex.LinkSet, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, expodex.Errorf(expodex.ENOTFOUND, "link cache %q not found", s.path)
	}
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}

	return expodex.NewLinkSet(urls...), nil
}

// Save writes the full link set, overwriting any prior content.
func (s *LinkStore) Save(ctx context.Context, links expodex.LinkSet) error {
	var b strings.Builder
	for _, u := range links {
		b.WriteString(u)
		b.WriteByte('\n')
	}
	return os.WriteFile(s.path, []byte(b.String()), 0644)
}
