package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/sutaryash32/expodex"
)

// Compile-time interface verification.
var _ expodex.Archive = (*Archive)(nil)

// Archive implements expodex.Archive using SQLite. Every fetched detail page
// is stored as a raw HTML snapshot keyed by URL, so extraction strategies can
// be reworked later without re-crawling the site.
type Archive struct {
	db    *DB
	runID string
}

// NewArchive creates a new Archive. All snapshots saved through it share one
// run ID, which groups the pages a single crawl produced.
func NewArchive(db *DB) *Archive {
	return &Archive{db: db, runID: uuid.New().String()}
}

// RunID returns the identifier shared by all snapshots this Archive saves.
func (a *Archive) RunID() string {
	return a.runID
}

// Page is a stored snapshot of a fetched page.
type Page struct {
	ID          string
	RunID       string
	URL         string
	ContentHash string
	HTML        string
	FetchedAt   time.Time
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// SavePage stores a snapshot of the page. When the most recent snapshot for
// the same URL carries identical content, nothing is written: re-runs over
// unchanged pages cost no space.
func (a *Archive) SavePage(ctx context.Context, url string, html string) error {
	if url == "" {
		return expodex.Errorf(expodex.EINVALID, "page url is required")
	}

	hash := hashContent(html)

	var lastHash string
	err := a.db.QueryRowContext(ctx, `
		SELECT content_hash
		FROM pages
		WHERE url = ?
		ORDER BY fetched_at DESC, rowid DESC
		LIMIT 1
	`, url).Scan(&lastHash)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil && lastHash == hash {
		return nil
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO pages (id, run_id, url, content_hash, html, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), a.runID, url, hash, []byte(html),
		time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindLatestPage retrieves the most recent snapshot stored for the URL.
func (a *Archive) FindLatestPage(ctx context.Context, url string) (*Page, error) {
	var page Page
	var html []byte
	var fetchedAt string

	err := a.db.QueryRowContext(ctx, `
		SELECT id, run_id, url, content_hash, html, fetched_at
		FROM pages
		WHERE url = ?
		ORDER BY fetched_at DESC, rowid DESC
		LIMIT 1
	`, url).Scan(&page.ID, &page.RunID, &page.URL, &page.ContentHash, &html, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, expodex.Errorf(expodex.ENOTFOUND, "no snapshot stored for %q", url)
	}
	if err != nil {
		return nil, err
	}

	page.HTML = string(html)
	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}

// CountPages returns the number of snapshots stored across all runs.
func (a *Archive) CountPages(ctx context.Context) (int, error) {
	var n int
	err := a.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&n)
	return n, err
}
