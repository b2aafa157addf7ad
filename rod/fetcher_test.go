//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sutaryash32/expodex"
	"github.com/sutaryash32/expodex/rod"
)

// Ensure Fetcher implements expodex.Fetcher.
var _ expodex.Fetcher = (*rod.Fetcher)(nil)

// galleryPage simulates the exhibitor gallery: the listing markup is
// inserted by JavaScript a moment after load, the way the real site does it.
const galleryPage = `<!DOCTYPE html>
<html>
<head><title>Exhibitor Gallery</title></head>
<body>
<div id="app">Loading...</div>
<script>
setTimeout(function() {
  var list = document.createElement('div');
  list.className = 'exhibitor-list';
  list.innerHTML = '<a href="/8_0/exhibitor-details.cfm?exhid=1001">Acme Robotics</a>';
  document.getElementById('app').replaceChildren(list);
}, 300);
</script>
</body>
</html>`

func TestFetcher_Fetch_WaitsForSelector(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(galleryPage))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithRenderDelay(100 * time.Millisecond))
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL, ".exhibitor-list")

	require.NoError(t, err)
	assert.Contains(t, html, "exhibitor-details.cfm?exhid=1001")
	assert.Contains(t, html, "Acme Robotics")
	assert.NotContains(t, html, "Loading...")
}

func TestFetcher_Fetch_EmptySelectorSkipsReadinessWait(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Static Exhibitor</h1></body></html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithRenderDelay(0))
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL, "")

	require.NoError(t, err)
	assert.Contains(t, html, "Static Exhibitor")
}

func TestFetcher_Fetch_TimesOutWhenSelectorNeverAppears(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>no exhibitors here</p></body></html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(
		rod.WithFetchTimeout(2*time.Second),
		rod.WithRenderDelay(0),
	)
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL, ".exhibitor-list")

	require.Error(t, err)
	assert.Equal(t, expodex.EUNAVAILABLE, expodex.ErrorCode(err))
	assert.Contains(t, expodex.ErrorMessage(err), "timeout loading page")
}

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	// Server that delays response
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Don't respond - let context timeout
		select {}
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err = fetcher.Fetch(ctx, srv.URL, "body")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_Close_Idempotent(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	// First close should succeed
	err = fetcher.Close()
	require.NoError(t, err)

	// Second close should also succeed (not panic or error)
	err = fetcher.Close()
	require.NoError(t, err)
}

func TestFetcher_Fetch_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	err = fetcher.Close()
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), "http://example.com", "body")

	require.Error(t, err)
	assert.Equal(t, expodex.EINVALID, expodex.ErrorCode(err))
	assert.Contains(t, expodex.ErrorMessage(err), "closed")
}
