package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrave_RequiresAPIKey(t *testing.T) {
	_, err := NewBrave(BraveConfig{Queries: []string{"x"}})
	require.Error(t, err)
}

func TestFetch_ParsesAndStripsMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Subscription-Token"))
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		assert.Equal(t, "pm", r.URL.Query().Get("freshness"))
		assert.NotEmpty(t, r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"web": {
				"results": [
					{
						"title": "<strong>Senior ML Engineer</strong> at Acme",
						"url": "https://a.com/1",
						"description": "Fully <strong>remote</strong>,  machine learning"
					}
				]
			}
		}`))
	}))
	defer srv.Close()

	b, err := NewBrave(BraveConfig{
		APIKey:             "test-key",
		Endpoint:           srv.URL,
		Queries:            []string{"senior ml engineer remote"},
		MaxResultsPerQuery: 5,
		Freshness:          "pm",
		Delay:              time.Millisecond,
	})
	require.NoError(t, err)

	results, err := b.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Senior ML Engineer at Acme", results[0].Title)
	assert.Equal(t, "https://a.com/1", results[0].URL)
	assert.Equal(t, "Fully remote, machine learning", results[0].Description)
}

func TestFetch_FailingQueryDegradesToEmpty(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"web":{"results":[{"title":"Senior ML Engineer","url":"https://a.com/1","description":"remote"}]}}`))
	}))
	defer srv.Close()

	b, err := NewBrave(BraveConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL,
		Queries:  []string{"first", "second"},
		Delay:    time.Millisecond,
	})
	require.NoError(t, err)

	results, err := b.Fetch(context.Background())
	require.NoError(t, err, "a failed query is logged, not propagated")
	assert.Len(t, results, 1)
	assert.Equal(t, 2, calls, "the run continues after a failure")
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "plain text", stripMarkup("plain   text"))
	assert.Equal(t, "a b c", stripMarkup("<em>a</em> <strong>b</strong> c"))
}
