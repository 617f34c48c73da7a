package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/lysyi3m/feed-scout/app/fetch"
)

func newTestExtractor() *Extractor {
	return NewExtractor(fetch.NewClient("feed-scout-test/1.0"))
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse URL %s: %v", raw, err)
	}
	return u
}

const threeItemFeed = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Example Blog</title>
    <item><title>One</title><link>https://example.com/one</link></item>
    <item><title>Two</title><link>https://example.com/two</link></item>
    <item><title>Three</title><link>https://example.com/three</link></item>
  </channel>
</rss>`

func TestRunDirectFeedSkipsDiscovery(t *testing.T) {
	candidateHits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(threeItemFeed))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feed.xml" {
			candidateHits++
		}
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result, err := newTestExtractor().Run(context.Background(), mustParse(t, server.URL+"/feed.xml"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Source != SourceDirect {
		t.Errorf("Expected source %q, got: %q", SourceDirect, result.Source)
	}
	if result.TotalItems != 3 {
		t.Errorf("Expected 3 items, got: %d", result.TotalItems)
	}
	if result.FeedTitle != "Example Blog" {
		t.Errorf("Expected enriched feed title, got: %q", result.FeedTitle)
	}
	if candidateHits != 0 {
		t.Errorf("Expected no candidate fetches for a direct feed, got: %d", candidateHits)
	}
}

func TestRunDiscoveryViaLinkTag(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<html><head>
			  <link rel="alternate" type="application/rss+xml" href="/feed.xml">
			</head><body>hi</body></html>`))
			return
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(threeItemFeed))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result, err := newTestExtractor().Run(context.Background(), mustParse(t, server.URL))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Source != SourceDiscovery {
		t.Errorf("Expected source %q, got: %q", SourceDiscovery, result.Source)
	}
	if !strings.HasSuffix(result.FeedURL, "/feed.xml") {
		t.Errorf("Expected feed URL ending /feed.xml, got: %s", result.FeedURL)
	}
	if result.TotalItems != 3 {
		t.Errorf("Expected 3 items, got: %d", result.TotalItems)
	}
	if len(result.FeedsFound) != 1 {
		t.Errorf("Expected 1 feed found, got: %d", len(result.FeedsFound))
	}
}

func TestRunRichestFeedWins(t *testing.T) {
	oneItemFeed := `<rss><channel>
	  <item><title>Solo</title><link>https://example.com/solo</link></item>
	</channel></rss>`

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Write([]byte(`<html><head></head><body>plain page</body></html>`))
			return
		}
		http.NotFound(w, r)
	})
	// /rss.xml is tried before /atom.xml in the conventional order but
	// carries fewer items, so it must lose.
	mux.HandleFunc("/rss.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(oneItemFeed))
	})
	mux.HandleFunc("/atom.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(threeItemFeed))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result, err := newTestExtractor().Run(context.Background(), mustParse(t, server.URL))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.HasSuffix(result.FeedURL, "/atom.xml") {
		t.Errorf("Expected richest feed /atom.xml to win, got: %s", result.FeedURL)
	}
	if result.TotalItems != 3 {
		t.Errorf("Expected 3 items, got: %d", result.TotalItems)
	}
	if len(result.FeedsFound) != 2 {
		t.Errorf("Expected 2 feeds found, got: %d", len(result.FeedsFound))
	}
}

func TestRunNoFeedsFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Write([]byte(`<html><body>nothing here</body></html>`))
			return
		}
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result, err := newTestExtractor().Run(context.Background(), mustParse(t, server.URL))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.FeedURL != "" {
		t.Errorf("Expected no feed URL, got: %s", result.FeedURL)
	}
	if result.TotalItems != 0 {
		t.Errorf("Expected 0 items, got: %d", result.TotalItems)
	}
	if result.Message == "" {
		t.Error("Expected explanatory message for empty result")
	}
}

func TestRunFeedsFoundButEmptyDistinguished(t *testing.T) {
	emptyFeed := `<rss><channel><title>Empty</title></channel></rss>`

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Write([]byte(`<html><body>plain</body></html>`))
			return
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/rss.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyFeed))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	result, err := newTestExtractor().Run(context.Background(), mustParse(t, server.URL))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.FeedsFound) != 1 {
		t.Fatalf("Expected 1 feed found, got: %d", len(result.FeedsFound))
	}
	if !strings.Contains(result.Message, "no items") {
		t.Errorf("Expected message about missing items, got: %q", result.Message)
	}
}

func TestRunSeedFetchErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestExtractor().Run(context.Background(), mustParse(t, server.URL))
	if err == nil {
		t.Fatal("Expected an error for an unreachable seed")
	}

	var fetchErr *fetch.Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *fetch.Error, got: %T", err)
	}
	if fetchErr.Status != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got: %d", fetchErr.Status)
	}
}
