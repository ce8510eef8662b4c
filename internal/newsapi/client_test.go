package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glabrego/newsdeck/internal/news"
)

func TestListSocial_RequestsPageAndParsesItems(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news/twitter" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Fatalf("unexpected page query: %s", r.URL.RawQuery)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Fatalf("unexpected accept header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","displayName":"Reporter","text":"Hello","createdAt":"2026-02-01T10:00:00Z"}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", ts.Client())
	items, err := c.ListSocial(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListSocial returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].DisplayName != "Reporter" || items[0].Text != "Hello" {
		t.Fatalf("unexpected item: %+v", items[0])
	}
	if items[0].DateLabel() != "2026-02-01" {
		t.Fatalf("unexpected date label: %s", items[0].DateLabel())
	}
}

func TestListTraditional_UsesTrailingSlashPathAndClampsPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "1" {
			t.Fatalf("expected page clamped to 1, got %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"title":"Headline","summary":"Body","url":"https://example.com/a"}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	items, err := c.ListTab(context.Background(), news.TabTraditional, 0)
	if err != nil {
		t.Fatalf("ListTab returned error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Headline" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestListSocial_NonArrayBodyIsEmptyPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"no more"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	items, err := c.ListSocial(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListSocial returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(items))
	}
}

func TestListSocial_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	_, err := c.ListSocial(context.Background(), 1)
	if err == nil {
		t.Fatal("expected status error")
	}
	if !strings.Contains(err.Error(), "status 502") || !strings.Contains(err.Error(), "upstream down") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListSocial_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := NewClient(url, nil)
	if _, err := c.ListSocial(context.Background(), 1); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestSocialSummary_DecodesEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news/twitter/summary" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("hour"); got != "6hr" {
			t.Fatalf("unexpected hour query: %s", got)
		}
		_, _ = w.Write([]byte(`{"parts":[{"text":"* **A:** one"}]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	got, err := c.SocialSummary(context.Background(), news.Range6h)
	if err != nil {
		t.Fatalf("SocialSummary returned error: %v", err)
	}
	if got != "* **A:** one" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestListTab_UnknownTab(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", nil)
	if _, err := c.ListTab(context.Background(), news.TabID("sports"), 1); err == nil {
		t.Fatal("expected unknown tab error")
	}
}
