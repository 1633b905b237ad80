package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func adzunaPage(n int) string {
	var b strings.Builder
	b.WriteString(`{"results":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"id":"%d","title":"Job %d","redirect_url":"https://adzuna.example/%d",
			"company":{"display_name":"Acme"},"location":{"display_name":"Mumbai, India"}}`, i, i, i)
	}
	b.WriteString(`]}`)
	return b.String()
}

func TestAdzuna_StopsOnShortPage(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages = append(pages, r.URL.Path)
		if len(pages) == 1 {
			w.Write([]byte(adzunaPage(adzunaPageSize)))
			return
		}
		w.Write([]byte(adzunaPage(3))) // short page ends pagination
	}))
	t.Cleanup(srv.Close)

	a := NewAdzuna("id", "key", "in", "manager", nil, 5*time.Second, nil, zap.NewNop())
	a.baseURL = srv.URL

	got, err := a.List(context.Background())
	if err != nil {
		t.Fatalf("List returned unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Errorf("fetched %d pages, want 2", len(pages))
	}
	if len(got) != adzunaPageSize+3 {
		t.Errorf("got %d postings, want %d", len(got), adzunaPageSize+3)
	}
}

func TestAdzuna_PartialPageFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(adzunaPage(adzunaPageSize)))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	a := NewAdzuna("id", "key", "in", "", nil, 5*time.Second, nil, zap.NewNop())
	a.baseURL = srv.URL

	got, err := a.List(context.Background())
	if err != nil {
		t.Fatalf("partial results must survive a failed later page: %v", err)
	}
	if len(got) != adzunaPageSize {
		t.Errorf("got %d postings, want first page's %d", len(got), adzunaPageSize)
	}
}

func TestAdzuna_FirstPageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	a := NewAdzuna("id", "bad-key", "in", "", nil, 5*time.Second, nil, zap.NewNop())
	a.baseURL = srv.URL

	if _, err := a.List(context.Background()); err == nil {
		t.Error("List expected error when the first page fails, got nil")
	}
}
