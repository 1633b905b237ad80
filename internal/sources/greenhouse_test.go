package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testGreenhouse(t *testing.T, handler http.Handler, boards []string) *Greenhouse {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := NewGreenhouse(boards, nil, 5*time.Second, nil, zap.NewNop())
	g.baseURL = srv.URL
	return g
}

func TestGreenhouse_List(t *testing.T) {
	g := testGreenhouse(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/acme/jobs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"jobs":[
			{"id":11,"title":"Brand Manager","absolute_url":"https://acme.example/jobs/11",
			 "content":"<p>Own the brand</p>","location":{"name":"Mumbai, India"}},
			{"id":12,"title":"","absolute_url":"https://acme.example/jobs/12","location":{"name":"Pune"}}
		]}`))
	}), []string{"acme"})

	got, err := g.List(context.Background())
	if err != nil {
		t.Fatalf("List returned unexpected error: %v", err)
	}

	// the item without a title is skipped, not fatal
	if len(got) != 1 {
		t.Fatalf("got %d postings, want 1", len(got))
	}

	p := got[0]
	if p.SourceID != "greenhouse" {
		t.Errorf("SourceID = %q, want greenhouse", p.SourceID)
	}
	if p.ExternalKey != "greenhouse:acme:11" {
		t.Errorf("ExternalKey = %q", p.ExternalKey)
	}
	if p.Company != "acme" || p.Location != "Mumbai, India" {
		t.Errorf("posting = %+v", p)
	}
	if p.Description != "Own the brand" {
		t.Errorf("Description = %q, want html stripped", p.Description)
	}
}

func TestGreenhouse_DeadBoardSkipped(t *testing.T) {
	g := testGreenhouse(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dead/jobs" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"jobs":[{"id":1,"title":"Analyst","absolute_url":"https://x.example/1","location":{"name":"Remote"}}]}`))
	}), []string{"dead", "acme"})

	got, err := g.List(context.Background())
	if err != nil {
		t.Fatalf("healthy board must survive a dead one: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d postings, want 1", len(got))
	}
}

func TestGreenhouse_AllBoardsDead(t *testing.T) {
	g := testGreenhouse(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}), []string{"a", "b"})

	if _, err := g.List(context.Background()); err == nil {
		t.Error("List expected error when every board fails, got nil")
	}
}

func TestGreenhouse_MalformedPayload(t *testing.T) {
	g := testGreenhouse(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}), []string{"acme"})

	_, err := g.List(context.Background())
	if err == nil {
		t.Fatal("List expected error for malformed payload, got nil")
	}
}

func TestGreenhouse_LocationFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jobs":[
			{"id":1,"title":"A","absolute_url":"https://x.example/1","location":{"name":"Mumbai, India"}},
			{"id":2,"title":"B","absolute_url":"https://x.example/2","location":{"name":"Berlin, Germany"}},
			{"id":3,"title":"C","absolute_url":"https://x.example/3","location":{"name":"Remote"}}
		]}`))
	}))
	t.Cleanup(srv.Close)

	g := NewGreenhouse([]string{"acme"}, []string{"india"}, 5*time.Second, nil, zap.NewNop())
	g.baseURL = srv.URL

	got, err := g.List(context.Background())
	if err != nil {
		t.Fatalf("List returned unexpected error: %v", err)
	}

	// Berlin is filtered out; remote always passes
	if len(got) != 2 {
		t.Fatalf("got %d postings, want 2 (india + remote)", len(got))
	}
}
