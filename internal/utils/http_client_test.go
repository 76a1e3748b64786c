package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with embedded *resty.Client")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost", 0)
	client2 := NewHTTPClient("http://localhost", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}

func TestNewHTTPClient_BaseURLAndTraceID(t *testing.T) {
	var gotPath, gotTrace, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTrace = r.Header.Get(TraceIDHeader)
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	if _, err := client.R().Get("/recipes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/recipes" {
		t.Errorf("expected path /recipes, got %s", gotPath)
	}
	if gotTrace == "" {
		t.Error("expected a generated trace id header")
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept application/json, got %s", gotAccept)
	}
}

func TestNewHTTPClient_KeepsCallerTraceID(t *testing.T) {
	var gotTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace = r.Header.Get(TraceIDHeader)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	if _, err := client.R().SetHeader(TraceIDHeader, "fixed").Get("/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotTrace != "fixed" {
		t.Errorf("expected trace id 'fixed', got %q", gotTrace)
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	if a, b := g.Generate(), g.Generate(); a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
