package dummyjson

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const usersBody = `{"users":[
	{"id":1,"firstName":"Emily","lastName":"Johnson","email":"emily.johnson@x.dummyjson.com","age":28,
	 "phone":"+81 965-431-3024","image":"https://dummyjson.com/icon/emilys/128",
	 "address":{"address":"626 Main Street","city":"Phoenix","state":"Mississippi","postalCode":"29112"}},
	{"id":0,"firstName":"Broken","lastName":"Record"},
	{"id":2,"firstName":"","lastName":"Williams"},
	{"id":3,"firstName":"Sophia","lastName":"Brown","age":42}
],"total":208,"skip":0,"limit":4}`

func newTestClient(t *testing.T, srv *httptest.Server, cfg Config, opts ...Option) *Client {
	t.Helper()

	cfg.BaseURL = srv.URL
	c, err := New(cfg, append([]Option{WithHTTPClient(srv.Client())}, opts...)...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

func TestClient_FetchEmployees(t *testing.T) {
	t.Parallel()

	var gotPath, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersBody))
	}))
	t.Cleanup(srv.Close)

	core, logs := observer.New(zapcore.WarnLevel)
	c := newTestClient(t, srv, Config{Limit: 4}, WithLogger(zap.New(core)))

	got, err := c.FetchEmployees(context.Background())
	if err != nil {
		t.Fatalf("FetchEmployees returned error: %v", err)
	}

	if gotPath != "/users" || gotLimit != "4" {
		t.Fatalf("unexpected request path=%q limit=%q", gotPath, gotLimit)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(got))
	}
	if got[0].ID != 1 || got[0].Address.City != "Phoenix" || got[0].Age != 28 {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].ID != 3 || got[1].LastName != "Brown" {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
	if n := logs.FilterMessage("skipping invalid directory record").Len(); n != 2 {
		t.Fatalf("expected 2 skip warnings, got %d", n)
	}
}

func TestClient_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, Config{})
	if _, err := c.FetchEmployees(context.Background()); !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestClient_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"users":[`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, Config{})
	if _, err := c.FetchEmployees(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestClient_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(usersBody))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, Config{MaxAttempts: 3})
	got, err := c.FetchEmployees(context.Background())
	if err != nil {
		t.Fatalf("FetchEmployees returned error: %v", err)
	}
	if calls.Load() != 3 || len(got) != 2 {
		t.Fatalf("expected 3 calls and 2 records, got %d calls and %d records", calls.Load(), len(got))
	}
}

func TestClient_NoRetryByDefault(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv, Config{})
	if _, err := c.FetchEmployees(context.Background()); !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", calls.Load())
	}
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{BaseURL: "not a url"}); !errors.Is(err, ErrInvalidBaseURL) {
		t.Fatalf("expected ErrInvalidBaseURL, got %v", err)
	}
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	cases := []struct {
		retries int
		want    time.Duration
	}{
		{0, 0},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{10, time.Second},
	}
	for _, tc := range cases {
		if got := backoff(tc.retries, base, time.Second); got != tc.want {
			t.Errorf("backoff(%d) = %v, want %v", tc.retries, got, tc.want)
		}
	}

	for range 50 {
		if j := jitter(base); j < 0 || j > base {
			t.Fatalf("jitter out of range: %v", j)
		}
	}
}
