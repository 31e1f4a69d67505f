package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()

	m.ObserveLoad(nil, 20)
	m.ObserveLoad(errors.New("boom"), 0)
	m.ObservePromotion(true)
	m.ObservePromotion(true)
	m.ObservePromotion(false)
	m.ObserveBookmark("added")
	m.ObserveBookmark("removed")
	m.ObserveBookmark("added")
	m.ObservePersist(nil)
	m.ObservePersist(errors.New("disk full"))
	m.ObserveRPC("/hrdashboard.v1.DashboardService/GetState", "OK", 3*time.Millisecond)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"loads ok", testutil.ToFloat64(m.loadsTotal.WithLabelValues("ok")), 1},
		{"loads error", testutil.ToFloat64(m.loadsTotal.WithLabelValues("error")), 1},
		{"employees loaded", testutil.ToFloat64(m.employeesLoaded), 20},
		{"promoted", testutil.ToFloat64(m.promotionsTotal.WithLabelValues("promoted")), 2},
		{"noop", testutil.ToFloat64(m.promotionsTotal.WithLabelValues("noop")), 1},
		{"added", testutil.ToFloat64(m.bookmarkActions.WithLabelValues("added")), 2},
		{"removed", testutil.ToFloat64(m.bookmarkActions.WithLabelValues("removed")), 1},
		{"persist ok", testutil.ToFloat64(m.persistTotal.WithLabelValues("ok")), 1},
		{"persist error", testutil.ToFloat64(m.persistTotal.WithLabelValues("error")), 1},
		{"rpc", testutil.ToFloat64(m.rpcTotal.WithLabelValues("/hrdashboard.v1.DashboardService/GetState", "OK")), 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveBookmark("added")

	srv := httptest.NewServer(m.Handler("/internal/metrics"))
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Get(srv.URL + "/internal/metrics")
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `hrdashboard_bookmark_actions_total{action="added"} 1`) {
		t.Fatalf("metrics output missing bookmark counter:\n%s", body)
	}

	resp2, err := srv.Client().Post(srv.URL+"/internal/metrics", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST metrics: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST, got %d", resp2.StatusCode)
	}
}
