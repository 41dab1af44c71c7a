package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCollectorScrape(t *testing.T) {
	c := NewCollector()
	c.TicksTotal.Inc()
	c.KeplerIterations.Observe(42)
	c.UDPBytes.WithLabelValues("out").Add(128)
	c.DroppedTotal.WithLabelValues("malformed").Inc()
	c.ConnectedClients.Set(3)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("scrape status %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		"simulation_ticks_total 1",
		"connected_clients 3",
		`udp_bytes_total{direction="out"} 128`,
		`dropped_messages_total{reason="malformed"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("scrape output missing %q", want)
		}
	}
}

func TestCollectorsIndependent(t *testing.T) {
	// Private registries let two collectors coexist in one process.
	a := NewCollector()
	b := NewCollector()
	a.TicksTotal.Inc()

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if strings.Contains(string(body), "simulation_ticks_total 1") {
		t.Errorf("collectors share state")
	}
}
