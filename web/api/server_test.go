package api

import (
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tinywasm/barchart"
)

func testServer(t *testing.T, source barchart.DataSource) *Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=\"barchart\"></div>"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Config{
		Port:            "0",
		PublicDir:       dir,
		DefaultWidth:    600,
		DefaultHeight:   400,
		ShutdownTimeout: time.Second,
	}
	return NewServer(cfg, source)
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, testServer(t, barchart.StaticSource(barchart.MockData())), "/health")
	if rec.Code != http.StatusOK || rec.Body.String() != "Server is running" {
		t.Errorf("GET /health = %d %q", rec.Code, rec.Body.String())
	}
}

func TestBins(t *testing.T) {
	rec := get(t, testServer(t, barchart.StaticSource(barchart.MockData())), "/api/bins")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/bins = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	// the browser decodes the same payload
	data, err := barchart.DecodeData(rec.Body)
	if err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	if len(data) != 4 || data[2].Name != "Bin_2" || data[2].Count != 56 {
		t.Errorf("bins = %v", data)
	}
}

func TestBinsSourceFailure(t *testing.T) {
	failing := barchart.SourceFunc(func() ([]barchart.DataPoint, error) {
		return nil, errors.New("boom")
	})
	if rec := get(t, testServer(t, failing), "/api/bins"); rec.Code != http.StatusBadGateway {
		t.Errorf("GET /api/bins with a failing source = %d", rec.Code)
	}
	if rec := get(t, testServer(t, failing), "/chart.svg"); rec.Code != http.StatusBadGateway {
		t.Errorf("GET /chart.svg with a failing source = %d", rec.Code)
	}
}

func TestChartSVG(t *testing.T) {
	s := testServer(t, barchart.StaticSource(barchart.MockData()))

	rec := get(t, s, "/chart.svg?width=800&height=300")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /chart.svg = %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `width="800"`) || !strings.Contains(body, `height="300"`) {
		t.Errorf("svg size not applied: %.120s", body)
	}
	if n := strings.Count(body, `class="bar"`); n != 4 {
		t.Errorf("bars = %d, want 4", n)
	}

	rec = get(t, s, "/chart.svg")
	if !strings.Contains(rec.Body.String(), `width="600"`) {
		t.Errorf("default width not applied")
	}
}

func TestChartSVGBadSize(t *testing.T) {
	s := testServer(t, barchart.StaticSource(barchart.MockData()))

	for _, q := range []string{"width=abc", "width=-1", "height=0", "width=100000"} {
		if rec := get(t, s, "/chart.svg?"+q); rec.Code != http.StatusBadRequest {
			t.Errorf("GET /chart.svg?%s = %d, want 400", q, rec.Code)
		}
	}

	// valid but smaller than the margins
	if rec := get(t, s, "/chart.svg?width=40&height=40"); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("tiny chart = %d, want 422", rec.Code)
	}
}

func TestChartPNG(t *testing.T) {
	rec := get(t, testServer(t, barchart.StaticSource(barchart.MockData())), "/chart.png?width=300&height=200")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /chart.png = %d %s", rec.Code, rec.Body.String())
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Errorf("bounds = %v", b)
	}
}

func TestStaticFilesNoCache(t *testing.T) {
	rec := get(t, testServer(t, barchart.StaticSource(barchart.MockData())), "/index.html")
	if rec.Code != http.StatusOK && rec.Code != http.StatusMovedPermanently {
		t.Fatalf("GET /index.html = %d", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Errorf("Cache-Control = %q", cc)
	}

	rec = get(t, testServer(t, barchart.StaticSource(barchart.MockData())), "/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "barchart") {
		t.Errorf("GET / = %d %q", rec.Code, rec.Body.String())
	}
}
