package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/tinywasm/barchart"
	"github.com/tinywasm/barchart/errs"
	"github.com/tinywasm/barchart/raster"
)

// maxSide bounds the size of server rendered charts.
const maxSide = 8192

// Server serves the static page, the data the browser chart fetches and
// server side snapshots of the same chart.
type Server struct {
	cfg    Config
	source barchart.DataSource
	router *mux.Router
}

func NewServer(cfg Config, source barchart.DataSource) *Server {
	s := &Server{cfg: cfg, source: source, router: mux.NewRouter()}

	s.router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	s.router.HandleFunc("/api/bins", s.bins).Methods(http.MethodGet)
	s.router.HandleFunc("/chart.svg", s.chartSVG).Methods(http.MethodGet)
	s.router.HandleFunc("/chart.png", s.chartPNG).Methods(http.MethodGet)
	if cfg.PublicDir != "" {
		s.router.PathPrefix("/").Handler(noCache(http.FileServer(http.Dir(cfg.PublicDir))))
	}
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s", s.cfg.Port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	log.Println("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Middleware to disable caching for static files (useful in dev/test)
func noCache(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		h.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Server is running"))
}

func (s *Server) bins(w http.ResponseWriter, r *http.Request) {
	data, err := s.source.Data()
	if err != nil {
		log.Printf("bins: %v", err)
		http.Error(w, "data source unavailable", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("bins: encode: %v", err)
	}
}

func (s *Server) chartSVG(w http.ResponseWriter, r *http.Request) {
	markup, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(markup))
}

func (s *Server) chartPNG(w http.ResponseWriter, r *http.Request) {
	markup, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := raster.PNG(&buf, markup); err != nil {
		log.Printf("chart.png: %v", err)
		http.Error(w, "rasterization failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// snapshot renders the chart for the width/height query and writes the
// error response itself when it cannot.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (string, bool) {
	width, err := sizeParam(r, "width", s.cfg.DefaultWidth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	height, err := sizeParam(r, "height", s.cfg.DefaultHeight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}

	markup, err := barchart.Snapshot(width, height, s.source, barchart.LoggerFunc(func(message ...any) {
		log.Println(message...)
	}))
	switch {
	case errors.Is(err, errs.ErrNothingDrawn):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return "", false
	case err != nil:
		log.Printf("%s: %v", r.URL.Path, err)
		http.Error(w, "data source unavailable", http.StatusBadGateway)
		return "", false
	}
	return markup, true
}

func sizeParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > maxSide {
		return 0, errs.New(name, "must be an integer between 1 and", maxSide)
	}
	return n, nil
}
