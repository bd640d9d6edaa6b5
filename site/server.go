package site

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves a generated site for local preview. Requests without a file
// extension are mapped to their .html file, so site-internal links work the
// same as on the deployed host.
type Server struct {
	Dir     string
	Addr    string
	Metrics *Metrics
	Logger  *slog.Logger
}

// Handler returns the dev server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.Metrics != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))
	}
	files := http.FileServer(http.Dir(s.Dir))
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = rewritePath(r.URL.Path)
		files.ServeHTTP(w, r)
	}))
	return mux
}

// ListenAndServe serves until the listener fails.
func (s *Server) ListenAndServe() error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("serving site",
		slog.String("dir", s.Dir),
		slog.String("addr", s.Addr))
	server := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}

// rewritePath maps extensionless request paths onto the generated .html
// files. "/" becomes "/index.html".
func rewritePath(p string) string {
	if p == "/" {
		return "/index.html"
	}
	if path.Ext(p) == "" {
		return p + ".html"
	}
	return p
}

// Watch rebuilds the site whenever one of the given paths changes. Events
// are debounced so one save triggers one rebuild. It blocks until the
// watcher fails or stop is closed.
func Watch(paths []string, rebuild func() error, logger *slog.Logger, stop <-chan struct{}) error {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, p := range paths {
		if err := watcher.Add(filepath.Clean(p)); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			logger.Debug("change detected", slog.String("path", event.Name))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			logger.Info("rebuilding site")
			if err := rebuild(); err != nil {
				logger.Error("rebuild failed", slog.String("error", err.Error()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", slog.String("error", err.Error()))
		case <-stop:
			return nil
		}
	}
}
