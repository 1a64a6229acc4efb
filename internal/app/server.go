package app

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server returns an http.Server that can trigger report runs and serve the
// generated charts. Call ListenAndServe on it in a goroutine and Shutdown it
// on exit.
func (a *App) Server(addr string) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(a.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// POST /report?date=YYYY-MM-DD
	// Triggers a run; date overrides the file-name date and defaults to today.
	r.Post("/report", func(w http.ResponseWriter, req *http.Request) {
		asOf := time.Now().UTC()
		if d := req.URL.Query().Get("date"); d != "" {
			parsed, err := time.Parse("2006-01-02", d)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"status": "error",
					"error":  "invalid date, expected YYYY-MM-DD",
				})
				return
			}
			asOf = parsed
		}

		path, err := a.RunOnce(req.Context(), asOf)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"status": "error",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"chart":  path,
			"date":   asOf.Format("2006-01-02"),
		})
	})

	r.Handle("/charts/*", http.StripPrefix("/charts/", http.FileServer(http.Dir(a.chartDir))))

	srv := &http.Server{Addr: addr, Handler: r}
	a.log.Info("http server configured", slog.String("addr", addr))
	return srv
}

func (a *App) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
			slog.Duration("dur", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
