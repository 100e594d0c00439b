package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dsa-coach/api/internal/logger"
)

// Probe reports whether the generation backend is reachable.
type Probe func(ctx context.Context) bool

// StartHTTP serves the liveness endpoint. /healthz runs the connection
// probe and reports the backend state alongside the model in use.
func StartHTTP(addr, model string, probe Probe, log *logger.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ok := probe == nil || probe(r.Context())
		status := "ok"
		code := http.StatusOK
		if !ok {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": status,
			"model":  model,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("dsa-coach generation service"))
	})
	log.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, mux)
}
