package health

import (
	"encoding/json"
	"net/http"
	"time"

	applog "github.com/janisto/widget-playground/internal/platform/logging"
	"github.com/janisto/widget-playground/internal/platform/timeutil"
	"github.com/janisto/widget-playground/internal/storage"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status  string        `json:"status"`
	Backend string        `json:"backend"`
	Time    timeutil.Time `json:"time"`
}

const (
	statusHealthy     = "healthy"
	statusUnavailable = "unavailable"
)

// NewHandler returns a plain HTTP handler that reports whether store can be read.
func NewHandler(store storage.Store, backend string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := Response{Status: statusHealthy, Backend: backend, Time: timeutil.NewTime(time.Now())}
		code := http.StatusOK
		if _, _, err := store.Get(r.Context(), storage.KeyCounter); err != nil {
			applog.LogWarn(r.Context(), "health check: store unreachable")
			resp.Status = statusUnavailable
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
