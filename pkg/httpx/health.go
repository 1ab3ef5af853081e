package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (the EventBus qualifies).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks maps a component name (reported in the response body) to its
// checker.
type HealthChecks map[string]HealthChecker

type healthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:     "ok",
			Components: make(map[string]string, len(checks)),
		}

		for name, check := range checks {
			if err := check.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Components[name] = "unreachable"
				continue
			}
			resp.Components[name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
