package observability

import (
	"net/http"
	"time"

	"github.com/platinummonkey/habit-api/pkg/httputil"
)

const (
	StatusHealthy = "healthy"
)

// HealthStatus is the body returned by the health endpoint
type HealthStatus struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Liveness reports that the server is reachable. It checks no dependencies.
func Liveness(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, HealthStatus{
		Status:    StatusHealthy,
		Message:   "server is running",
		Timestamp: time.Now().UTC(),
	})
}
