package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/usda-mcp/nutrition-api/fdc"
	"github.com/usda-mcp/nutrition-api/util"
)

// Status is the health check response shape
type Status struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
	UpstreamAPI string    `json:"usda_api"`
}

// Routes creates a new Chi router with the health check route
// at the root level
func Routes(client fdc.Provider) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", Check(client))
	return router
}

// Check probes upstream connectivity and reports healthy or degraded.
// Suitable for load balancer health checks.
// A client with no API key cannot probe at all and reports unhealthy
// with a 503 so balancers can pull the instance
func Check(client fdc.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := Status{
			Status:      "healthy",
			Service:     "usda-nutrition-api",
			Version:     "1.0.0",
			Timestamp:   time.Now().UTC(),
			UpstreamAPI: "connected",
		}

		if !client.IsConfigured() {
			status.Status = "unhealthy"
			status.UpstreamAPI = "unconfigured"
			util.WriteJSON(w, status, http.StatusServiceUnavailable)
			return
		}

		if !client.HealthCheck(r.Context()) {
			status.Status = "degraded"
			status.UpstreamAPI = "disconnected"
		}

		util.WriteJSON(w, status, http.StatusOK)
	}
}
