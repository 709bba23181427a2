package http

import (
	"net/http"
	"time"

	"github.com/okitolabs/demopass/internal/web/service"
	"github.com/okitolabs/demopass/pkg/demosdk"
	"github.com/okitolabs/demopass/pkg/httpx"
)

// ServiceName is the identifier reported by the legacy /health document.
const ServiceName = "demopass"

// HealthHandler godoc
//
//	@Summary		Legacy Health Check
//	@Description	Pipeline-compatible health document reporting status, service name, timestamp and environment
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	demosdk.ServiceHealthResponse
//	@Router			/health [get].
func HealthHandler(buildInfo *service.BuildInfoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := demosdk.ServiceHealthResponse{
			Status:      "healthy",
			Service:     ServiceName,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Environment: buildInfo.Environment,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
