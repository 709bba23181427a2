package http

import (
	"fmt"
	"net/http"

	"github.com/okitolabs/demopass/internal/web/service"
	"github.com/okitolabs/demopass/pkg/demosdk"
	"github.com/okitolabs/demopass/pkg/httpx"
)

type InfoHandler struct {
	BuildInfoService *service.BuildInfoService
}

// ServeHTTP returns the service and pipeline metadata document.
//
//	@Summary		Service Info
//	@Description	Returns the service message, the pipeline features it demonstrates and the CI/CD chain that delivers it
//	@Tags			Demo
//	@Produce		json
//	@Success		200	{object}	demosdk.InfoResponse
//	@Router			/api/info [get].
func (h *InfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	info := h.BuildInfoService.Get()

	response := demosdk.InfoResponse{
		Message: fmt.Sprintf("Hello World from demopass %s (%s)!", info.Version, info.Environment),
		Features: []string{
			"Version Control Integration",
			"Automated Testing",
			"Security Scanning",
			"Multi-environment Deployment",
			"Infrastructure as Code",
		},
		Pipeline: demosdk.PipelineInfo{
			Source:     "GitHub",
			CICD:       "GitHub Actions",
			Deployment: "Render.com via Webhook",
		},
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
