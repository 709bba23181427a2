package http

import (
	"net/http"

	"github.com/okitolabs/demopass/internal/web/service"
	"github.com/okitolabs/demopass/pkg/demosdk"
	"github.com/okitolabs/demopass/pkg/httpx"
)

type DeploymentHandler struct {
	BuildInfoService *service.BuildInfoService
}

// ServeHTTP returns the deployment trigger-chain document.
//
//	@Summary		Deployment Info
//	@Description	Describes how a commit travels through the pipeline to a running deployment
//	@Tags			Demo
//	@Produce		json
//	@Success		200	{object}	demosdk.DeploymentResponse
//	@Router			/api/deployment [get].
func (h *DeploymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	info := h.BuildInfoService.Get()

	response := demosdk.DeploymentResponse{
		DeploymentMethod: "GitHub Actions workflow with Render.com deploy webhook",
		TriggerChain: []string{
			"git push to main",
			"GitHub Actions: run tests",
			"GitHub Actions: build container image",
			"GitHub Actions: call Render.com deploy webhook",
			"Render.com: pull image and restart service",
		},
		Environment: info.Environment,
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
