package http

import (
	"net/http"

	"github.com/okitolabs/demopass/internal/web/service"
	"github.com/okitolabs/demopass/pkg/demosdk"
	"github.com/okitolabs/demopass/pkg/httpx"
	"github.com/okitolabs/demopass/pkg/slogx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// ServeHTTP returns generation audit aggregates.
//
//	@Summary		Generation Stats
//	@Description	Aggregates the generation audit log: total count, hashed count, average length and a per-source breakdown
//	@Tags			Generator
//	@Produce		json
//	@Success		200	{object}	demosdk.StatsResponse
//	@Failure		500	{object}	demosdk.APIError	"internal server error"
//	@Router			/v1/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.StatsService.GenerationStats(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load generation stats", "err", err)
		demosdk.ErrServerError.WriteError(w)
		return
	}

	response := demosdk.StatsResponse{
		Total:         stats.Total,
		Hashed:        stats.Hashed,
		AverageLength: stats.AverageLength,
		BySource:      stats.BySource,
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
