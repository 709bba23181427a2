package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okitolabs/demopass/internal/web/domain"
	"github.com/okitolabs/demopass/internal/web/service"
	"github.com/okitolabs/demopass/pkg/demosdk"
	"github.com/okitolabs/demopass/pkg/httpx"
	"github.com/okitolabs/demopass/pkg/slogx"
)

type GenerateHandler struct {
	GeneratorService *service.GeneratorService
}

// ServeHTTP handles credential generation requests.
//
//	@Summary		Generate Credentials
//	@Description	Generates one or more random credentials. Each credential contains at least one lowercase letter, one uppercase letter, one digit and one special symbol, in uniformly shuffled order.
//	@Description	Credentials are returned once and never stored; the audit log records metadata only.
//	@Tags			Generator
//	@Accept			json
//	@Produce		json
//	@Param			request	body		demosdk.GenerateRequest	true	"length (min 4), count (default 1), hash"
//	@Success		200		{object}	demosdk.GenerateResponse
//	@Failure		400		{object}	demosdk.APIError	"invalid_request or invalid_length"
//	@Failure		429		{object}	demosdk.APIError	"rate limit exceeded"
//	@Failure		500		{object}	demosdk.APIError	"internal server error"
//	@Router			/v1/generate [post].
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req demosdk.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		demosdk.ErrInvalidRequest.WriteError(w)
		return
	}

	creds, err := h.GeneratorService.Generate(ctx, service.GenerateParams{
		Length:    req.Length,
		Count:     req.Count,
		Hash:      req.Hash,
		Source:    domain.SourceAPI,
		RequestID: r.Header.Get("X-Request-ID"),
	})
	switch {
	case errors.Is(err, service.ErrInvalidLength):
		demosdk.ErrInvalidLength.WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidCount):
		demosdk.ErrInvalidRequest.WriteError(w)
		return
	case err != nil:
		log.Error("credential generation failed", "err", err)
		demosdk.ErrServerError.WriteError(w)
		return
	}

	response := demosdk.GenerateResponse{
		Credentials: make([]demosdk.Credential, 0, len(creds)),
		Length:      req.Length,
	}
	for _, cred := range creds {
		response.Credentials = append(response.Credentials, demosdk.Credential{
			Value: cred.Value,
			Hash:  cred.Hash,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
