package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/okitolabs/demopass/internal/web/service"
	"github.com/okitolabs/demopass/pkg/slogx"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

type IndexHandler struct {
	BuildInfoService *service.BuildInfoService
}

type indexPageData struct {
	Timestamp   string
	Version     string
	Environment string
}

// ServeHTTP renders the HTML landing page.
//
//	@Summary		Landing Page
//	@Description	Demo landing page showing the current timestamp, deployed version and environment
//	@Tags			Pages
//	@Produce		html
//	@Success		200	{string}	string	"rendered page"
//	@Router			/ [get].
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	info := h.BuildInfoService.Get()

	data := indexPageData{
		Timestamp:   time.Now().Format("2006-01-02 15:04:05"),
		Version:     info.Version,
		Environment: info.Environment,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		slogx.FromContext(r.Context()).Warn("failed to render index page", "err", err)
	}
}
