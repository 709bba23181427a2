package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/okitolabs/demopass/internal/web/service"
	"github.com/okitolabs/demopass/internal/web/store"
	"github.com/okitolabs/demopass/pkg/httpx"
	"github.com/okitolabs/demopass/pkg/slogx"

	_ "github.com/okitolabs/demopass/api/web" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	GeneratorService *service.GeneratorService
	BuildInfoService *service.BuildInfoService
	StatsService     *service.StatsService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerGenerate()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			demopass API
//	@version		0.1.0
//	@description	Hello-world CI/CD demo service with a class-balanced credential generator.
//	@description
//	@description	All endpoints are public; generated credentials are returned once and never stored.
//
//	@contact.name	okitolabs
//	@contact.url	https://github.com/okitolabs/demopass
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPages() {
	indexHandler := &IndexHandler{BuildInfoService: r.BuildInfoService}
	infoHandler := &InfoHandler{BuildInfoService: r.BuildInfoService}
	deploymentHandler := &DeploymentHandler{BuildInfoService: r.BuildInfoService}

	// Landing page and demo metadata - lenient limits, these get polled by
	// pipeline smoke tests
	r.Mux.Handle("GET /{$}",
		httpx.Chain(indexHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/info",
		httpx.Chain(infoHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /api/deployment",
		httpx.Chain(deploymentHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerGenerate() {
	// POST /v1/generate - strict rate limit by IP (credential generation)
	generateHandler := &GenerateHandler{GeneratorService: r.GeneratorService}
	r.Mux.Handle("POST /v1/generate",
		httpx.Chain(generateHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /v1/stats - moderate rate limit
	statsHandler := &StatsHandler{StatsService: r.StatsService}
	r.Mux.Handle("GET /v1/stats",
		httpx.Chain(statsHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.BuildInfoService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
