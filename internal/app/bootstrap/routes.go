// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/features/about"
	errorsfeature "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/features/errors"
	healthfeature "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/features/health"
	homefeature "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/features/home"
	ideasfeature "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/features/ideas"
	_ "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/features/shared/views"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/etag"
	"github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, catalog loading and any Startup
// hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the loaded idea catalog
//   - logger: the fully configured zap.Logger for this app
//
// The Idea Book initializes the template engine, then mounts the page,
// API, health and static routers behind gzip compression.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, logger)
}

// newRouter mounts every feature router. It needs no template engine, so
// tests can drive the JSON and redirect routes directly.
func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Ideas, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets and idea resources
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.StaticDir))
	r.Handle("/public/resources/*", fileserver.Handler("/public/resources", appCfg.ResourcesDir))

	// Pages
	homeHandler := homefeature.NewHandler(deps.Ideas, appCfg.SpotlightCount, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(appCfg.ContactFallbackEmail, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	ideasHandler := ideasfeature.NewHandler(deps.Ideas, ideasfeature.Config{
		PageSize:     appCfg.PageSize,
		RelatedLimit: appCfg.RelatedLimit,
		ContactEmail: appCfg.ContactFallbackEmail,
	}, logger)
	r.Mount("/ideas", ideasfeature.Routes(ideasHandler))
	api := ideasfeature.APIRoutes(ideasHandler)
	if appCfg.APIRateLimit > 0 {
		limiter := ratelimit.New(appCfg.APIRateLimit, appCfg.APIBurst, appCfg.APITrustProxy)
		r.With(limiter.Middleware).Mount("/api", api)
	} else {
		r.Mount("/api", api)
	}

	// Compressed responses get their own ETag so each representation has a
	// distinct strong validator.
	withGzip, err := gzhttp.NewWrapper(gzhttp.SuffixETag(etag.GzipSuffix))
	if err != nil {
		logger.Error("gzip wrapper setup failed", zap.Error(err))
		return nil, err
	}
	return withGzip(r), nil
}
