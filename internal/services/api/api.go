// Package api provides the HTTP API for the application
package api

import (
	"deepclean/internal/platform/config"
	"deepclean/internal/platform/logger"
	phttp "deepclean/internal/platform/net/http"
	"deepclean/internal/platform/net/middleware"
	"deepclean/internal/recog"

	"deepclean/internal/modkit"
	"deepclean/internal/modkit/httpkit"
	"deepclean/internal/modkit/module"

	metamod "deepclean/internal/services/api/meta/module"
	redactmod "deepclean/internal/services/api/redact/module"
	scanmod "deepclean/internal/services/api/scan/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Engine         recog.Engine
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// bare /health heartbeat for load balancers, outside the versioned stack
	r.Use(middleware.Heartbeat("/health"))

	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		Engine: opt.Engine,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		redactmod.New(deps),
		scanmod.New(deps),
	}

	// CORS origin allow-list is fixed at startup; the service is meant to sit
	// next to a local frontend, so the default is localhost only
	cors := middleware.CORSOptions{
		AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{
			"http://localhost:4321",
			"http://localhost:3000",
			"http://127.0.0.1:4321",
			"http://127.0.0.1:3000",
		}),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(cors), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
