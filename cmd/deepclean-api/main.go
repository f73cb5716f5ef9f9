// @title         Deep Clean API
// @version       1.0.0
// @description   Isolated on-demand endpoints for transaction PII redaction and review

package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"deepclean/internal/platform/config"
	"deepclean/internal/platform/logger"
	phttp "deepclean/internal/platform/net/http"
	"deepclean/internal/recog"

	"deepclean/internal/services/api"
)

func main() {
	// optional .env for local runs; real deployments set the environment
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (DEEPCLEAN_API_*)
	root := config.New()
	apiCfg := root.Prefix("DEEPCLEAN_API_")
	recogCfg := root.Prefix("RECOG_") // recognition engine sidecar settings

	// bring up logging early
	l := logger.Get()

	// recognition engine client; a dead engine at startup means no service
	engine := recog.NewClient(recog.FromConfig(recogCfg))
	{
		ctx, cancel := context.WithTimeout(context.Background(), recogCfg.MayDuration("STARTUP_WAIT", 30*time.Second))
		defer cancel()
		if err := recog.WaitReady(ctx, engine); err != nil {
			l.Panic().Err(err).Msg("recognition engine not ready, refusing to start")
		}
	}
	l.Info().Msg("recognition engine ready")

	// http server (reads DEEPCLEAN_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Engine:         engine,
			Logger:         l,
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
