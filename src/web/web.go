package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/charts"
	"github.com/tubetale/tubetale/src/logging"
	"github.com/tubetale/tubetale/src/present"
	"github.com/tubetale/tubetale/src/ui"
	"github.com/tubetale/tubetale/src/web/config"
	"github.com/tubetale/tubetale/src/web/data"
	"github.com/tubetale/tubetale/src/web/webserver"
	"github.com/tubetale/tubetale/src/webclient"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	rdb, err := data.OpenRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb == nil {
		log.Info("report cache disabled (no REDIS_URL)")
	}

	surface := ui.NewSurface()
	controller := ui.NewController(surface)
	registry := charts.NewRegistry(surface.Has)

	router := webserver.New(cfg, webserver.Deps{
		Client:     analytics.NewClient(cfg.AnalyticsURL, webclient.NewDefault(cfg.RequestTimeout), log),
		Controller: controller,
		Presenter:  present.New(registry),
		Cache:      data.NewReportCache(rdb, cfg.CacheTTL),
		Log:        log,
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Infof("TubeTale web listening on %s (analytics at %s)", cfg.Port, cfg.AnalyticsURL)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutCtx)
}
