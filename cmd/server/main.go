package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/reservation-desk/internal/config"
	"github.com/iliyamo/reservation-desk/internal/desk"
	"github.com/iliyamo/reservation-desk/internal/handler"
	"github.com/iliyamo/reservation-desk/internal/middleware"
	"github.com/iliyamo/reservation-desk/internal/queue"
	"github.com/iliyamo/reservation-desk/internal/router"
	"github.com/iliyamo/reservation-desk/internal/service"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sink desk.EventSink
	if cfg.Events.Enabled {
		sink = service.NewPublisher(cfg.Events)
		log.Printf("events: publishing to queue %s", cfg.Events.Queue)
	}
	if cfg.Events.ConsumerEnabled {
		c := &queue.Consumer{URL: cfg.Events.URL, Queue: cfg.Events.Queue, LogDir: cfg.Events.LogDir}
		go func() {
			if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("reservation-consumer: stopped: %v", err)
			}
		}()
	}
	d := desk.New(time.Now, sink)

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e, d)
	router.RegisterDesk(e, handler.NewDeskHandler(d),
		middleware.NewTokenBucket(cfg.RateLimit, rdb),
		middleware.NewRedisCache(cfg.Cache, rdb, d.CacheTag),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
