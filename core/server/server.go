package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"event-hub/core/cache"
	"event-hub/core/config"
	"event-hub/core/constants"
	"event-hub/core/controller"
	"event-hub/core/database"
	"event-hub/core/logger"
	"event-hub/core/middleware"
	"event-hub/core/queue"
	"event-hub/core/validator"
	"event-hub/modules/category"
	"event-hub/modules/comment"
	"event-hub/modules/compilation"
	"event-hub/modules/event"
	"event-hub/modules/request"
	"event-hub/modules/stats"
	statsclient "event-hub/modules/stats/client"
	"event-hub/modules/user"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

// Run loads the configuration, wires every module and serves HTTP until
// SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.MigrateOnStart {
		if err := db.RunMigrations(cfg.Database.DBName); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		viewCache   cache.Cache
		redisClient *redis.Client
	)
	if cfg.Redis.Enabled {
		viewCache, redisClient, err = cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	statsClient := statsclient.NewHTTPStatsClient(cfg.Stats)

	var (
		q    *queue.Queue
		hits statsclient.HitRecorder
	)
	if cfg.Queue.Enabled {
		q = queue.NewQueue(cfg.Redis, cfg.Queue)
		q.Handle(constants.TaskRecordHit, statsclient.NewHitHandler(statsClient))
		hits = statsclient.NewQueuedHitRecorder(q.Client, cfg.Stats, cfg.Queue)
	} else {
		hits = statsclient.NewDirectHitRecorder(statsClient, cfg.Stats)
	}

	e := newEcho(cfg, db)
	mw := middleware.NewMiddleware(cfg.Auth)
	e.Use(mw.RequestID(), mw.RequestLogger())

	users := user.Init(e, db, mw)
	categories := category.Init(e, db, mw)
	stats.Init(e, db)
	events, publicEvents := event.Init(e, db, mw, event.Dependencies{
		Categories: categories,
		Users:      users,
		Stats:      statsClient,
		Hits:       hits,
		Cache:      viewCache,
		Config:     cfg,
	})
	request.Init(e, db, events, users)
	compilation.Init(e, db, mw, publicEvents)
	comment.Init(e, db, mw, events, users)

	if q != nil {
		if err := q.Start(); err != nil {
			return err
		}
		defer q.Shutdown()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server:Run:Listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server:Run:ShuttingDown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	logger.Info("Server:Run:Stopped")
	return nil
}

func newEcho(cfg *config.Config, db database.IDatabase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.App.Env == "development"
	e.Validator = validator.New()
	e.HTTPErrorHandler = controller.HTTPErrorHandler
	e.Use(echomw.Recover())

	e.GET("/healthz", healthHandler(db))
	return e
}

// healthHandler reports ok while the database answers a ping.
func healthHandler(db database.IDatabase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), constants.DefaultTimeout)
		defer cancel()
		if err := db.SQLx().PingContext(ctx); err != nil {
			logger.Warn("Server:Health:Ping", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
