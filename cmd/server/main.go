package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelday/modelday/internal/bootstrap"
	"github.com/modelday/modelday/internal/config"
	"github.com/modelday/modelday/internal/infra/cache"
	"github.com/modelday/modelday/internal/infra/db"
	mq "github.com/modelday/modelday/internal/infra/queue"
	"github.com/modelday/modelday/internal/modules/handler"
	"github.com/modelday/modelday/internal/router"
	"github.com/modelday/modelday/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	inj := bootstrap.BuildContainer()

	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := do.Invoke[*zap.Logger](inj)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}

	gormDB, err := do.Invoke[*gorm.DB](inj)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if tp != nil {
		if err := db.RegisterOpenTelemetryPlugin(gormDB); err != nil {
			log.Warn("failed to register gorm otel plugin", zap.Error(err))
		}
	}

	rdb, err := do.Invoke[*redis.Client](inj)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil && tp != nil {
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Warn("failed to register redis otel plugin", zap.Error(err))
		}
	}

	publisher, err := do.Invoke[*mq.Publisher](inj)
	if err != nil {
		return fmt.Errorf("connect rabbitmq: %w", err)
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		Log:              log,
		ScheduleHandler:  do.MustInvoke[*handler.ScheduleHandler](inj),
		TaskHandler:      do.MustInvoke[*handler.TaskHandler](inj),
		RankingHandler:   do.MustInvoke[*handler.RankingHandler](inj),
		RoleModelHandler: do.MustInvoke[*handler.RoleModelHandler](inj),
		UserHandler:      do.MustInvoke[*handler.UserHandler](inj),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				log.Warn("failed to close rabbitmq publisher", zap.Error(err))
			}
		}
		if rdb != nil {
			if err := cache.Close(rdb); err != nil {
				log.Warn("failed to close redis client", zap.Error(err))
			}
		}
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shut down tracing", zap.Error(err))
		}
		return nil
	})

	return g.Wait()
}
