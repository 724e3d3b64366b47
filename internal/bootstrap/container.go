package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/modelday/modelday/internal/config"
	"github.com/modelday/modelday/internal/infra/aiclient"
	"github.com/modelday/modelday/internal/infra/cache"
	"github.com/modelday/modelday/internal/infra/db"
	"github.com/modelday/modelday/internal/infra/logger"
	mq "github.com/modelday/modelday/internal/infra/queue"
	"github.com/modelday/modelday/internal/modules/handler"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/modules/repo"
	"github.com/modelday/modelday/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			// gen_random_uuid() needs pgcrypto on Postgres < 13
			_ = d.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto")

			if mErr := d.AutoMigrate(
				&model.User{},
				&model.RoleModel{},
				&model.UserSchedule{},
				&model.UserTask{},
				&model.Ranking{},
			); mErr != nil {
				return nil, mErr
			}
		}

		if err := EnsureDefaultRoleModelsExist(context.Background(), d, log); err != nil {
			return nil, err
		}

		return d, nil
	})

	// Redis (optional)
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.Redis.Enabled {
			return nil, nil
		}
		return cache.New(cfg)
	})

	// RabbitMQ DialFunc for connection and reconnection
	do.Provide(inj, func(i *do.Injector) (mq.DialFunc, error) {
		cfg := do.MustInvoke[*config.Config](i)

		dialFn := func() (*amqp.Connection, error) {
			useTLS := cfg.RabbitMQ.EnableTLS || strings.HasPrefix(cfg.RabbitMQ.URL, "amqps://")

			if useTLS {
				tlsConfig := &tls.Config{
					MinVersion: tls.VersionTLS12,
				}
				url := cfg.RabbitMQ.URL
				if strings.HasPrefix(url, "amqp://") {
					url = strings.Replace(url, "amqp://", "amqps://", 1)
				}
				return amqp.DialTLS(url, tlsConfig)
			}

			return amqp.Dial(cfg.RabbitMQ.URL)
		}

		return dialFn, nil
	})

	// RabbitMQ Publisher (optional)
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		dialFn := do.MustInvoke[mq.DialFunc](i)
		conn, err := dialFn()
		if err != nil {
			return nil, err
		}
		log := do.MustInvoke[*zap.Logger](i)
		return mq.NewPublisher(conn, log, cfg)
	})

	// Gemini client
	do.Provide(inj, func(i *do.Injector) (*aiclient.GeminiClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return aiclient.NewGeminiClient(cfg, log), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.RoleModelRepo, error) {
		return repo.NewRoleModelRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ScheduleRepo, error) {
		return repo.NewScheduleRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.RankingRepo, error) {
		return repo.NewRankingRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.RoleModelService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ttl := time.Duration(cfg.Redis.RoleModelTTLSec) * time.Second
		if ttl <= 0 {
			ttl = time.Hour
		}
		return service.NewRoleModelService(
			do.MustInvoke[repo.RoleModelRepo](i),
			do.MustInvoke[*redis.Client](i),
			ttl,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ScheduleService, error) {
		return service.NewScheduleService(
			do.MustInvoke[repo.ScheduleRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.RankingRepo](i),
			do.MustInvoke[service.RoleModelService](i),
			do.MustInvoke[*aiclient.GeminiClient](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.ScheduleRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.RankingService, error) {
		return service.NewRankingService(do.MustInvoke[repo.RankingRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ScheduleHandler, error) {
		return handler.NewScheduleHandler(do.MustInvoke[service.ScheduleService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.RankingHandler, error) {
		return handler.NewRankingHandler(do.MustInvoke[service.RankingService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.RoleModelHandler, error) {
		return handler.NewRoleModelHandler(do.MustInvoke[service.RoleModelService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})

	return inj
}
