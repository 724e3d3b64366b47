package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/modelday/modelday/internal/config"
	"github.com/modelday/modelday/internal/middleware"
	"github.com/modelday/modelday/internal/modules/handler"
	"github.com/modelday/modelday/internal/modules/serializer"
	"github.com/modelday/modelday/internal/telemetry"
)

type RouterDeps struct {
	Config           *config.Config
	Log              *zap.Logger
	ScheduleHandler  *handler.ScheduleHandler
	TaskHandler      *handler.TaskHandler
	RankingHandler   *handler.RankingHandler
	RoleModelHandler *handler.RoleModelHandler
	UserHandler      *handler.UserHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Success: true, Message: "ok"}) })

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.SupabaseAuth(d.Config))

		v1.POST("/customize-schedule", d.ScheduleHandler.CustomizeSchedule)
		v1.POST("/confirm-schedule", d.ScheduleHandler.ConfirmSchedule)
		v1.GET("/active-schedule/:user_id", d.ScheduleHandler.GetActiveSchedule)
		v1.POST("/stop-schedule", d.ScheduleHandler.StopSchedule)

		tasks := v1.Group("/tasks")
		{
			tasks.POST("/:task_id/start", d.TaskHandler.StartTask)
			tasks.POST("/:task_id/complete", d.TaskHandler.CompleteTask)
		}

		rankings := v1.Group("/rankings")
		{
			rankings.GET("", d.RankingHandler.GetRankings)
			rankings.GET("/top", d.RankingHandler.GetTopRankings)
		}

		roleModels := v1.Group("/role-models")
		{
			roleModels.GET("", d.RoleModelHandler.ListRoleModels)
			roleModels.GET("/:id", d.RoleModelHandler.GetRoleModel)
		}

		users := v1.Group("/users")
		{
			users.POST("/signup", d.UserHandler.Signup)
			users.POST("/signin", d.UserHandler.Signin)
		}
	}
	return r
}
