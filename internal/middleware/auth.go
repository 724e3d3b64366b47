package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/auth-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/modelday/modelday/internal/config"
	"github.com/modelday/modelday/internal/modules/serializer"
)

// SupabaseAuth authenticates requests with a Supabase access token and stores
// the authenticated user id in the context under "auth_user_id". When Supabase
// is disabled in config the middleware is a no-op, which keeps local
// development free of external dependencies.
func SupabaseAuth(cfg *config.Config) gin.HandlerFunc {
	if !cfg.Supabase.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	client := auth.New(cfg.Supabase.ProjectRef, cfg.Supabase.ServiceKey)

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		_, authSpan := otel.Tracer("middleware").Start(ctx, "supabase_auth",
			trace.WithAttributes(attribute.String("middleware", "supabase_auth")))

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := client.WithToken(token).GetUser()
		if err != nil {
			authSpan.RecordError(err)
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		rootSpan := trace.SpanFromContext(c.Request.Context())
		if rootSpan.SpanContext().IsValid() {
			rootSpan.SetAttributes(attribute.String("auth_user_id", user.ID.String()))
		}

		authSpan.SetAttributes(
			attribute.String("auth_user_id", user.ID.String()),
			attribute.Bool("authenticated", true),
		)
		authSpan.End()

		c.Set("auth_user_id", user.ID.String())
		c.Next()
	}
}
