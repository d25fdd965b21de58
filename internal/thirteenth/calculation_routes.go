package thirteenth

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-folha/internal/middleware"
	"go-folha/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	group := r.Group("")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/calcular-decimo-terceiro",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			rbac.Authorize(rbacService, "decimo_terceiro", "write"),
			handler.Calculate,
		)
		group.GET("/calculos-decimo-terceiro",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "decimo_terceiro", "read"),
			handler.GetAll,
		)
		group.GET("/calculos-decimo-terceiro/:id",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "decimo_terceiro", "read"),
			handler.GetById,
		)
	}
}
