package position

import (
	"github.com/gin-gonic/gin"

	"go-folha/internal/middleware"
	"go-folha/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	cargos := r.Group("/cargos")
	cargos.Use(middleware.AuthMiddleware())
	{
		cargos.GET("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "cargo", "read"),
			handler.GetAll,
		)
		cargos.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "cargo", "read"),
			handler.GetById,
		)
		cargos.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "cargo", "write"),
			handler.Create,
		)
		cargos.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "cargo", "write"),
			handler.Update,
		)
		cargos.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "cargo", "write"),
			handler.Delete,
		)
	}
}
