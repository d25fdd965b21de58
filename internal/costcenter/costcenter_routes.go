package costcenter

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
	centros := r.Group("/centros-custo")
	centros.Use(middleware.AuthMiddleware())
	{
		centros.GET("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "centro_custo", "read"),
			handler.GetAll,
		)
		centros.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "centro_custo", "read"),
			handler.GetById,
		)
		centros.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "centro_custo", "write"),
			handler.Create,
		)
		centros.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "centro_custo", "write"),
			handler.Update,
		)
		centros.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "centro_custo", "write"),
			handler.Delete,
		)
	}
}
