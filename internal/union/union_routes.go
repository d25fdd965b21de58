package union

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
	sindicatos := r.Group("/sindicatos")
	sindicatos.Use(middleware.AuthMiddleware())
	{
		sindicatos.GET("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "sindicato", "read"),
			handler.GetAll,
		)
		sindicatos.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "sindicato", "read"),
			handler.GetById,
		)
		sindicatos.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "sindicato", "write"),
			handler.Create,
		)
		sindicatos.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "sindicato", "write"),
			handler.Update,
		)
		sindicatos.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "sindicato", "write"),
			handler.Delete,
		)
	}
}
