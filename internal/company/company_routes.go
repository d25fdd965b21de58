package company

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
	empresas := r.Group("/empresas")
	empresas.Use(middleware.AuthMiddleware())
	{
		empresas.GET("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "empresa", "read"),
			handler.GetAll,
		)
		empresas.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "empresa", "read"),
			handler.GetById,
		)
		empresas.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "empresa", "write"),
			handler.Create,
		)
		empresas.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "empresa", "write"),
			handler.Update,
		)
		empresas.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "empresa", "write"),
			handler.Delete,
		)
	}
}
