package employee

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
	funcionarios := r.Group("/funcionarios")
	funcionarios.Use(middleware.AuthMiddleware())
	{
		funcionarios.GET("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "funcionario", "read"),
			handler.GetAll,
		)
		funcionarios.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "funcionario", "read"),
			handler.GetById,
		)
		funcionarios.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "funcionario", "write"),
			handler.Create,
		)
		funcionarios.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "funcionario", "write"),
			handler.Update,
		)
		funcionarios.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "funcionario", "write"),
			handler.Delete,
		)
	}
}
