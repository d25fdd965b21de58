package account

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
	contas := r.Group("/plano-contas")
	contas.Use(middleware.AuthMiddleware())
	{
		contas.GET("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "plano_conta", "read"),
			handler.GetAll,
		)
		contas.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "plano_conta", "read"),
			handler.GetById,
		)
		contas.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "plano_conta", "write"),
			handler.Create,
		)
		contas.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "plano_conta", "write"),
			handler.Update,
		)
		contas.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "plano_conta", "write"),
			handler.Delete,
		)
	}
}
