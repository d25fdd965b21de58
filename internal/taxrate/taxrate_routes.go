package taxrate

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
	aliquotas := r.Group("/aliquotas")
	aliquotas.Use(middleware.AuthMiddleware())
	{
		aliquotas.GET("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "aliquota", "read"),
			handler.GetAll,
		)
		aliquotas.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			rbac.Authorize(rbacService, "aliquota", "read"),
			handler.GetById,
		)
		aliquotas.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "aliquota", "write"),
			handler.Create,
		)
		aliquotas.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "aliquota", "write"),
			handler.Update,
		)
		aliquotas.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "aliquota", "write"),
			handler.Delete,
		)
	}
}
