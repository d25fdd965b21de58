package rbac

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-folha/internal/shared/response"
)

// Authorize gates a route on one resource/action pair. It expects
// user_id and company_id on the gin context, set by the auth
// middleware.
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		companyID := c.GetString("company_id")

		if userID == "" || companyID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(EnforceRequest{
			UserID:    userID,
			CompanyID: companyID,
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "acesso negado", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
