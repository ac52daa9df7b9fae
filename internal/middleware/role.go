package middleware

import (
	"net/http"

	"staybook/internal/domain"
	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated account carries the given role.
func RequireRole(requiredRole domain.AccountRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(requiredRole) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// VendorOnly middleware requires the vendor role.
func VendorOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleVendor)
}

// CustomerOnly middleware requires the customer role.
func CustomerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleCustomer)
}
