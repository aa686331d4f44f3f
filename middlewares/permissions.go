package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flavourhaven/hotel-restaurant-app/models"
	"github.com/flavourhaven/hotel-restaurant-app/utils"
)

// permissions maps an operation to the roles allowed to perform it.
// The table is the single source of truth for access control; handlers
// never inspect roles themselves.
var permissions = map[string][]string{
	"users:manage": {models.RoleAdmin},

	"menu:write": {models.RoleAdmin},

	"orders:list":          {models.RoleAdmin, models.RoleStaff},
	"orders:create":        {models.RoleCustomer},
	"orders:update-status": {models.RoleAdmin, models.RoleStaff},
	"orders:delete":        {models.RoleAdmin},

	"inventory:read":  {models.RoleAdmin, models.RoleStaff},
	"inventory:write": {models.RoleAdmin},

	"payments:list":   {models.RoleAdmin},
	"payments:create": {models.RoleAdmin, models.RoleStaff},

	"rooms:write": {models.RoleAdmin},

	"bookings:list":       {models.RoleAdmin, models.RoleStaff},
	"bookings:create":     {models.RoleCustomer},
	"bookings:transition": {models.RoleAdmin, models.RoleStaff},

	"analytics:read": {models.RoleAdmin},
}

// Allowed reports whether a role may perform an operation.
func Allowed(role, operation string) bool {
	for _, allowed := range permissions[operation] {
		if allowed == role {
			return true
		}
	}
	return false
}

// RequirePermission gates a route on the permission table. It must run
// after AuthMiddleware.
func RequirePermission(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		role, _ := roleInterface.(string)
		if !Allowed(role, operation) {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("access denied"))
			c.Abort()
			return
		}

		c.Next()
	}
}
