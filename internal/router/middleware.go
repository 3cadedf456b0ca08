package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"floraform.ca/storefront/pkg/global"
)

// RequireUser resolves the authenticated user from the X-User-ID header
// against the user repository. Mock authentication: there is no token,
// only an identity that must exist before order submission may proceed.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader("X-User-ID")
		if rawID == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Authentication required", []global.ValidationError{
				{Field: "X-User-ID", Message: "X-User-ID header is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		userID, err := strconv.Atoi(rawID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid user ID", []global.ValidationError{
				{Field: "X-User-ID", Message: "Must be a numeric user ID", Code: "invalid_format"},
			}))
			c.Abort()
			return
		}

		user, ok := Auth.Users().FindByID(userID)
		if !ok {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Unknown user", nil))
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}
