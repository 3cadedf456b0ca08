package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/mongo"
)

// GetOrderHistory returns a user's orders, newest first.
func GetOrderHistory(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid user ID", []global.ValidationError{
			{Field: "userId", Message: "Must be a numeric user ID", Code: "invalid_format"},
		}))
		return
	}

	orders, err := mongo.ListOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch orders", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(orders))
}
