package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"floraform.ca/storefront/pkg/checkout"
	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/models"
)

func GetCheckout(c *gin.Context) {
	session := Checkouts.Get(c.Param("sessionId"))
	c.JSON(http.StatusOK, global.SuccessResponse(session.Snapshot()))
}

// SubmitShippingDetails validates the details form and advances the
// checkout to the payment step. Field errors block the transition.
func SubmitShippingDetails(c *gin.Context) {
	session := Checkouts.Get(c.Param("sessionId"))

	var details models.ShippingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if err := session.SubmitDetails(details); err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(session.Snapshot()))
}

func SelectPaymentMethod(c *gin.Context) {
	session := Checkouts.Get(c.Param("sessionId"))

	var req models.SelectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if err := session.SelectPayment(req.Method); err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(session.Snapshot()))
}

func BackToDetails(c *gin.Context) {
	session := Checkouts.Get(c.Param("sessionId"))
	if err := session.Back(); err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(session.Snapshot()))
}

// CancelCheckout abandons the flow and returns to the catalog. The cart is
// left untouched.
func CancelCheckout(c *gin.Context) {
	session := Checkouts.Get(c.Param("sessionId"))
	if err := session.Cancel(); err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(session.Snapshot()))
}

// PlaceOrder runs the order submission pipeline for the session cart.
// Requires an authenticated user. On failure the cart is preserved and the
// session returns to the payment step so the user may retry.
func PlaceOrder(c *gin.Context) {
	sessionID := c.Param("sessionId")
	session := Checkouts.Get(sessionID)
	store := Carts.Get(sessionID)

	userValue, _ := c.Get("currentUser")
	user, _ := userValue.(*models.User)

	order, err := session.PlaceOrder(c.Request.Context(), Pipeline, store, user)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(order))
}

func respondCheckoutError(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, global.ErrorResponse(vErr.Message, vErr.Fields))
		return
	}

	var sErr *checkout.SubmissionError
	if errors.As(err, &sErr) {
		c.JSON(http.StatusBadGateway, global.ErrorResponse("There was an issue placing your order. Please try again.", nil))
		return
	}

	c.JSON(http.StatusInternalServerError, global.ErrorResponse("Checkout failed", nil))
}
