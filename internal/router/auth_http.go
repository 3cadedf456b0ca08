package router

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"floraform.ca/storefront/pkg/auth"
	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/models"
)

func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	user, err := Auth.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(user))
}

func SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	user, err := Auth.SignUp(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			c.JSON(http.StatusConflict, global.ErrorResponse("An account with this email already exists", []global.ValidationError{
				{Field: "email", Message: "This email is already in use", Code: "duplicate_email"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create account", nil))
		return
	}

	// Welcome email is best-effort and never blocks the signup response
	go func(u models.User) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := Notifier.SendWelcome(ctx, &u); err != nil {
			log.Printf("Warning: Failed to send welcome email to %s: %v", u.Email, err)
		}
	}(*user)

	c.JSON(http.StatusCreated, global.SuccessResponse(user))
}

// ForgotPassword always responds with the same message so account
// existence is not revealed.
func ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	Auth.RequestPasswordReset(req.Email)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
		"message": "If an account exists for this email, a reset link has been sent",
	}))
}

// Logout empties the session's cart and discards any in-progress checkout.
func Logout(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID != "" {
		Carts.Get(sessionID).Clear()
		Checkouts.Reset(sessionID)
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Logged out"}))
}
