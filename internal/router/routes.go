package router

import (
	"floraform.ca/storefront/pkg/auth"
	"floraform.ca/storefront/pkg/cart"
	"floraform.ca/storefront/pkg/checkout"
	"floraform.ca/storefront/pkg/email"
)

// Collaborators are wired once at startup and held package-wide, so
// handlers stay plain functions.
var (
	Carts     *cart.Manager
	Checkouts *checkout.Manager
	Pipeline  *checkout.Pipeline
	Auth      *auth.Service
	Notifier  *email.Notifier
)

func InitDependencies(carts *cart.Manager, checkouts *checkout.Manager, pipeline *checkout.Pipeline, authService *auth.Service, notifier *email.Notifier) {
	Carts = carts
	Checkouts = checkouts
	Pipeline = pipeline
	Auth = authService
	Notifier = notifier
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.POST("/contact", SendContactMessage)

		products := api.Group("/products")
		{
			products.GET("/", GetAllProducts)
			products.GET("/:id", GetProductByID)
			products.GET("/:id/care-guide", GetCareGuide)
			products.POST("/:id/reviews", AddProductReview)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/", GetAllCategories)
		}

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", Login)
			authRoutes.POST("/signup", SignUp)
			authRoutes.POST("/forgot-password", ForgotPassword)
			authRoutes.POST("/logout", Logout)
		}

		cartRoutes := api.Group("/cart")
		{
			cartRoutes.GET("/:sessionId", GetCart)
			cartRoutes.POST("/:sessionId/items", AddToCart)
			cartRoutes.PUT("/:sessionId/items/:productId", UpdateCartItem)
			cartRoutes.DELETE("/:sessionId/items/:productId", RemoveFromCart)
			cartRoutes.DELETE("/:sessionId/clear", ClearCart)
		}

		checkoutRoutes := api.Group("/checkout")
		{
			checkoutRoutes.GET("/:sessionId", GetCheckout)
			checkoutRoutes.POST("/:sessionId/details", SubmitShippingDetails)
			checkoutRoutes.POST("/:sessionId/payment", SelectPaymentMethod)
			checkoutRoutes.POST("/:sessionId/back", BackToDetails)
			checkoutRoutes.POST("/:sessionId/cancel", CancelCheckout)
			checkoutRoutes.POST("/:sessionId/place", RequireUser(), PlaceOrder)
		}

		orders := api.Group("/orders")
		{
			orders.GET("/user/:userId", GetOrderHistory)
		}
	}
}
