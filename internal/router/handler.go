package router

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"floraform.ca/storefront/pkg/ai"
	"floraform.ca/storefront/pkg/catalog"
	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/models"
	"floraform.ca/storefront/pkg/mongo"
	"floraform.ca/storefront/pkg/redis"
)

func HealthCheck(c *gin.Context) {
	db := mongo.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

// GetAllProducts lists the catalog, narrowed by the optional category and
// free-text search query parameters.
func GetAllProducts(c *gin.Context) {
	products, err := mongo.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get products", nil))
		return
	}

	category := c.DefaultQuery("category", catalog.AllCategories)
	term := c.Query("q")
	visible := catalog.Filter(products, category, term)

	c.JSON(http.StatusOK, global.SuccessResponse(visible))
}

func GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Categories))
}

// GetProductByID retrieves a product by catalog ID with Redis caching
func GetProductByID(c *gin.Context) {
	productID, ok := parseProductID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	// Try Redis cache first
	product, err := redis.GetProductFromCache(ctx, productID)
	if err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(product))
		return
	}

	// Cache miss, check MongoDB
	product, err = mongo.GetProductByID(ctx, productID)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching product from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	// Found in MongoDB, cache it for future requests
	if cacheErr := redis.CacheProduct(ctx, product); cacheErr != nil {
		log.Printf("Warning: Failed to cache product in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

// GetCareGuide generates a markdown care guide for the product's plant.
func GetCareGuide(c *gin.Context) {
	productID, ok := parseProductID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	product, err := mongo.GetProductByID(ctx, productID)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	guide := ai.GenerateCareGuide(ctx, product.Name)
	c.JSON(http.StatusOK, global.SuccessResponse(guide))
}

// AddProductReview appends a review to the product and refreshes the cache.
func AddProductReview(c *gin.Context) {
	productID, ok := parseProductID(c, "id")
	if !ok {
		return
	}

	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid review data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()

	product, err := mongo.AddProductReview(ctx, productID, req)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error adding review in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add review", nil))
		return
	}

	if cacheErr := redis.InvalidateProduct(ctx, productID); cacheErr != nil {
		// Stale cache entries expire on their own; log and move on
		log.Printf("Warning: Failed to invalidate product cache in Redis: %v", cacheErr)
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(product))
}

// SendContactMessage relays a contact-form submission to the store admin
// and auto-replies to the sender.
func SendContactMessage(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid contact data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if err := Notifier.SendContactMessage(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		log.Printf("Error sending contact message: %v", err)
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to send message. Please try again later.", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Message sent"}))
}

func parseProductID(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID", []global.ValidationError{
			{Field: param, Message: "Must be a numeric product ID", Code: "invalid_format"},
		}))
		return 0, false
	}
	return id, true
}
