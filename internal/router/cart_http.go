package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floraform.ca/storefront/pkg/cart"
	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/models"
	"floraform.ca/storefront/pkg/mongo"
)

func cartView(sessionID string, store *cart.Store) models.CartView {
	return models.CartView{
		SessionID:  sessionID,
		Items:      store.Items(),
		ItemCount:  store.ItemCount(),
		TotalPrice: store.TotalPrice(),
	}
}

func GetCart(c *gin.Context) {
	sessionID := c.Param("sessionId")
	store := Carts.Get(sessionID)
	c.JSON(http.StatusOK, global.SuccessResponse(cartView(sessionID, store)))
}

// AddToCart resolves the product from the catalog and adds it to the
// session cart, incrementing the quantity when it is already present.
func AddToCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	product, err := mongo.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if err.Error() == "mongo: no documents in result" {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "product_id", Message: "No product exists with this ID", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	store := Carts.Get(sessionID)
	store.AddItem(*product, req.Quantity)

	c.JSON(http.StatusCreated, global.SuccessResponse(cartView(sessionID, store)))
}

// UpdateCartItem replaces a line's quantity; quantity 0 removes the line.
func UpdateCartItem(c *gin.Context) {
	sessionID := c.Param("sessionId")
	productID, ok := parseProductID(c, "productId")
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	store := Carts.Get(sessionID)
	store.SetQuantity(productID, req.Quantity)

	c.JSON(http.StatusOK, global.SuccessResponse(cartView(sessionID, store)))
}

func RemoveFromCart(c *gin.Context) {
	sessionID := c.Param("sessionId")
	productID, ok := parseProductID(c, "productId")
	if !ok {
		return
	}

	store := Carts.Get(sessionID)
	store.RemoveItem(productID)

	c.JSON(http.StatusOK, global.SuccessResponse(cartView(sessionID, store)))
}

func ClearCart(c *gin.Context) {
	sessionID := c.Param("sessionId")
	store := Carts.Get(sessionID)
	store.Clear()

	c.JSON(http.StatusOK, global.SuccessResponse(cartView(sessionID, store)))
}
