package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"floraform.ca/storefront/pkg/models"
)

const cacheTTL = 24 * time.Hour

// CacheProduct stores a single product under its catalog ID and registers
// it on the category list used by the listing page.
func CacheProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	productJSON, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %d: %w", product.ID, err)
	}

	pipe := client.TxPipeline()

	productKey := fmt.Sprintf("product:%d", product.ID)
	pipe.Set(ctx, productKey, productJSON, cacheTTL)

	categoryKey := fmt.Sprintf("category:%s", product.Category)
	pipe.LPush(ctx, categoryKey, product.ID)
	pipe.Expire(ctx, categoryKey, cacheTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute Redis pipeline for product %d: %w", product.ID, err)
	}

	return nil
}

// GetProductFromCache returns the cached product or an error on cache miss.
func GetProductFromCache(ctx context.Context, productID int) (*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	productKey := fmt.Sprintf("product:%d", productID)
	productJSON, err := client.Get(ctx, productKey).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(productJSON), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}

// InvalidateProduct drops the cached copy, e.g. after a review is added.
func InvalidateProduct(ctx context.Context, productID int) error {
	client := RedisClient()
	defer client.Close()

	productKey := fmt.Sprintf("product:%d", productID)
	return client.Del(ctx, productKey).Err()
}
