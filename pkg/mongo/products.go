package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"floraform.ca/storefront/pkg/models"
)

// SeedProductsIfEmpty inserts the static plant catalog on first startup.
// An already-populated collection is left untouched.
func SeedProductsIfEmpty(ctx context.Context, products []models.Product) error {
	collection := GetCollection("products")

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return err
	}

	log.Printf("Seeded products collection with %d plants", len(products))
	return nil
}

func GetAllProducts(ctx context.Context) ([]models.Product, error) {
	collection := GetCollection("products")

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	collection := GetCollection("products")

	var product models.Product
	if err := collection.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AddProductReview appends a review to the product's embedded review list
// and returns the updated product.
func AddProductReview(ctx context.Context, productID int, req models.AddReviewRequest) (*models.Product, error) {
	collection := GetCollection("products")

	product, err := GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	review := models.Review{
		ID:       len(product.Reviews) + 1,
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Date:     time.Now().UTC(),
	}

	update := bson.M{"$push": bson.M{"reviews": review}}
	if _, err := collection.UpdateOne(ctx, bson.M{"id": productID}, update); err != nil {
		return nil, err
	}

	product.Reviews = append(product.Reviews, review)
	return product, nil
}
