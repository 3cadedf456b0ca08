package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"floraform.ca/storefront/pkg/models"
)

// orderDoc is the stored shape of an order. The document ID is surfaced to
// callers as the hex order ID; before the insert is acknowledged no order
// ID exists.
type orderDoc struct {
	ID     bson.ObjectID      `bson:"_id,omitempty"`
	UserID int                `bson:"userId"`
	Date   bson.DateTime      `bson:"date"`
	Total  float64            `bson:"total"`
	Items  []models.OrderItem `bson:"items"`
}

func (d *orderDoc) toOrder() *models.Order {
	return &models.Order{
		ID:     d.ID.Hex(),
		UserID: d.UserID,
		Date:   d.Date.Time().UTC(),
		Total:  d.Total,
		Items:  d.Items,
	}
}

// CreateOrder inserts the draft as a single document and returns the order
// with its server-assigned identifier. The insert either fully succeeds or
// fully fails; there is no partial write to roll back.
func CreateOrder(ctx context.Context, draft *models.OrderDraft) (*models.Order, error) {
	collection := GetCollection("orders")

	doc := orderDoc{
		UserID: draft.UserID,
		Date:   bson.NewDateTimeFromTime(draft.Date),
		Total:  draft.Total,
		Items:  draft.Items,
	}

	res, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(bson.ObjectID)
	return doc.toOrder(), nil
}

// ListOrdersByUser returns a user's order history, newest first.
func ListOrdersByUser(ctx context.Context, userID int) ([]*models.Order, error) {
	collection := GetCollection("orders")

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]*models.Order, 0, len(docs))
	for i := range docs {
		orders = append(orders, docs[i].toOrder())
	}
	return orders, nil
}
