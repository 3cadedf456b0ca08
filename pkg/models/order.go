package models

import "time"

// OrderItem is a frozen snapshot of a cart line at the moment the order
// was created. Later catalog price changes must not alter it.
type OrderItem struct {
	ProductID   int     `json:"productId" bson:"productId"`
	ProductName string  `json:"productName" bson:"productName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
}

// OrderDraft is the not-yet-persisted candidate order assembled from the
// cart, shipping details and the authenticated user. It has no ID; the
// persistence layer assigns one on create.
type OrderDraft struct {
	UserID int         `json:"userId" bson:"userId"`
	Date   time.Time   `json:"date" bson:"date"`
	Total  float64     `json:"total" bson:"total"`
	Items  []OrderItem `json:"items" bson:"items"`
}

// Order is a persisted order. ID is the hex of the server-assigned
// document ID.
type Order struct {
	ID     string      `json:"id" bson:"-"`
	UserID int         `json:"userId" bson:"userId"`
	Date   time.Time   `json:"date" bson:"date"`
	Total  float64     `json:"total" bson:"total"`
	Items  []OrderItem `json:"items" bson:"items"`
}

// ItemCount returns the total number of units across all lines.
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// ShippingDetails is the transient checkout form state. It exists for the
// duration of the details step and is discarded after submission.
type ShippingDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

type SelectPaymentRequest struct {
	Method string `json:"method" binding:"required"`
}
