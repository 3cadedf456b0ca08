package models

import "time"

// PlantDetails holds the descriptive care attributes shown on the
// product detail page.
type PlantDetails struct {
	Size  string `json:"size" bson:"size"`
	Light string `json:"light" bson:"light"`
	Water string `json:"water" bson:"water"`
}

// Review represents a customer review embedded on a product document
type Review struct {
	ID       int       `json:"id" bson:"id"`
	UserName string    `json:"userName" bson:"userName"`
	Rating   int       `json:"rating" bson:"rating" binding:"omitempty,min=1,max=5"`
	Comment  string    `json:"comment" bson:"comment"`
	Date     time.Time `json:"date" bson:"date"`
}

// Product represents a catalog entry. Products are immutable for the
// lifetime of the process; the catalog owns them.
type Product struct {
	ID          int          `json:"id" bson:"id"`
	Name        string       `json:"name" bson:"name"`
	Price       float64      `json:"price" bson:"price"`
	Description string       `json:"description" bson:"description"`
	Category    string       `json:"category" bson:"category"`
	ImageURL    string       `json:"imageUrl" bson:"imageUrl"`
	Details     PlantDetails `json:"details" bson:"details"`
	Reviews     []Review     `json:"reviews,omitempty" bson:"reviews,omitempty"`
}

type AddReviewRequest struct {
	UserName string `json:"userName" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required"`
}
