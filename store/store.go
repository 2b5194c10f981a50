package store

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Store owns the per-entity collections of the backing MongoDB database.
// It is constructed once at startup and handed to every component that
// touches durable state.
type Store struct {
	Users        *mongo.Collection
	Products     *mongo.Collection
	Categories   *mongo.Collection
	Orders       *mongo.Collection
	OrderItems   *mongo.Collection
	PaymentBills *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		Users:        db.Collection("users"),
		Products:     db.Collection("products"),
		Categories:   db.Collection("categories"),
		Orders:       db.Collection("orders"),
		OrderItems:   db.Collection("orderitems"),
		PaymentBills: db.Collection("paymentbills"),
	}
}
