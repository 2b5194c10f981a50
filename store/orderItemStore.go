package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookmart/bookstore-api/models"
)

func (s *Store) InsertOrderItem(ctx context.Context, item *models.OrderItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	res, err := s.OrderItems.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindOrderItemByID(ctx context.Context, id primitive.ObjectID) (*models.OrderItem, error) {
	var item models.OrderItem
	err := s.OrderItems.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) FindAllOrderItems(ctx context.Context) ([]models.OrderItem, error) {
	cur, err := s.OrderItems.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.OrderItem
	err = cur.All(ctx, &items)
	return items, err
}

func (s *Store) FindOrderItemsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.OrderItem, error) {
	cur, err := s.OrderItems.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.OrderItem
	err = cur.All(ctx, &items)
	return items, err
}

// UpdateOrderItemQty mutates the quantity of a cart-style order item in
// place. Items attached to a placed order are never updated this way.
func (s *Store) UpdateOrderItemQty(ctx context.Context, id primitive.ObjectID, qty int) (*models.OrderItem, error) {
	update := bson.M{"$set": bson.M{"qty": qty, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.OrderItem
	err := s.OrderItems.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) DeleteOrderItem(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.OrderItems.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteOrderItems removes a batch of line items, used to unwind a failed
// order creation.
func (s *Store) DeleteOrderItems(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.OrderItems.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}
