package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookmart/bookstore-api/models"
)

func (s *Store) InsertOrder(ctx context.Context, o *models.Order) error {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	res, err := s.Orders.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var o models.Order
	err := s.Orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) FindAllOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.Orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var orders []models.Order
	err = cur.All(ctx, &orders)
	return orders, err
}

func (s *Store) FindOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.Orders.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var orders []models.Order
	err = cur.All(ctx, &orders)
	return orders, err
}

// DeleteOrder removes an order record. Only order creation uses it, to take
// back an order whose stock decrement could not be completed.
func (s *Store) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.Orders.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *Store) CountOrders(ctx context.Context) (int64, error) {
	return s.Orders.CountDocuments(ctx, bson.M{})
}

// TotalSales sums totalPrice across every order.
func (s *Store) TotalSales(ctx context.Context) (models.Money, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "totalSales": bson.M{"$sum": "$totalPrice"}}},
	}
	cur, err := s.Orders.Aggregate(ctx, pipeline)
	if err != nil {
		return models.Money{}, err
	}
	defer cur.Close(ctx)

	var results []struct {
		TotalSales models.Money `bson:"totalSales"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return models.Money{}, err
	}
	if len(results) == 0 {
		return models.Money{}, nil
	}
	return results[0].TotalSales, nil
}

// SalesByDate is one row of the paid-orders-per-day aggregation.
type SalesByDate struct {
	Date       string       `bson:"_id" json:"_id"`
	TotalSales models.Money `bson:"totalSales" json:"totalSales"`
}

// TotalSalesByDate groups paid orders by the calendar date they were paid on.
func (s *Store) TotalSalesByDate(ctx context.Context) ([]SalesByDate, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"isPaid": true}},
		{"$group": bson.M{
			"_id": bson.M{
				"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$paidAt"},
			},
			"totalSales": bson.M{"$sum": "$totalPrice"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	cur, err := s.Orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []SalesByDate
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// SetOrderPaid flips isPaid to true, stamps paidAt and attaches the payment
// result. The flag is monotonic: nothing ever sets it back to false.
func (s *Store) SetOrderPaid(ctx context.Context, id primitive.ObjectID, result models.PaymentResult) (*models.Order, error) {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"isPaid":        true,
		"paidAt":        now,
		"paymentResult": result,
		"updatedAt":     now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o models.Order
	err := s.Orders.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) SetOrderDelivered(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"isDelivered": true,
		"deliveredAt": now,
		"updatedAt":   now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o models.Order
	err := s.Orders.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
