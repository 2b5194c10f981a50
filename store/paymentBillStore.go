package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookmart/bookstore-api/models"
)

func (s *Store) InsertPaymentBill(ctx context.Context, bill *models.PaymentBill) error {
	bill.CreatedAt = time.Now()
	res, err := s.PaymentBills.InsertOne(ctx, bill)
	if err != nil {
		return err
	}
	bill.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindPaymentBillByID(ctx context.Context, id primitive.ObjectID) (*models.PaymentBill, error) {
	var bill models.PaymentBill
	err := s.PaymentBills.FindOne(ctx, bson.M{"_id": id}).Decode(&bill)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *Store) FindAllPaymentBills(ctx context.Context) ([]models.PaymentBill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.PaymentBills.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var bills []models.PaymentBill
	err = cur.All(ctx, &bills)
	return bills, err
}
