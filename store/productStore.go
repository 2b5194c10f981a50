package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookmart/bookstore-api/models"
)

var (
	// ErrInsufficientStock is returned by DecrementStock when the product is
	// missing or holds fewer units than requested.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrAlreadyReviewed is returned by AppendReview when the reviewer has
	// already left a review on the product.
	ErrAlreadyReviewed = errors.New("product already reviewed")
)

func (s *Store) InsertProduct(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Reviews == nil {
		p.Reviews = []models.Review{}
	}
	res, err := s.Products.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := s.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProductsByIDs fetches every product in ids with a single $in query.
// Callers compare the result length against len(ids) to detect missing ones.
func (s *Store) FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	cur, err := s.Products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindProducts returns one page of the catalog, optionally filtered by a
// case-insensitive keyword match on the name, together with the total count.
func (s *Store) FindProducts(ctx context.Context, keyword string, page, pageSize int) ([]models.Product, int64, error) {
	filter := bson.M{}
	if keyword != "" {
		filter["name"] = bson.M{"$regex": keyword, "$options": "i"}
	}

	total, err := s.Products.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := s.Products.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *Store) FindTopProducts(ctx context.Context, limit int) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(int64(limit))
	cur, err := s.Products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var products []models.Product
	err = cur.All(ctx, &products)
	return products, err
}

func (s *Store) FindNewProducts(ctx context.Context, limit int) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(int64(limit))
	cur, err := s.Products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var products []models.Product
	err = cur.All(ctx, &products)
	return products, err
}

// FilterProducts narrows the catalog by category ids and an inclusive price
// range. Either filter may be empty.
func (s *Store) FilterProducts(ctx context.Context, categories []primitive.ObjectID, minPrice, maxPrice *models.Money) ([]models.Product, error) {
	filter := bson.M{}
	if len(categories) > 0 {
		filter["category"] = bson.M{"$in": categories}
	}
	if minPrice != nil && maxPrice != nil {
		lo, err := primitive.ParseDecimal128(minPrice.String())
		if err != nil {
			return nil, err
		}
		hi, err := primitive.ParseDecimal128(maxPrice.String())
		if err != nil {
			return nil, err
		}
		filter["price"] = bson.M{"$gte": lo, "$lte": hi}
	}

	cur, err := s.Products.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var products []models.Product
	err = cur.All(ctx, &products)
	return products, err
}

func (s *Store) UpdateProduct(ctx context.Context, p *models.Product) error {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"image":       p.Image,
		"brand":       p.Brand,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"stock":       p.Stock,
		"updatedAt":   time.Now(),
	}}
	res, err := s.Products.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DecrementStock subtracts qty units if and only if at least qty units are
// available. The filter and $inc run as one atomic update, so two concurrent
// orders can never drive the stock negative between them.
func (s *Store) DecrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error {
	filter := bson.M{"_id": productID, "stock": bson.M{"$gte": qty}}
	res, err := s.Products.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"stock": -qty}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// IncrementStock returns qty units, compensating a decrement that has to be
// undone after a later step of order creation failed.
func (s *Store) IncrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error {
	_, err := s.Products.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$inc": bson.M{"stock": qty}})
	return err
}

// AppendReview pushes the review and rewrites the derived numReviews and
// rating fields. The reviews.user guard in the filter makes the duplicate
// check atomic with the append, and the pipeline derives numReviews and
// rating from the post-append array so concurrent reviews by different
// users cannot leave the aggregate stale.
func (s *Store) AppendReview(ctx context.Context, productID primitive.ObjectID, review models.Review) error {
	filter := bson.M{
		"_id":          productID,
		"reviews.user": bson.M{"$ne": review.User},
	}
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"reviews": bson.M{"$concatArrays": bson.A{
				"$reviews",
				bson.A{bson.M{"$literal": review}},
			}},
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"numReviews": bson.M{"$size": "$reviews"},
			"rating":     bson.M{"$avg": "$reviews.rating"},
			"updatedAt":  time.Now(),
		}}},
	}
	res, err := s.Products.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAlreadyReviewed
	}
	return nil
}
