package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/store"
)

// ReviewStore is the slice of the data store that review aggregation needs.
type ReviewStore interface {
	FindProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	AppendReview(ctx context.Context, productID primitive.ObjectID, review models.Review) error
}

type ReviewService struct {
	store ReviewStore
}

func NewReviewService(st ReviewStore) *ReviewService {
	return &ReviewService{store: st}
}

// AddReview appends a review to a product. The store update derives the
// numReviews and rating fields from the resulting review array. A user may
// review a product once; the duplicate check is enforced atomically by the
// store update.
func (s *ReviewService) AddReview(ctx context.Context, productID, userID primitive.ObjectID, rating float64, comment string) error {
	product, err := s.store.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Resource: "product", ID: productID.Hex()}
		}
		return fmt.Errorf("fetch product: %w", err)
	}

	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Resource: "user", ID: userID.Hex()}
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	for _, r := range product.Reviews {
		if r.User == userID {
			return &ConflictError{Reason: "product already reviewed"}
		}
	}

	review := models.Review{
		Name:      user.Username,
		Rating:    rating,
		Comment:   comment,
		User:      user.ID,
		CreatedAt: time.Now(),
	}

	if err := s.store.AppendReview(ctx, productID, review); err != nil {
		if errors.Is(err, store.ErrAlreadyReviewed) {
			return &ConflictError{Reason: "product already reviewed"}
		}
		return fmt.Errorf("append review: %w", err)
	}
	return nil
}
