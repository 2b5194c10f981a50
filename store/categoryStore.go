package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmart/bookstore-api/models"
)

func (s *Store) InsertCategory(ctx context.Context, c *models.Category) error {
	res, err := s.Categories.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindCategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var c models.Category
	err := s.Categories.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) FindAllCategories(ctx context.Context) ([]models.Category, error) {
	cur, err := s.Categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var categories []models.Category
	err = cur.All(ctx, &categories)
	return categories, err
}

func (s *Store) UpdateCategory(ctx context.Context, id primitive.ObjectID, name string) (*models.Category, error) {
	res, err := s.Categories.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return s.FindCategoryByID(ctx, id)
}

func (s *Store) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Categories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
