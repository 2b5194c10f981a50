package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmart/bookstore-api/models"
)

func (s *Store) InsertUser(ctx context.Context, u *models.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	res, err := s.Users.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists reports whether a user already claimed the email or username.
func (s *Store) UserExists(ctx context.Context, email, username string) (bool, error) {
	filter := bson.M{"$or": []bson.M{{"email": email}, {"username": username}}}
	count, err := s.Users.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) FindAllUsers(ctx context.Context) ([]models.User, error) {
	cur, err := s.Users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	err = cur.All(ctx, &users)
	return users, err
}

func (s *Store) UpdateUser(ctx context.Context, id primitive.ObjectID, username, email string) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if username != "" {
		set["username"] = username
	}
	if email != "" {
		set["email"] = email
	}
	res, err := s.Users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return s.FindUserByID(ctx, id)
}

func (s *Store) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
