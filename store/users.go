package store

import (
	"context"
	"errors"
	"time"

	"classroom-dashboard/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(database *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: database.Collection("users")}
}

func (s *MongoUserStore) UpsertByEmail(ctx context.Context, email, name, picture string) (*models.User, error) {
	var rec models.UserRecord
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&rec)
	if err == nil {
		return rec.User()
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Picture:   picture,
		Role:      models.RoleStudent,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.col.InsertOne(ctx, user.Record()); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *MongoUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var rec models.UserRecord
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.User()
}

func (s *MongoUserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var rec models.UserRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, err
		}
		user, err := rec.User()
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, cursor.Err()
}

func (s *MongoUserStore) UpdateRole(ctx context.Context, userID, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}
	result, err := s.col.UpdateOne(ctx, bson.M{"id": userID}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
