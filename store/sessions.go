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

type MongoSessionStore struct {
	col *mongo.Collection
}

func NewMongoSessionStore(database *mongo.Database) *MongoSessionStore {
	return &MongoSessionStore{col: database.Collection("user_sessions")}
}

func (s *MongoSessionStore) Create(ctx context.Context, userID, token string, ttl time.Duration) (*models.Session, error) {
	now := time.Now().UTC()
	session := &models.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		SessionToken: token,
		ExpiresAt:    now.Add(ttl),
		CreatedAt:    now,
	}
	if _, err := s.col.InsertOne(ctx, session.Record()); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *MongoSessionStore) Resolve(ctx context.Context, token string) (*models.Session, error) {
	var rec models.SessionRecord
	err := s.col.FindOne(ctx, bson.M{"session_token": token}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	session, err := rec.Session()
	if err != nil {
		return nil, err
	}
	// lazy expiry: the record stays in storage but never authenticates
	if session.Expired(time.Now().UTC()) {
		return nil, nil
	}
	return session, nil
}

func (s *MongoSessionStore) Revoke(ctx context.Context, token string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"session_token": token})
	return err
}

func (s *MongoSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	// expires_at strings are fixed width, so a string comparison matches
	// the chronological order
	result, err := s.col.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": models.FormatTime(now)}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
