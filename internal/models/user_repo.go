package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/server/internal/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetUserSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]UserSummary, error)
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err = col.InsertOne(ctx, user)
	if err != nil {
		// Unique index on email; two signups racing the same address lose here
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Duplicate("email")
		}
		return nil, fmt.Errorf("error inserting user: %v", err)
	}

	return user, nil
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding user by email: %v", err)
	}

	return &user, nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	col, err := mdb.GetCollection(UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding user by id: %v", err)
	}

	return &user, nil
}

// GetUserSummaries resolves a batch of user references into name/email
// summaries, keyed by id. Missing ids are simply absent from the map.
func (mdb *MongodbRepo) GetUserSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]UserSummary, error) {
	summaries := make(map[primitive.ObjectID]UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	col, err := mdb.GetCollection(UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error finding users: %v", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var summary UserSummary
		if err := cursor.Decode(&summary); err != nil {
			return nil, fmt.Errorf("error decoding user summary: %v", err)
		}
		summaries[summary.ID] = summary
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return summaries, nil
}
