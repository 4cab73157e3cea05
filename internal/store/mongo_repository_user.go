// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// withoutPasswordHash is the projection used for public user reads.
var withoutPasswordHash = bson.D{{Key: "password_hash", Value: 0}}

type mongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

func NewMongoUserRepository(m *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongodb user repository")
	return &mongoUserRepository{
		users:  m.db.Collection(usersCollection),
		logger: logger,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	now := mongoTimestamp()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.users.InsertOne(ctx, newUserDocument(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.User{}, fmt.Errorf("%w: unexpected inserted id %v", ErrExecutingQuery, result.InsertedID)
	}
	user.UserID = id.Hex()

	return user, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*mongoUserRepository.FindUserByEmail", bson.M{"email": email})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	return r.findOne(ctx, "*mongoUserRepository.FindUserByID", bson.M{"_id": id},
		options.FindOne().SetProjection(withoutPasswordHash))
}

func (r *mongoUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if update.IsEmpty() {
		return r.FindUserByID(ctx, update.UserID)
	}

	id, err := primitive.ObjectIDFromHex(update.UserID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	set := bson.M{"updated_at": mongoTimestamp()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutPasswordHash)

	var doc userDocument
	err = r.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return models.User{}, ErrUserNotFound
		case mongo.IsDuplicateKeyError(err):
			return models.User{}, ErrEmailAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, funcName string, filter bson.M, opts ...*options.FindOneOptions) (models.User, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}
