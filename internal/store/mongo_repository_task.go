// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newestFirst orders tasks by creation time, newest first, with the id as
// a tiebreaker.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

type mongoTaskRepository struct {
	tasks  *mongo.Collection
	logger *logger.Logger
}

func NewMongoTaskRepository(m *MongoDB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating mongodb task repository")
	return &mongoTaskRepository{
		tasks:  m.db.Collection(tasksCollection),
		logger: logger,
	}
}

func (r *mongoTaskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	now := mongoTimestamp()
	task.CreatedAt = now
	task.UpdatedAt = now

	result, err := r.tasks.InsertOne(ctx, newTaskDocument(task))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTaskRepository.CreateTask").Msg("error inserting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: unexpected inserted id %v", ErrExecutingQuery, result.InsertedID)
	}
	task.TaskID = id.Hex()

	return task, nil
}

func (r *mongoTaskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.tasks.Find(ctx, taskListFilter(filter), options.Find().SetSort(newestFirst))
	if err != nil {
		log.Err(err).Str("func", "*mongoTaskRepository.ListTasks").Msg("error selecting tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []taskDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoTaskRepository.ListTasks").Msg("error decoding tasks")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	tasks := make([]models.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.model())
	}

	return tasks, nil
}

func (r *mongoTaskRepository) FindTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	filter, ok := ownedTaskFilter(userID, taskID)
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}

	var doc taskDocument
	if err := r.tasks.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Task{}, ErrTaskNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTaskRepository.FindTask").Msg("error selecting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}

func (r *mongoTaskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	if update.IsEmpty() {
		return r.FindTask(ctx, update.UserID, update.TaskID)
	}

	filter, ok := ownedTaskFilter(update.UserID, update.TaskID)
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}

	set := bson.M{"updated_at": mongoTimestamp()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	var doc taskDocument
	err := r.tasks.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Task{}, ErrTaskNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTaskRepository.UpdateTask").Msg("error updating task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}

func (r *mongoTaskRepository) DeleteTask(ctx context.Context, userID, taskID string) error {
	filter, ok := ownedTaskFilter(userID, taskID)
	if !ok {
		return ErrTaskNotFound
	}

	result, err := r.tasks.DeleteOne(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTaskRepository.DeleteTask").Msg("error deleting task")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// ownedTaskFilter matches one task of one owner. It reports false when
// taskID is not a valid ObjectID, which callers treat as not found.
func ownedTaskFilter(userID, taskID string) (bson.M, bool) {
	id, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, false
	}

	return bson.M{"_id": id, "user_id": userID}, true
}

func taskListFilter(filter models.TaskFilter) bson.M {
	query := bson.M{"user_id": filter.UserID}

	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	return query
}
