package repository

import (
	"context"
	"errors"
	"training-plan-server/internal/model"
	"training-plan-server/internal/util"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoTokenRepository : документ на пользователя, _id = userID
type MongoTokenRepository struct {
	collection *mongo.Collection
}

func NewMongoTokenRepository(database *mongo.Database, collection string) *MongoTokenRepository {
	return &MongoTokenRepository{collection: database.Collection(collection)}
}

func (r *MongoTokenRepository) Get(ctx context.Context, userID string) (*model.UserTokens, error) {
	var tokens model.UserTokens
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: userID}}).Decode(&tokens)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[TokenRepo] ошибка получения токенов из MongoDB", err)
	}
	return &tokens, nil
}

// Set : ReplaceOne с upsert заменяет документ целиком
func (r *MongoTokenRepository) Set(ctx context.Context, userID string, tokens *model.UserTokens) error {
	stored := *tokens
	stored.UserID = userID

	_, err := r.collection.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: userID}},
		stored,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return util.LogError("[TokenRepo] ошибка сохранения токенов в MongoDB", err)
	}
	return nil
}

func (r *MongoTokenRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: userID}}); err != nil {
		return util.LogError("[TokenRepo] не удалось удалить токены из MongoDB", err)
	}
	return nil
}
