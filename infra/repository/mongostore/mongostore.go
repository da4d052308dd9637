// Package mongostore implements the repositories on MongoDB. It is selected
// with DATABASE_DRIVER=mongo.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/autoconnect/backend/pkg/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	accountsCollection   = "bank_accounts"
	categoriesCollection = "categories"
	usersCollection      = "users"
)

func mapMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, domain.ErrPersistence)
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		accountsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		categoriesCollection: {
			{Keys: bson.D{{Key: "categoryid", Value: 1}}, Options: unique},
		},
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
	}
	for _, name := range []string{accountsCollection, categoriesCollection, usersCollection} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes[name]); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func requireMatched(res *mongo.UpdateResult, err error) error {
	if err != nil {
		return mapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func requireDeleted(res *mongo.DeleteResult, err error) error {
	if err != nil {
		return mapMongoError(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
