package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// DocStore is the document-store surface the repositories consume. The
// mongodb.Store adapter implements it in production; tests substitute an
// in-memory fake.
type DocStore interface {
	InsertOne(ctx context.Context, collection string, doc bson.M) (string, error)
	FetchOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
	FetchAll(ctx context.Context, collection string) ([]bson.M, error)
	FetchAllFiltered(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	FetchAllAsDict(ctx context.Context, keyField, collection string) (map[string]bson.M, error)
	UpdateDoc(ctx context.Context, collection string, filter, updates bson.M) error
	DeleteOne(ctx context.Context, collection string, filter bson.M) error
	DeleteAll(ctx context.Context, collection string) (int64, error)
	EnsureUniqueIndex(ctx context.Context, collection string, fields ...string) error
}
