package mongodb

import (
	"context"
	"fmt"

	apperrors "restaurant-directory/internal/shared/errors"
	"restaurant-directory/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoID is the primary-key field every document carries.
const MongoID = "_id"

// Connect establishes and verifies a client for the given connection string.
// The caller owns the client and disconnects it on shutdown; every Store in
// the process shares this one handle.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// Store executes single-document operations against named collections within
// one logical database. It is deliberately collection-agnostic: field names
// and validation belong to the repositories above it.
type Store struct {
	db  *mongo.Database
	log logger.Logger
}

// NewStore wraps an already-connected database handle.
func NewStore(db *mongo.Database, log logger.Logger) *Store {
	return &Store{db: db, log: log.WithComponent("mongodb.Store")}
}

// InsertOne inserts doc and returns the inserted primary key as a string.
func (s *Store) InsertOne(ctx context.Context, collection string, doc bson.M) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.ErrDuplicateKey
		}
		s.log.WithContext(ctx).Errorf("insert into %s failed: %v", collection, err)
		return "", storeError("insert failed", err)
	}
	return idToString(res.InsertedID), nil
}

// FetchOne returns the first document matching filter with its primary key
// stringified, or (nil, nil) when nothing matches. An absent document is not
// an error.
func (s *Store) FetchOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		s.log.WithContext(ctx).Errorf("fetch from %s failed: %v", collection, err)
		return nil, storeError("fetch failed", err)
	}
	stringifyID(doc)
	return doc, nil
}

// FetchAll returns every document in the collection, primary keys stringified.
func (s *Store) FetchAll(ctx context.Context, collection string) ([]bson.M, error) {
	return s.FetchAllFiltered(ctx, collection, bson.M{})
}

// FetchAllFiltered returns every document matching filter, primary keys
// stringified.
func (s *Store) FetchAllFiltered(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		s.log.WithContext(ctx).Errorf("fetch from %s failed: %v", collection, err)
		return nil, storeError("fetch failed", err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, storeError("decode failed", err)
		}
		stringifyID(doc)
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, storeError("cursor failed", err)
	}
	return docs, nil
}

// FetchAllAsDict returns the collection as a map from each document's
// keyField value to the document. When keyField values collide the last
// document read wins.
func (s *Store) FetchAllAsDict(ctx context.Context, keyField, collection string) (map[string]bson.M, error) {
	docs, err := s.FetchAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bson.M, len(docs))
	for _, doc := range docs {
		key, ok := doc[keyField].(string)
		if !ok {
			continue
		}
		out[key] = doc
	}
	return out, nil
}

// UpdateDoc applies a partial field replacement to the first document
// matching filter.
func (s *Store) UpdateDoc(ctx context.Context, collection string, filter, updates bson.M) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		s.log.WithContext(ctx).Errorf("update in %s failed: %v", collection, err)
		return storeError("update failed", err)
	}
	return nil
}

// DeleteOne removes the first document matching filter.
func (s *Store) DeleteOne(ctx context.Context, collection string, filter bson.M) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		s.log.WithContext(ctx).Errorf("delete from %s failed: %v", collection, err)
		return storeError("delete failed", err)
	}
	return nil
}

// DeleteAll removes every document in the collection and returns the count.
func (s *Store) DeleteAll(ctx context.Context, collection string) (int64, error) {
	res, err := s.db.Collection(collection).DeleteMany(ctx, bson.M{})
	if err != nil {
		s.log.WithContext(ctx).Errorf("delete-all from %s failed: %v", collection, err)
		return 0, storeError("delete failed", err)
	}
	return res.DeletedCount, nil
}

// EnsureUniqueIndex creates a unique index on field. Duplicate inserts then
// fail at the store with ErrDuplicateKey, closing the probe-then-insert race
// in the repositories above.
func (s *Store) EnsureUniqueIndex(ctx context.Context, collection string, fields ...string) error {
	keys := bson.D{}
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: 1})
	}
	_, err := s.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return storeError("index creation failed", err)
	}
	return nil
}

// Ping verifies the underlying connection is still serving.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// stringifyID normalizes the primary key to a string so documents can cross
// the process boundary as JSON. Applied uniformly to every fetch variant.
func stringifyID(doc bson.M) {
	if oid, ok := doc[MongoID].(primitive.ObjectID); ok {
		doc[MongoID] = oid.Hex()
	}
}

func idToString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}

// storeError classifies a driver failure as a store-communication error
// while keeping the original cause inspectable.
func storeError(msg string, err error) error {
	return apperrors.NewInternalError(msg).WithCause(fmt.Errorf("%w: %w", apperrors.ErrStoreFailure, err))
}
