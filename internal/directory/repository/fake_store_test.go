package repository_test

import (
	"context"
	"reflect"

	apperrors "restaurant-directory/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory DocStore. It counts every call so tests can
// assert that validation failures never reach the store, and it honors the
// unique indexes the repositories declare.
type fakeStore struct {
	collections map[string][]bson.M
	uniqueIndex map[string][]string

	calls map[string]int

	insertErr   error
	fetchErr    error
	emptyInsert bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: map[string][]bson.M{},
		uniqueIndex: map[string][]string{},
		calls:       map[string]int{},
	}
}

func (f *fakeStore) storeCalls() int {
	total := 0
	for name, n := range f.calls {
		if name == "EnsureUniqueIndex" {
			continue
		}
		total += n
	}
	return total
}

func (f *fakeStore) InsertOne(_ context.Context, collection string, doc bson.M) (string, error) {
	f.calls["InsertOne"]++
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if f.emptyInsert {
		return "", nil
	}
	if fields, ok := f.uniqueIndex[collection]; ok {
		filter := bson.M{}
		for _, field := range fields {
			filter[field] = doc[field]
		}
		for _, existing := range f.collections[collection] {
			if matches(existing, filter) {
				return "", apperrors.ErrDuplicateKey
			}
		}
	}
	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID().Hex()
	}
	f.collections[collection] = append(f.collections[collection], stored)
	id, _ := stored["_id"].(string)
	return id, nil
}

func (f *fakeStore) FetchOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	f.calls["FetchOne"]++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	for _, doc := range f.collections[collection] {
		if matches(doc, filter) {
			return copyDoc(doc), nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FetchAll(ctx context.Context, collection string) ([]bson.M, error) {
	f.calls["FetchAll"]++
	out := []bson.M{}
	for _, doc := range f.collections[collection] {
		out = append(out, copyDoc(doc))
	}
	return out, nil
}

func (f *fakeStore) FetchAllFiltered(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	f.calls["FetchAllFiltered"]++
	out := []bson.M{}
	for _, doc := range f.collections[collection] {
		if matches(doc, filter) {
			out = append(out, copyDoc(doc))
		}
	}
	return out, nil
}

func (f *fakeStore) FetchAllAsDict(_ context.Context, keyField, collection string) (map[string]bson.M, error) {
	f.calls["FetchAllAsDict"]++
	out := map[string]bson.M{}
	for _, doc := range f.collections[collection] {
		if key, ok := doc[keyField].(string); ok {
			out[key] = copyDoc(doc)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateDoc(_ context.Context, collection string, filter, updates bson.M) error {
	f.calls["UpdateDoc"]++
	for _, doc := range f.collections[collection] {
		if matches(doc, filter) {
			for k, v := range updates {
				doc[k] = v
			}
			return nil
		}
	}
	return nil
}

func (f *fakeStore) DeleteOne(_ context.Context, collection string, filter bson.M) error {
	f.calls["DeleteOne"]++
	docs := f.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			f.collections[collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) DeleteAll(_ context.Context, collection string) (int64, error) {
	f.calls["DeleteAll"]++
	n := int64(len(f.collections[collection]))
	f.collections[collection] = nil
	return n, nil
}

func (f *fakeStore) EnsureUniqueIndex(_ context.Context, collection string, fields ...string) error {
	f.calls["EnsureUniqueIndex"]++
	f.uniqueIndex[collection] = fields
	return nil
}

func (f *fakeStore) count(collection string, filter bson.M) int {
	n := 0
	for _, doc := range f.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n
}

func matches(doc, filter bson.M) bool {
	for field, want := range filter {
		got := doc[field]
		if in, ok := want.(bson.M); ok {
			candidates, ok := in["$in"].([]interface{})
			if !ok {
				return false
			}
			found := false
			for _, candidate := range candidates {
				if reflect.DeepEqual(got, candidate) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func copyDoc(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}
