package repository

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"
	"restaurant-directory/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// BarRepository manages the bars collection. It mirrors the minimal
// restaurant shape: unique by name, one rating field.
type BarRepository struct {
	core *Core
}

func NewBarRepository(ctx context.Context, store DocStore, log logger.Logger) (*BarRepository, error) {
	core, err := NewCore(ctx, EntityConfig{
		Collection: model.BarCollection,
		Label:      "bar",
		Required:   []string{model.BarName},
		NaturalKey: []string{model.BarName},
	}, store, log)
	if err != nil {
		return nil, err
	}
	return &BarRepository{core: core}, nil
}

// Add inserts a bar and returns its identifier.
func (r *BarRepository) Add(ctx context.Context, bar model.Bar) (string, error) {
	return r.core.Add(ctx, bson.M{
		model.BarName:   bar.Name,
		model.BarRating: bar.Rating,
	})
}

// Exists reports whether a bar with the given name is present.
func (r *BarRepository) Exists(ctx context.Context, name string) (bool, error) {
	return r.core.Exists(ctx, bson.M{model.BarName: name})
}

// Get fetches one bar by name.
func (r *BarRepository) Get(ctx context.Context, name string) (*model.Bar, error) {
	doc, err := r.core.Get(ctx, bson.M{model.BarName: name})
	if err != nil {
		return nil, err
	}
	bar := decodeBar(doc)
	return &bar, nil
}

// UpdateRating replaces the rating of an existing bar.
func (r *BarRepository) UpdateRating(ctx context.Context, name string, rating int) error {
	return r.core.Update(ctx, bson.M{model.BarName: name}, bson.M{model.BarRating: rating})
}

// Delete removes a bar by name.
func (r *BarRepository) Delete(ctx context.Context, name string) error {
	return r.core.Delete(ctx, bson.M{model.BarName: name})
}

// List returns all bars keyed by name.
func (r *BarRepository) List(ctx context.Context) (map[string]model.Bar, error) {
	docs, err := r.core.ListAsDict(ctx, model.BarName)
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.Bar, len(docs))
	for name, doc := range docs {
		out[name] = decodeBar(doc)
	}
	return out, nil
}

func decodeBar(doc bson.M) model.Bar {
	return model.Bar{
		ID:     asString(doc, MongoID),
		Name:   asString(doc, model.BarName),
		Rating: asInt(doc, model.BarRating),
	}
}
