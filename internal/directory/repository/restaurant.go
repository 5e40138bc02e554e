package repository

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"
	"restaurant-directory/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// RestaurantRepository manages the restaurants collection. Restaurants are
// unique by name; the name doubles as the lookup and display key.
type RestaurantRepository struct {
	core *Core
}

// NewRestaurantRepository builds the repository and ensures the unique name
// index exists.
func NewRestaurantRepository(ctx context.Context, store DocStore, log logger.Logger) (*RestaurantRepository, error) {
	core, err := NewCore(ctx, EntityConfig{
		Collection: model.RestaurantCollection,
		Label:      "restaurant",
		Required:   []string{model.RestaurantName},
		NaturalKey: []string{model.RestaurantName},
	}, store, log)
	if err != nil {
		return nil, err
	}
	return &RestaurantRepository{core: core}, nil
}

// Add inserts a restaurant and returns its identifier.
func (r *RestaurantRepository) Add(ctx context.Context, rest model.Restaurant) (string, error) {
	doc := bson.M{
		model.RestaurantName:   rest.Name,
		model.RestaurantRating: rest.Rating,
	}
	setIfPresent(doc, model.RestaurantType, rest.Type)
	setIfPresent(doc, model.RestaurantDescription, rest.Description)
	setIfPresent(doc, model.RestaurantAddress, rest.Address)
	setIfPresent(doc, model.RestaurantCity, rest.City)
	setIfPresent(doc, model.RestaurantState, rest.State)
	setIfPresent(doc, model.RestaurantZip, rest.Zip)
	return r.core.Add(ctx, doc)
}

// Exists reports whether a restaurant with the given name is present.
func (r *RestaurantRepository) Exists(ctx context.Context, name string) (bool, error) {
	return r.core.Exists(ctx, bson.M{model.RestaurantName: name})
}

// Get fetches one restaurant by name.
func (r *RestaurantRepository) Get(ctx context.Context, name string) (*model.Restaurant, error) {
	doc, err := r.core.Get(ctx, bson.M{model.RestaurantName: name})
	if err != nil {
		return nil, err
	}
	rest := decodeRestaurant(doc)
	return &rest, nil
}

// UpdateRating replaces the rating of an existing restaurant.
func (r *RestaurantRepository) UpdateRating(ctx context.Context, name string, rating int) error {
	return r.core.Update(ctx, bson.M{model.RestaurantName: name}, bson.M{model.RestaurantRating: rating})
}

// Update applies a partial field replacement to an existing restaurant.
func (r *RestaurantRepository) Update(ctx context.Context, name string, updates bson.M) error {
	return r.core.Update(ctx, bson.M{model.RestaurantName: name}, updates)
}

// Delete removes a restaurant by name.
func (r *RestaurantRepository) Delete(ctx context.Context, name string) error {
	return r.core.Delete(ctx, bson.M{model.RestaurantName: name})
}

// List returns all restaurants keyed by name.
func (r *RestaurantRepository) List(ctx context.Context) (map[string]model.Restaurant, error) {
	docs, err := r.core.ListAsDict(ctx, model.RestaurantName)
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.Restaurant, len(docs))
	for name, doc := range docs {
		out[name] = decodeRestaurant(doc)
	}
	return out, nil
}

// ListByState returns the restaurants in one state, the query the search
// form issues.
func (r *RestaurantRepository) ListByState(ctx context.Context, state string) ([]model.Restaurant, error) {
	docs, err := r.core.ListFiltered(ctx, bson.M{model.RestaurantState: state})
	if err != nil {
		return nil, err
	}
	out := make([]model.Restaurant, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decodeRestaurant(doc))
	}
	return out, nil
}

func decodeRestaurant(doc bson.M) model.Restaurant {
	return model.Restaurant{
		ID:          asString(doc, MongoID),
		Name:        asString(doc, model.RestaurantName),
		Rating:      asInt(doc, model.RestaurantRating),
		Type:        asString(doc, model.RestaurantType),
		Description: asString(doc, model.RestaurantDescription),
		Address:     asString(doc, model.RestaurantAddress),
		City:        asString(doc, model.RestaurantCity),
		State:       asString(doc, model.RestaurantState),
		Zip:         asString(doc, model.RestaurantZip),
	}
}

func setIfPresent(doc bson.M, field, value string) {
	if value != "" {
		doc[field] = value
	}
}
