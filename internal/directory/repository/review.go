package repository

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"
	"restaurant-directory/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// ReviewRepository manages the reviews collection. The (user, restaurant)
// pair is the natural key: one review per user per restaurant. References
// are not checked against the users or restaurants collections.
type ReviewRepository struct {
	core *Core
}

// NewReviewRepository builds the repository and ensures the composite unique
// index exists.
func NewReviewRepository(ctx context.Context, store DocStore, log logger.Logger) (*ReviewRepository, error) {
	core, err := NewCore(ctx, EntityConfig{
		Collection: model.ReviewCollection,
		Label:      "review",
		Required:   []string{model.ReviewUserID, model.ReviewRestaurantID, model.ReviewSentence},
		NaturalKey: []string{model.ReviewUserID, model.ReviewRestaurantID},
	}, store, log)
	if err != nil {
		return nil, err
	}
	return &ReviewRepository{core: core}, nil
}

// Add inserts a review and returns its identifier.
func (r *ReviewRepository) Add(ctx context.Context, rev model.Review) (string, error) {
	return r.core.Add(ctx, bson.M{
		model.ReviewUserID:       rev.UserID,
		model.ReviewRestaurantID: rev.RestaurantID,
		model.ReviewSentence:     rev.Sentence,
		model.ReviewRating:       rev.Rating,
	})
}

// Exists reports whether the user has already reviewed the restaurant.
func (r *ReviewRepository) Exists(ctx context.Context, userID, restaurantID string) (bool, error) {
	return r.core.Exists(ctx, reviewKey(userID, restaurantID))
}

// Get fetches the review the user wrote for the restaurant.
func (r *ReviewRepository) Get(ctx context.Context, userID, restaurantID string) (*model.Review, error) {
	doc, err := r.core.Get(ctx, reviewKey(userID, restaurantID))
	if err != nil {
		return nil, err
	}
	rev := decodeReview(doc)
	return &rev, nil
}

// Update replaces the sentence and rating of an existing review.
func (r *ReviewRepository) Update(ctx context.Context, userID, restaurantID, sentence string, rating int) error {
	return r.core.Update(ctx, reviewKey(userID, restaurantID), bson.M{
		model.ReviewSentence: sentence,
		model.ReviewRating:   rating,
	})
}

// Delete removes the review the user wrote for the restaurant.
func (r *ReviewRepository) Delete(ctx context.Context, userID, restaurantID string) error {
	return r.core.Delete(ctx, reviewKey(userID, restaurantID))
}

// List returns all reviews.
func (r *ReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	docs, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	return decodeReviews(docs), nil
}

// ListForRestaurant returns every review written for one restaurant.
func (r *ReviewRepository) ListForRestaurant(ctx context.Context, restaurantID string) ([]model.Review, error) {
	docs, err := r.core.ListFiltered(ctx, bson.M{model.ReviewRestaurantID: restaurantID})
	if err != nil {
		return nil, err
	}
	return decodeReviews(docs), nil
}

func reviewKey(userID, restaurantID string) bson.M {
	return bson.M{
		model.ReviewUserID:       userID,
		model.ReviewRestaurantID: restaurantID,
	}
}

func decodeReviews(docs []bson.M) []model.Review {
	out := make([]model.Review, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decodeReview(doc))
	}
	return out
}

func decodeReview(doc bson.M) model.Review {
	return model.Review{
		ID:           asString(doc, MongoID),
		UserID:       asString(doc, model.ReviewUserID),
		RestaurantID: asString(doc, model.ReviewRestaurantID),
		Sentence:     asString(doc, model.ReviewSentence),
		Rating:       asInt(doc, model.ReviewRating),
	}
}
