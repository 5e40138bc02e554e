package model

// Field names as stored in the reviews collection.
const (
	ReviewUserID       = "user_id"
	ReviewRestaurantID = "restaurant_id"
	ReviewSentence     = "sentence"
	ReviewRating       = "rating"
)

// ReviewCollection is the collection reviews persist to.
const ReviewCollection = "reviews"

// Review links a user to a restaurant. The (UserID, RestaurantID) pair is the
// natural key for update and delete. Neither reference is checked against the
// users or restaurants collections; a dangling reference is an accepted state.
type Review struct {
	ID           string `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID       string `bson:"user_id" json:"user_id"`
	RestaurantID string `bson:"restaurant_id" json:"restaurant_id"`
	Sentence     string `bson:"sentence" json:"sentence"`
	Rating       int    `bson:"rating" json:"rating"`
}
