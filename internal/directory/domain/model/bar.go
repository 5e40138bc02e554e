package model

// Field names as stored in the bars collection.
const (
	BarName   = "name"
	BarRating = "rating"
)

// BarCollection is the collection bars persist to.
const BarCollection = "bars"

// Bar mirrors the minimal restaurant shape: a unique name and a rating.
type Bar struct {
	ID     string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string `bson:"name" json:"name"`
	Rating int    `bson:"rating" json:"rating"`
}
