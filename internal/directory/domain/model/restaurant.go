package model

// Field names as stored in the restaurants collection.
const (
	RestaurantName        = "name"
	RestaurantRating      = "rating"
	RestaurantType        = "type"
	RestaurantDescription = "description"
	RestaurantAddress     = "address"
	RestaurantCity        = "city"
	RestaurantState       = "state"
	RestaurantZip         = "zip"
)

// RestaurantCollection is the collection restaurants persist to.
const RestaurantCollection = "restaurants"

// Restaurant is a directory entry keyed by its unique name.
type Restaurant struct {
	ID     string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string `bson:"name" json:"name"`
	Rating int    `bson:"rating" json:"rating"`

	// Optional descriptive fields.
	Type        string `bson:"type,omitempty" json:"type,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
	City        string `bson:"city,omitempty" json:"city,omitempty"`
	State       string `bson:"state,omitempty" json:"state,omitempty"`
	Zip         string `bson:"zip,omitempty" json:"zip,omitempty"`
}
