package model

// Field names as stored in the users collection.
const (
	UserID        = "_id"
	UserName      = "name"
	UserFirstName = "first_name"
	UserLastName  = "last_name"
	UserEmail     = "email"
	UserPassword  = "password_hash"
)

// UserCollection is the collection users persist to.
const UserCollection = "users"

// User carries an application-assigned fixed-width numeric id rather than a
// store-generated one. The password hash never crosses the JSON boundary.
type User struct {
	ID        string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string `bson:"name" json:"name"`
	FirstName string `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`

	PasswordHash string `bson:"password_hash,omitempty" json:"-"`
}
