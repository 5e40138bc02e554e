package model

// AccountSentence is the single content field on an account document.
const AccountSentence = "sentence"

// AccountCollection is the collection accounts persist to.
const AccountCollection = "accounts"

// Account is a minimal free-text record with a store-generated id.
type Account struct {
	ID       string `bson:"_id,omitempty" json:"_id,omitempty"`
	Sentence string `bson:"sentence" json:"sentence"`
}
