package repository

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"
	"restaurant-directory/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// AccountRepository manages the accounts collection: minimal free-text
// records addressed by their store-generated identifier.
type AccountRepository struct {
	core *Core
}

func NewAccountRepository(ctx context.Context, store DocStore, log logger.Logger) (*AccountRepository, error) {
	core, err := NewCore(ctx, EntityConfig{
		Collection: model.AccountCollection,
		Label:      "account",
		Required:   []string{model.AccountSentence},
	}, store, log)
	if err != nil {
		return nil, err
	}
	return &AccountRepository{core: core}, nil
}

// Add inserts an account and returns the store-generated identifier.
func (r *AccountRepository) Add(ctx context.Context, sentence string) (string, error) {
	return r.core.Add(ctx, bson.M{model.AccountSentence: sentence})
}

// Exists reports whether an account with the given identifier is present.
func (r *AccountRepository) Exists(ctx context.Context, id string) (bool, error) {
	return r.core.Exists(ctx, IDFilter(id))
}

// Get fetches one account by identifier.
func (r *AccountRepository) Get(ctx context.Context, id string) (*model.Account, error) {
	doc, err := r.core.Get(ctx, IDFilter(id))
	if err != nil {
		return nil, err
	}
	acct := decodeAccount(doc)
	return &acct, nil
}

// UpdateSentence replaces the sentence of an existing account.
func (r *AccountRepository) UpdateSentence(ctx context.Context, id, sentence string) error {
	return r.core.Update(ctx, IDFilter(id), bson.M{model.AccountSentence: sentence})
}

// Delete removes an account by identifier.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return r.core.Delete(ctx, IDFilter(id))
}

// List returns all accounts.
func (r *AccountRepository) List(ctx context.Context) ([]model.Account, error) {
	docs, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Account, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decodeAccount(doc))
	}
	return out, nil
}

func decodeAccount(doc bson.M) model.Account {
	return model.Account{
		ID:       asString(doc, MongoID),
		Sentence: asString(doc, model.AccountSentence),
	}
}
