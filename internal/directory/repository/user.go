package repository

import (
	"context"

	"restaurant-directory/internal/directory/domain/model"
	apperrors "restaurant-directory/internal/shared/errors"
	"restaurant-directory/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository manages the users collection. Users carry an
// application-assigned fixed-width numeric identifier and are unique by it,
// not by content.
type UserRepository struct {
	core *Core
}

// NewUserRepository builds the repository. The primary key is the natural
// key here, so no extra index is needed.
func NewUserRepository(ctx context.Context, store DocStore, log logger.Logger) (*UserRepository, error) {
	core, err := NewCore(ctx, EntityConfig{
		Collection: model.UserCollection,
		Label:      "user",
		Required:   []string{model.UserName},
		GenerateID: GenerateNumericID,
	}, store, log)
	if err != nil {
		return nil, err
	}
	return &UserRepository{core: core}, nil
}

// Add inserts a user and returns the generated identifier. A non-empty
// password is stored only as a bcrypt hash.
func (r *UserRepository) Add(ctx context.Context, user model.User, password string) (string, error) {
	doc := bson.M{
		model.UserName: user.Name,
	}
	setIfPresent(doc, model.UserFirstName, user.FirstName)
	setIfPresent(doc, model.UserLastName, user.LastName)
	setIfPresent(doc, model.UserEmail, user.Email)

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", apperrors.NewInternalError("failed to hash password").WithCause(err)
		}
		doc[model.UserPassword] = string(hash)
	}

	return r.core.Add(ctx, doc)
}

// Exists reports whether a user with the given identifier is present.
func (r *UserRepository) Exists(ctx context.Context, id string) (bool, error) {
	return r.core.Exists(ctx, IDFilter(id))
}

// Get fetches one user by identifier.
func (r *UserRepository) Get(ctx context.Context, id string) (*model.User, error) {
	doc, err := r.core.Get(ctx, IDFilter(id))
	if err != nil {
		return nil, err
	}
	user := decodeUser(doc)
	return &user, nil
}

// UpdateName replaces the username of an existing user.
func (r *UserRepository) UpdateName(ctx context.Context, id, name string) error {
	if name == "" {
		return apperrors.NewValidationError("user name may not be blank").WithCause(apperrors.ErrBlankField)
	}
	return r.core.Update(ctx, IDFilter(id), bson.M{model.UserName: name})
}

// Delete removes a user by identifier.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.core.Delete(ctx, IDFilter(id))
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	docs, err := r.core.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, decodeUser(doc))
	}
	return out, nil
}

func decodeUser(doc bson.M) model.User {
	return model.User{
		ID:           asString(doc, MongoID),
		Name:         asString(doc, model.UserName),
		FirstName:    asString(doc, model.UserFirstName),
		LastName:     asString(doc, model.UserLastName),
		Email:        asString(doc, model.UserEmail),
		PasswordHash: asString(doc, model.UserPassword),
	}
}
