package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "restaurant-directory/internal/shared/errors"
	"restaurant-directory/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntityConfig describes one entity type to the generic CRUD core: where it
// lives, which fields must be present, what forms its natural key, and how
// its identifier is assigned. The five typed repositories differ only in
// this configuration plus their model conversions.
type EntityConfig struct {
	// Collection is the store collection the entity persists to.
	Collection string

	// Label names the entity in error messages ("restaurant", "user").
	Label string

	// Required lists string fields that must be non-blank before any store
	// interaction happens.
	Required []string

	// NaturalKey lists the field(s) whose combination must be unique. Empty
	// means the entity has no application-level uniqueness rule.
	NaturalKey []string

	// GenerateID, when set, assigns the primary key before insert instead of
	// letting the store generate one.
	GenerateID func() string
}

// Core implements the shared CRUD protocol: validate, probe, mutate once,
// classify failures. Typed repositories embed it and translate between
// models and documents.
type Core struct {
	cfg   EntityConfig
	store DocStore
	log   logger.Logger
}

// NewCore builds the generic core and, when the entity carries a natural
// key, backs it with a unique index so concurrent adds cannot both pass the
// existence probe.
func NewCore(ctx context.Context, cfg EntityConfig, store DocStore, log logger.Logger) (*Core, error) {
	c := &Core{cfg: cfg, store: store, log: log.WithComponent("repository." + cfg.Label)}
	if len(cfg.NaturalKey) > 0 {
		if err := store.EnsureUniqueIndex(ctx, cfg.Collection, cfg.NaturalKey...); err != nil {
			return nil, fmt.Errorf("failed to index %s natural key: %w", cfg.Label, err)
		}
	}
	return c, nil
}

// Add validates doc, rejects duplicates of the natural key, assigns the
// identifier when the entity requires an application-generated one, and
// inserts. It returns the new identifier as a string.
func (c *Core) Add(ctx context.Context, doc bson.M) (string, error) {
	if err := c.validate(doc); err != nil {
		return "", err
	}

	if len(c.cfg.NaturalKey) > 0 {
		// Friendly pre-check; the unique index is the backstop under
		// concurrency.
		found, err := c.Exists(ctx, c.naturalKeyFilter(doc))
		if err != nil {
			return "", err
		}
		if found {
			return "", apperrors.NewConflictError(
				fmt.Sprintf("duplicate %s %s: %v", c.cfg.Label, strings.Join(c.cfg.NaturalKey, "+"), c.naturalKeyValues(doc)))
		}
	}

	if c.cfg.GenerateID != nil {
		doc[MongoID] = c.cfg.GenerateID()
	}

	id, err := c.store.InsertOne(ctx, c.cfg.Collection, doc)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return "", apperrors.NewConflictError(
				fmt.Sprintf("duplicate %s %s: %v", c.cfg.Label, strings.Join(c.cfg.NaturalKey, "+"), c.naturalKeyValues(doc)))
		}
		return "", err
	}
	if id == "" {
		return "", apperrors.NewUnavailableError("we have a technical problem").WithCause(apperrors.ErrNoInsertedID)
	}
	c.log.WithContext(ctx).Debugf("added %s %s", c.cfg.Label, id)
	return id, nil
}

// Exists reports whether a document matching filter is present.
func (c *Core) Exists(ctx context.Context, filter bson.M) (bool, error) {
	doc, err := c.store.FetchOne(ctx, c.cfg.Collection, filter)
	if err != nil {
		return false, err
	}
	return doc != nil, nil
}

// Get returns the first document matching filter, or a not-found error.
func (c *Core) Get(ctx context.Context, filter bson.M) (bson.M, error) {
	doc, err := c.store.FetchOne(ctx, c.cfg.Collection, filter)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, c.notFound(filter)
	}
	return doc, nil
}

// Update applies a partial field replacement to the document matching
// filter, failing when no such document exists.
func (c *Core) Update(ctx context.Context, filter, updates bson.M) error {
	found, err := c.Exists(ctx, filter)
	if err != nil {
		return err
	}
	if !found {
		return c.notFound(filter)
	}
	return c.store.UpdateDoc(ctx, c.cfg.Collection, filter, updates)
}

// Delete removes the document matching filter, failing when no such
// document exists.
func (c *Core) Delete(ctx context.Context, filter bson.M) error {
	found, err := c.Exists(ctx, filter)
	if err != nil {
		return err
	}
	if !found {
		return c.notFound(filter)
	}
	return c.store.DeleteOne(ctx, c.cfg.Collection, filter)
}

// List returns every document of the entity's collection.
func (c *Core) List(ctx context.Context) ([]bson.M, error) {
	return c.store.FetchAll(ctx, c.cfg.Collection)
}

// ListFiltered returns every document matching filter.
func (c *Core) ListFiltered(ctx context.Context, filter bson.M) ([]bson.M, error) {
	return c.store.FetchAllFiltered(ctx, c.cfg.Collection, filter)
}

// ListAsDict returns the collection keyed by the given display field.
func (c *Core) ListAsDict(ctx context.Context, keyField string) (map[string]bson.M, error) {
	return c.store.FetchAllAsDict(ctx, keyField, c.cfg.Collection)
}

// Clear removes every document of the entity and returns the count.
func (c *Core) Clear(ctx context.Context) (int64, error) {
	return c.store.DeleteAll(ctx, c.cfg.Collection)
}

func (c *Core) validate(doc bson.M) error {
	for _, field := range c.cfg.Required {
		val, _ := doc[field].(string)
		if strings.TrimSpace(val) == "" {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s %s may not be blank", c.cfg.Label, field)).WithCause(apperrors.ErrBlankField)
		}
	}
	return nil
}

func (c *Core) naturalKeyFilter(doc bson.M) bson.M {
	filter := bson.M{}
	for _, field := range c.cfg.NaturalKey {
		filter[field] = doc[field]
	}
	return filter
}

func (c *Core) naturalKeyValues(doc bson.M) []interface{} {
	vals := make([]interface{}, 0, len(c.cfg.NaturalKey))
	for _, field := range c.cfg.NaturalKey {
		vals = append(vals, doc[field])
	}
	return vals
}

func (c *Core) notFound(filter bson.M) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("%s %v not in database", c.cfg.Label, filterValues(filter)))
}

func filterValues(filter bson.M) []interface{} {
	vals := make([]interface{}, 0, len(filter))
	for _, v := range filter {
		vals = append(vals, v)
	}
	return vals
}

// MongoID is the primary-key field shared by every collection.
const MongoID = "_id"

// IDFilter builds a primary-key filter for either a store-generated ObjectID
// or an application-assigned string identifier. A fixed-width numeric id is
// also valid ObjectID hex, so when the hex parse succeeds the filter matches
// both representations.
func IDFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{MongoID: bson.M{"$in": []interface{}{oid, id}}}
	}
	return bson.M{MongoID: id}
}
