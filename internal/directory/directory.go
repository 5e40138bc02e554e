package directory

import (
	"context"
	"fmt"

	dirhttp "restaurant-directory/internal/directory/adapter/http"
	"restaurant-directory/internal/directory/adapter/persistence/mongodb"
	"restaurant-directory/internal/directory/repository"
	"restaurant-directory/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Module assembles the directory service: one shared store handle, five
// repositories, and their HTTP handlers.
type Module struct {
	store *mongodb.Store

	restaurants *repository.RestaurantRepository
	users       *repository.UserRepository
	reviews     *repository.ReviewRepository
	accounts    *repository.AccountRepository
	bars        *repository.BarRepository

	restaurantHandler *dirhttp.RestaurantHandler
	userHandler       *dirhttp.UserHandler
	reviewHandler     *dirhttp.ReviewHandler
	accountHandler    *dirhttp.AccountHandler
	barHandler        *dirhttp.BarHandler
	serviceHandler    *dirhttp.ServiceHandler
}

// NewModule wires the repositories onto the injected database handle and
// creates the natural-key indexes.
func NewModule(ctx context.Context, db *mongo.Database, log logger.Logger) (*Module, error) {
	store := mongodb.NewStore(db, log)

	restaurants, err := repository.NewRestaurantRepository(ctx, store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant repository: %w", err)
	}
	users, err := repository.NewUserRepository(ctx, store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	reviews, err := repository.NewReviewRepository(ctx, store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create review repository: %w", err)
	}
	accounts, err := repository.NewAccountRepository(ctx, store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account repository: %w", err)
	}
	bars, err := repository.NewBarRepository(ctx, store, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create bar repository: %w", err)
	}

	return &Module{
		store:             store,
		restaurants:       restaurants,
		users:             users,
		reviews:           reviews,
		accounts:          accounts,
		bars:              bars,
		restaurantHandler: dirhttp.NewRestaurantHandler(restaurants),
		userHandler:       dirhttp.NewUserHandler(users),
		reviewHandler:     dirhttp.NewReviewHandler(reviews),
		accountHandler:    dirhttp.NewAccountHandler(accounts),
		barHandler:        dirhttp.NewBarHandler(bars),
		serviceHandler:    dirhttp.NewServiceHandler(),
	}, nil
}

// RegisterRoutes mounts every directory route on router.
func (m *Module) RegisterRoutes(router fiber.Router) {
	m.serviceHandler.RegisterRoutes(router)
	m.restaurantHandler.RegisterRoutes(router)
	m.userHandler.RegisterRoutes(router)
	m.reviewHandler.RegisterRoutes(router)
	m.accountHandler.RegisterRoutes(router)
	m.barHandler.RegisterRoutes(router)
}

// HealthCheck verifies the store is reachable.
func (m *Module) HealthCheck(ctx context.Context) error {
	return m.store.Ping(ctx)
}

// Restaurants exposes the restaurant repository for external composition.
func (m *Module) Restaurants() *repository.RestaurantRepository { return m.restaurants }

// Users exposes the user repository for external composition.
func (m *Module) Users() *repository.UserRepository { return m.users }

// Reviews exposes the review repository for external composition.
func (m *Module) Reviews() *repository.ReviewRepository { return m.reviews }

// Accounts exposes the account repository for external composition.
func (m *Module) Accounts() *repository.AccountRepository { return m.accounts }

// Bars exposes the bar repository for external composition.
func (m *Module) Bars() *repository.BarRepository { return m.bars }
