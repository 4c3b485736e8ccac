package repository

import (
	"storefront/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Order OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Order: NewOrderRepository(db, log),
	}
}
