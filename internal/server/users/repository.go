package users

import (
	"context"
)

// Repository persists user accounts. Lookups of missing users return
// common.ErrorNotFound; Create on a taken e-mail returns
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
