package repository

import (
	"context"
	"fmt"

	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
)

var userColumns = []string{"id", "name", "email", "password_hash", "active", "created_at", "updated_at"}

type userRepository struct {
	gw *gateway.Gateway
}

func NewUserRepository(gw *gateway.Gateway) UserRepository {
	return &userRepository{
		gw: gw,
	}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, "email", email)
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, "id", userID)
}

// users não tem escopo de tenant: cada usuário é o próprio tenant
func (r *userRepository) getUser(ctx context.Context, column, value string) (*domain.User, error) {
	user := &domain.User{}

	found, err := r.gw.Table(usersTable).
		Select(userColumns...).
		Eq(column, value).
		First(ctx, func(row gateway.RowScanner) error {
			return row.Scan(
				&user.ID,
				&user.Name,
				&user.Email,
				&user.PasswordHash,
				&user.Active,
				&user.CreatedAt,
				&user.UpdatedAt,
			)
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}
	if !found {
		return nil, nil
	}

	return user, nil
}
