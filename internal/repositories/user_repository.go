package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
)

type UserRepository interface {
	LoadUsers(ctx context.Context) []models.User
	SaveUsers(ctx context.Context, users []models.User) error
	LoadSession(ctx context.Context) *models.User
	SaveSession(ctx context.Context, user *models.User) error
}

type userRepository struct {
	docs *documentStore
}

func NewUserRepo(docs *documentStore) UserRepository {
	return &userRepository{docs: docs}
}

func (r *userRepository) LoadUsers(ctx context.Context) []models.User {
	var users []models.User
	if !r.docs.load(ctx, storage.UsersKey, &users) {
		return []models.User{}
	}

	for i := range users {
		if users[i].Orders == nil {
			users[i].Orders = []models.OrderRecord{}
		}
	}

	return users
}

func (r *userRepository) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}

	if err := r.docs.save(ctx, storage.UsersKey, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	return nil
}

// LoadSession returns the signed-in user record, or nil when signed out.
func (r *userRepository) LoadSession(ctx context.Context) *models.User {
	var user models.User
	if !r.docs.load(ctx, storage.SessionKey, &user) || user.ID == "" {
		return nil
	}

	if user.Orders == nil {
		user.Orders = []models.OrderRecord{}
	}

	return &user
}

// SaveSession stores user as the current session; nil signs out.
func (r *userRepository) SaveSession(ctx context.Context, user *models.User) error {
	if user == nil {
		if err := r.docs.remove(ctx, storage.SessionKey); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		return nil
	}

	if err := r.docs.save(ctx, storage.SessionKey, user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
