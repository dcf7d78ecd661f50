package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
)

type CartRepository interface {
	LoadCart(ctx context.Context) []models.CartItem
	SaveCart(ctx context.Context, items []models.CartItem) error
	LoadFavorites(ctx context.Context) []string
	SaveFavorites(ctx context.Context, slugs []string) error
}

type cartRepository struct {
	docs *documentStore
}

func NewCartRepo(docs *documentStore) CartRepository {
	return &cartRepository{docs: docs}
}

func (r *cartRepository) LoadCart(ctx context.Context) []models.CartItem {
	var items []models.CartItem
	if !r.docs.load(ctx, storage.CartKey, &items) {
		return []models.CartItem{}
	}

	// drop lines that could never have been written by the cart store
	valid := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Slug == "" || item.Quantity <= 0 {
			continue
		}
		item.Variant = models.NormalizeVariant(item.Variant)
		valid = append(valid, item)
	}

	return valid
}

func (r *cartRepository) SaveCart(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}

	if err := r.docs.save(ctx, storage.CartKey, items); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func (r *cartRepository) LoadFavorites(ctx context.Context) []string {
	var slugs []string
	if !r.docs.load(ctx, storage.FavoritesKey, &slugs) {
		return []string{}
	}

	seen := make(map[string]struct{}, len(slugs))
	unique := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if _, dup := seen[slug]; dup || slug == "" {
			continue
		}
		seen[slug] = struct{}{}
		unique = append(unique, slug)
	}

	return unique
}

func (r *cartRepository) SaveFavorites(ctx context.Context, slugs []string) error {
	if slugs == nil {
		slugs = []string{}
	}

	if err := r.docs.save(ctx, storage.FavoritesKey, slugs); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}

	return nil
}
