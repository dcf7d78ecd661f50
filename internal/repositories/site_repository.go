package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"github.com/aaravmahajanofficial/storefront-studio/internal/storage"
)

type SiteRepository interface {
	LoadSite(ctx context.Context) *models.GeneratedSite
	SaveSite(ctx context.Context, site *models.GeneratedSite) error
	ClearSite(ctx context.Context) error
}

type siteRepository struct {
	docs *documentStore
}

func NewSiteRepo(docs *documentStore) SiteRepository {
	return &siteRepository{docs: docs}
}

// LoadSite returns nil when no site has been generated yet. Documents written
// before themes existed get the default themes.
func (r *siteRepository) LoadSite(ctx context.Context) *models.GeneratedSite {
	var site models.GeneratedSite
	if !r.docs.load(ctx, storage.SiteKey, &site) {
		return nil
	}

	if site.Themes == nil {
		themes := models.DefaultThemes()
		site.Themes = &themes
	}

	if site.Products == nil {
		site.Products = []models.Product{}
	}

	return &site
}

func (r *siteRepository) SaveSite(ctx context.Context, site *models.GeneratedSite) error {
	if site == nil {
		return r.ClearSite(ctx)
	}

	if err := r.docs.save(ctx, storage.SiteKey, site); err != nil {
		return fmt.Errorf("failed to save site: %w", err)
	}

	return nil
}

func (r *siteRepository) ClearSite(ctx context.Context) error {
	if err := r.docs.remove(ctx, storage.SiteKey); err != nil {
		return fmt.Errorf("failed to clear site: %w", err)
	}

	return nil
}
