package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-studio/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils"
)

// SiteService owns the generated site and therefore the catalog: it is the
// only place product identity is assigned.
type SiteService struct {
	ctx  context.Context
	repo repository.SiteRepository

	site       *state.Signal[*models.GeneratedSite]
	products   *state.Memo[[]models.Product]
	categories *state.Memo[[]models.CategoryGroup]
	filter     *state.Signal[*models.CategoryFilter]
	filtered   *state.Memo[[]models.Product]
}

// NewSiteService loads the stored site. Persistence keeps ctx's values but
// not its cancellation, so writes made while the server drains still land.
func NewSiteService(ctx context.Context, repo repository.SiteRepository) *SiteService {
	ctx = context.WithoutCancel(ctx)

	s := &SiteService{
		ctx:    ctx,
		repo:   repo,
		site:   state.NewSignal(repo.LoadSite(ctx)),
		filter: state.NewSignal[*models.CategoryFilter](nil),
	}

	s.products = state.NewMemo(func() []models.Product {
		if site := s.site.Get(); site != nil {
			return site.Products
		}
		return []models.Product{}
	}, s.site)

	s.categories = state.NewMemo(func() []models.CategoryGroup {
		return GroupCategories(s.products.Get())
	}, s.products)

	s.filtered = state.NewMemo(func() []models.Product {
		return FilterProducts(s.products.Get(), s.filter.Get())
	}, s.products, s.filter)

	s.site.Subscribe(s.persist)

	return s
}

// Site returns a copy of the current site, or nil when none has been generated.
func (s *SiteService) Site() *models.GeneratedSite {
	return s.site.Get().Clone()
}

func (s *SiteService) HasSite() bool {
	return s.site.Get() != nil
}

// SetSite replaces the whole site document atomically.
func (s *SiteService) SetSite(site *models.GeneratedSite) {
	next := site.Clone()
	if next != nil {
		if next.Themes == nil {
			themes := models.DefaultThemes()
			next.Themes = &themes
		}
		if next.Products == nil {
			next.Products = []models.Product{}
		}
	}

	s.site.Set(next)
}

func (s *SiteService) ClearSite() {
	s.site.Set(nil)
}

// SetCatalog replaces the product list of the current site atomically.
func (s *SiteService) SetCatalog(products []models.Product) error {
	current := s.site.Get()
	if current == nil {
		return errors.NotFoundError("No site has been generated yet")
	}

	next := current.Clone()
	next.Products = make([]models.Product, len(products))
	for i, product := range products {
		next.Products[i] = product.Clone()
	}

	s.site.Set(next)

	return nil
}

// SaveProducts assigns slugs to the drafts in order and replaces the catalog
// with the result.
func (s *SiteService) SaveProducts(drafts []models.ProductDraft) ([]models.Product, error) {
	used := make(map[string]struct{}, len(drafts))
	products := make([]models.Product, len(drafts))

	for i, draft := range drafts {
		candidate := draft.Slug
		if candidate == "" {
			candidate = draft.Name
		}

		products[i] = models.Product{
			Slug:        utils.GenerateSlug(candidate, i, used),
			Name:        sanitizeText(draft.Name),
			Description: sanitizeText(draft.Description),
			Price:       draft.Price,
			ImageURL:    draft.ImageURL,
			Gallery:     utils.ParseList(draft.Gallery),
			Sizes:       utils.ParseList(draft.Sizes),
			Colors:      utils.ParseList(draft.Colors),
			Category:    sanitizeText(draft.Category),
			SubCategory: sanitizeText(draft.SubCategory),
			Highlight:   sanitizeText(draft.Highlight),
		}
	}

	if err := s.SetCatalog(products); err != nil {
		return nil, err
	}

	return s.Products(), nil
}

// Products returns the current catalog. The slice must not be modified.
func (s *SiteService) Products() []models.Product {
	return s.products.Get()
}

// FindProductBySlug reports a miss with ok=false.
func (s *SiteService) FindProductBySlug(slug string) (models.Product, bool) {
	for _, product := range s.products.Get() {
		if product.Slug == slug {
			return product.Clone(), true
		}
	}

	return models.Product{}, false
}

// SubscribeProducts runs fn after every catalog change.
func (s *SiteService) SubscribeProducts(fn func([]models.Product)) (unsubscribe func()) {
	return s.products.Subscribe(fn)
}

func (s *SiteService) Categories() []models.CategoryGroup {
	return s.categories.Get()
}

// SetCategoryFilter narrows FilteredProducts. An empty or "All Products"
// category clears the filter.
func (s *SiteService) SetCategoryFilter(category, subCategory string) {
	filter := &models.CategoryFilter{Category: category, SubCategory: subCategory}
	if filter.IsAll() {
		s.filter.Set(nil)
		return
	}

	s.filter.Set(filter)
}

func (s *SiteService) ClearCategoryFilter() {
	s.filter.Set(nil)
}

// ActiveCategory returns nil when no filter is set.
func (s *SiteService) ActiveCategory() *models.CategoryFilter {
	if filter := s.filter.Get(); filter != nil {
		active := *filter
		return &active
	}

	return nil
}

func (s *SiteService) FilteredProducts() []models.Product {
	return s.filtered.Get()
}

func (s *SiteService) persist(site *models.GeneratedSite) {
	var err error
	if site == nil {
		err = s.repo.ClearSite(s.ctx)
	} else {
		err = s.repo.SaveSite(s.ctx, site)
	}

	if err != nil {
		slog.Warn("Site was not persisted", slog.String("error", err.Error()))
	}
}
