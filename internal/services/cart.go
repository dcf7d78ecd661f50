package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront-studio/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-studio/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
	"github.com/shopspring/decimal"
)

// Catalog is the read side of the site store that the cart joins against.
type Catalog interface {
	Products() []models.Product
	FindProductBySlug(slug string) (models.Product, bool)
	SubscribeProducts(fn func([]models.Product)) (unsubscribe func())
}

// CartService holds cart lines and favorites as weak slug references into the
// catalog. Lines are joined against the catalog on read and reconciled
// whenever the catalog changes.
type CartService struct {
	ctx     context.Context
	repo    repository.CartRepository
	catalog Catalog

	cart      *state.Signal[[]models.CartItem]
	favorites *state.Signal[[]string]

	detailed         *state.Memo[[]models.DetailedCartItem]
	favoriteProducts *state.Memo[[]models.Product]
	catalogVersion   *state.Signal[int]
	unsubscribe      func()
}

// NewCartService loads the stored cart and favorites and reconciles them with
// the catalog. Like the site store, it persists outside ctx's cancellation.
func NewCartService(ctx context.Context, repo repository.CartRepository, catalog Catalog) *CartService {
	ctx = context.WithoutCancel(ctx)

	s := &CartService{
		ctx:            ctx,
		repo:           repo,
		catalog:        catalog,
		cart:           state.NewSignal(repo.LoadCart(ctx)),
		favorites:      state.NewSignal(repo.LoadFavorites(ctx)),
		catalogVersion: state.NewSignal(0),
	}

	s.detailed = state.NewMemo(s.joinCart, s.cart, s.catalogVersion)
	s.favoriteProducts = state.NewMemo(s.joinFavorites, s.favorites, s.catalogVersion)

	s.cart.Subscribe(s.persistCart)
	s.favorites.Subscribe(s.persistFavorites)

	s.unsubscribe = catalog.SubscribeProducts(s.reconcile)
	s.reconcile(catalog.Products())

	return s
}

// Close detaches the cart from the catalog.
func (s *CartService) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// AddToCart increments the line matching product and variant, or appends a
// new line priced at the product's current price. Non-positive quantities are
// ignored and a line never grows past models.MaxLineQuantity.
func (s *CartService) AddToCart(product models.Product, quantity int, variant *models.VariantSelection) {
	if quantity <= 0 {
		return
	}

	s.cart.Update(func(items []models.CartItem) []models.CartItem {
		next := cloneCart(items)

		if i := findLine(next, product.Slug, variant); i >= 0 {
			next[i].Quantity = capQuantity(next[i].Quantity, quantity)
			return next
		}

		return append(next, models.CartItem{
			Slug:      product.Slug,
			Quantity:  capQuantity(0, quantity),
			UnitPrice: product.Price,
			Variant:   models.NormalizeVariant(variant),
		})
	})

	metrics.RecordCartMutation("add")
}

// UpdateQuantity sets the matching line's quantity, capped at
// models.MaxLineQuantity. A quantity of zero or less removes the line.
func (s *CartService) UpdateQuantity(slug string, quantity int, variant *models.VariantSelection) {
	if quantity <= 0 {
		s.RemoveFromCart(slug, variant)
		return
	}

	s.cart.Update(func(items []models.CartItem) []models.CartItem {
		next := cloneCart(items)
		for i := range next {
			if next[i].Slug == slug && models.SameVariant(next[i].Variant, variant) {
				next[i].Quantity = capQuantity(0, quantity)
			}
		}
		return next
	})

	metrics.RecordCartMutation("update")
}

func (s *CartService) RemoveFromCart(slug string, variant *models.VariantSelection) {
	s.cart.Update(func(items []models.CartItem) []models.CartItem {
		return filterLines(items, func(item models.CartItem) bool {
			return !(item.Slug == slug && models.SameVariant(item.Variant, variant))
		})
	})

	metrics.RecordCartMutation("remove")
}

func (s *CartService) ClearCart() {
	s.cart.Set([]models.CartItem{})

	metrics.RecordCartMutation("clear")
}

// ToggleFavorite flips the membership of product in the favorites.
func (s *CartService) ToggleFavorite(product models.Product) {
	s.favorites.Update(func(slugs []string) []string {
		if containsSlug(slugs, product.Slug) {
			return withoutSlug(slugs, product.Slug)
		}
		return append(append([]string(nil), slugs...), product.Slug)
	})

	metrics.RecordCartMutation("toggle_favorite")
}

func (s *CartService) RemoveFavorite(slug string) {
	s.favorites.Update(func(slugs []string) []string {
		return withoutSlug(slugs, slug)
	})

	metrics.RecordCartMutation("remove_favorite")
}

// MoveFavoriteToCart adds one unit of a favorited product, without a variant,
// and drops it from the favorites. It reports false when slug is not a
// favorite that resolves in the catalog.
func (s *CartService) MoveFavoriteToCart(slug string) bool {
	for _, product := range s.favoriteProducts.Get() {
		if product.Slug == slug {
			s.AddToCart(product, 1, nil)
			s.RemoveFavorite(slug)
			return true
		}
	}

	return false
}

func (s *CartService) IsFavorite(slug string) bool {
	return containsSlug(s.favorites.Get(), slug)
}

func (s *CartService) IsInCart(slug string, variant *models.VariantSelection) bool {
	return findLine(s.cart.Get(), slug, variant) >= 0
}

// CartItems returns the raw stored lines, including any that no longer resolve.
func (s *CartService) CartItems() []models.CartItem {
	return cloneCart(s.cart.Get())
}

func (s *CartService) Favorites() []string {
	return append([]string{}, s.favorites.Get()...)
}

func (s *CartService) FavoriteCount() int {
	return len(s.favorites.Get())
}

func (s *CartService) FavoriteProducts() []models.Product {
	return s.favoriteProducts.Get()
}

func (s *CartService) TotalQuantity() int {
	total := 0
	for _, item := range s.cart.Get() {
		total += item.Quantity
	}

	return total
}

// DetailedCartItems joins every line against the catalog; lines whose slug
// no longer resolves are left out.
func (s *CartService) DetailedCartItems() []models.DetailedCartItem {
	return s.detailed.Get()
}

func (s *CartService) Subtotal() float64 {
	return toFloat(s.subtotal())
}

func (s *CartService) subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.detailed.Get() {
		total = total.Add(lineTotal(item.UnitPrice, item.Quantity))
	}

	return total
}

// reconcile drops lines and favorites whose product left the catalog, along
// with lines whose stored quantity is not positive.
func (s *CartService) reconcile(products []models.Product) {
	s.catalogVersion.Update(func(v int) int { return v + 1 })

	valid := make(map[string]struct{}, len(products))
	for _, product := range products {
		valid[product.Slug] = struct{}{}
	}

	items := s.cart.Get()
	keptItems := filterLines(items, func(item models.CartItem) bool {
		_, ok := valid[item.Slug]
		return ok && item.Quantity > 0
	})
	if dropped := len(items) - len(keptItems); dropped > 0 {
		s.cart.Set(keptItems)
		metrics.RecordReconciliationDrop("cart", dropped)
		slog.Info("Dropped cart lines for removed products", slog.Int("dropped", dropped))
	}

	slugs := s.favorites.Get()
	keptSlugs := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if _, ok := valid[slug]; ok {
			keptSlugs = append(keptSlugs, slug)
		}
	}
	if dropped := len(slugs) - len(keptSlugs); dropped > 0 {
		s.favorites.Set(keptSlugs)
		metrics.RecordReconciliationDrop("favorites", dropped)
		slog.Info("Dropped favorites for removed products", slog.Int("dropped", dropped))
	}
}

func (s *CartService) joinCart() []models.DetailedCartItem {
	items := s.cart.Get()
	detailed := make([]models.DetailedCartItem, 0, len(items))

	for _, item := range items {
		product, ok := s.catalog.FindProductBySlug(item.Slug)
		if !ok {
			continue
		}

		detailed = append(detailed, models.DetailedCartItem{
			Product:   product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: toFloat(lineTotal(item.UnitPrice, item.Quantity)),
			Variant:   models.NormalizeVariant(item.Variant),
		})
	}

	return detailed
}

func (s *CartService) joinFavorites() []models.Product {
	slugs := s.favorites.Get()
	products := make([]models.Product, 0, len(slugs))

	for _, slug := range slugs {
		if product, ok := s.catalog.FindProductBySlug(slug); ok {
			products = append(products, product)
		}
	}

	return products
}

func (s *CartService) persistCart(items []models.CartItem) {
	if err := s.repo.SaveCart(s.ctx, items); err != nil {
		slog.Warn("Cart was not persisted", slog.String("error", err.Error()))
	}
}

func (s *CartService) persistFavorites(slugs []string) {
	if err := s.repo.SaveFavorites(s.ctx, slugs); err != nil {
		slog.Warn("Favorites were not persisted", slog.String("error", err.Error()))
	}
}

// capQuantity adds delta to current without overflowing and clamps the result
// to models.MaxLineQuantity. Both arguments are non-negative.
func capQuantity(current, delta int) int {
	if delta >= models.MaxLineQuantity-current {
		return models.MaxLineQuantity
	}

	return current + delta
}

func findLine(items []models.CartItem, slug string, variant *models.VariantSelection) int {
	for i, item := range items {
		if item.Slug == slug && models.SameVariant(item.Variant, variant) {
			return i
		}
	}

	return -1
}

func filterLines(items []models.CartItem, keep func(models.CartItem) bool) []models.CartItem {
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}

	return kept
}

func cloneCart(items []models.CartItem) []models.CartItem {
	next := make([]models.CartItem, len(items))
	for i, item := range items {
		next[i] = item
		next[i].Variant = models.NormalizeVariant(item.Variant)
	}

	return next
}

func containsSlug(slugs []string, slug string) bool {
	for _, candidate := range slugs {
		if candidate == slug {
			return true
		}
	}

	return false
}

func withoutSlug(slugs []string, slug string) []string {
	kept := make([]string, 0, len(slugs))
	for _, candidate := range slugs {
		if candidate != slug {
			kept = append(kept, candidate)
		}
	}

	return kept
}
