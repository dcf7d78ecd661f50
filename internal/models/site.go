package models

type NavbarTheme string

type HeroTheme string

type ProductCardTheme string

const (
	NavbarClassic  NavbarTheme = "classic"
	NavbarMinimal  NavbarTheme = "minimal"
	NavbarContrast NavbarTheme = "contrast"
	NavbarFloating NavbarTheme = "floating"
	NavbarPill     NavbarTheme = "pill"

	HeroSpotlight HeroTheme = "spotlight"
	HeroSplit     HeroTheme = "split"
	HeroOverlay   HeroTheme = "overlay"

	ProductCardElevated ProductCardTheme = "elevated"
	ProductCardBordered ProductCardTheme = "bordered"
	ProductCardMinimal  ProductCardTheme = "minimal"
)

type Themes struct {
	Navbar      NavbarTheme      `json:"navbar"`
	Hero        HeroTheme        `json:"hero"`
	ProductCard ProductCardTheme `json:"productCard"`
}

func DefaultThemes() Themes {
	return Themes{
		Navbar:      NavbarClassic,
		Hero:        HeroSpotlight,
		ProductCard: ProductCardElevated,
	}
}

type About struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Contact struct {
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	ContactAddress string `json:"contactAddress"`
	InstagramURL   string `json:"instagramUrl"`
	FacebookURL    string `json:"facebookUrl"`
}

// GeneratedSite is the whole storefront document: branding, themes and the catalog.
type GeneratedSite struct {
	StoreName    string    `json:"storeName"`
	Tagline      string    `json:"tagline"`
	LogoURL      string    `json:"logoUrl"`
	HeroImageURL string    `json:"heroImageUrl"`
	HeroCtaLabel string    `json:"heroCtaLabel"`
	HeroCtaLink  string    `json:"heroCtaLink"`
	PrimaryColor string    `json:"primaryColor"`
	AccentColor  string    `json:"accentColor"`
	About        About     `json:"about"`
	Contact      Contact   `json:"contact"`
	Themes       *Themes   `json:"themes,omitempty"`
	Products     []Product `json:"products"`
}

// Clone deep-copies the site so that a stored snapshot cannot be mutated by callers.
func (s *GeneratedSite) Clone() *GeneratedSite {
	if s == nil {
		return nil
	}

	clone := *s
	if s.Themes != nil {
		themes := *s.Themes
		clone.Themes = &themes
	}

	clone.Products = make([]Product, len(s.Products))
	for i, product := range s.Products {
		clone.Products[i] = product.Clone()
	}

	return &clone
}
