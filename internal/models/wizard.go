package models

type WizardStep int

const (
	WizardStepBrand WizardStep = iota
	WizardStepVisuals
	WizardStepContact
	WizardStepProducts
)

var WizardSteps = []WizardStepInfo{
	{Title: "Brand Basics", Description: "Introduce your shop with a clear identity."},
	{Title: "Visual Identity", Description: "Craft the look and feel of your hero moment."},
	{Title: "Contact & Social", Description: "Help visitors connect with your brand."},
	{Title: "Featured Products", Description: "Showcase the items you want to spotlight."},
}

type ThemeOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ThemeOptions struct {
	Navbar      []ThemeOption `json:"navbar"`
	Hero        []ThemeOption `json:"hero"`
	ProductCard []ThemeOption `json:"productCard"`
}

var WizardThemeOptions = ThemeOptions{
	Navbar: []ThemeOption{
		{ID: string(NavbarClassic), Label: "Classic", Description: "Layered glass effect with balanced layout."},
		{ID: string(NavbarMinimal), Label: "Minimal", Description: "Clean underline with centered brand."},
		{ID: string(NavbarContrast), Label: "Contrast", Description: "Bold twilight bar with light typography."},
		{ID: string(NavbarFloating), Label: "Floating", Description: "Rounded capsule nav that hovers over content."},
		{ID: string(NavbarPill), Label: "Pill", Description: "Accent-backed brand badge with pill links."},
	},
	Hero: []ThemeOption{
		{ID: string(HeroSpotlight), Label: "Spotlight", Description: "Full-bleed hero with gradient overlay."},
		{ID: string(HeroSplit), Label: "Split", Description: "Two-column layout with framed imagery."},
		{ID: string(HeroOverlay), Label: "Overlay", Description: "Soft background with centered call-to-action."},
	},
	ProductCard: []ThemeOption{
		{ID: string(ProductCardElevated), Label: "Elevated", Description: "Shadowed cards with hover lift."},
		{ID: string(ProductCardBordered), Label: "Bordered", Description: "Clean outlines with subtle depth."},
		{ID: string(ProductCardMinimal), Label: "Minimal", Description: "Flat cards with relaxed spacing."},
	},
}

type WizardStepInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type WizardBrand struct {
	StoreName string `json:"storeName" validate:"required,max=60"`
	Tagline   string `json:"tagline" validate:"required,max=120"`
	LogoURL   string `json:"logoUrl" validate:"required"`
}

type WizardVisuals struct {
	HeroImageURL     string           `json:"heroImageUrl" validate:"required"`
	HeroCtaLabel     string           `json:"heroCtaLabel" validate:"required,max=40"`
	HeroCtaLink      string           `json:"heroCtaLink" validate:"required,max=120"`
	PrimaryColor     string           `json:"primaryColor" validate:"required"`
	AccentColor      string           `json:"accentColor" validate:"required"`
	NavbarTheme      NavbarTheme      `json:"navbarTheme" validate:"required,oneof=classic minimal contrast floating pill"`
	HeroTheme        HeroTheme        `json:"heroTheme" validate:"required,oneof=spotlight split overlay"`
	ProductCardTheme ProductCardTheme `json:"productCardTheme" validate:"required,oneof=elevated bordered minimal"`
	AboutTitle       string           `json:"aboutTitle" validate:"required,max=60"`
	AboutDescription string           `json:"aboutDescription" validate:"required,min=30,max=360"`
}

type WizardContact struct {
	ContactEmail   string `json:"contactEmail" validate:"required,email"`
	ContactPhone   string `json:"contactPhone" validate:"max=40"`
	ContactAddress string `json:"contactAddress" validate:"max=120"`
	InstagramURL   string `json:"instagramUrl" validate:"max=120"`
	FacebookURL    string `json:"facebookUrl" validate:"max=120"`
}

// WizardProduct mirrors one product row of the wizard; list fields are comma separated.
type WizardProduct struct {
	Name        string  `json:"name" validate:"required,max=60"`
	Description string  `json:"description" validate:"required,max=160"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	Gallery     string  `json:"gallery" validate:"max=800"`
	Sizes       string  `json:"sizes" validate:"max=200"`
	Colors      string  `json:"colors" validate:"max=200"`
	Category    string  `json:"category" validate:"max=60"`
	SubCategory string  `json:"subCategory" validate:"max=60"`
	Highlight   string  `json:"highlight" validate:"max=80"`
}

type WizardRequest struct {
	Brand    WizardBrand     `json:"brand"`
	Visuals  WizardVisuals   `json:"visuals"`
	Contact  WizardContact   `json:"contact"`
	Products []WizardProduct `json:"products" validate:"required,min=1,dive"`
}

// WizardForm is what the wizard starts from: the payload plus the step and
// theme catalogues the UI renders.
type WizardForm struct {
	Steps        []WizardStepInfo `json:"steps"`
	ThemeOptions ThemeOptions     `json:"themeOptions"`
	Payload      WizardRequest    `json:"payload"`
}

type StepValidationResponse struct {
	Step  WizardStep `json:"step"`
	Valid bool       `json:"valid"`
}
