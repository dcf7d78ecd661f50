package service

import (
	"html"
	"strings"

	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var defaultWizardProducts = []models.Product{
	{
		Name:        "Signature Hoodie",
		Description: "Cozy fleece-lined hoodie with minimalist branding.",
		Price:       68,
		ImageURL:    "https://images.unsplash.com/photo-1542293787938-4d2226c9a6f0?auto=format&fit=crop&w=1600&q=80",
		Highlight:   "Best Seller",
		Slug:        "signature-hoodie",
		Gallery: []string{
			"https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=1600&q=80",
		},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Black", "Heather Gray", "Navy"},
		Category:    "Apparel",
		SubCategory: "Outerwear",
	},
	{
		Name:        "Essential Backpack",
		Description: "Durable commuter pack with smart storage for every day.",
		Price:       92,
		ImageURL:    "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=1600&q=80",
		Highlight:   "Staff Pick",
		Slug:        "essential-backpack",
		Gallery: []string{
			"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1600&q=80",
		},
		Sizes:       []string{"One Size"},
		Colors:      []string{"Olive", "Black"},
		Category:    "Accessories",
		SubCategory: "Bags",
	},
	{
		Name:        "Everyday Water Bottle",
		Description: "Insulated steel bottle that keeps drinks cold for 24h.",
		Price:       32,
		ImageURL:    "https://images.unsplash.com/photo-1524592094714-0f0654e20314?auto=format&fit=crop&w=1600&q=80",
		Highlight:   "Limited Release",
		Slug:        "everyday-water-bottle",
		Gallery: []string{
			"https://images.unsplash.com/photo-1514996937319-344454492b37?auto=format&fit=crop&w=1600&q=80",
		},
		Sizes:       []string{"600ml", "1L"},
		Colors:      []string{"Slate", "Sand"},
		Category:    "Lifestyle",
		SubCategory: "Drinkware",
	},
}

var defaultVisuals = models.WizardVisuals{
	HeroImageURL:     "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=1600&q=80",
	HeroCtaLabel:     "Shop the collection",
	HeroCtaLink:      "#featured-products",
	PrimaryColor:     "#2563eb",
	AccentColor:      "#f97316",
	NavbarTheme:      models.NavbarClassic,
	HeroTheme:        models.HeroSpotlight,
	ProductCardTheme: models.ProductCardElevated,
	AboutTitle:       "Our Story",
	AboutDescription: "From concept to doorstep, we curate everyday essentials designed to last. Crafted with sustainable materials and made for life on the move.",
}

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from admin-entered copy and returns plain text.
// Entity-encoded markup is decoded and stripped again until the text stops
// changing, so the result never carries tags the policy would reject.
func sanitizeText(value string) string {
	text := value
	for range 8 {
		next := html.UnescapeString(textPolicy.Sanitize(text))
		if next == text {
			break
		}
		text = next
	}

	return strings.TrimSpace(text)
}

type wizardProducts struct {
	Products []models.WizardProduct `validate:"required,min=1,dive"`
}

// WizardService validates and assembles the setup wizard's payload into a
// site document.
type WizardService struct {
	validator *validator.Validate
}

func NewWizardService() *WizardService {
	return &WizardService{validator: validator.New()}
}

// ValidateStep checks only the section of payload that belongs to step.
func (s *WizardService) ValidateStep(step models.WizardStep, payload *models.WizardRequest) error {
	switch step {
	case models.WizardStepBrand:
		return utils.ValidateStruct(s.validator, payload.Brand)
	case models.WizardStepVisuals:
		return utils.ValidateStruct(s.validator, payload.Visuals)
	case models.WizardStepContact:
		return utils.ValidateStruct(s.validator, payload.Contact)
	case models.WizardStepProducts:
		return utils.ValidateStruct(s.validator, wizardProducts{Products: payload.Products})
	}

	return errors.BadRequestError("Unknown wizard step")
}

// Build validates the whole payload and turns it into a site. Product slugs
// are derived from product names.
func (s *WizardService) Build(payload *models.WizardRequest) (*models.GeneratedSite, error) {
	if err := utils.ValidateStruct(s.validator, payload); err != nil {
		return nil, err
	}

	used := make(map[string]struct{}, len(payload.Products))
	products := make([]models.Product, len(payload.Products))

	for i, product := range payload.Products {
		name := sanitizeText(product.Name)

		products[i] = models.Product{
			Slug:        utils.GenerateSlug(name, i, used),
			Name:        name,
			Description: sanitizeText(product.Description),
			Price:       product.Price,
			ImageURL:    strings.TrimSpace(product.ImageURL),
			Gallery:     utils.ParseList(product.Gallery),
			Sizes:       utils.ParseList(product.Sizes),
			Colors:      utils.ParseList(product.Colors),
			Category:    sanitizeText(product.Category),
			SubCategory: sanitizeText(product.SubCategory),
			Highlight:   sanitizeText(product.Highlight),
		}
	}

	return &models.GeneratedSite{
		StoreName:    sanitizeText(payload.Brand.StoreName),
		Tagline:      sanitizeText(payload.Brand.Tagline),
		LogoURL:      strings.TrimSpace(payload.Brand.LogoURL),
		HeroImageURL: strings.TrimSpace(payload.Visuals.HeroImageURL),
		HeroCtaLabel: sanitizeText(payload.Visuals.HeroCtaLabel),
		HeroCtaLink:  strings.TrimSpace(payload.Visuals.HeroCtaLink),
		PrimaryColor: payload.Visuals.PrimaryColor,
		AccentColor:  payload.Visuals.AccentColor,
		About: models.About{
			Title:       sanitizeText(payload.Visuals.AboutTitle),
			Description: sanitizeText(payload.Visuals.AboutDescription),
		},
		Contact: models.Contact{
			ContactEmail:   payload.Contact.ContactEmail,
			ContactPhone:   sanitizeText(payload.Contact.ContactPhone),
			ContactAddress: sanitizeText(payload.Contact.ContactAddress),
			InstagramURL:   strings.TrimSpace(payload.Contact.InstagramURL),
			FacebookURL:    strings.TrimSpace(payload.Contact.FacebookURL),
		},
		Themes: &models.Themes{
			Navbar:      payload.Visuals.NavbarTheme,
			Hero:        payload.Visuals.HeroTheme,
			ProductCard: payload.Visuals.ProductCardTheme,
		},
		Products: products,
	}, nil
}

// Prefill returns the wizard seeded from site, or from the demo defaults when
// there is no site yet.
func (s *WizardService) Prefill(site *models.GeneratedSite) *models.WizardForm {
	form := &models.WizardForm{
		Steps:        models.WizardSteps,
		ThemeOptions: models.WizardThemeOptions,
	}

	if site == nil {
		form.Payload = models.WizardRequest{
			Visuals:  defaultVisuals,
			Products: toWizardProducts(defaultWizardProducts),
		}

		return form
	}

	themes := models.DefaultThemes()
	if site.Themes != nil {
		themes = *site.Themes
	}

	form.Payload = models.WizardRequest{
		Brand: models.WizardBrand{
			StoreName: site.StoreName,
			Tagline:   site.Tagline,
			LogoURL:   site.LogoURL,
		},
		Visuals: models.WizardVisuals{
			HeroImageURL:     site.HeroImageURL,
			HeroCtaLabel:     site.HeroCtaLabel,
			HeroCtaLink:      site.HeroCtaLink,
			PrimaryColor:     site.PrimaryColor,
			AccentColor:      site.AccentColor,
			NavbarTheme:      themes.Navbar,
			HeroTheme:        themes.Hero,
			ProductCardTheme: themes.ProductCard,
			AboutTitle:       site.About.Title,
			AboutDescription: site.About.Description,
		},
		Contact: models.WizardContact{
			ContactEmail:   site.Contact.ContactEmail,
			ContactPhone:   site.Contact.ContactPhone,
			ContactAddress: site.Contact.ContactAddress,
			InstagramURL:   site.Contact.InstagramURL,
			FacebookURL:    site.Contact.FacebookURL,
		},
		Products: toWizardProducts(site.Products),
	}

	return form
}

func toWizardProducts(products []models.Product) []models.WizardProduct {
	rows := make([]models.WizardProduct, len(products))
	for i, product := range products {
		rows[i] = models.WizardProduct{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
			Gallery:     utils.FormatList(product.Gallery, ", "),
			Sizes:       utils.FormatList(product.Sizes, ", "),
			Colors:      utils.FormatList(product.Colors, ", "),
			Category:    product.Category,
			SubCategory: product.SubCategory,
			Highlight:   product.Highlight,
		}
	}

	return rows
}
