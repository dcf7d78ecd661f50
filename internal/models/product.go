package models

import "strings"

const AllProductsCategory = "All Products"

// VariantSelection is an optional size/color refinement of a product selection.
type VariantSelection struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// HasValue reports whether at least one of size or color is set.
func (v *VariantSelection) HasValue() bool {
	return v != nil && (v.Size != "" || v.Color != "")
}

// SameVariant compares two selections field by field, treating nil and empty
// fields as "".
func SameVariant(a, b *VariantSelection) bool {
	var aSize, aColor, bSize, bColor string
	if a != nil {
		aSize, aColor = a.Size, a.Color
	}
	if b != nil {
		bSize, bColor = b.Size, b.Color
	}

	return aSize == bSize && aColor == bColor
}

// NormalizeVariant returns nil for a selection with no values, otherwise a copy.
func NormalizeVariant(v *VariantSelection) *VariantSelection {
	if !v.HasValue() {
		return nil
	}

	normalized := *v

	return &normalized
}

type Product struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Gallery     []string `json:"gallery,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Category    string   `json:"category,omitempty"`
	SubCategory string   `json:"subCategory,omitempty"`
	Highlight   string   `json:"highlight"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Gallery = cloneStrings(p.Gallery)
	p.Sizes = cloneStrings(p.Sizes)
	p.Colors = cloneStrings(p.Colors)

	return p
}

type CategoryGroup struct {
	Category      string   `json:"category"`
	SubCategories []string `json:"subCategories"`
}

type CategoryFilter struct {
	Category    string `json:"category"`
	SubCategory string `json:"subCategory,omitempty"`
}

// IsAll reports whether the filter selects every product.
func (f *CategoryFilter) IsAll() bool {
	return f == nil || strings.TrimSpace(f.Category) == "" || strings.EqualFold(strings.TrimSpace(f.Category), AllProductsCategory)
}

type ProductListQuery struct {
	Category    string `json:"category" validate:"omitempty,max=60"`
	SubCategory string `json:"subCategory" validate:"omitempty,max=60"`
}

// ProductDraft is one row of the admin product manager before slugs are assigned.
type ProductDraft struct {
	Slug        string  `json:"slug" validate:"omitempty,max=80"`
	Name        string  `json:"name" validate:"required,max=60"`
	Description string  `json:"description" validate:"required,min=30,max=250"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	Gallery     string  `json:"gallery" validate:"max=800"`
	Sizes       string  `json:"sizes" validate:"max=200"`
	Colors      string  `json:"colors" validate:"max=200"`
	Category    string  `json:"category" validate:"max=60"`
	SubCategory string  `json:"subCategory" validate:"max=60"`
	Highlight   string  `json:"highlight" validate:"max=80"`
}

type SaveProductsRequest struct {
	Products []ProductDraft `json:"products" validate:"required,min=1,dive"`
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}

	return append([]string(nil), values...)
}

type ProductListResponse struct {
	Products       []Product       `json:"products"`
	ActiveCategory *CategoryFilter `json:"activeCategory"`
}
