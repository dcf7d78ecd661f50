package service

import (
	"strings"

	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GroupCategories lists each category once, in first-seen order, with its
// distinct sub-categories sorted by locale collation. Products without a
// category fall under "All Products".
func GroupCategories(products []models.Product) []models.CategoryGroup {
	var order []string
	subs := make(map[string]map[string]struct{})

	for _, product := range products {
		category := strings.TrimSpace(product.Category)
		if category == "" {
			category = models.AllProductsCategory
		}

		if _, ok := subs[category]; !ok {
			subs[category] = make(map[string]struct{})
			order = append(order, category)
		}

		if sub := strings.TrimSpace(product.SubCategory); sub != "" {
			subs[category][sub] = struct{}{}
		}
	}

	collator := collate.New(language.Und)
	groups := make([]models.CategoryGroup, 0, len(order))

	for _, category := range order {
		names := make([]string, 0, len(subs[category]))
		for sub := range subs[category] {
			names = append(names, sub)
		}
		collator.SortStrings(names)

		groups = append(groups, models.CategoryGroup{Category: category, SubCategories: names})
	}

	return groups
}

// FilterProducts keeps the products matching filter. Comparison is on trimmed,
// lowercased values. An "All Products" or empty category returns every product
// and the sub-category is ignored.
func FilterProducts(products []models.Product, filter *models.CategoryFilter) []models.Product {
	if filter.IsAll() {
		return products
	}

	category := normalizeTerm(filter.Category)
	subCategory := normalizeTerm(filter.SubCategory)

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if normalizeTerm(product.Category) != category {
			continue
		}

		if subCategory != "" && normalizeTerm(product.SubCategory) != subCategory {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

// SearchProducts matches query as a case-insensitive substring of a product's
// name, description, category, sub-category and highlight. A blank query
// matches nothing.
func SearchProducts(products []models.Product, query string) []models.Product {
	needle := normalizeTerm(query)
	if needle == "" {
		return []models.Product{}
	}

	results := make([]models.Product, 0)
	for _, product := range products {
		if strings.Contains(searchText(product), needle) {
			results = append(results, product)
		}
	}

	return results
}

func searchText(p models.Product) string {
	fields := make([]string, 0, 5)
	for _, field := range []string{p.Name, p.Description, p.Category, p.SubCategory, p.Highlight} {
		if field != "" {
			fields = append(fields, field)
		}
	}

	return strings.ToLower(strings.Join(fields, " "))
}

func normalizeTerm(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
