package models

// MaxLineQuantity bounds the quantity of a single cart line.
const MaxLineQuantity = 999

type CartItem struct {
	Slug      string            `json:"slug"`
	Quantity  int               `json:"quantity"`
	UnitPrice float64           `json:"unitPrice"`
	Variant   *VariantSelection `json:"variant,omitempty"`
}

type DetailedCartItem struct {
	Product   Product           `json:"product"`
	Quantity  int               `json:"quantity"`
	UnitPrice float64           `json:"unitPrice"`
	LineTotal float64           `json:"lineTotal"`
	Variant   *VariantSelection `json:"variant,omitempty"`
}

type AddItemRequest struct {
	Slug     string            `json:"slug" validate:"required"`
	Quantity int               `json:"quantity" validate:"omitempty,min=1,max=999"`
	Variant  *VariantSelection `json:"variant,omitempty"`
}

type UpdateQuantityRequest struct {
	Slug     string            `json:"slug" validate:"required"`
	Quantity int               `json:"quantity" validate:"max=999"`
	Variant  *VariantSelection `json:"variant,omitempty"`
}

type RemoveItemRequest struct {
	Slug    string            `json:"slug" validate:"required"`
	Variant *VariantSelection `json:"variant,omitempty"`
}

type CartResponse struct {
	Items         []DetailedCartItem `json:"items"`
	TotalQuantity int                `json:"totalQuantity"`
	Subtotal      float64            `json:"subtotal"`
	Shipping      float64            `json:"shipping"`
	Total         float64            `json:"total"`

	FreeShippingThreshold    float64 `json:"freeShippingThreshold"`
	QualifiesForFreeShipping bool    `json:"qualifiesForFreeShipping"`
	ShippingProgress         int     `json:"shippingProgress"`
	ShippingDelta            float64 `json:"shippingDelta"`
}

type FavoritesResponse struct {
	Slugs    []string  `json:"slugs"`
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}
