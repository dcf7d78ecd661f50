package models

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodCOD    PaymentMethod = "cod"
)

type OrderItemSnapshot struct {
	Slug      string            `json:"slug"`
	Name      string            `json:"name"`
	Quantity  int               `json:"quantity"`
	UnitPrice float64           `json:"unitPrice"`
	Variant   *VariantSelection `json:"variant,omitempty"`
}

// OrderRecord is frozen at checkout and never mutated afterwards.
type OrderRecord struct {
	ID            string              `json:"id"`
	PlacedAt      string              `json:"placedAt"`
	Total         float64             `json:"total"`
	PaymentMethod PaymentMethod       `json:"paymentMethod"`
	Items         []OrderItemSnapshot `json:"items"`
}

type CheckoutRequest struct {
	Name          string        `json:"name" validate:"required,max=80"`
	Email         string        `json:"email" validate:"required,email"`
	Address       string        `json:"address" validate:"required,max=160"`
	City          string        `json:"city" validate:"required,max=120"`
	Country       string        `json:"country" validate:"required,max=120"`
	Notes         string        `json:"notes"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=card paypal cod"`
}

type CheckoutResult struct {
	OrderID string       `json:"orderId"`
	Total   float64      `json:"total"`
	Message string       `json:"message"`
	Order   *OrderRecord `json:"order,omitempty"`
}
