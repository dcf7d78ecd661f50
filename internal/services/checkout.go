package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	"github.com/aaravmahajanofficial/storefront-studio/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-studio/internal/models"
	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
	"github.com/aaravmahajanofficial/storefront-studio/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	msgEmptyCart  = "Add items to your cart before checking out."
	msgSubmitting = "An order is already being placed."
)

type CheckoutService struct {
	loop      *state.Loop
	cart      *CartService
	users     *UserService
	cfg       config.Checkout
	validator *validator.Validate

	submitting atomic.Bool
}

func NewCheckoutService(loop *state.Loop, cart *CartService, users *UserService, cfg config.Checkout) *CheckoutService {
	return &CheckoutService{
		loop:      loop,
		cart:      cart,
		users:     users,
		cfg:       cfg,
		validator: validator.New(),
	}
}

// Summary prices the cart. Shipping is a flat fee whenever the cart holds
// anything; the free-shipping fields only report progress towards the
// threshold. Callers must hold the loop.
func (s *CheckoutService) Summary() *models.CartResponse {
	items := s.cart.DetailedCartItems()
	quantity := s.cart.TotalQuantity()
	subtotal := s.cart.subtotal()

	shipping := decimal.Zero
	if quantity > 0 {
		shipping = money(s.cfg.ShippingFee)
	}

	threshold := money(s.cfg.FreeShippingThreshold)

	delta := threshold.Sub(subtotal)
	if delta.IsNegative() {
		delta = decimal.Zero
	}

	return &models.CartResponse{
		Items:                    items,
		TotalQuantity:            quantity,
		Subtotal:                 toFloat(subtotal),
		Shipping:                 toFloat(shipping),
		Total:                    toFloat(subtotal.Add(shipping)),
		FreeShippingThreshold:    toFloat(threshold),
		QualifiesForFreeShipping: subtotal.GreaterThanOrEqual(threshold),
		ShippingProgress:         shippingProgress(subtotal, threshold),
		ShippingDelta:            toFloat(delta),
	}
}

// Checkout places an order for the current cart. The order is recorded right
// away for a signed-in shopper; the cart is cleared after the submit delay.
// A cancelled ctx only cuts the delay short, the cart is still cleared.
// Only one checkout may be in flight at a time.
func (s *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	if !s.submitting.CompareAndSwap(false, true) {
		return nil, errors.ConflictError(msgSubmitting)
	}
	defer s.submitting.Store(false)

	var (
		result *models.CheckoutResult
		err    error
	)

	s.loop.Do(func() {
		result, err = s.placeOrder(req)
	})

	if err != nil {
		return nil, err
	}

	s.wait(ctx)

	s.loop.Do(func() {
		s.cart.ClearCart()

		if s.users.IsAuthenticated() {
			result.Message = fmt.Sprintf("Thanks %s! Order #%s is confirmed.", req.Name, shortOrderID(result.OrderID))
		} else {
			result.Message = fmt.Sprintf("Thanks %s! Your %s order is confirmed. Sign in to keep track of your history.", req.Name, strings.ToUpper(string(req.PaymentMethod)))
		}
	})

	metrics.RecordOrderPlaced(string(req.PaymentMethod), result.Total)
	logger.Info("Order placed",
		slog.String("orderId", result.OrderID),
		slog.Float64("total", result.Total),
		slog.String("paymentMethod", string(req.PaymentMethod)),
		slog.Bool("recorded", result.Order != nil),
	)

	return result, nil
}

func (s *CheckoutService) placeOrder(req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	if s.cart.TotalQuantity() == 0 {
		return nil, errors.EmptyCartError(msgEmptyCart)
	}

	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	summary := s.Summary()
	result := &models.CheckoutResult{
		OrderID: uuid.NewString(),
		Total:   summary.Total,
	}

	if !s.users.IsAuthenticated() {
		return result, nil
	}

	order := models.OrderRecord{
		ID:            result.OrderID,
		PlacedAt:      time.Now().UTC().Format(time.RFC3339),
		Total:         summary.Total,
		PaymentMethod: req.PaymentMethod,
		Items:         make([]models.OrderItemSnapshot, 0, len(summary.Items)),
	}

	for _, line := range summary.Items {
		order.Items = append(order.Items, models.OrderItemSnapshot{
			Slug:      line.Product.Slug,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Variant:   models.NormalizeVariant(line.Variant),
		})
	}

	s.users.RecordOrder(order)
	result.Order = &order

	return result, nil
}

func (s *CheckoutService) wait(ctx context.Context) {
	if s.cfg.SubmitDelay <= 0 {
		return
	}

	timer := time.NewTimer(s.cfg.SubmitDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func shippingProgress(subtotal, threshold decimal.Decimal) int {
	if !threshold.IsPositive() {
		return 100
	}

	if !subtotal.IsPositive() {
		return 0
	}

	ratio := subtotal.Div(threshold).Mul(decimal.NewFromInt(100)).InexactFloat64()

	return int(math.Min(math.Round(ratio), 100))
}

func shortOrderID(id string) string {
	if len(id) > 6 {
		id = id[len(id)-6:]
	}

	return strings.ToUpper(id)
}
