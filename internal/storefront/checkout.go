package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ariefcatur/go-antique-storefront/internal/cart"
	"github.com/ariefcatur/go-antique-storefront/internal/format"
	"github.com/ariefcatur/go-antique-storefront/internal/orders"
	"github.com/ariefcatur/go-antique-storefront/internal/storage"
)

const (
	ConfirmationPath = "/thankyou"
	IncompletePrompt = "Please complete all required fields."
)

type PaymentOption struct {
	Value string
	Label string
}

type CheckoutModel struct {
	Lines     []string
	Total     string
	Amount    int
	Empty     bool
	Message   string
	CanSubmit bool
	Payments  []PaymentOption
	CartCount int
}

// CheckoutResult carries either a Prompt for the user (nothing changed) or
// the placed Order plus where to go next.
type CheckoutResult struct {
	Prompt    string
	Order     *orders.Order
	Redirect  string
	CartCount int
}

type Checkout struct {
	Cart      *cart.Store
	LastOrder *orders.LastOrderRepo
	Publisher orders.Publisher
	Log       *zap.Logger
	Now       func() time.Time
	NewID     func() string
}

func (c *Checkout) Render(ctx context.Context) (CheckoutModel, error) {
	items, err := c.Cart.Items(ctx)
	if err != nil {
		return CheckoutModel{}, err
	}
	m := CheckoutModel{
		Total:     format.INR(0),
		CartCount: cart.Count(items),
	}
	for _, p := range orders.PaymentMethods {
		m.Payments = append(m.Payments, PaymentOption{Value: string(p), Label: p.Label()})
	}
	if len(items) == 0 {
		m.Empty = true
		m.Message = EmptyCartMessage
		return m, nil
	}
	for _, it := range items {
		m.Lines = append(m.Lines, fmt.Sprintf("%s x %d — %s", it.Name, it.Quantity, format.INR(it.LineTotal())))
	}
	m.Amount = cart.Total(items)
	m.Total = format.INR(m.Amount)
	m.CanSubmit = true
	return m, nil
}

// OnSubmit validates the form and places the order. Saving the last order
// and publishing the event are best effort; the cart is cleared either way.
func (c *Checkout) OnSubmit(ctx context.Context, f orders.Form) (CheckoutResult, error) {
	f = f.Normalize()
	if err := f.Validate(); errors.Is(err, orders.ErrIncompleteForm) {
		return CheckoutResult{Prompt: IncompletePrompt}, nil
	}

	items, err := c.Cart.Items(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	if err := orders.ValidateItems(items); errors.Is(err, orders.ErrEmptyCart) {
		return CheckoutResult{Prompt: EmptyCartMessage}, nil
	}

	o := orders.NewOrder(c.newID(), c.now(), f, items)
	log := c.logger().With(zap.String("order_id", o.ID))

	if c.LastOrder != nil {
		if err := c.LastOrder.Save(ctx, o); err != nil {
			log.Warn("save last order", zap.Error(err))
		}
	}
	if c.Publisher != nil {
		if err := c.Publisher.PublishOrderPlaced(ctx, o); err != nil {
			log.Warn("publish order placed", zap.Error(err))
		}
	}

	if err := c.Cart.Clear(ctx); err != nil {
		return CheckoutResult{}, fmt.Errorf("clear cart: %w", err)
	}
	count, err := c.Cart.TotalItemCount(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	log.Info("order placed", zap.Int("total", o.Total), zap.Int("lines", len(o.Items)))
	return CheckoutResult{Order: &o, Redirect: ConfirmationPath, CartCount: count}, nil
}

// LastPlaced returns the session's most recent order, or nil if none.
func (c *Checkout) LastPlaced(ctx context.Context) (*orders.Order, error) {
	if c.LastOrder == nil {
		return nil, nil
	}
	o, err := c.LastOrder.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (c *Checkout) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Checkout) newID() string {
	if c.NewID != nil {
		return c.NewID()
	}
	return format.NewID()
}

func (c *Checkout) logger() *zap.Logger {
	if c.Log != nil {
		return c.Log
	}
	return zap.NewNop()
}
