package storefront

import (
	"context"

	"github.com/ariefcatur/go-antique-storefront/internal/cart"
	"github.com/ariefcatur/go-antique-storefront/internal/format"
)

const (
	EmptyCartMessage  = "Your cart is empty."
	ClearConfirmation = "Clear entire cart?"
)

type CartRow struct {
	ID        string
	Name      string
	Image     string
	UnitPrice string
	Quantity  int
	LineTotal string
}

// Totals is what a quantity edit refreshes: the total and the cart count.
type Totals struct {
	Amount int
	Total  string
	Count  int
}

type CartModel struct {
	Rows         []CartRow
	Empty        bool
	EmptyMessage string
	Totals
}

type CartView struct {
	cart *cart.Store
}

func NewCartView(store *cart.Store) *CartView {
	return &CartView{cart: store}
}

func (v *CartView) Render(ctx context.Context) (CartModel, error) {
	items, err := v.cart.Items(ctx)
	if err != nil {
		return CartModel{}, err
	}
	m := CartModel{Totals: totalsOf(items)}
	if len(items) == 0 {
		m.Empty = true
		m.EmptyMessage = EmptyCartMessage
		return m, nil
	}
	for _, it := range items {
		m.Rows = append(m.Rows, CartRow{
			ID:        it.ID,
			Name:      it.Name,
			Image:     it.Image,
			UnitPrice: format.INR(it.Price),
			Quantity:  it.Quantity,
			LineTotal: format.INR(it.LineTotal()),
		})
	}
	return m, nil
}

// OnQuantityChange stores the new quantity and returns only the refreshed
// totals; rows are not re-rendered.
func (v *CartView) OnQuantityChange(ctx context.Context, id, raw string) (Totals, error) {
	if err := v.cart.UpdateQuantity(ctx, id, raw); err != nil {
		return Totals{}, err
	}
	items, err := v.cart.Items(ctx)
	if err != nil {
		return Totals{}, err
	}
	return totalsOf(items), nil
}

func (v *CartView) OnRemove(ctx context.Context, id string) (CartModel, error) {
	if err := v.cart.Remove(ctx, id); err != nil {
		return CartModel{}, err
	}
	return v.Render(ctx)
}

// OnClear empties the cart only when the user confirmed ClearConfirmation.
func (v *CartView) OnClear(ctx context.Context, confirmed bool) (CartModel, error) {
	if confirmed {
		if err := v.cart.Clear(ctx); err != nil {
			return CartModel{}, err
		}
	}
	return v.Render(ctx)
}

func totalsOf(items []cart.Item) Totals {
	amount := cart.Total(items)
	return Totals{Amount: amount, Total: format.INR(amount), Count: cart.Count(items)}
}
