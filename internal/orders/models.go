package orders

import (
	"errors"
	"strings"
	"time"

	"github.com/ariefcatur/go-antique-storefront/internal/cart"
)

const OrderVersion = 1

var (
	ErrIncompleteForm = errors.New("please complete all required fields")
	ErrEmptyCart      = errors.New("cart is empty")
)

// Form is the delivery details submitted at checkout.
type Form struct {
	FullName string
	Mobile   string
	Address  string
	Area     string
	Payment  PaymentMethod
}

func (f Form) Normalize() Form {
	return Form{
		FullName: strings.TrimSpace(f.FullName),
		Mobile:   strings.TrimSpace(f.Mobile),
		Address:  strings.TrimSpace(f.Address),
		Area:     strings.TrimSpace(f.Area),
		Payment:  PaymentMethod(strings.TrimSpace(string(f.Payment))),
	}
}

// Validate expects a normalized form.
func (f Form) Validate() error {
	if f.FullName == "" || f.Mobile == "" || f.Address == "" || f.Area == "" || !ValidPayment(f.Payment) {
		return ErrIncompleteForm
	}
	return nil
}

// ValidateItems rejects checkout of an empty cart.
func ValidateItems(items []cart.Item) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	return nil
}

type Order struct {
	Version   int           `json:"v"`
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	FullName  string        `json:"fullname"`
	Mobile    string        `json:"mobile"`
	Address   string        `json:"address"`
	Area      string        `json:"area"`
	Payment   PaymentMethod `json:"payment"`
	Items     []cart.Item   `json:"items"`
	Total     int           `json:"total"`
}

func NewOrder(id string, now time.Time, f Form, items []cart.Item) Order {
	snapshot := make([]cart.Item, len(items))
	copy(snapshot, items)
	return Order{
		Version:   OrderVersion,
		ID:        id,
		CreatedAt: now.UTC(),
		FullName:  f.FullName,
		Mobile:    f.Mobile,
		Address:   f.Address,
		Area:      f.Area,
		Payment:   f.Payment,
		Items:     snapshot,
		Total:     cart.Total(snapshot),
	}
}
