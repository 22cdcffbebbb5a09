package cart

// MaxQuantity caps a single line so price*quantity cannot overflow.
const MaxQuantity = 9999

// Item is one cart line. Name, Price and Image are copied from the product
// when it is first added.
type Item struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
}

func (it Item) LineTotal() int { return it.Price * it.Quantity }

// Total sums price*quantity over items.
func Total(items []Item) int {
	sum := 0
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}

// Count sums quantities over items.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
