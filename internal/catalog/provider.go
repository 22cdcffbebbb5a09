package catalog

// Provider is a read-only product list. It is built once and shared by
// every view that needs it.
type Provider struct {
	products []Product
	byID     map[string]int
}

func New(products ...Product) *Provider {
	p := &Provider{
		products: make([]Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(p.products, products)
	for i, pr := range p.products {
		if _, dup := p.byID[pr.ID]; !dup {
			p.byID[pr.ID] = i
		}
	}
	return p
}

// Default returns the built-in antique catalog.
func Default() *Provider { return New(defaultProducts...) }

// ListProducts returns a fresh copy; callers may modify it freely.
func (p *Provider) ListProducts() []Product {
	out := make([]Product, len(p.products))
	copy(out, p.products)
	return out
}

func (p *Provider) Find(id string) (Product, bool) {
	i, ok := p.byID[id]
	if !ok {
		return Product{}, false
	}
	return p.products[i], true
}

// Categories lists distinct categories in catalog order.
func (p *Provider) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, pr := range p.products {
		if !seen[pr.Category] {
			seen[pr.Category] = true
			out = append(out, pr.Category)
		}
	}
	return out
}
