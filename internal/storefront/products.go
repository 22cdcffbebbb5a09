package storefront

import (
	"context"

	"github.com/ariefcatur/go-antique-storefront/internal/cart"
	"github.com/ariefcatur/go-antique-storefront/internal/catalog"
	"github.com/ariefcatur/go-antique-storefront/internal/format"
)

const (
	LabelAddToCart = "Add to Cart"
	LabelAdded     = "Added ✓"
	NoMatchMessage = "No products match your search."
)

type ProductCard struct {
	ID          string
	Name        string
	Category    string
	Image       string
	Price       string
	ButtonLabel string
}

type CategoryTab struct {
	Name   string
	Active bool
}

type ProductListModel struct {
	Query        string
	Category     string
	Categories   []CategoryTab
	Products     []ProductCard
	Empty        bool
	EmptyMessage string
	CartCount    int
}

// ProductList is the catalog page: a free-text query, an active category
// and the add-to-cart command.
type ProductList struct {
	catalog  *catalog.Provider
	cart     *cart.Store
	query    string
	category string
	added    string
}

func NewProductList(cat *catalog.Provider, store *cart.Store) *ProductList {
	return &ProductList{catalog: cat, cart: store, category: catalog.CategoryAll}
}

func (v *ProductList) OnSearch(q string) { v.query = q }

// OnCategory switches the active category; unknown names fall back to all.
func (v *ProductList) OnCategory(c string) {
	v.category = catalog.CategoryAll
	for _, known := range v.catalog.Categories() {
		if c == known {
			v.category = c
			return
		}
	}
}

// OnAddToCart adds one unit and returns the new cart count. The next Render
// labels the product's button as added; the one after reverts it.
func (v *ProductList) OnAddToCart(ctx context.Context, id string) (int, error) {
	if err := v.cart.Add(ctx, id, 1); err != nil {
		return 0, err
	}
	v.OnAdded(id)
	return v.cart.TotalItemCount(ctx)
}

// OnAdded shows the added label for id on the next Render without touching
// the cart. Unknown ids are ignored.
func (v *ProductList) OnAdded(id string) {
	if _, ok := v.catalog.Find(id); ok {
		v.added = id
	}
}

func (v *ProductList) Render(ctx context.Context) (ProductListModel, error) {
	count, err := v.cart.TotalItemCount(ctx)
	if err != nil {
		return ProductListModel{}, err
	}

	m := ProductListModel{
		Query:     v.query,
		Category:  v.category,
		CartCount: count,
	}
	m.Categories = append(m.Categories, CategoryTab{Name: catalog.CategoryAll, Active: v.category == catalog.CategoryAll})
	for _, c := range v.catalog.Categories() {
		m.Categories = append(m.Categories, CategoryTab{Name: c, Active: v.category == c})
	}

	for _, p := range catalog.Filter(v.catalog.ListProducts(), v.query, v.category) {
		label := LabelAddToCart
		if p.ID == v.added {
			label = LabelAdded
		}
		m.Products = append(m.Products, ProductCard{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Image:       p.Image,
			Price:       format.INR(p.Price),
			ButtonLabel: label,
		})
	}
	if len(m.Products) == 0 {
		m.Empty = true
		m.EmptyMessage = NoMatchMessage
	}
	v.added = ""
	return m, nil
}
