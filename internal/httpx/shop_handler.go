package httpx

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-antique-storefront/internal/cart"
	"github.com/ariefcatur/go-antique-storefront/internal/catalog"
	"github.com/ariefcatur/go-antique-storefront/internal/orders"
	"github.com/ariefcatur/go-antique-storefront/internal/storage"
	"github.com/ariefcatur/go-antique-storefront/internal/storefront"
)

type ShopHandler struct {
	Catalog   *catalog.Provider
	KV        storage.KV
	Publisher orders.Publisher
	Log       *zap.Logger

	pages map[string]*template.Template
}

type CartResp struct {
	Items []cart.Item `json:"items"`
	Total int         `json:"total"`
	Count int         `json:"count"`
}

type TotalsResp struct {
	Total     int    `json:"total"`
	TotalText string `json:"total_text"`
	Count     int    `json:"count"`
}

type AddResp struct {
	CartCount int `json:"cart_count"`
}

func NewShopHandler(cat *catalog.Provider, kv storage.KV, pub orders.Publisher, log *zap.Logger) (*ShopHandler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	if pub == nil {
		pub = orders.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ShopHandler{Catalog: cat, KV: kv, Publisher: pub, Log: log, pages: pages}, nil
}

func (h *ShopHandler) Register(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/products", http.StatusFound)
	})
	r.Get("/products", h.listProducts)
	r.Post("/products/{id}/add", h.addToCart)
	r.Get("/cart", h.showCart)
	r.Post("/cart/{id}/quantity", h.changeQuantity)
	r.Post("/cart/{id}/remove", h.removeItem)
	r.Post("/cart/clear", h.clearCart)
	r.Get("/checkout", h.showCheckout)
	r.Post("/checkout", h.placeOrder)
	r.Get("/thankyou", h.thankYou)
	r.Get("/api/cart", h.cartJSON)
}

func (h *ShopHandler) cartStore(ctx context.Context) *cart.Store {
	return cart.NewStore(h.KV, h.Catalog, storage.CartKey(SessionID(ctx)), h.Log)
}

func (h *ShopHandler) checkout(ctx context.Context) *storefront.Checkout {
	sid := SessionID(ctx)
	return &storefront.Checkout{
		Cart:      h.cartStore(ctx),
		LastOrder: &orders.LastOrderRepo{KV: h.KV, Key: storage.LastOrderKey(sid)},
		Publisher: h.Publisher,
		Log:       h.Log.With(zap.String("session", sid)),
	}
}

func (h *ShopHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.Log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	if wantsJSON(r) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage unavailable"})
		return
	}
	writeNotice(w, http.StatusInternalServerError, "Error", "Something went wrong. Please try again.")
}

func reqCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 3*time.Second)
}

func (h *ShopHandler) productList(ctx context.Context, q, cat string) *storefront.ProductList {
	v := storefront.NewProductList(h.Catalog, h.cartStore(ctx))
	v.OnSearch(q)
	v.OnCategory(cat)
	return v
}

func (h *ShopHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	q := r.URL.Query()
	v := h.productList(ctx, q.Get("q"), q.Get("cat"))
	v.OnAdded(q.Get("added"))
	m, err := v.Render(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "products", pageData{Title: "Collections", CartCount: m.CartCount, Data: m})
}

// addToCart redirects back to the list with the added id, so the button
// shows its feedback label once and a refresh does not add again.
func (h *ShopHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	_ = r.ParseForm()
	id := chi.URLParam(r, "id")
	v := h.productList(ctx, r.PostForm.Get("q"), r.PostForm.Get("cat"))
	count, err := v.OnAddToCart(ctx, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, AddResp{CartCount: count})
		return
	}
	http.Redirect(w, r, productsURL(r.PostForm.Get("q"), r.PostForm.Get("cat"), id), http.StatusSeeOther)
}

func productsURL(q, cat, added string) string {
	vals := url.Values{}
	if q != "" {
		vals.Set("q", q)
	}
	if cat != "" {
		vals.Set("cat", cat)
	}
	vals.Set("added", added)
	return "/products?" + vals.Encode()
}

func (h *ShopHandler) showCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	m, err := storefront.NewCartView(h.cartStore(ctx)).Render(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "cart", pageData{Title: "Your Cart", CartCount: m.Count, Data: m})
}

func (h *ShopHandler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	_ = r.ParseForm()
	totals, err := storefront.NewCartView(h.cartStore(ctx)).
		OnQuantityChange(ctx, chi.URLParam(r, "id"), r.PostForm.Get("quantity"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, TotalsResp{Total: totals.Amount, TotalText: totals.Total, Count: totals.Count})
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *ShopHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	m, err := storefront.NewCartView(h.cartStore(ctx)).OnRemove(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "cart", pageData{Title: "Your Cart", CartCount: m.Count, Data: m})
}

// clearCart asks for confirmation first; only confirm=yes clears.
func (h *ShopHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	_ = r.ParseForm()
	view := storefront.NewCartView(h.cartStore(ctx))
	if r.PostForm.Get("confirm") != "yes" {
		m, err := view.Render(ctx)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.render(w, http.StatusOK, "confirm_clear", pageData{
			Title:     "Clear cart",
			CartCount: m.Count,
			Data:      storefront.ClearConfirmation,
		})
		return
	}
	m, err := view.OnClear(ctx, true)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "cart", pageData{Title: "Your Cart", CartCount: m.Count, Data: m})
}

type checkoutPage struct {
	storefront.CheckoutModel
	Prompt string
	Form   orders.Form
}

func (h *ShopHandler) showCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	m, err := h.checkout(ctx).Render(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "checkout", pageData{Title: "Checkout", CartCount: m.CartCount, Data: checkoutPage{CheckoutModel: m}})
}

func (h *ShopHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	_ = r.ParseForm()
	form := orders.Form{
		FullName: r.PostForm.Get("fullname"),
		Mobile:   r.PostForm.Get("mobile"),
		Address:  r.PostForm.Get("address"),
		Area:     r.PostForm.Get("area"),
		Payment:  orders.PaymentMethod(r.PostForm.Get("payment")),
	}
	co := h.checkout(ctx)
	res, err := co.OnSubmit(ctx, form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if res.Prompt != "" {
		m, err := co.Render(ctx)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.render(w, http.StatusUnprocessableEntity, "checkout", pageData{
			Title:     "Checkout",
			CartCount: m.CartCount,
			Data:      checkoutPage{CheckoutModel: m, Prompt: res.Prompt, Form: form},
		})
		return
	}
	http.Redirect(w, r, res.Redirect+"?order="+url.QueryEscape(res.Order.ID), http.StatusSeeOther)
}

func (h *ShopHandler) thankYou(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	co := h.checkout(ctx)
	last, err := co.LastPlaced(ctx)
	if err != nil {
		h.Log.Warn("load last order", zap.Error(err))
	}
	count, err := co.Cart.TotalItemCount(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "thankyou", pageData{Title: "Thank you", CartCount: count, Data: last})
}

func (h *ShopHandler) cartJSON(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	items, err := h.cartStore(ctx).Items(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CartResp{Items: items, Total: cart.Total(items), Count: cart.Count(items)})
}
