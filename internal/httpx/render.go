package httpx

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ariefcatur/go-antique-storefront/internal/format"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"products", "cart", "confirm_clear", "checkout", "thankyou"}

var funcs = template.FuncMap{"inr": format.INR}

type pageData struct {
	Title     string
	CartCount int
	Data      any
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeNotice renders a bare HTML fragment for errors; msg may echo user
// input and is escaped.
func writeNotice(w http.ResponseWriter, code int, title, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = fmt.Fprintf(w, "<!doctype html><title>%s</title><p class=\"notice\">%s</p>\n",
		format.EscapeHTML(title), format.EscapeHTML(msg))
}

func (h *ShopHandler) render(w http.ResponseWriter, code int, name string, d pageData) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", d); err != nil {
		h.Log.Error("render page", zap.String("page", name), zap.Error(err))
		writeNotice(w, http.StatusInternalServerError, "Error", "Something went wrong.")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// wantsJSON reports whether any Accept entry names application/json.
func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == "application/json" {
			return true
		}
	}
	return false
}
