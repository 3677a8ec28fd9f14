package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	receiptapp "github.com/dwikikusuma/storefront/internal/receipt/app"
	"github.com/dwikikusuma/storefront/pkg/metrics"
)

type Handler struct {
	catalog  *catalogapp.Service
	carts    *cartapp.Service
	receipts *receiptapp.Service
	checkout *checkoutapp.Service
	log      *slog.Logger
}

func NewHandler(
	catalog *catalogapp.Service,
	carts *cartapp.Service,
	receipts *receiptapp.Service,
	checkout *checkoutapp.Service,
	log *slog.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		carts:    carts,
		receipts: receipts,
		checkout: checkout,
		log:      log,
	}
}

func (h *Handler) Router(m *metrics.ServerMetrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if m != nil {
		r.Use(instrument(m))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.createProduct)
		r.Get("/", h.listProducts)
		r.Get("/{productID}", h.getProduct)
	})

	r.Route("/shoppers/{shopperID}", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Get("/count", h.cartCount)
			r.Post("/items", h.addCartItem)
			r.Put("/items/{productID}", h.setCartItemQuantity)
			r.Delete("/items/{productID}", h.removeCartItem)
		})
		r.Post("/checkout", h.doCheckout)
		r.Get("/receipts", h.listReceiptsByPurchaser)
	})

	r.Get("/receipts", h.listRecentReceipts)
	r.Get("/receipts/{code}", h.getReceipt)

	return r
}
