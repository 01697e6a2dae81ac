package api

import (
	"fmt"
	"net/http"

	"stroymarket/internal/cache"
	"stroymarket/internal/catalog"
	"stroymarket/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server представляет HTTP-сервер магазина.
type Server struct {
	port      string
	router    *chi.Mux
	store     *store.Store
	catalog   *catalog.Catalog
	cache     cache.Cache
	publisher OrderPublisher
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, st *store.Store, cat *catalog.Catalog, cache cache.Cache, publisher OrderPublisher) *Server {
	server := &Server{
		port:      port,
		store:     st,
		catalog:   cat,
		cache:     cache,
		publisher: publisher,
	}
	server.router = server.setupRouter()
	return server
}

// Run запускает HTTP-сервер.
func (s *Server) Run() error {
	address := fmt.Sprintf(":%s", s.port)
	fmt.Printf("🚀 HTTP-сервер запущен на http://localhost%s\n", address)
	return http.ListenAndServe(address, otelhttp.NewHandler(s.router, "http-server"))
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	catalogHandler := NewCatalogHandler(s.store, s.catalog, s.cache)
	cartHandler := NewCartHandler(s.store, s.catalog)
	checkoutHandler := NewCheckoutHandler(s.store, s.publisher)
	profileHandler := NewProfileHandler(s.store)
	settingsHandler := NewSettingsHandler(s.store)
	adminHandler := NewAdminHandler(s.catalog, s.cache)

	router.Route("/api", func(r chi.Router) {
		r.Get("/catalog", catalogHandler.List)
		r.Get("/catalog/{productID}", catalogHandler.GetByID)
		r.Get("/categories", catalogHandler.Categories)

		r.Get("/cart", cartHandler.Get)
		r.Post("/cart/{productID}", cartHandler.Add)
		r.Put("/cart/{productID}", cartHandler.UpdateQuantity)
		r.Delete("/cart/{productID}", cartHandler.Remove)
		r.Delete("/cart", cartHandler.Clear)

		r.Post("/checkout", checkoutHandler.Submit)
		r.Get("/orders", checkoutHandler.Orders)

		r.Get("/profile", profileHandler.Get)
		r.Put("/profile", profileHandler.Update)
		r.Delete("/profile", profileHandler.Reset)

		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings/theme", settingsHandler.SetTheme)
		r.Put("/settings/language", settingsHandler.SetLanguage)

		r.Post("/promo", PromoHandler)
		r.Get("/contacts", ContactsHandler(s.store))

		r.Route("/admin/products", func(r chi.Router) {
			r.Get("/", adminHandler.List)
			r.Post("/", adminHandler.Create)
			r.Put("/{productID}", adminHandler.Update)
			r.Delete("/{productID}", adminHandler.Delete)
		})
	})

	router.Handle("/metrics", promhttp.Handler())

	// Обработчик для статических файлов
	fileServer := http.FileServer(http.Dir("./web/"))
	router.Handle("/*", fileServer)

	return router
}
