package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sivanaveen080/biryani-for-lunch/api/controllers"
	cartcontrollers "github.com/sivanaveen080/biryani-for-lunch/api/controllers/cart"
	"github.com/sivanaveen080/biryani-for-lunch/api/middleware"
	"github.com/sivanaveen080/biryani-for-lunch/internal/admin"
	"github.com/sivanaveen080/biryani-for-lunch/internal/cart"
	"github.com/sivanaveen080/biryani-for-lunch/internal/catalog"
	checkoutsvc "github.com/sivanaveen080/biryani-for-lunch/internal/checkout"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/config"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient redis.Pinger,
	gatherer prometheus.Gatherer,
	catalogService *catalog.Service,
	carts *cart.Manager,
	checkoutService *checkoutsvc.Service,
	adminService *admin.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", controllers.CatalogList(catalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(carts, logg))
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.CartFetch(logg))
				r.Post("/items", cartcontrollers.CartAddItem(logg))
				r.Put("/items/{name}", cartcontrollers.CartSetQuantity(logg))
				r.Delete("/", cartcontrollers.CartClear(logg))
			})
			r.Post("/checkout", controllers.Checkout(checkoutService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/login", controllers.AdminLogin(adminService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(adminService, logg))
			r.Post("/logout", controllers.AdminLogout(adminService, logg))
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminOrders(adminService, logg))
				r.Post("/{orderId}/status", controllers.AdminOrderStatus(adminService, logg))
			})
			r.Route("/menu", func(r chi.Router) {
				r.Get("/", controllers.AdminMenu(adminService, logg))
				r.Post("/{itemName}/availability", controllers.AdminMenuAvailability(adminService, logg))
			})
		})
	})

	return r
}
