package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cykj40/padre-ginos-fem-sub000/configs"
	"github.com/cykj40/padre-ginos-fem-sub000/controllers"
	"github.com/cykj40/padre-ginos-fem-sub000/repository"
	"github.com/cykj40/padre-ginos-fem-sub000/services"
)

func RegisterRoutes(r *gin.Engine, catalogDB, cartDB *gorm.DB, cfg *configs.Config, log *slog.Logger) {
	// Repositories
	catalogRepo := repository.NewCatalogRepository(catalogDB)
	orderRepo := repository.NewOrderRepository(catalogDB)

	// Cart storage: remote first, in-memory once degraded. The failover
	// state lives on this value, wired here once per process.
	cartStore := repository.NewFailoverCartStore(
		repository.NewGormCartStore(cartDB),
		repository.NewMemoryCartStore(),
		log,
		cfg.CartRemoteTimeout,
	)

	// Services
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(cartStore)
	orderSvc := services.NewOrderService(catalogDB, orderRepo, catalogRepo)

	// Controllers
	pizzaCtrl := controllers.NewPizzaController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	contactCtrl := controllers.NewContactController(log)

	r.GET("/health", func(c *gin.Context) {
		for _, db := range []*gorm.DB{catalogDB, cartDB} {
			if err := db.Exec("SELECT 1").Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "cartDegraded": cartStore.Degraded()})
	})

	api := r.Group("/api")
	{
		api.GET("/pizzas", pizzaCtrl.List)
		api.GET("/pizza-of-the-day", pizzaCtrl.OfTheDay)

		api.GET("/orders", orderCtrl.List)
		api.GET("/order", orderCtrl.Detail)
		api.POST("/order", orderCtrl.Create)

		api.GET("/cart", cartCtrl.Get)
		api.POST("/cart", cartCtrl.Add)
		api.PUT("/cart", cartCtrl.Update)
		api.DELETE("/cart", cartCtrl.Delete)
		api.POST("/cart/add", cartCtrl.Add)
		api.POST("/cart/update", cartCtrl.Update)
		api.PUT("/cart/update", cartCtrl.Update)
		api.POST("/cart/remove", cartCtrl.Remove)
		api.DELETE("/cart/remove", cartCtrl.Remove)
		api.POST("/cart/clear", cartCtrl.Clear)
		api.DELETE("/cart/clear", cartCtrl.Clear)

		api.POST("/contact", contactCtrl.Submit)
	}
}
