package main

import (
	"context"
	"log"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"

	"github.com/Serve-X/Client-App/cache"
	"github.com/Serve-X/Client-App/clients"
	"github.com/Serve-X/Client-App/config"
	"github.com/Serve-X/Client-App/handlers"
	"github.com/Serve-X/Client-App/models"
	"github.com/Serve-X/Client-App/normalize"
)

func main() {
	cfg := config.Load()

	log.Printf("Starting ServeX client gateway on port %s", cfg.Port)
	log.Printf("Forwarding to backend at %s", cfg.BackendBaseURL)

	// Set Gin mode based on environment
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize backend client
	backend := clients.NewBackend(cfg.ItemsAPIURL, cfg.OrdersURL, cfg.ReviewsURL)

	// Initialize item cache over the backend catalog
	itemCache := cache.New(cfg.ItemCacheTTL, clock.New(), catalogFetch(backend))

	// Initialize handlers
	itemsHandler := handlers.NewItemsHandler(itemCache)
	ordersHandler := handlers.NewOrdersHandler(backend)
	reviewsHandler := handlers.NewReviewsHandler(backend)

	// Setup router
	router := gin.Default()

	// Routes
	router.GET("/api/items", itemsHandler.ListItems)
	router.GET("/api/orders", ordersHandler.ListOrders)
	router.POST("/api/orders", ordersHandler.PlaceOrder)
	router.GET("/api/reviews", reviewsHandler.ListReviews)
	router.POST("/api/reviews", reviewsHandler.PostReview)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Static browser client
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))

	log.Fatal(router.Run(":" + cfg.Port))
}

// catalogFetch adapts the backend's raw catalog call into the cache's fetch
// contract: fetch, normalize, drop records without a resolvable id.
func catalogFetch(backend *clients.Backend) cache.FetchFunc {
	return func(ctx context.Context) ([]models.Item, error) {
		payload, err := backend.FetchItems(ctx)
		if err != nil {
			return nil, err
		}
		return normalize.Items(payload), nil
	}
}
