package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"

	"github.com/Serve-X/Client-App/cache"
	"github.com/Serve-X/Client-App/clients"
	"github.com/Serve-X/Client-App/models"
	"github.com/Serve-X/Client-App/normalize"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newGatewayRouter wires the gateway routes against the given backend URL,
// the same way main does.
func newGatewayRouter(backendURL string) *gin.Engine {
	backend := clients.NewBackend(
		backendURL+"/api/items",
		backendURL+"/ui/orders",
		backendURL+"/ui/reviews",
	)
	fetch := func(ctx context.Context) ([]models.Item, error) {
		payload, err := backend.FetchItems(ctx)
		if err != nil {
			return nil, err
		}
		return normalize.Items(payload), nil
	}
	itemCache := cache.New(30*time.Second, clock.New(), fetch)

	itemsHandler := NewItemsHandler(itemCache)
	ordersHandler := NewOrdersHandler(backend)
	reviewsHandler := NewReviewsHandler(backend)

	router := gin.New()
	router.GET("/api/items", itemsHandler.ListItems)
	router.GET("/api/orders", ordersHandler.ListOrders)
	router.POST("/api/orders", ordersHandler.PlaceOrder)
	router.GET("/api/reviews", reviewsHandler.ListReviews)
	router.POST("/api/reviews", reviewsHandler.PostReview)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// deadBackendURL returns a URL that refuses connections.
func deadBackendURL() string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	return server.URL
}
