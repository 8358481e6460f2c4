package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Serve-X/Client-App/cache"
	"github.com/Serve-X/Client-App/models"
)

type ItemsHandler struct {
	cache *cache.ItemCache
}

func NewItemsHandler(itemCache *cache.ItemCache) *ItemsHandler {
	return &ItemsHandler{cache: itemCache}
}

// ListItems handles GET /api/items. Any failure, upstream or transport,
// surfaces as a plain 502 — catalog errors carry no backend detail.
func (h *ItemsHandler) ListItems(c *gin.Context) {
	items, err := h.cache.GetItems(c.Request.Context())
	if err != nil {
		log.Printf("Failed to load items from backend: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: "Unable to load items from backend.",
		})
		return
	}

	c.JSON(http.StatusOK, models.ItemsResponse{Items: items})
}
