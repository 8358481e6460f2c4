package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Serve-X/Client-App/clients"
	"github.com/Serve-X/Client-App/models"
)

type OrdersHandler struct {
	backend *clients.Backend
}

func NewOrdersHandler(backend *clients.Backend) *OrdersHandler {
	return &OrdersHandler{backend: backend}
}

// ListOrders handles GET /api/orders, forwarding an optional tableNumber
// filter verbatim.
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders, err := h.backend.FetchOrders(c.Request.Context(), c.Query("tableNumber"))
	if err != nil {
		log.Printf("Failed to load orders from backend: %v", err)
		respondBackendError(c, err,
			"Unable to load orders from backend.",
			"Unable to load orders from backend.")
		return
	}

	c.JSON(http.StatusOK, models.OrdersResponse{Orders: orders})
}

// PlaceOrder handles POST /api/orders. The top-level shape is checked
// first; items that fail item-level validation are dropped, and the request
// fails only when none survive.
func (h *OrdersHandler) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Table number, customer, and items are required.",
		})
		return
	}

	table, ok := numberValue(req.TableNumber)
	if !ok || table <= 0 || req.Customer == nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Table number, customer, and items are required.",
		})
		return
	}

	items := make([]models.OrderItemPayload, 0, len(req.Items))
	for _, item := range req.Items {
		quantity, ok := numberValue(item.Quantity)
		if item.ItemID == "" || !ok || quantity <= 0 {
			continue
		}
		items = append(items, models.OrderItemPayload{
			ItemID:   item.ItemID,
			Quantity: quantity,
		})
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "At least one valid item is required.",
		})
		return
	}

	payload := models.OrderPayload{
		TableNumber: table,
		Customer:    req.Customer,
		Items:       items,
	}

	order, err := h.backend.PlaceOrder(c.Request.Context(), payload)
	if err != nil {
		log.Printf("Failed to place order for table %v: %v", table, err)
		respondBackendError(c, err,
			"Unable to place order.",
			"Unable to place order right now.")
		return
	}

	log.Printf("Placed order for table %v with %d items", table, len(items))

	c.JSON(http.StatusCreated, models.OrderResponse{Order: order})
}
