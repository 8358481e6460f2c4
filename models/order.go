package models

import "encoding/json"

// PlaceOrderRequest is the inbound order payload. TableNumber and the item
// quantities arrive as either JSON numbers or numeric strings depending on
// the client form, so they are decoded loosely and coerced in the handler.
type PlaceOrderRequest struct {
	TableNumber json.RawMessage  `json:"tableNumber"`
	Customer    map[string]any   `json:"customer"`
	Items       []OrderItemInput `json:"items"`
}

type OrderItemInput struct {
	ItemID   string          `json:"itemId"`
	Quantity json.RawMessage `json:"quantity"`
}

// OrderPayload is the coerced body forwarded to the backend.
type OrderPayload struct {
	TableNumber float64            `json:"tableNumber"`
	Customer    map[string]any     `json:"customer"`
	Items       []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ItemID   string  `json:"itemId"`
	Quantity float64 `json:"quantity"`
}

type OrdersResponse struct {
	Orders any `json:"orders"`
}

type OrderResponse struct {
	Order any `json:"order"`
}
