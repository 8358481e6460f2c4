package models

import "encoding/json"

// PostReviewRequest is the inbound review payload. Rating is optional and
// may arrive as a number, a numeric string, or junk; junk is treated as
// absent rather than rejected.
type PostReviewRequest struct {
	ItemID string          `json:"itemId"`
	Text   string          `json:"text"`
	Rating json.RawMessage `json:"rating"`
}

// ReviewPayload is the coerced body forwarded to the backend. Rating is a
// pointer so an absent or unusable rating serializes as an explicit null.
type ReviewPayload struct {
	ItemID string   `json:"itemId"`
	Text   string   `json:"text"`
	Rating *float64 `json:"rating"`
}

type ReviewsResponse struct {
	Reviews any `json:"reviews"`
}

type ReviewResponse struct {
	Review any `json:"review"`
}
