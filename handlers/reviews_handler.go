package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Serve-X/Client-App/clients"
	"github.com/Serve-X/Client-App/models"
)

type ReviewsHandler struct {
	backend *clients.Backend
}

func NewReviewsHandler(backend *clients.Backend) *ReviewsHandler {
	return &ReviewsHandler{backend: backend}
}

// ListReviews handles GET /api/reviews, forwarding an optional itemId
// filter verbatim.
func (h *ReviewsHandler) ListReviews(c *gin.Context) {
	reviews, err := h.backend.FetchReviews(c.Request.Context(), c.Query("itemId"))
	if err != nil {
		log.Printf("Failed to load reviews from backend: %v", err)
		respondBackendError(c, err,
			"Unable to load reviews from backend.",
			"Unable to load reviews from backend.")
		return
	}

	c.JSON(http.StatusOK, models.ReviewsResponse{Reviews: reviews})
}

// PostReview handles POST /api/reviews. A rating that fails to coerce to a
// number is treated as absent, not rejected.
func (h *ReviewsHandler) PostReview(c *gin.Context) {
	var req models.PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "itemId and text are required.",
		})
		return
	}

	text := strings.TrimSpace(req.Text)
	if req.ItemID == "" || text == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "itemId and text are required.",
		})
		return
	}

	payload := models.ReviewPayload{
		ItemID: req.ItemID,
		Text:   text,
	}
	if rating, ok := numberValue(req.Rating); ok {
		payload.Rating = &rating
	}

	review, err := h.backend.PostReview(c.Request.Context(), payload)
	if err != nil {
		log.Printf("Failed to post review for item %s: %v", req.ItemID, err)
		respondBackendError(c, err,
			"Unable to save review.",
			"Unable to save review right now.")
		return
	}

	log.Printf("Posted review for item %s", req.ItemID)

	c.JSON(http.StatusCreated, models.ReviewResponse{Review: review})
}
