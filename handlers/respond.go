package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Serve-X/Client-App/clients"
	"github.com/Serve-X/Client-App/models"
)

// respondBackendError maps a failed outbound call onto the client-facing
// error contract: the backend's own status and message when it answered,
// a generic 502 when the call never got through.
func respondBackendError(c *gin.Context, err error, fallback, transportFallback string) {
	var backendErr *clients.BackendError
	if errors.As(err, &backendErr) && !backendErr.Transport {
		message := backendErr.Message
		if message == "" {
			message = fallback
		}
		c.JSON(backendErr.StatusCode, models.ErrorResponse{Error: message})
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: transportFallback})
}

// numberValue coerces a loosely-typed JSON field to a finite float the way
// the browser form would: numbers pass through, numeric strings are parsed.
// Absent fields and anything unparseable report false.
func numberValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
