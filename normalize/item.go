// Package normalize maps backend catalog records, whose field names vary
// between deployments, onto the gateway's stable Item shape.
package normalize

import (
	"math"
	"strconv"

	"github.com/Serve-X/Client-App/models"
)

// Item normalizes a single decoded backend record. It is total: unresolvable
// fields fall back to defaults, and a record with no resolvable id yields an
// Item with an empty ID for the caller to filter.
func Item(raw map[string]any) models.Item {
	return models.Item{
		ID:          stringField(raw, "", "itemId", "id"),
		Name:        stringField(raw, "Unnamed Item", "itemName", "name"),
		Description: stringField(raw, "", "itemDescription", "description"),
		Price:       priceField(raw, "itemPrice", "price"),
	}
}

// Items normalizes a backend catalog payload, which is either a bare array
// or an {items: [...]} envelope, dropping records without a resolvable id.
func Items(payload any) []models.Item {
	var list []any
	switch v := payload.(type) {
	case []any:
		list = v
	case map[string]any:
		list, _ = v["items"].([]any)
	}

	items := make([]models.Item, 0, len(list))
	for _, entry := range list {
		raw, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := Item(raw)
		if item.ID == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// stringField resolves the first present, non-null key and stringifies it,
// so numeric ids come through as their decimal text. An empty string is a
// resolved value and does not fall through to the fallback.
func stringField(raw map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			return stringify(value)
		}
	}
	return fallback
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// priceField parses the first present price-like key as a float, clamping
// anything unparseable or non-finite to 0.
func priceField(raw map[string]any, keys ...string) float64 {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0
			}
			return v
		case string:
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
				return 0
			}
			return parsed
		default:
			return 0
		}
	}
	return 0
}
