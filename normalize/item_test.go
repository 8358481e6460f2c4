package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Serve-X/Client-App/models"
)

func TestItemFieldFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want models.Item
	}{
		{
			name: "backend field names",
			raw: map[string]any{
				"itemId":          "42",
				"itemName":        "Pad Thai",
				"itemDescription": "Rice noodles",
				"itemPrice":       "12.50",
			},
			want: models.Item{ID: "42", Name: "Pad Thai", Description: "Rice noodles", Price: 12.5},
		},
		{
			name: "plain field names",
			raw: map[string]any{
				"id":          "7",
				"name":        "Green Curry",
				"description": "Spicy",
				"price":       9.0,
			},
			want: models.Item{ID: "7", Name: "Green Curry", Description: "Spicy", Price: 9},
		},
		{
			name: "numeric id is stringified",
			raw:  map[string]any{"itemId": float64(12), "name": "Soup"},
			want: models.Item{ID: "12", Name: "Soup", Description: "", Price: 0},
		},
		{
			name: "missing name falls back",
			raw:  map[string]any{"id": "1"},
			want: models.Item{ID: "1", Name: "Unnamed Item", Description: "", Price: 0},
		},
		{
			name: "empty name is kept, not defaulted",
			raw:  map[string]any{"id": "1", "itemName": ""},
			want: models.Item{ID: "1", Name: "", Description: "", Price: 0},
		},
		{
			name: "null name falls through to fallback",
			raw:  map[string]any{"id": "1", "itemName": nil, "name": nil},
			want: models.Item{ID: "1", Name: "Unnamed Item", Description: "", Price: 0},
		},
		{
			name: "unparseable price clamps to zero",
			raw:  map[string]any{"id": "1", "itemPrice": "market"},
			want: models.Item{ID: "1", Name: "Unnamed Item", Description: "", Price: 0},
		},
		{
			name: "no id at all",
			raw:  map[string]any{"name": "Mystery"},
			want: models.Item{ID: "", Name: "Mystery", Description: "", Price: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Item(tt.raw))
		})
	}
}

func TestItemsFiltersRecordsWithoutID(t *testing.T) {
	payload := []any{
		map[string]any{"itemId": "a", "itemName": "Spring Rolls", "itemPrice": "4.00"},
		map[string]any{"itemName": "No ID"},
		map[string]any{"id": "b", "name": "Tea"},
		"not an object",
	}

	items := Items(payload)

	assert.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestItemsAcceptsEnvelope(t *testing.T) {
	payload := map[string]any{
		"items": []any{
			map[string]any{"id": "x", "price": 3.5},
		},
	}

	items := Items(payload)

	assert.Len(t, items, 1)
	assert.Equal(t, 3.5, items[0].Price)
}

func TestItemsEmptyOrUnexpectedPayload(t *testing.T) {
	assert.Empty(t, Items(nil))
	assert.Empty(t, Items("nonsense"))
	assert.Empty(t, Items(map[string]any{"items": "nope"}))
}
