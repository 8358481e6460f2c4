package models

// Item is the gateway's stable, client-facing shape for a catalog entry.
// The backend's field names vary between deployments; normalize.Item maps
// them onto this struct.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ItemsResponse struct {
	Items []Item `json:"items"`
}
