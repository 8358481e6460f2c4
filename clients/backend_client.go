package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Serve-X/Client-App/models"
)

// Backend calls the upstream ordering system. Each method issues a single
// outbound request — no retries, and no timeout beyond what the transport
// itself enforces; cancellation comes from the caller's context.
type Backend struct {
	itemsURL   string
	ordersURL  string
	reviewsURL string
	httpClient *http.Client
}

func NewBackend(itemsURL, ordersURL, reviewsURL string) *Backend {
	return &Backend{
		itemsURL:   itemsURL,
		ordersURL:  ordersURL,
		reviewsURL: reviewsURL,
		httpClient: &http.Client{},
	}
}

// FetchItems retrieves the full catalog payload, undecoded beyond JSON.
func (b *Backend) FetchItems(ctx context.Context) (any, error) {
	return b.do(ctx, http.MethodGet, b.itemsURL, nil)
}

// FetchOrders lists orders, optionally filtered by table number. The filter
// is forwarded verbatim as a query parameter.
func (b *Backend) FetchOrders(ctx context.Context, tableNumber string) (any, error) {
	target, err := withQueryParam(b.ordersURL, "tableNumber", tableNumber)
	if err != nil {
		return nil, err
	}
	return b.do(ctx, http.MethodGet, target, nil)
}

// PlaceOrder forwards a validated order to the backend.
func (b *Backend) PlaceOrder(ctx context.Context, order models.OrderPayload) (any, error) {
	return b.do(ctx, http.MethodPost, b.ordersURL, order)
}

// FetchReviews lists reviews, optionally filtered by item id.
func (b *Backend) FetchReviews(ctx context.Context, itemID string) (any, error) {
	target, err := withQueryParam(b.reviewsURL, "itemId", itemID)
	if err != nil {
		return nil, err
	}
	return b.do(ctx, http.MethodGet, target, nil)
}

// PostReview forwards a validated review to the backend.
func (b *Backend) PostReview(ctx context.Context, review models.ReviewPayload) (any, error) {
	return b.do(ctx, http.MethodPost, b.reviewsURL, review)
}

// do performs one outbound call and classifies the outcome. A non-2xx
// response becomes a *BackendError carrying the upstream status and any
// extractable message; a transport failure becomes a *BackendError with
// status 502 and no message. Success returns the decoded body value, which
// is nil for an empty body.
func (b *Backend) do(ctx context.Context, method, target string, payload any) (any, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, &BackendError{StatusCode: http.StatusBadGateway, Transport: true}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{StatusCode: http.StatusBadGateway, Transport: true}
	}

	body := decodeBody(data)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{StatusCode: resp.StatusCode, Message: body.Message()}
	}
	return body.Value(), nil
}

func withQueryParam(base, key, value string) (string, error) {
	if value == "" {
		return base, nil
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid backend URL %q: %w", base, err)
	}
	query := parsed.Query()
	query.Set(key, value)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
