package api

import (
	"context"
	"net/http"

	"pharmadesk/models"
)

// CreateReceipt submits one composite intake receipt. The receipt and all
// its line items are created by the backend as a single operation; the
// client issues exactly one request.
func (c *Client) CreateReceipt(ctx context.Context, p models.ReceiptPayload) (models.Receipt, error) {
	var out models.Receipt
	if err := c.call(ctx, "intake.create", http.MethodPost, "/intake/add", p, &out); err != nil {
		return models.Receipt{}, err
	}
	return out, nil
}

// ListHistory fetches the server-joined intake history rows.
func (c *Client) ListHistory(ctx context.Context) ([]models.HistoryRow, error) {
	var out []models.HistoryRow
	if err := c.call(ctx, "intake.history", http.MethodGet, "/intake/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
