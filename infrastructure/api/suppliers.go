package api

import (
	"context"
	"net/http"
	"net/url"

	"pharmadesk/models"
)

// ListSuppliers fetches all suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var out []models.Supplier
	if err := c.call(ctx, "supplier.list", http.MethodGet, "/supplier/list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSupplier submits a new supplier.
func (c *Client) CreateSupplier(ctx context.Context, p models.SupplierPayload) (models.Supplier, error) {
	p.ID = ""
	var out models.Supplier
	if err := c.call(ctx, "supplier.create", http.MethodPost, "/supplier/add", p, &out); err != nil {
		return models.Supplier{}, err
	}
	return out, nil
}

// UpdateSupplier updates a supplier. The backend's fix route carries the id
// inside the body rather than the path.
func (c *Client) UpdateSupplier(ctx context.Context, id string, p models.SupplierPayload) (models.Supplier, error) {
	p.ID = id
	var out models.Supplier
	if err := c.call(ctx, "supplier.update", http.MethodPut, "/supplier/fix", p, &out); err != nil {
		return models.Supplier{}, err
	}
	return out, nil
}

// DeleteSupplier deletes a supplier by id.
func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	return c.call(ctx, "supplier.delete", http.MethodDelete, "/supplier/delete/"+url.PathEscape(id), nil, nil)
}
