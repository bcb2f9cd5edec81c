package api

import (
	"context"
	"net/http"
	"net/url"

	"pharmadesk/models"
)

// ListMedicines fetches the full medicine catalog.
func (c *Client) ListMedicines(ctx context.Context) ([]models.Medicine, error) {
	var out []models.Medicine
	if err := c.call(ctx, "medicine.list", http.MethodGet, "/medicine/list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMedicine submits a new medicine and returns the backend's echo with
// the assigned id.
func (c *Client) CreateMedicine(ctx context.Context, p models.MedicinePayload) (models.Medicine, error) {
	var out models.Medicine
	if err := c.call(ctx, "medicine.create", http.MethodPost, "/medicine/add", p, &out); err != nil {
		return models.Medicine{}, err
	}
	return out, nil
}

// UpdateMedicine updates an existing medicine by id.
func (c *Client) UpdateMedicine(ctx context.Context, id string, p models.MedicinePayload) (models.Medicine, error) {
	var out models.Medicine
	if err := c.call(ctx, "medicine.update", http.MethodPut, "/medicine/fix/"+url.PathEscape(id), p, &out); err != nil {
		return models.Medicine{}, err
	}
	return out, nil
}

// DeleteMedicine deletes a medicine by id.
func (c *Client) DeleteMedicine(ctx context.Context, id string) error {
	return c.call(ctx, "medicine.delete", http.MethodDelete, "/medicine/delete/"+url.PathEscape(id), nil, nil)
}

// ListCategories fetches the medicine category references for the form
// dropdown.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.call(ctx, "category.list", http.MethodGet, "/category/list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
