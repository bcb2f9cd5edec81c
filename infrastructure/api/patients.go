package api

import (
	"context"
	"net/http"
	"net/url"

	"pharmadesk/models"
)

// ListPatients fetches all patients. The patient resource serves its
// collection from the bare path.
func (c *Client) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var out []models.Patient
	if err := c.call(ctx, "patient.list", http.MethodGet, "/patient", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePatient submits a new patient.
func (c *Client) CreatePatient(ctx context.Context, p models.PatientPayload) (models.Patient, error) {
	p.ID = ""
	var out models.Patient
	if err := c.call(ctx, "patient.create", http.MethodPost, "/patient/add", p, &out); err != nil {
		return models.Patient{}, err
	}
	return out, nil
}

// UpdatePatient updates a patient; the fix route expects the id in the body.
// When the backend answers with an empty body the submitted fields are
// echoed back so callers still see the saved record.
func (c *Client) UpdatePatient(ctx context.Context, id string, p models.PatientPayload) (models.Patient, error) {
	p.ID = id
	var out models.Patient
	if err := c.call(ctx, "patient.update", http.MethodPut, "/patient/fix", p, &out); err != nil {
		return models.Patient{}, err
	}
	if out.ID == "" {
		out = models.Patient{
			ID:        id,
			Name:      p.Name,
			BirthDate: p.BirthDate,
			Gender:    p.Gender,
			Phone:     p.Phone,
			Address:   p.Address,
		}
	}
	return out, nil
}

// DeletePatient deletes a patient by id.
func (c *Client) DeletePatient(ctx context.Context, id string) error {
	return c.call(ctx, "patient.delete", http.MethodDelete, "/patient/delete/"+url.PathEscape(id), nil, nil)
}
