package suppliers

import (
	"context"
	"strings"

	"pharmadesk/models"
)

// Form is the supplier form controller. Values are immutable snapshots;
// every operation returns the next state.
type Form struct {
	Draft      Draft
	Submitting bool
	Err        string
}

// NewForm starts a form from an existing record (edit) or blank (add).
func NewForm(existing *models.Supplier) Form {
	var draft Draft
	if existing != nil {
		draft = Draft{
			ID:      existing.ID,
			Name:    existing.Name,
			Address: existing.Address,
			Phone:   existing.Phone,
			Email:   existing.Email,
		}
	}
	return Form{Draft: draft}
}

// SetField replaces exactly one draft field. Unknown names are ignored.
func (f Form) SetField(name, value string) Form {
	switch name {
	case "name":
		f.Draft.Name = value
	case "address":
		f.Draft.Address = value
	case "phone":
		f.Draft.Phone = value
	case "email":
		f.Draft.Email = value
	}
	return f
}

func (f Form) validate() string {
	if strings.TrimSpace(f.Draft.Name) == "" {
		return "Supplier name is required."
	}
	return ""
}

// Payload builds the request body. The fix route carries the id in the
// body, which the client fills from the id argument; the form leaves it
// out here.
func (f Form) Payload() models.SupplierPayload {
	return models.SupplierPayload{
		Name:    f.Draft.Name,
		Address: f.Draft.Address,
		Phone:   f.Draft.Phone,
		Email:   f.Draft.Email,
	}
}

// Submit validates and dispatches update when the draft carries an id,
// create otherwise. On failure the returned form keeps the draft intact
// with the error slot filled.
func (f Form) Submit(ctx context.Context, remote Saver) (Form, bool) {
	if msg := f.validate(); msg != "" {
		f.Err = msg
		return f, false
	}

	f.Submitting = true
	f.Err = ""
	var err error
	if f.Draft.ID != "" {
		_, err = remote.UpdateSupplier(ctx, f.Draft.ID, f.Payload())
	} else {
		_, err = remote.CreateSupplier(ctx, f.Payload())
	}
	f.Submitting = false
	if err != nil {
		f.Err = err.Error()
		return f, false
	}
	return f, true
}
