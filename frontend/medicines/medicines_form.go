package medicines

import (
	"context"
	"strings"

	"pharmadesk/frontend/shared/forms"
	"pharmadesk/models"
)

// Form is the medicine form controller: a draft record, a submitting flag,
// and an error slot. Values are immutable snapshots; every operation
// returns the next state.
type Form struct {
	Draft      Draft
	Submitting bool
	Err        string
}

// NewForm starts a form from an existing record (edit) or from defaults
// (add). The id is carried through but never user-editable.
func NewForm(existing *models.Medicine) Form {
	draft := Draft{Unit: models.UnitPiece}
	if existing != nil {
		draft = Draft{
			ID:            existing.ID,
			Name:          existing.Name,
			Unit:          existing.Unit,
			CategoryID:    existing.CategoryID,
			SupplierID:    existing.SupplierID,
			StockOnHand:   existing.StockOnHand,
			PurchasePrice: existing.PurchasePrice,
			SalePrice:     existing.SalePrice,
		}
		if draft.Unit == "" {
			draft.Unit = models.UnitPiece
		}
	}
	return Form{Draft: draft}
}

// SetField replaces exactly one draft field, preserving all others.
// Numeric fields coerce text at the point of assignment; unknown names are
// ignored.
func (f Form) SetField(name, value string) Form {
	switch name {
	case "name":
		f.Draft.Name = value
	case "unit":
		f.Draft.Unit = models.Unit(value)
	case "categoryId":
		f.Draft.CategoryID = value
	case "supplierId":
		f.Draft.SupplierID = value
	case "salePrice":
		f.Draft.SalePrice = forms.Number(value)
	}
	return f
}

// validate runs in fixed order: required selections, required text, then
// numeric bounds. The first failure wins.
func (f Form) validate() string {
	if f.Draft.CategoryID == "" {
		return "Please choose a category."
	}
	if f.Draft.SupplierID == "" {
		return "Please choose a supplier."
	}
	if strings.TrimSpace(f.Draft.Name) == "" {
		return "Medicine name is required."
	}
	if f.Draft.SalePrice < 0 {
		return "Sale price must be zero or greater."
	}
	return ""
}

// Payload builds the minimal body the backend accepts on add/fix.
func (f Form) Payload() models.MedicinePayload {
	return models.MedicinePayload{
		Name:       f.Draft.Name,
		Unit:       f.Draft.Unit,
		CategoryID: f.Draft.CategoryID,
		SupplierID: f.Draft.SupplierID,
		SalePrice:  f.Draft.SalePrice,
	}
}

// Submit validates and dispatches update when the draft carries an id,
// create otherwise. Validation failures never reach the network. The second
// result reports whether the save went through; on failure the returned
// form keeps the draft intact with the error slot filled.
func (f Form) Submit(ctx context.Context, remote Saver) (Form, bool) {
	if msg := f.validate(); msg != "" {
		f.Err = msg
		return f, false
	}

	f.Submitting = true
	f.Err = ""
	var err error
	if f.Draft.ID != "" {
		_, err = remote.UpdateMedicine(ctx, f.Draft.ID, f.Payload())
	} else {
		_, err = remote.CreateMedicine(ctx, f.Payload())
	}
	f.Submitting = false
	if err != nil {
		f.Err = err.Error()
		return f, false
	}
	return f, true
}
