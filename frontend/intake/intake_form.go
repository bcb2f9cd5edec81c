package intake

import (
	"context"
	"fmt"
	"time"

	"pharmadesk/frontend/shared/forms"
	"pharmadesk/models"
)

// Editor drives the intake receipt under construction: one supplier, one
// intake date, and an ordered list of line rows. It always holds at least
// one row.
type Editor struct {
	SupplierID int64
	IntakeDate string
	Rows       []Row

	Submitting bool
	Err        string
}

func blankRow() Row {
	return Row{MedicineID: 0, Quantity: 1, UnitCost: 0, Expiry: ""}
}

// NewEditor starts an empty receipt: no supplier, intake date today, and a
// single blank row.
func NewEditor(now time.Time) *Editor {
	return &Editor{
		IntakeDate: now.Format("2006-01-02"),
		Rows:       []Row{blankRow()},
	}
}

// SetSupplier coerces the posted supplier id. Garbage coerces to 0, which
// reads as no supplier chosen.
func (e *Editor) SetSupplier(value string) {
	e.SupplierID = forms.Integer(value)
}

func (e *Editor) SetIntakeDate(value string) {
	if value != "" {
		e.IntakeDate = value
	}
}

// CanAddRow reports whether another row may be appended. Rows cannot be
// added until a supplier is chosen.
func (e *Editor) CanAddRow() bool {
	return e.SupplierID > 0
}

// AddRow appends a fresh blank row. Refused while no supplier is chosen.
func (e *Editor) AddRow() {
	if !e.CanAddRow() {
		return
	}
	e.Rows = append(e.Rows, blankRow())
}

// RemoveRow drops the row at index i, preserving the order of the rest.
// The last remaining row can never be removed.
func (e *Editor) RemoveRow(i int) {
	if len(e.Rows) <= 1 || i < 0 || i >= len(e.Rows) {
		return
	}
	e.Rows = append(e.Rows[:i], e.Rows[i+1:]...)
}

// EditRow replaces exactly one field of exactly one row. Out-of-range
// indexes and unknown field names are ignored.
func (e *Editor) EditRow(i int, field, value string) {
	if i < 0 || i >= len(e.Rows) {
		return
	}
	row := &e.Rows[i]
	switch field {
	case "medicineId":
		row.MedicineID = forms.Integer(value)
	case "quantity":
		row.Quantity = forms.Integer(value)
	case "unitCost":
		row.UnitCost = forms.Number(value)
	case "expiryDate":
		row.Expiry = value
	}
}

// SelectableMedicines returns the medicines offered on every row. The
// supplier choice does not narrow the dropdown; the full catalog stays
// selectable so receipts can record stock bought through a reseller.
func (e *Editor) SelectableMedicines(all []models.Medicine) []models.Medicine {
	return all
}

// BuildPayload validates the whole editor and assembles the composite
// request. Checks run supplier first, then each row in order; within a row
// medicine, quantity, cost, then expiry. Row messages are 1-based. A
// non-empty message means the payload must not be sent.
func (e *Editor) BuildPayload() (models.ReceiptPayload, string) {
	if e.SupplierID <= 0 {
		return models.ReceiptPayload{}, "Please choose a supplier."
	}
	intakeDate, err := normalizeDate(e.IntakeDate)
	if err != nil {
		return models.ReceiptPayload{}, "Intake date is invalid."
	}

	lines := make([]models.ReceiptLine, 0, len(e.Rows))
	for i, row := range e.Rows {
		n := i + 1
		if row.MedicineID <= 0 {
			return models.ReceiptPayload{}, fmt.Sprintf("Row %d: please choose a medicine.", n)
		}
		if row.Quantity <= 0 {
			return models.ReceiptPayload{}, fmt.Sprintf("Row %d: quantity must be greater than zero.", n)
		}
		if row.UnitCost < 0 {
			return models.ReceiptPayload{}, fmt.Sprintf("Row %d: unit cost must be zero or greater.", n)
		}
		if row.Expiry == "" {
			return models.ReceiptPayload{}, fmt.Sprintf("Row %d: expiry date is required.", n)
		}
		expiry, err := normalizeDate(row.Expiry)
		if err != nil {
			return models.ReceiptPayload{}, fmt.Sprintf("Row %d: expiry date is invalid.", n)
		}
		lines = append(lines, models.ReceiptLine{
			MedicineID: row.MedicineID,
			Quantity:   row.Quantity,
			UnitCost:   row.UnitCost,
			ExpiryDate: expiry,
		})
	}

	return models.ReceiptPayload{
		SupplierID: e.SupplierID,
		IntakeDate: intakeDate,
		LineItems:  lines,
	}, ""
}

// Submit builds the payload and posts the whole receipt as one request.
// Validation failures never reach the network. On failure the editor keeps
// every row intact with the error slot filled.
func (e *Editor) Submit(ctx context.Context, remote Receiver) (models.Receipt, bool) {
	payload, msg := e.BuildPayload()
	if msg != "" {
		e.Err = msg
		return models.Receipt{}, false
	}

	e.Submitting = true
	e.Err = ""
	created, err := remote.CreateReceipt(ctx, payload)
	e.Submitting = false
	if err != nil {
		e.Err = err.Error()
		return models.Receipt{}, false
	}
	return created, true
}

// normalizeDate accepts a date input value or an already-normalized
// timestamp and returns an RFC 3339 timestamp at midnight UTC.
func normalizeDate(value string) (string, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}
