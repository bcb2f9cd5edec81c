package intake

import (
	"context"

	"pharmadesk/models"
)

// Remote is the slice of the backend client the intake screens need.
type Remote interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	ListMedicines(ctx context.Context) ([]models.Medicine, error)
	CreateReceipt(ctx context.Context, p models.ReceiptPayload) (models.Receipt, error)
	ListHistory(ctx context.Context) ([]models.HistoryRow, error)
}

// Receiver is the submit-side subset used by the editor.
type Receiver interface {
	CreateReceipt(ctx context.Context, p models.ReceiptPayload) (models.Receipt, error)
}

// Row is one editable line of the intake receipt under construction.
// MedicineID 0 means no medicine chosen yet.
type Row struct {
	MedicineID int64
	Quantity   int64
	UnitCost   float64
	Expiry     string
}

// EditorPageData feeds the intake editor view.
type EditorPageData struct {
	Editor    *Editor
	Suppliers []models.Supplier
	Medicines []models.Medicine
	Flash     string
}

// HistoryPageData feeds the intake history view.
type HistoryPageData struct {
	Rows    []models.HistoryRow
	Loading bool
	LoadErr string
	Flash   string
}
