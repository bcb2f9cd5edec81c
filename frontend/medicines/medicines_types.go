package medicines

import (
	"context"

	"pharmadesk/models"
)

// Remote is the slice of the backend client this screen needs.
type Remote interface {
	ListMedicines(ctx context.Context) ([]models.Medicine, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	CreateMedicine(ctx context.Context, p models.MedicinePayload) (models.Medicine, error)
	UpdateMedicine(ctx context.Context, id string, p models.MedicinePayload) (models.Medicine, error)
	DeleteMedicine(ctx context.Context, id string) error
}

// Saver is the submit-side subset used by the form controller.
type Saver interface {
	CreateMedicine(ctx context.Context, p models.MedicinePayload) (models.Medicine, error)
	UpdateMedicine(ctx context.Context, id string, p models.MedicinePayload) (models.Medicine, error)
}

// Draft is the medicine form's editable state. StockOnHand and
// PurchasePrice are shown read-only; the backend derives them from intake
// batches.
type Draft struct {
	ID            string
	Name          string
	Unit          models.Unit
	CategoryID    string
	SupplierID    string
	StockOnHand   int64
	PurchasePrice float64
	SalePrice     float64
}

// PageData feeds the medicines screen view.
type PageData struct {
	Rows       []models.Medicine
	Loading    bool
	LoadErr    string
	Flash      string
	ModalOpen  bool
	Form       Form
	Categories []models.Category
	Suppliers  []models.Supplier
}
