package suppliers

import (
	"context"

	"pharmadesk/models"
)

// Remote is the slice of the backend client this screen needs.
type Remote interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	CreateSupplier(ctx context.Context, p models.SupplierPayload) (models.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, p models.SupplierPayload) (models.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}

// Saver is the submit-side subset used by the form controller.
type Saver interface {
	CreateSupplier(ctx context.Context, p models.SupplierPayload) (models.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, p models.SupplierPayload) (models.Supplier, error)
}

// Draft is the supplier form's editable state.
type Draft struct {
	ID      string
	Name    string
	Address string
	Phone   string
	Email   string
}

// PageData feeds the suppliers screen view.
type PageData struct {
	Rows      []models.Supplier
	Loading   bool
	LoadErr   string
	Flash     string
	ModalOpen bool
	Form      Form
}
