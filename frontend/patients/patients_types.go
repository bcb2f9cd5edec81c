package patients

import (
	"context"

	"pharmadesk/models"
)

// Remote is the slice of the backend client this screen needs.
type Remote interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	CreatePatient(ctx context.Context, p models.PatientPayload) (models.Patient, error)
	UpdatePatient(ctx context.Context, id string, p models.PatientPayload) (models.Patient, error)
	DeletePatient(ctx context.Context, id string) error
}

// Saver is the submit-side subset used by the form controller.
type Saver interface {
	CreatePatient(ctx context.Context, p models.PatientPayload) (models.Patient, error)
	UpdatePatient(ctx context.Context, id string, p models.PatientPayload) (models.Patient, error)
}

// Draft is the patient form's editable state.
type Draft struct {
	ID        string
	Name      string
	BirthDate string
	Gender    models.Gender
	Phone     string
	Address   string
}

// PageData feeds the patients screen view.
type PageData struct {
	Rows      []models.Patient
	Loading   bool
	LoadErr   string
	Flash     string
	ModalOpen bool
	Form      Form
}
