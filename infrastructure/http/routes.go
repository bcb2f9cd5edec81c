package http

import (
	"github.com/go-chi/chi/v5"

	diagnosticspage "pharmadesk/frontend/diagnostics"
	intakepage "pharmadesk/frontend/intake"
	medicinespage "pharmadesk/frontend/medicines"
	patientspage "pharmadesk/frontend/patients"
	supplierspage "pharmadesk/frontend/suppliers"
)

// RegisterAdminRoutes wires the back-office screens onto the router.
func (s *Server) RegisterAdminRoutes(r chi.Router) chi.Router {
	r.Get("/medicines", medicinespage.MedicinesPageQueryHandler(s.Client))
	r.Post("/medicines/save", medicinespage.SaveMedicineCommandHandler(s.Client))
	r.Post("/medicines/delete/{id}", medicinespage.DeleteMedicineCommandHandler(s.Client))

	r.Get("/suppliers", supplierspage.SuppliersPageQueryHandler(s.Client))
	r.Post("/suppliers/save", supplierspage.SaveSupplierCommandHandler(s.Client))
	r.Post("/suppliers/delete/{id}", supplierspage.DeleteSupplierCommandHandler(s.Client))

	r.Get("/patients", patientspage.PatientsPageQueryHandler(s.Client))
	r.Post("/patients/save", patientspage.SavePatientCommandHandler(s.Client))
	r.Post("/patients/delete/{id}", patientspage.DeletePatientCommandHandler(s.Client))

	r.Get("/intake", intakepage.IntakePageQueryHandler(s.Client))
	r.Post("/intake", intakepage.IntakeCommandHandler(s.Client))
	r.Get("/intake/history", intakepage.HistoryPageQueryHandler(s.Client))
	r.Get("/intake/history.csv", intakepage.ExportHistoryCSVHandler(s.Client))
	r.Get("/intake/history.pdf", intakepage.PrintHistoryPDFHandler(s.Client))

	r.Get("/diagnostics", diagnosticspage.DiagnosticsPageQueryHandler(s.Diag))

	return r
}
