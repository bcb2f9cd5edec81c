package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Unit is the unit-of-measure a medicine is sold in.
type Unit string

const (
	UnitPiece  Unit = "piece"
	UnitStrip  Unit = "strip"
	UnitBox    Unit = "box"
	UnitBottle Unit = "bottle"
	UnitTube   Unit = "tube"
	UnitPack   Unit = "pack"
)

// Units lists every unit-of-measure in dropdown order.
func Units() []Unit {
	return []Unit{UnitPiece, UnitStrip, UnitBox, UnitBottle, UnitTube, UnitPack}
}

// ValidUnit reports whether u is one of the known units.
func ValidUnit(u Unit) bool {
	for _, known := range Units() {
		if u == known {
			return true
		}
	}
	return false
}

// Gender values accepted by the patient backend.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists every gender value in dropdown order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Medicine as served by the backend. StockOnHand and PurchasePrice are
// derived from intake batches server-side and never submitted.
type Medicine struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Unit          Unit    `json:"unit"`
	CategoryID    string  `json:"categoryId"`
	SupplierID    string  `json:"supplierId"`
	StockOnHand   int64   `json:"stockOnHand"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalePrice     float64 `json:"salePrice"`
}

// MedicinePayload carries the fields the backend accepts on add/fix.
type MedicinePayload struct {
	Name       string  `json:"name"`
	Unit       Unit    `json:"unit"`
	CategoryID string  `json:"categoryId"`
	SupplierID string  `json:"supplierId"`
	SalePrice  float64 `json:"salePrice"`
}

// Category is a read-only reference entity used by the medicine form.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SupplierPayload carries the editable supplier fields. The backend's fix
// route expects the id inside the body, so it is included here and left
// empty on add.
type SupplierPayload struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Gender    Gender `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// PatientPayload mirrors Patient minus the server-assigned id on add.
type PatientPayload struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Gender    Gender `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ReceiptLine is one line of an intake receipt payload, already normalized
// to numeric ids and timestamps.
type ReceiptLine struct {
	MedicineID int64   `json:"medicineId"`
	Quantity   int64   `json:"quantity"`
	UnitCost   float64 `json:"unitCost"`
	ExpiryDate string  `json:"expiryDate"`
}

// ReceiptPayload is the composite intake receipt create request. The receipt
// and all its lines are created by the backend in one operation.
type ReceiptPayload struct {
	SupplierID int64         `json:"supplierId"`
	IntakeDate string        `json:"intakeDate"`
	LineItems  []ReceiptLine `json:"lineItems"`
}

// Receipt is the backend's echo of a created intake receipt.
type Receipt struct {
	ID         string        `json:"id"`
	SupplierID int64         `json:"supplierId"`
	IntakeDate string        `json:"intakeDate"`
	LineItems  []ReceiptLine `json:"lineItems"`
}

// HistoryRow is one server-joined row of the intake history view. Remaining
// tracks what is left of that batch after sales.
type HistoryRow struct {
	ReceiptID    string  `json:"receiptId"`
	IntakeDate   string  `json:"intakeDate"`
	MedicineName string  `json:"medicineName"`
	SupplierName string  `json:"supplierName"`
	Quantity     int64   `json:"quantity"`
	Remaining    int64   `json:"remaining"`
	UnitCost     float64 `json:"unitCost"`
	ExpiryDate   string  `json:"expiryDate"`
}

// Depleted reports whether the batch has been fully sold.
func (r HistoryRow) Depleted() bool {
	return r.Remaining == 0
}

// ExpiringSoon reports whether the batch expires within 30 days of now.
// Depleted batches are never flagged.
func (r HistoryRow) ExpiringSoon(now time.Time) bool {
	if r.Depleted() {
		return false
	}
	expiry, err := time.Parse(time.RFC3339, r.ExpiryDate)
	if err != nil {
		if expiry, err = time.Parse("2006-01-02", r.ExpiryDate); err != nil {
			return false
		}
	}
	return expiry.Sub(now) < 30*24*time.Hour
}

// FailureRecord is one diagnostic log entry written when a backend call
// fails.
type FailureRecord struct {
	bun.BaseModel `bun:"table:api_failures,alias:af"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Op         string    `bun:"op,notnull"`
	Method     string    `bun:"method,notnull"`
	Path       string    `bun:"path,notnull"`
	StatusCode int       `bun:"status_code,notnull"`
	Message    string    `bun:"message,notnull"`
	RequestID  string    `bun:"request_id,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
