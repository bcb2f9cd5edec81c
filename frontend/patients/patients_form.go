package patients

import (
	"context"
	"strings"
	"time"

	"pharmadesk/models"
)

// Form is the patient form controller. Values are immutable snapshots;
// every operation returns the next state.
type Form struct {
	Draft      Draft
	Submitting bool
	Err        string
}

// NewForm starts a form from an existing record (edit) or from defaults:
// gender male, birth date today.
func NewForm(existing *models.Patient, now time.Time) Form {
	draft := Draft{
		Gender:    models.GenderMale,
		BirthDate: now.Format("2006-01-02"),
	}
	if existing != nil {
		draft = Draft{
			ID:        existing.ID,
			Name:      existing.Name,
			BirthDate: existing.BirthDate,
			Gender:    existing.Gender,
			Phone:     existing.Phone,
			Address:   existing.Address,
		}
		if draft.Gender == "" {
			draft.Gender = models.GenderMale
		}
	}
	return Form{Draft: draft}
}

// SetField replaces exactly one draft field. Unknown names are ignored.
func (f Form) SetField(name, value string) Form {
	switch name {
	case "name":
		f.Draft.Name = value
	case "birthDate":
		f.Draft.BirthDate = value
	case "gender":
		f.Draft.Gender = models.Gender(value)
	case "phone":
		f.Draft.Phone = value
	case "address":
		f.Draft.Address = value
	}
	return f
}

func (f Form) validate() string {
	if strings.TrimSpace(f.Draft.Name) == "" {
		return "Patient name is required."
	}
	return ""
}

// Payload builds the request body. The fix route carries the id in the
// body, which the client fills from the id argument.
func (f Form) Payload() models.PatientPayload {
	return models.PatientPayload{
		Name:      f.Draft.Name,
		BirthDate: f.Draft.BirthDate,
		Gender:    f.Draft.Gender,
		Phone:     f.Draft.Phone,
		Address:   f.Draft.Address,
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
		_, err = remote.UpdatePatient(ctx, f.Draft.ID, f.Payload())
	} else {
		_, err = remote.CreatePatient(ctx, f.Payload())
	}
	f.Submitting = false
	if err != nil {
		f.Err = err.Error()
		return f, false
	}
	return f, true
}
