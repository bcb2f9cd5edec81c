package diagnostics

import (
	"context"

	"pharmadesk/models"
)

// Source reads the local failure log.
type Source interface {
	Recent(ctx context.Context, limit int) ([]models.FailureRecord, error)
}

// PageData drives the diagnostics page render.
type PageData struct {
	Rows    []models.FailureRecord
	LoadErr string
}
