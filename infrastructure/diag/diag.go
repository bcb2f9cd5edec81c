package diag

import (
	"context"
	"log/slog"

	"pharmadesk/infrastructure/sqlite"
	"pharmadesk/models"
)

// Service persists diagnostic records for failed backend calls.
type Service struct {
	db *sqlite.DB
}

func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// Failure describes one failed backend call.
type Failure struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Message    string
	RequestID  string
}

// RecordFailure writes the failure to the local diagnostics store. A write
// error is logged and swallowed so diagnostics can never mask the original
// failure.
func (s *Service) RecordFailure(ctx context.Context, f Failure) {
	if s == nil || s.db == nil {
		return
	}
	record := &models.FailureRecord{
		Op:         f.Op,
		Method:     f.Method,
		Path:       f.Path,
		StatusCode: f.StatusCode,
		Message:    f.Message,
		RequestID:  f.RequestID,
	}
	// Single-row append on the serialized write handle, no explicit tx.
	if _, err := s.db.W.NewInsert().Model(record).Exec(ctx); err != nil {
		slog.Error("diag: record failure", slog.String("op", f.Op), slog.Any("err", err))
	}
}

// Recent returns the newest records, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.FailureRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	var records []models.FailureRecord
	err := s.db.R.NewSelect().
		Model(&records).
		OrderExpr("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}
