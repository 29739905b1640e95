// Package statements implements monthly statement retrieval and PDF export.
package statements

import (
	"context"
	"time"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// Client is the slice of the API client the service needs.
type Client interface {
	MonthlyStatement(ctx context.Context, year, month int) (*models.MonthlyStatement, error)
	GenerateStatementPDF(ctx context.Context, year, month int) (*models.StatementFile, error)
}

type Service struct {
	api Client
	log logging.Logger
	now func() time.Time
}

func NewService(api Client, log logging.Logger) *Service {
	return &Service{api: api, log: log, now: time.Now}
}

// validPeriod rejects months outside the calendar and periods in the future.
func (s *Service) validPeriod(year, month int) error {
	if month < 1 || month > 12 {
		return &api.ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}
	now := s.now()
	if year > now.Year() || (year == now.Year() && time.Month(month) > now.Month()) {
		return &api.ValidationError{Field: "period", Reason: "must not be in the future"}
	}
	return nil
}

// Monthly returns the aggregated statement for the given period.
func (s *Service) Monthly(ctx context.Context, year, month int) (*models.MonthlyStatement, error) {
	if err := s.validPeriod(year, month); err != nil {
		return nil, err
	}
	return s.api.MonthlyStatement(ctx, year, month)
}

// GeneratePDF asks the server to render the statement as a PDF. The document
// is produced and stored server-side; the caller receives a download URL.
func (s *Service) GeneratePDF(ctx context.Context, year, month int) (*models.StatementFile, error) {
	if err := s.validPeriod(year, month); err != nil {
		return nil, err
	}
	file, err := s.api.GenerateStatementPDF(ctx, year, month)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "statement generated", "year", year, "month", month, "url", file.URL)
	return file, nil
}
