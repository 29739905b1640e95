package statements

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

type fakeClient struct {
	statement *models.MonthlyStatement
	file      *models.StatementFile
	err       error
	calls     int
}

func (f *fakeClient) MonthlyStatement(_ context.Context, year, month int) (*models.MonthlyStatement, error) {
	f.calls++
	return f.statement, f.err
}

func (f *fakeClient) GenerateStatementPDF(_ context.Context, year, month int) (*models.StatementFile, error) {
	f.calls++
	return f.file, f.err
}

func newTestService(fc *fakeClient) *Service {
	s := NewService(fc, logging.Nop())
	s.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestMonthly(t *testing.T) {
	fc := &fakeClient{statement: &models.MonthlyStatement{Year: 2025, Month: 5, TotalIncome: 1200}}
	s := newTestService(fc)

	st, err := s.Monthly(context.Background(), 2025, 5)
	require.NoError(t, err)
	require.Equal(t, 1200.0, st.TotalIncome)
}

func TestMonthly_Validation(t *testing.T) {
	fc := &fakeClient{}
	s := newTestService(fc)
	ctx := context.Background()

	for _, tc := range []struct{ year, month int }{
		{2025, 0},
		{2025, 13},
		{2026, 1},  // future year
		{2025, 7},  // future month of the current year
	} {
		_, err := s.Monthly(ctx, tc.year, tc.month)
		require.True(t, api.IsValidation(err), "year=%d month=%d", tc.year, tc.month)
	}
	require.Equal(t, 0, fc.calls)
}

func TestMonthly_CurrentMonthAllowed(t *testing.T) {
	fc := &fakeClient{statement: &models.MonthlyStatement{Year: 2025, Month: 6}}
	s := newTestService(fc)

	_, err := s.Monthly(context.Background(), 2025, 6)
	require.NoError(t, err)
}

func TestGeneratePDF_ReturnsURL(t *testing.T) {
	fc := &fakeClient{file: &models.StatementFile{URL: "https://files.example.com/stmt-2025-05.pdf"}}
	s := newTestService(fc)

	file, err := s.GeneratePDF(context.Background(), 2025, 5)
	require.NoError(t, err)
	require.Equal(t, "https://files.example.com/stmt-2025-05.pdf", file.URL)
}
