package dashboard

import (
	"context"
	"hospital-service/internal/pkg/queries"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardPostgresRepository_GetStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &dashboardPostgresRepository{DB: db, Log: zap.NewNop()}

	mock.ExpectQuery(regexp.QuoteMeta(queries.CountDashboardTotals)).
		WithArgs("2025-11-20").
		WillReturnRows(sqlmock.NewRows([]string{"patients", "doctors", "staff", "today", "new"}).AddRow(120, 8, 14, 6, 3))
	mock.ExpectQuery(regexp.QuoteMeta(queries.CountAppointmentsByStatus)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Scheduled", 4).
			AddRow("No Show", 2))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetMonthlyRevenue)).
		WithArgs("2025-11-20").
		WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow("1079.10", 1))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetPendingAmount)).
		WillReturnRows(sqlmock.NewRows([]string{"pending"}).AddRow("0.00"))

	stats, err := repo.GetStats(context.Background(), time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(14), stats.TotalStaff)
	assert.Equal(t, int64(2), stats.AppointmentsByStatus["No Show"])
	assert.True(t, decimal.RequireFromString("1079.10").Equal(stats.MonthlyRevenue))
	assert.True(t, stats.PendingAmount.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardPostgresRepository_GetRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &dashboardPostgresRepository{DB: db, Log: zap.NewNop()}
	since := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)
	day := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(queries.GetRevenueTotals)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"total", "paid", "pending"}).AddRow("2158.20", "1079.10", "1079.10"))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetRevenueByPaymentMethod)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"method", "count", "sum"}).
			AddRow("Cash", 1, "500.00").
			AddRow("Card", 1, "579.10"))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetDailyRevenue)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "sum"}).AddRow(day, "1079.10"))

	revenue, err := repo.GetRevenue(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, revenue.ByMethod, 2)
	assert.Equal(t, "Cash", revenue.ByMethod[0].PaymentMethod)
	require.Len(t, revenue.Daily, 1)
	assert.True(t, decimal.RequireFromString("1079.10").Equal(revenue.Daily[0].Revenue))
	assert.NoError(t, mock.ExpectationsWereMet())
}
