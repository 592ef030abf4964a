package billings

import (
	"context"
	"database/sql"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/queries"
	"hospital-service/internal/pkg/utils"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type billingPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	billingPostgresRepositoryInstance contracts.BillingRepository
	onceBillingPostgresRepository     sync.Once
)

func NewBillingPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.BillingRepository {
	onceBillingPostgresRepository.Do(func() {
		instance := &billingPostgresRepository{
			DB:  db,
			Log: logger,
		}
		billingPostgresRepositoryInstance = instance
	})
	return billingPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBilling(row rowScanner) (*models.Billing, error) {
	var billing models.Billing
	err := row.Scan(
		&billing.ID,
		&billing.InvoiceNumber,
		&billing.PatientID,
		&billing.PatientName,
		&billing.AppointmentID,
		&billing.BillingDate,
		&billing.Items,
		&billing.DiscountPercent,
		&billing.TaxPercent,
		&billing.TotalAmount,
		&billing.DiscountAmount,
		&billing.TaxAmount,
		&billing.NetAmount,
		&billing.TotalPaid,
		&billing.Status,
		&billing.CreatedAt,
		&billing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &billing, nil
}

// scanLockedBilling reads the plain columns returned by LockBillingForUpdate.
func scanLockedBilling(row rowScanner) (*models.Billing, error) {
	var billing models.Billing
	err := row.Scan(
		&billing.ID,
		&billing.InvoiceNumber,
		&billing.PatientID,
		&billing.AppointmentID,
		&billing.BillingDate,
		&billing.Items,
		&billing.DiscountPercent,
		&billing.TaxPercent,
		&billing.TotalAmount,
		&billing.DiscountAmount,
		&billing.TaxAmount,
		&billing.NetAmount,
		&billing.Status,
		&billing.CreatedAt,
		&billing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &billing, nil
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var (
		payment       models.Payment
		transactionID sql.NullString
		notes         sql.NullString
	)
	err := row.Scan(
		&payment.ID,
		&payment.BillingID,
		&payment.Amount,
		&payment.PaymentDate,
		&payment.PaymentMethod,
		&transactionID,
		&notes,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	payment.TransactionID = transactionID.String
	payment.Notes = notes.String
	return &payment, nil
}

func (repo *billingPostgresRepository) Create(ctx context.Context, billing *models.Billing) (*models.Billing, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("billingPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceNumberKey, billing.InvoiceNumber),
	)

	var billingID int64
	err := repo.DB.QueryRowContext(ctx, queries.InsertBilling,
		billing.InvoiceNumber,
		billing.PatientID,
		billing.AppointmentID,
		billing.Items,
		billing.DiscountPercent,
		billing.TaxPercent,
		billing.TotalAmount,
		billing.DiscountAmount,
		billing.TaxAmount,
		billing.NetAmount,
		billing.Status,
	).Scan(&billingID)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("billingPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
	)
	return repo.FindByID(ctx, billingID)
}

func (repo *billingPostgresRepository) FindByID(ctx context.Context, billingID int64) (*models.Billing, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("billingPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
	)

	billing, err := scanBilling(repo.DB.QueryRowContext(ctx, queries.GetBillingByID, billingID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("billingPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, billingID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("billingPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, billingID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("billingPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
	)
	return billing, nil
}

func (repo *billingPostgresRepository) FindAll(ctx context.Context, filter models.BillingFilter) ([]models.Billing, int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("billingPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, filter),
	)

	var total int
	err := repo.DB.QueryRowContext(ctx, queries.CountBillings, string(filter.Status), filter.PatientID).Scan(&total)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllBillings,
		string(filter.Status),
		filter.PatientID,
		filter.Limit(),
		filter.Offset(),
	)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	billings := []models.Billing{}
	for rows.Next() {
		billing, err := scanBilling(rows)
		if err != nil {
			repo.Log.Error("billingPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, 0, exceptions.ErrPostgresDBScanData(err)
		}
		billings = append(billings, *billing)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("billingPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("billingPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(billings)),
	)
	return billings, total, nil
}

func (repo *billingPostgresRepository) Update(ctx context.Context, billingID int64, mutate contracts.BillingMutation) (*models.Billing, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("billingPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
	)

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.Update error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	billing, err := scanLockedBilling(tx.QueryRowContext(ctx, queries.LockBillingForUpdate, billingID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("billingPostgresRepository.Update no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, billingID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("billingPostgresRepository.Update error locking row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, billingID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	totalPaid, err := sumPayments(ctx, tx, billingID)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.Update error summing payments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, billingID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	if err := mutate(billing, totalPaid); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, queries.UpdateBilling,
		billing.Items,
		billing.DiscountPercent,
		billing.TaxPercent,
		billing.TotalAmount,
		billing.DiscountAmount,
		billing.TaxAmount,
		billing.NetAmount,
		billing.Status,
		billingID,
	)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, billingID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	if err := tx.Commit(); err != nil {
		repo.Log.Error("billingPostgresRepository.Update error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("billingPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
		zap.String(constvars.LoggingStatusKey, string(billing.Status)),
	)
	return repo.FindByID(ctx, billingID)
}

func (repo *billingPostgresRepository) RecordPayment(ctx context.Context, payment *models.Payment) (*models.Payment, *models.Billing, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("billingPostgresRepository.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBillingIDKey, payment.BillingID),
	)

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.RecordPayment error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	billing, err := scanLockedBilling(tx.QueryRowContext(ctx, queries.LockBillingForUpdate, payment.BillingID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("billingPostgresRepository.RecordPayment no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, payment.BillingID),
		)
		return nil, nil, nil
	} else if err != nil {
		repo.Log.Error("billingPostgresRepository.RecordPayment error locking row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, payment.BillingID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrPostgresDBFindData(err)
	}

	var paymentDate interface{}
	if !payment.PaymentDate.IsZero() {
		paymentDate = payment.PaymentDate
	}

	recorded := *payment
	err = tx.QueryRowContext(ctx, queries.InsertPayment,
		payment.BillingID,
		payment.Amount,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.Notes,
		paymentDate,
	).Scan(&recorded.ID, &recorded.PaymentDate, &recorded.CreatedAt)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.RecordPayment error inserting payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, payment.BillingID),
			zap.Error(err),
		)
		return nil, nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	totalPaid, err := sumPayments(ctx, tx, payment.BillingID)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.RecordPayment error summing payments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, payment.BillingID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrPostgresDBFindData(err)
	}

	status := models.DeriveBillingStatus(billing.Status, totalPaid, billing.NetAmount)
	if _, err := tx.ExecContext(ctx, queries.UpdateBillingStatus, status, payment.BillingID); err != nil {
		repo.Log.Error("billingPostgresRepository.RecordPayment error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, payment.BillingID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	if err := tx.Commit(); err != nil {
		repo.Log.Error("billingPostgresRepository.RecordPayment error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("billingPostgresRepository.RecordPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBillingIDKey, payment.BillingID),
		zap.Int64(constvars.LoggingPaymentIDKey, recorded.ID),
		zap.String(constvars.LoggingTotalPaidKey, totalPaid.StringFixed(2)),
		zap.String(constvars.LoggingStatusKey, string(status)),
	)

	updated, err := repo.FindByID(ctx, payment.BillingID)
	if err != nil {
		return nil, nil, err
	}
	return &recorded, updated, nil
}

func (repo *billingPostgresRepository) SumByBilling(ctx context.Context, billingID int64) (decimal.Decimal, error) {
	requestID := utils.GetRequestID(ctx)

	totalPaid, err := sumPayments(ctx, repo.DB, billingID)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.SumByBilling error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBillingIDKey, billingID),
			zap.Error(err),
		)
		return decimal.Zero, exceptions.ErrPostgresDBFindData(err)
	}
	return totalPaid, nil
}

func (repo *billingPostgresRepository) FindPayments(ctx context.Context, billingID int64) ([]models.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("billingPostgresRepository.FindPayments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetPaymentsByBilling, billingID)
	if err != nil {
		repo.Log.Error("billingPostgresRepository.FindPayments error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			repo.Log.Error("billingPostgresRepository.FindPayments error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("billingPostgresRepository.FindPayments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(payments)),
	)
	return payments, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func sumPayments(ctx context.Context, q queryRower, billingID int64) (decimal.Decimal, error) {
	var totalPaid decimal.Decimal
	if err := q.QueryRowContext(ctx, queries.SumPaymentsByBilling, billingID).Scan(&totalPaid); err != nil {
		return decimal.Zero, err
	}
	return totalPaid, nil
}
