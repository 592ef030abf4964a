package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"

	"github.com/shopspring/decimal"
)

// BillingMutation is applied to a bill while its row is locked. totalPaid is the sum of all
// stored payments for the bill.
type BillingMutation func(billing *models.Billing, totalPaid decimal.Decimal) error

type BillingRepository interface {
	Create(ctx context.Context, billing *models.Billing) (*models.Billing, error)
	FindByID(ctx context.Context, billingID int64) (*models.Billing, error)
	FindAll(ctx context.Context, filter models.BillingFilter) ([]models.Billing, int, error)
	// Update locks the bill, applies mutate and persists items, percentages, amounts and status.
	Update(ctx context.Context, billingID int64, mutate BillingMutation) (*models.Billing, error)
	// RecordPayment locks the bill, inserts the payment, sums every stored payment and persists
	// the derived status, all in one transaction.
	RecordPayment(ctx context.Context, payment *models.Payment) (*models.Payment, *models.Billing, error)
	SumByBilling(ctx context.Context, billingID int64) (decimal.Decimal, error)
	FindPayments(ctx context.Context, billingID int64) ([]models.Payment, error)
}

type BillingUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.CreateBilling) (*models.Billing, error)
	FindByID(ctx context.Context, actor models.ActorContext, billingID int64) (*models.Billing, error)
	FindAll(ctx context.Context, actor models.ActorContext, filter models.BillingFilter) ([]models.Billing, int, error)
	FindByPatient(ctx context.Context, actor models.ActorContext, patientID int64, pagination models.Pagination) ([]models.Billing, int, error)
	Update(ctx context.Context, actor models.ActorContext, billingID int64, request *requests.UpdateBilling) (*models.Billing, error)
	Cancel(ctx context.Context, actor models.ActorContext, billingID int64) (*models.Billing, error)
	RecordPayment(ctx context.Context, actor models.ActorContext, billingID int64, request *requests.RecordPayment) (*models.Payment, *models.Billing, error)
	FindPayments(ctx context.Context, actor models.ActorContext, billingID int64) ([]models.Payment, error)
}
