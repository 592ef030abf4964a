package billings

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/access"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxPercent = decimal.NewFromInt(100)

type billingUsecase struct {
	BillingRepository     contracts.BillingRepository
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewBillingUsecase(
	billingRepository contracts.BillingRepository,
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.BillingUsecase {
	return &billingUsecase{
		BillingRepository:     billingRepository,
		PatientRepository:     patientRepository,
		AppointmentRepository: appointmentRepository,
		EventPublisher:        eventPublisher,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *billingUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreateBilling) (*models.Billing, error) {
	if err := access.Authorize(actor, access.ResourceBilling, models.Owner{PatientID: request.PatientID}, access.ActionWrite); err != nil {
		return nil, err
	}

	items, err := toBillingItems(request.Items)
	if err != nil {
		return nil, err
	}
	if err := validatePercents(request.DiscountPercent, request.TaxPercent); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourcePatient), request.PatientID)
	}
	if request.AppointmentID != nil {
		if err := uc.ensureAppointment(ctx, *request.AppointmentID, request.PatientID); err != nil {
			return nil, err
		}
	}

	billing := &models.Billing{
		PatientID:       request.PatientID,
		AppointmentID:   request.AppointmentID,
		Items:           items,
		DiscountPercent: request.DiscountPercent,
		TaxPercent:      request.TaxPercent,
		Status:          models.BillingStatusPending,
	}
	billing.ApplyTotals(models.CalculateBillingTotals(items, request.DiscountPercent, request.TaxPercent))

	created, err := uc.createWithInvoiceNumber(ctx, billing)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "billing_created", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingBillingIDKey, created.ID),
		zap.String(constvars.LoggingInvoiceNumberKey, created.InvoiceNumber),
		zap.String(constvars.LoggingNetAmountKey, created.NetAmount.StringFixed(2)),
	)
	uc.publish(ctx, constvars.EventBillingCreated, created)
	return created, nil
}

// createWithInvoiceNumber regenerates the invoice number whenever the insert collides on
// billings_invoice_number_key.
func (uc *billingUsecase) createWithInvoiceNumber(ctx context.Context, billing *models.Billing) (*models.Billing, error) {
	requestID := utils.GetRequestID(ctx)

	var lastErr error
	for attempt := 1; attempt <= constvars.GeneratedNumberMaxAttempts; attempt++ {
		billing.InvoiceNumber = utils.GenerateInvoiceNumber(uc.now())

		created, err := uc.BillingRepository.Create(ctx, billing)
		if err == nil {
			return created, nil
		}

		constraint, ok := utils.UniqueViolation(err)
		if !ok || constraint != constvars.ConstraintInvoiceNumberKey {
			return nil, err
		}

		uc.Log.Warn("billingUsecase.Create invoice number collision, regenerating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInvoiceNumberKey, billing.InvoiceNumber),
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
		lastErr = err
	}

	return nil, exceptions.ErrGeneratedNumberExhausted(lastErr, "invoice_number", constvars.GeneratedNumberMaxAttempts)
}

func (uc *billingUsecase) FindByID(ctx context.Context, actor models.ActorContext, billingID int64) (*models.Billing, error) {
	billing, err := uc.findBilling(ctx, billingID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourceBilling, billing.Owner(), access.ActionRead); err != nil {
		return nil, err
	}
	return billing, nil
}

func (uc *billingUsecase) FindAll(ctx context.Context, actor models.ActorContext, filter models.BillingFilter) ([]models.Billing, int, error) {
	if actor.IsPatient() {
		filter.PatientID = actor.RefID
	}

	if err := access.Authorize(actor, access.ResourceBilling, models.Owner{PatientID: filter.PatientID}, access.ActionRead); err != nil {
		return nil, 0, err
	}
	return uc.BillingRepository.FindAll(ctx, filter)
}

func (uc *billingUsecase) FindByPatient(ctx context.Context, actor models.ActorContext, patientID int64, pagination models.Pagination) ([]models.Billing, int, error) {
	if err := access.Authorize(actor, access.ResourceBilling, models.Owner{PatientID: patientID}, access.ActionRead); err != nil {
		return nil, 0, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, 0, err
	}
	if patient == nil {
		return nil, 0, exceptions.ErrNotFound(nil, string(access.ResourcePatient), patientID)
	}

	return uc.BillingRepository.FindAll(ctx, models.BillingFilter{PatientID: patientID, Pagination: pagination})
}

func (uc *billingUsecase) Update(ctx context.Context, actor models.ActorContext, billingID int64, request *requests.UpdateBilling) (*models.Billing, error) {
	billing, err := uc.findBilling(ctx, billingID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourceBilling, billing.Owner(), access.ActionWrite); err != nil {
		return nil, err
	}
	if billing.Status == models.BillingStatusCancelled {
		return nil, exceptions.ErrBillingCancelled(nil, billingID)
	}

	var items models.BillingItems
	if request.Items != nil {
		items, err = toBillingItems(*request.Items)
		if err != nil {
			return nil, err
		}
	}

	updated, err := uc.BillingRepository.Update(ctx, billingID, func(locked *models.Billing, totalPaid decimal.Decimal) error {
		if locked.Status == models.BillingStatusCancelled {
			return exceptions.ErrBillingCancelled(nil, billingID)
		}
		if items != nil {
			locked.Items = items
		}
		if request.DiscountPercent != nil {
			locked.DiscountPercent = *request.DiscountPercent
		}
		if request.TaxPercent != nil {
			locked.TaxPercent = *request.TaxPercent
		}
		if err := validatePercents(locked.DiscountPercent, locked.TaxPercent); err != nil {
			return err
		}

		locked.ApplyTotals(models.CalculateBillingTotals(locked.Items, locked.DiscountPercent, locked.TaxPercent))
		locked.Status = models.DeriveBillingStatus(locked.Status, totalPaid, locked.NetAmount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceBilling), billingID)
	}

	utils.LogBusinessEvent(uc.Log, "billing_updated", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
		zap.String(constvars.LoggingNetAmountKey, updated.NetAmount.StringFixed(2)),
		zap.String(constvars.LoggingStatusKey, string(updated.Status)),
	)
	return updated, nil
}

func (uc *billingUsecase) Cancel(ctx context.Context, actor models.ActorContext, billingID int64) (*models.Billing, error) {
	billing, err := uc.findBilling(ctx, billingID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourceBilling, billing.Owner(), access.ActionWrite); err != nil {
		return nil, err
	}

	updated, err := uc.BillingRepository.Update(ctx, billingID, func(locked *models.Billing, totalPaid decimal.Decimal) error {
		if locked.Status == models.BillingStatusPaid {
			return exceptions.ErrBillingAlreadyPaid(nil, billingID)
		}
		locked.Status = models.BillingStatusCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceBilling), billingID)
	}

	utils.LogBusinessEvent(uc.Log, "billing_cancelled", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
		zap.String(constvars.LoggingActorRoleKey, actor.Role),
	)
	return updated, nil
}

func (uc *billingUsecase) RecordPayment(ctx context.Context, actor models.ActorContext, billingID int64, request *requests.RecordPayment) (*models.Payment, *models.Billing, error) {
	// payments are stored with two decimals, so an amount that rounds to zero is no payment
	amount := request.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, nil, exceptions.ErrInvalidPaymentAmount(nil, request.Amount.String())
	}

	billing, err := uc.findBilling(ctx, billingID)
	if err != nil {
		return nil, nil, err
	}

	if err := access.Authorize(actor, access.ResourcePayment, billing.Owner(), access.ActionWrite); err != nil {
		return nil, nil, err
	}

	payment := &models.Payment{
		BillingID:     billingID,
		Amount:        amount,
		PaymentMethod: request.PaymentMethod,
		TransactionID: request.TransactionID,
		Notes:         request.Notes,
	}
	if request.PaymentDate != "" {
		paymentDate, err := utils.ParseDate(request.PaymentDate)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseDate(err)
		}
		payment.PaymentDate = paymentDate
	}

	recorded, updated, err := uc.BillingRepository.RecordPayment(ctx, payment)
	if err != nil {
		return nil, nil, err
	}
	if recorded == nil || updated == nil {
		return nil, nil, exceptions.ErrNotFound(nil, string(access.ResourceBilling), billingID)
	}

	utils.LogBusinessEvent(uc.Log, "payment_recorded", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingBillingIDKey, billingID),
		zap.Int64(constvars.LoggingPaymentIDKey, recorded.ID),
		zap.String(constvars.LoggingTotalPaidKey, updated.TotalPaid.StringFixed(2)),
		zap.String(constvars.LoggingStatusKey, string(updated.Status)),
	)
	uc.publish(ctx, constvars.EventPaymentRecorded, map[string]interface{}{
		"payment": recorded,
		"billing": updated,
	})
	return recorded, updated, nil
}

func (uc *billingUsecase) FindPayments(ctx context.Context, actor models.ActorContext, billingID int64) ([]models.Payment, error) {
	billing, err := uc.findBilling(ctx, billingID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourcePayment, billing.Owner(), access.ActionRead); err != nil {
		return nil, err
	}
	return uc.BillingRepository.FindPayments(ctx, billingID)
}

func (uc *billingUsecase) findBilling(ctx context.Context, billingID int64) (*models.Billing, error) {
	billing, err := uc.BillingRepository.FindByID(ctx, billingID)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceBilling), billingID)
	}
	return billing, nil
}

func (uc *billingUsecase) publish(ctx context.Context, routingKey string, payload interface{}) {
	if err := uc.EventPublisher.Publish(ctx, routingKey, payload); err != nil {
		uc.Log.Warn("billingUsecase event not published",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, routingKey),
			zap.Error(err),
		)
	}
}

func toBillingItems(requestItems []requests.BillingItem) (models.BillingItems, error) {
	if len(requestItems) == 0 {
		return nil, exceptions.ErrInvalidInput(nil, "items must contain at least one item")
	}

	items := make(models.BillingItems, 0, len(requestItems))
	for _, item := range requestItems {
		if item.UnitPrice.IsNegative() {
			return nil, exceptions.ErrInvalidInput(nil, "unit_price must not be negative")
		}
		if item.Quantity <= 0 {
			return nil, exceptions.ErrInvalidInput(nil, "quantity must be greater than 0")
		}
		items = append(items, models.BillingItem{
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return items, nil
}

func validatePercents(discountPercent, taxPercent decimal.Decimal) error {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(maxPercent) {
		return exceptions.ErrInvalidInput(nil, "discount_percent must be between 0 and 100")
	}
	if !discountPercent.Equal(discountPercent.Round(2)) {
		return exceptions.ErrInvalidInput(nil, "discount_percent allows at most 2 decimal places")
	}
	if taxPercent.IsNegative() || taxPercent.GreaterThan(maxPercent) {
		return exceptions.ErrInvalidInput(nil, "tax_percent must be between 0 and 100")
	}
	if !taxPercent.Equal(taxPercent.Round(2)) {
		return exceptions.ErrInvalidInput(nil, "tax_percent allows at most 2 decimal places")
	}
	return nil
}

func (uc *billingUsecase) ensureAppointment(ctx context.Context, appointmentID, patientID int64) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrNotFound(nil, string(access.ResourceAppointment), appointmentID)
	}
	if appointment.PatientID != patientID {
		return exceptions.ErrInvalidInput(nil, "appointment_id belongs to a different patient")
	}
	return nil
}
