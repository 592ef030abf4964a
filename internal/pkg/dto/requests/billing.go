package requests

import "github.com/shopspring/decimal"

type BillingItem struct {
	Description string          `json:"description" validate:"required,max=255"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity" validate:"required,gt=0"`
}

type CreateBilling struct {
	PatientID       int64           `json:"patient_id" validate:"required,gt=0"`
	AppointmentID   *int64          `json:"appointment_id" validate:"omitempty,gt=0"`
	Items           []BillingItem   `json:"items" validate:"required,min=1,dive"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
}

type UpdateBilling struct {
	Items           *[]BillingItem   `json:"items" validate:"omitempty,min=1,dive"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	TaxPercent      *decimal.Decimal `json:"tax_percent"`
}

type RecordPayment struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=Cash Card UPI Insurance"`
	PaymentDate   string          `json:"payment_date" validate:"omitempty,booking_date"`
	TransactionID string          `json:"transaction_id" validate:"max=100"`
	Notes         string          `json:"notes"`
}
