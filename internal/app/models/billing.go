package models

import (
	"database/sql/driver"
	"time"

	"github.com/shopspring/decimal"
)

type BillingStatus string

const (
	BillingStatusPending   BillingStatus = "Pending"
	BillingStatusPartial   BillingStatus = "Partial"
	BillingStatusPaid      BillingStatus = "Paid"
	BillingStatusCancelled BillingStatus = "Cancelled"
)

func (s BillingStatus) IsValid() bool {
	switch s {
	case BillingStatusPending, BillingStatusPartial, BillingStatusPaid, BillingStatusCancelled:
		return true
	}
	return false
}

var hundred = decimal.NewFromInt(100)

type BillingItem struct {
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
}

func (i BillingItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

type BillingItems []BillingItem

func (b BillingItems) Value() (driver.Value, error) {
	if b == nil {
		return jsonbValue([]BillingItem{})
	}
	return jsonbValue([]BillingItem(b))
}

func (b *BillingItems) Scan(src interface{}) error {
	return jsonbScan(src, b)
}

type BillingTotals struct {
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	NetAmount      decimal.Decimal
}

// CalculateBillingTotals computes the invoice amounts from scratch. Discount and tax are each
// rounded half away from zero to cents; net is derived from the rounded parts so that
// net == total - discount + tax holds exactly.
func CalculateBillingTotals(items []BillingItem, discountPercent, taxPercent decimal.Decimal) BillingTotals {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount())
	}
	total = total.Round(2)

	discount := total.Mul(discountPercent).Div(hundred).Round(2)
	taxable := total.Sub(discount)
	tax := taxable.Mul(taxPercent).Div(hundred).Round(2)

	return BillingTotals{
		TotalAmount:    total,
		DiscountAmount: discount,
		TaxAmount:      tax,
		NetAmount:      taxable.Add(tax),
	}
}

// DeriveBillingStatus maps the amount paid so far against the net amount. A cancelled bill stays
// cancelled whatever is paid.
func DeriveBillingStatus(current BillingStatus, totalPaid, netAmount decimal.Decimal) BillingStatus {
	switch {
	case current == BillingStatusCancelled:
		return BillingStatusCancelled
	case totalPaid.GreaterThanOrEqual(netAmount) && totalPaid.IsPositive():
		return BillingStatusPaid
	case totalPaid.IsPositive():
		return BillingStatusPartial
	default:
		return BillingStatusPending
	}
}

type Billing struct {
	ID              int64           `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	PatientID       int64           `json:"patient_id"`
	PatientName     string          `json:"patient_name,omitempty"`
	AppointmentID   *int64          `json:"appointment_id"`
	BillingDate     time.Time       `json:"billing_date"`
	Items           BillingItems    `json:"items"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	Status          BillingStatus   `json:"status"`
	TimeModel
}

func (b *Billing) ApplyTotals(totals BillingTotals) {
	b.TotalAmount = totals.TotalAmount
	b.DiscountAmount = totals.DiscountAmount
	b.TaxAmount = totals.TaxAmount
	b.NetAmount = totals.NetAmount
}

func (b Billing) Owner() Owner {
	return Owner{PatientID: b.PatientID}
}

type BillingFilter struct {
	Status    BillingStatus
	PatientID int64
	Pagination
}

const (
	PaymentMethodCash      = "Cash"
	PaymentMethodCard      = "Card"
	PaymentMethodUPI       = "UPI"
	PaymentMethodInsurance = "Insurance"
)

type Payment struct {
	ID            int64           `json:"id"`
	BillingID     int64           `json:"billing_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}
