package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCalculateBillingTotals(t *testing.T) {
	tests := []struct {
		name                         string
		items                        []BillingItem
		discount, tax                string
		total, disc, taxAmt, netWant string
	}{
		{
			name: "consultation and lab work",
			items: []BillingItem{
				{Description: "Consultation", UnitPrice: decimal.NewFromInt(500), Quantity: 1},
				{Description: "Lab test", UnitPrice: decimal.NewFromInt(300), Quantity: 2},
			},
			discount: "10", tax: "9",
			total: "1100.00", disc: "110.00", taxAmt: "89.10", netWant: "1079.10",
		},
		{
			name:     "no items",
			discount: "0", tax: "0",
			total: "0", disc: "0", taxAmt: "0", netWant: "0",
		},
		{
			name: "rounding half away from zero",
			items: []BillingItem{
				{Description: "Dressing", UnitPrice: decimal.RequireFromString("10.05"), Quantity: 1},
			},
			discount: "5", tax: "0",
			total: "10.05", disc: "0.50", taxAmt: "0", netWant: "9.55",
		},
		{
			name: "fractional percentages",
			items: []BillingItem{
				{Description: "Pharmacy", UnitPrice: decimal.RequireFromString("33.33"), Quantity: 3},
			},
			discount: "2.5", tax: "18",
			total: "99.99", disc: "2.50", taxAmt: "17.55", netWant: "115.04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBillingTotals(tt.items, dec(t, tt.discount), dec(t, tt.tax))

			assert.True(t, dec(t, tt.total).Equal(got.TotalAmount), "total %s", got.TotalAmount)
			assert.True(t, dec(t, tt.disc).Equal(got.DiscountAmount), "discount %s", got.DiscountAmount)
			assert.True(t, dec(t, tt.taxAmt).Equal(got.TaxAmount), "tax %s", got.TaxAmount)
			assert.True(t, dec(t, tt.netWant).Equal(got.NetAmount), "net %s", got.NetAmount)
		})
	}
}

func TestCalculateBillingTotals_NetIdentity(t *testing.T) {
	prices := []string{"0.01", "19.99", "250", "1234.56", "7.77"}
	percents := []string{"0", "3.5", "12.5", "18", "33.33", "100"}

	for _, price := range prices {
		for qty := int64(1); qty <= 4; qty++ {
			for _, d := range percents {
				for _, tx := range percents {
					items := []BillingItem{{Description: "item", UnitPrice: dec(t, price), Quantity: qty}}
					got := CalculateBillingTotals(items, dec(t, d), dec(t, tx))

					identity := got.TotalAmount.Sub(got.DiscountAmount).Add(got.TaxAmount)
					assert.True(t, identity.Sub(got.NetAmount).Abs().LessThanOrEqual(decimal.RequireFromString("0.01")),
						"price=%s qty=%d discount=%s tax=%s", price, qty, d, tx)
				}
			}
		}
	}
}

func TestDeriveBillingStatus(t *testing.T) {
	net := decimal.RequireFromString("1079.10")

	tests := []struct {
		name    string
		current BillingStatus
		paid    string
		want    BillingStatus
	}{
		{"nothing paid", BillingStatusPending, "0", BillingStatusPending},
		{"part paid", BillingStatusPending, "500", BillingStatusPartial},
		{"fully paid", BillingStatusPartial, "1079.10", BillingStatusPaid},
		{"overpaid", BillingStatusPartial, "1100", BillingStatusPaid},
		{"cancelled unpaid", BillingStatusCancelled, "0", BillingStatusCancelled},
		{"cancelled paid", BillingStatusCancelled, "1079.10", BillingStatusCancelled},
		{"paid recomputed down to partial", BillingStatusPaid, "500", BillingStatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBillingStatus(tt.current, dec(t, tt.paid), net))
		})
	}
}
