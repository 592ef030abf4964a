package queries

const (
	billingSelect = `
		SELECT 
			b.id,
			b.invoice_number,
			b.patient_id,
			TRIM(p.first_name || ' ' || p.last_name),
			b.appointment_id,
			b.billing_date,
			b.items,
			b.discount_percent,
			b.tax_percent,
			b.total_amount,
			b.discount_amount,
			b.tax_amount,
			b.net_amount,
			COALESCE((SELECT SUM(pm.amount) FROM payments pm WHERE pm.billing_id = b.id), 0),
			b.status,
			b.created_at,
			b.updated_at
		FROM billings b
		JOIN patients p ON p.id = b.patient_id`

	billingFilterCondition = `
		WHERE ($1::text = '' OR b.status = $1)
		AND ($2::bigint = 0 OR b.patient_id = $2)`

	InsertBilling = `
		INSERT INTO billings (
			invoice_number,
			patient_id,
			appointment_id,
			items,
			discount_percent,
			tax_percent,
			total_amount,
			discount_amount,
			tax_amount,
			net_amount,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	GetBillingByID = billingSelect + `
		WHERE b.id = $1
	`

	GetAllBillings = billingSelect + billingFilterCondition + `
		ORDER BY b.billing_date DESC, b.id DESC
		LIMIT $3 OFFSET $4
	`

	CountBillings = `
		SELECT COUNT(*)
		FROM billings b` + billingFilterCondition

	// Row lock only; FOR UPDATE is not allowed together with the aggregate in billingSelect.
	LockBillingForUpdate = `
		SELECT 
			id,
			invoice_number,
			patient_id,
			appointment_id,
			billing_date,
			items,
			discount_percent,
			tax_percent,
			total_amount,
			discount_amount,
			tax_amount,
			net_amount,
			status,
			created_at,
			updated_at
		FROM billings
		WHERE id = $1
		FOR UPDATE
	`

	SumPaymentsByBilling = `
		SELECT COALESCE(SUM(amount), 0) 
		FROM payments 
		WHERE billing_id = $1
	`

	UpdateBilling = `
		UPDATE billings
		SET 
			items = $1,
			discount_percent = $2,
			tax_percent = $3,
			total_amount = $4,
			discount_amount = $5,
			tax_amount = $6,
			net_amount = $7,
			status = $8,
			updated_at = NOW()
		WHERE id = $9
	`

	UpdateBillingStatus = `
		UPDATE billings 
		SET status = $1, updated_at = NOW() 
		WHERE id = $2
	`

	InsertPayment = `
		INSERT INTO payments (
			billing_id,
			amount,
			payment_method,
			transaction_id,
			notes,
			payment_date
		) VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, NOW()))
		RETURNING id, payment_date, created_at
	`

	GetPaymentsByBilling = `
		SELECT 
			id,
			billing_id,
			amount,
			payment_date,
			payment_method,
			transaction_id,
			notes,
			created_at
		FROM payments
		WHERE billing_id = $1
		ORDER BY payment_date, id
	`
)
