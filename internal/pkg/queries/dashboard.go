package queries

const (
	CountDashboardTotals = `
		SELECT 
			(SELECT COUNT(*) FROM patients),
			(SELECT COUNT(*) FROM doctors),
			(SELECT COUNT(*) FROM staff),
			(SELECT COUNT(*) FROM appointments WHERE appointment_date = $1::date),
			(SELECT COUNT(*) FROM patients WHERE created_at >= $1::date - INTERVAL '7 days')
	`

	CountAppointmentsByStatus = `
		SELECT status, COUNT(*) 
		FROM appointments 
		GROUP BY status
	`

	GetMonthlyRevenue = `
		SELECT 
			COALESCE(SUM(net_amount), 0),
			COUNT(*)
		FROM billings
		WHERE status <> 'Cancelled'
		AND billing_date >= DATE_TRUNC('month', $1::date)
	`

	GetPendingAmount = `
		SELECT COALESCE(SUM(b.net_amount - COALESCE(pm.paid, 0)), 0)
		FROM billings b
		LEFT JOIN (
			SELECT billing_id, SUM(amount) AS paid 
			FROM payments 
			GROUP BY billing_id
		) pm ON pm.billing_id = b.id
		WHERE b.status IN ('Pending', 'Partial')
	`

	GetRevenueTotals = `
		SELECT 
			COALESCE(SUM(b.net_amount), 0),
			COALESCE(SUM(CASE WHEN b.status = 'Paid' THEN b.net_amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN b.status IN ('Pending', 'Partial') THEN b.net_amount ELSE 0 END), 0)
		FROM billings b
		WHERE b.status <> 'Cancelled'
		AND b.billing_date >= $1
	`

	GetRevenueByPaymentMethod = `
		SELECT 
			payment_method,
			COUNT(*),
			COALESCE(SUM(amount), 0)
		FROM payments
		WHERE payment_date >= $1
		GROUP BY payment_method
		ORDER BY payment_method
	`

	GetDailyRevenue = `
		SELECT 
			DATE(payment_date) AS day,
			COALESCE(SUM(amount), 0)
		FROM payments
		WHERE payment_date >= $1
		GROUP BY day
		ORDER BY day
	`

	GetDoctorPerformance = `
		SELECT 
			d.id,
			TRIM(d.first_name || ' ' || d.last_name),
			s.name,
			COUNT(a.id),
			COUNT(a.id) FILTER (WHERE a.status = 'Completed')
		FROM doctors d
		JOIN specializations s ON s.id = d.specialization_id
		LEFT JOIN appointments a ON a.doctor_id = d.id
		GROUP BY d.id, d.first_name, d.last_name, s.name
		ORDER BY COUNT(a.id) DESC, d.id
		LIMIT $1
	`
)
