package queries

const (
	prescriptionSelect = `
		SELECT 
			pr.id,
			pr.patient_id,
			TRIM(p.first_name || ' ' || p.last_name),
			pr.doctor_id,
			TRIM(d.first_name || ' ' || d.last_name),
			pr.medical_record_id,
			pr.medications,
			pr.instructions,
			pr.prescription_date,
			pr.valid_until,
			pr.status,
			pr.created_at,
			pr.updated_at
		FROM prescriptions pr
		JOIN patients p ON p.id = pr.patient_id
		JOIN doctors d ON d.id = pr.doctor_id`

	prescriptionFilterCondition = `
		WHERE ($1::bigint = 0 OR pr.patient_id = $1)
		AND ($2::bigint = 0 OR pr.doctor_id = $2)
		AND ($3::text = '' OR pr.status = $3)`

	InsertPrescription = `
		INSERT INTO prescriptions (
			patient_id,
			doctor_id,
			medical_record_id,
			medications,
			instructions,
			valid_until,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	GetPrescriptionByID = prescriptionSelect + `
		WHERE pr.id = $1
	`

	GetAllPrescriptions = prescriptionSelect + prescriptionFilterCondition + `
		ORDER BY pr.prescription_date DESC, pr.id DESC
		LIMIT $4 OFFSET $5
	`

	CountPrescriptions = `
		SELECT COUNT(*)
		FROM prescriptions pr` + prescriptionFilterCondition

	UpdatePrescription = `
		UPDATE prescriptions
		SET 
			medications = $1,
			instructions = $2,
			valid_until = $3,
			status = $4,
			updated_at = NOW()
		WHERE id = $5
	`

	DeletePrescription = `
		DELETE FROM prescriptions 
		WHERE id = $1
	`
)
