package queries

const (
	medicalRecordSelect = `
		SELECT 
			m.id,
			m.patient_id,
			TRIM(p.first_name || ' ' || p.last_name),
			m.doctor_id,
			TRIM(d.first_name || ' ' || d.last_name),
			m.appointment_id,
			m.visit_date,
			m.symptoms,
			m.diagnosis,
			m.treatment_plan,
			m.notes,
			m.vital_signs,
			m.created_at,
			m.updated_at
		FROM medical_records m
		JOIN patients p ON p.id = m.patient_id
		JOIN doctors d ON d.id = m.doctor_id`

	medicalRecordFilterCondition = `
		WHERE ($1::bigint = 0 OR m.patient_id = $1)
		AND ($2::bigint = 0 OR m.doctor_id = $2)`

	InsertMedicalRecord = `
		INSERT INTO medical_records (
			patient_id,
			doctor_id,
			appointment_id,
			visit_date,
			symptoms,
			diagnosis,
			treatment_plan,
			notes,
			vital_signs
		) VALUES ($1, $2, $3, COALESCE($4::timestamptz, NOW()), $5, $6, $7, $8, $9)
		RETURNING id
	`

	GetMedicalRecordByID = medicalRecordSelect + `
		WHERE m.id = $1
	`

	GetAllMedicalRecords = medicalRecordSelect + medicalRecordFilterCondition + `
		ORDER BY m.visit_date DESC, m.id DESC
		LIMIT $3 OFFSET $4
	`

	CountMedicalRecords = `
		SELECT COUNT(*)
		FROM medical_records m` + medicalRecordFilterCondition

	UpdateMedicalRecord = `
		UPDATE medical_records
		SET 
			symptoms = $1,
			diagnosis = $2,
			treatment_plan = $3,
			notes = $4,
			vital_signs = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	DeleteMedicalRecord = `
		DELETE FROM medical_records 
		WHERE id = $1
	`
)
