package queries

const (
	patientColumns = `
		id,
		patient_number,
		first_name,
		last_name,
		date_of_birth,
		gender,
		blood_group,
		contact_number,
		email,
		address,
		emergency_contact,
		emergency_contact_number,
		created_at,
		updated_at`

	patientSearchCondition = `
		WHERE ($1::text = '' 
			OR first_name ILIKE '%' || $1 || '%' 
			OR last_name ILIKE '%' || $1 || '%' 
			OR patient_number ILIKE '%' || $1 || '%' 
			OR contact_number ILIKE '%' || $1 || '%')`

	InsertPatient = `
		INSERT INTO patients (
			patient_number,
			first_name,
			last_name,
			date_of_birth,
			gender,
			blood_group,
			contact_number,
			email,
			address,
			emergency_contact,
			emergency_contact_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + patientColumns

	GetPatientByID = `
		SELECT` + patientColumns + `
		FROM patients 
		WHERE id = $1
	`

	GetAllPatients = `
		SELECT` + patientColumns + `
		FROM patients` + patientSearchCondition + `
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	CountPatients = `
		SELECT COUNT(*) 
		FROM patients` + patientSearchCondition

	GetRecentPatients = `
		SELECT` + patientColumns + `
		FROM patients
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	UpdatePatient = `
		UPDATE patients
		SET 
			first_name = $1,
			last_name = $2,
			date_of_birth = $3,
			gender = $4,
			blood_group = $5,
			contact_number = $6,
			email = $7,
			address = $8,
			emergency_contact = $9,
			emergency_contact_number = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING` + patientColumns

	DeletePatient = `
		DELETE FROM patients 
		WHERE id = $1
	`
)
