package queries

const (
	doctorSelect = `
		SELECT 
			d.id,
			d.first_name,
			d.last_name,
			d.contact_number,
			d.email,
			d.specialization_id,
			COALESCE(s.name, ''),
			d.department_id,
			COALESCE(dep.name, ''),
			d.license_number,
			d.qualification,
			d.experience_years,
			d.consultation_fee,
			d.created_at,
			d.updated_at
		FROM doctors d
		LEFT JOIN specializations s ON s.id = d.specialization_id
		LEFT JOIN departments dep ON dep.id = d.department_id`

	doctorFilterCondition = `
		WHERE ($1::text = '' 
			OR d.first_name ILIKE '%' || $1 || '%' 
			OR d.last_name ILIKE '%' || $1 || '%')
		AND ($2::bigint = 0 OR d.specialization_id = $2)
		AND ($3::bigint = 0 OR d.department_id = $3)`

	InsertDoctor = `
		INSERT INTO doctors (
			first_name,
			last_name,
			contact_number,
			email,
			specialization_id,
			department_id,
			license_number,
			qualification,
			experience_years,
			consultation_fee
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	GetDoctorByID = doctorSelect + `
		WHERE d.id = $1
	`

	GetAllDoctors = doctorSelect + doctorFilterCondition + `
		ORDER BY d.first_name, d.last_name, d.id
		LIMIT $4 OFFSET $5
	`

	CountDoctors = `
		SELECT COUNT(*)
		FROM doctors d` + doctorFilterCondition

	UpdateDoctor = `
		UPDATE doctors
		SET 
			first_name = $1,
			last_name = $2,
			contact_number = $3,
			email = $4,
			specialization_id = $5,
			department_id = $6,
			license_number = $7,
			qualification = $8,
			experience_years = $9,
			consultation_fee = $10,
			updated_at = NOW()
		WHERE id = $11
	`

	DeleteDoctor = `
		DELETE FROM doctors 
		WHERE id = $1
	`
)
