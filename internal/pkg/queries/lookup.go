package queries

const (
	InsertSpecialization = `
		INSERT INTO specializations (name, description) 
		VALUES ($1, $2) 
		RETURNING id, name, description, created_at, updated_at
	`

	GetSpecializationByID = `
		SELECT id, name, description, created_at, updated_at 
		FROM specializations 
		WHERE id = $1
	`

	GetAllSpecializations = `
		SELECT id, name, description, created_at, updated_at 
		FROM specializations 
		ORDER BY name
	`

	UpdateSpecialization = `
		UPDATE specializations 
		SET name = $1, description = $2, updated_at = NOW() 
		WHERE id = $3 
		RETURNING id, name, description, created_at, updated_at
	`

	DeleteSpecialization = `
		DELETE FROM specializations 
		WHERE id = $1
	`
)

const (
	departmentSelect = `
		SELECT 
			dep.id,
			dep.name,
			dep.description,
			dep.head_doctor_id,
			COALESCE(TRIM(d.first_name || ' ' || d.last_name), ''),
			dep.created_at,
			dep.updated_at
		FROM departments dep
		LEFT JOIN doctors d ON d.id = dep.head_doctor_id`

	InsertDepartment = `
		INSERT INTO departments (name, description, head_doctor_id) 
		VALUES ($1, $2, $3) 
		RETURNING id
	`

	GetDepartmentByID = departmentSelect + `
		WHERE dep.id = $1
	`

	GetAllDepartments = departmentSelect + `
		ORDER BY dep.name
	`

	UpdateDepartment = `
		UPDATE departments 
		SET name = $1, description = $2, head_doctor_id = $3, updated_at = NOW() 
		WHERE id = $4
	`

	DeleteDepartment = `
		DELETE FROM departments 
		WHERE id = $1
	`
)

const (
	clinicColumns = `id, name, address, contact_number, email, created_at, updated_at`

	InsertClinic = `
		INSERT INTO clinics (name, address, contact_number, email) 
		VALUES ($1, $2, $3, $4) 
		RETURNING ` + clinicColumns

	GetClinicByID = `
		SELECT ` + clinicColumns + ` 
		FROM clinics 
		WHERE id = $1
	`

	GetAllClinics = `
		SELECT ` + clinicColumns + ` 
		FROM clinics 
		ORDER BY name
	`

	UpdateClinic = `
		UPDATE clinics 
		SET name = $1, address = $2, contact_number = $3, email = $4, updated_at = NOW() 
		WHERE id = $5 
		RETURNING ` + clinicColumns

	DeleteClinic = `
		DELETE FROM clinics 
		WHERE id = $1
	`
)
