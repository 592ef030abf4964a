package queries

const (
	staffSelect = `
		SELECT 
			st.id,
			st.first_name,
			st.last_name,
			st.contact_number,
			st.email,
			st.department_id,
			COALESCE(dep.name, ''),
			st.position,
			st.joining_date,
			st.created_at,
			st.updated_at
		FROM staff st
		LEFT JOIN departments dep ON dep.id = st.department_id`

	staffFilterCondition = `
		WHERE ($1::text = '' 
			OR st.first_name ILIKE '%' || $1 || '%' 
			OR st.last_name ILIKE '%' || $1 || '%' 
			OR st.position ILIKE '%' || $1 || '%')
		AND ($2::bigint = 0 OR st.department_id = $2)`

	InsertStaff = `
		INSERT INTO staff (
			first_name,
			last_name,
			contact_number,
			email,
			department_id,
			position,
			joining_date
		) VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7::date, CURRENT_DATE))
		RETURNING id
	`

	GetStaffByID = staffSelect + `
		WHERE st.id = $1
	`

	GetAllStaff = staffSelect + staffFilterCondition + `
		ORDER BY st.first_name, st.last_name, st.id
		LIMIT $3 OFFSET $4
	`

	CountStaff = `
		SELECT COUNT(*)
		FROM staff st` + staffFilterCondition

	UpdateStaff = `
		UPDATE staff
		SET 
			first_name = $1,
			last_name = $2,
			contact_number = $3,
			email = $4,
			department_id = $5,
			position = $6,
			joining_date = $7,
			updated_at = NOW()
		WHERE id = $8
	`

	DeleteStaff = `
		DELETE FROM staff 
		WHERE id = $1
	`
)
