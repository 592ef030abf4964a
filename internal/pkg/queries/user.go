package queries

const (
	userColumns = `
			id,
			email,
			password_hash,
			role,
			ref_id,
			is_active,
			last_login,
			created_at,
			updated_at`

	InsertUser = `
		INSERT INTO users (
			email,
			password_hash,
			role,
			ref_id,
			is_active
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	GetUserByID = `SELECT` + userColumns + `
		FROM users
		WHERE id = $1
	`

	GetUserByEmail = `SELECT` + userColumns + `
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	UpdateUserPassword = `
		UPDATE users 
		SET password_hash = $1, updated_at = NOW() 
		WHERE id = $2
	`

	UpdateUserLastLogin = `
		UPDATE users 
		SET last_login = $1 
		WHERE id = $2
	`
)
