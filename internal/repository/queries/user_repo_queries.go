package queries

const (
	QueryCreateUser = `
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	QueryGetUserByID = `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE id = $1;
	`
	QueryGetUserByEmail = `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE email = $1;
	`
	QueryExistsUserByEmail = `SELECT 1 FROM users WHERE email = $1;`
)
