package constants

const (
	GetUserByEmail = `
	SELECT * FROM users WHERE email = $1
	`

	GetUserByID = `
	SELECT * FROM users WHERE id = $1
	`

	GetAPIKeyStatus = `
	SELECT key, is_active, user_id FROM api_keys WHERE key = $1
	`

	InsertAPIKey = `
	INSERT INTO api_keys (key, user_id, is_active)
	VALUES ($1, $2, TRUE)
	RETURNING id, created_at
	`
)
