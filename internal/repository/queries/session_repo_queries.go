package queries

const (
	QueryCreateSession = `
		INSERT INTO sessions (id, name, owner_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	QueryAddParticipant = `
		INSERT INTO participants (session_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;
	`
	QueryExistsSession      = `SELECT 1 FROM sessions WHERE id = $1;`
	QueryExistsParticipant  = `SELECT EXISTS(SELECT 1 FROM participants WHERE session_id = $1 AND user_id = $2);`
	QueryListSessionsByUser = `
		SELECT id, name, owner_id, created_at
		FROM sessions
		WHERE owner_id = $1
		   OR id IN (SELECT session_id FROM participants WHERE user_id = $1)
		ORDER BY created_at, id;
	`
)
