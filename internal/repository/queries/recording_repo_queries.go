package queries

const (
	QueryAddRecording = `
		INSERT INTO recordings (session_id, s3_key, recorded_at)
		VALUES ($1, $2, $3);
	`
	QueryListRecordings = `
		SELECT session_id, s3_key, recorded_at
		FROM recordings
		WHERE session_id = $1;
	`
	QueryListRecordingKeys = `
		SELECT s3_key
		FROM recordings
		WHERE session_id = $1
		ORDER BY recorded_at;
	`
	QueryListWorkflows = `SELECT id, name, schema, created_by, created_at FROM workflows;`
)
