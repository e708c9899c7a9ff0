package domain

import "time"

type Workflow struct {
	ID        string
	Name      string
	Schema    string
	CreatedBy string
	CreatedAt time.Time
}
