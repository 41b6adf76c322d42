package entity

import "time"

// ArchivedGame - a finished game flattened for long term storage.
type ArchivedGame struct {
	ID         string    `json:"id"`
	Size       int       `json:"size"`
	Type       string    `json:"type"`
	Winner     string    `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}
