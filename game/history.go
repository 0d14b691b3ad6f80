package game

import "time"

// Record is the stable (mode, timestamp, points) shape the external
// history collaborator persists. One record per player is produced when
// a round finishes; storage format is the collaborator's concern.
type Record struct {
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
	Points    int       `json:"points"`
}
