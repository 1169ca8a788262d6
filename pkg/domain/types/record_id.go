package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// RecordID represents a unique identifier for a risk record. Seeded records
// carry human-assigned IDs (e.g. "RSK-001"); minted records use UUIDs.
type RecordID string

// NewRecordID generates a new random RecordID
func NewRecordID() RecordID {
	return RecordID(uuid.NewString())
}

// Validate checks if the RecordID is valid
func (i RecordID) Validate() error {
	if i == "" {
		return goerr.New("record ID cannot be empty")
	}
	return nil
}

// String returns the string representation of RecordID
func (i RecordID) String() string {
	return string(i)
}
