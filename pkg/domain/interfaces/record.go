package interfaces

import (
	"context"

	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// RecordRepository stores risk records in a stable order. List returns
// records in insertion order; Create appends, Prepend inserts at the front
// (bulk-imported records surface first). Every write re-resolves parent
// references (title match one level up, first match wins).
type RecordRepository interface {
	// Create appends a new record, minting an ID if absent
	Create(ctx context.Context, record *model.RiskRecord) (*model.RiskRecord, error)

	// Prepend inserts a new record at the front of the list
	Prepend(ctx context.Context, record *model.RiskRecord) (*model.RiskRecord, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id types.RecordID) (*model.RiskRecord, error)

	// List retrieves all records in list order
	List(ctx context.Context) ([]*model.RiskRecord, error)

	// Update replaces an existing record's fields
	Update(ctx context.Context, record *model.RiskRecord) (*model.RiskRecord, error)
}
