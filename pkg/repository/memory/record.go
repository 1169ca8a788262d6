package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

type recordRepository struct {
	mu      sync.RWMutex
	records map[types.RecordID]*model.RiskRecord
	order   []types.RecordID
}

func newRecordRepository() *recordRepository {
	return &recordRepository{
		records: make(map[types.RecordID]*model.RiskRecord),
	}
}

// resolveParents re-assigns ParentID for every record by scanning records one
// level up in list order for a title equal to ParentRisk. First match wins;
// records without a valid parent (missing title, level violation) keep an
// empty ParentID and render via the flat fallback. Caller must hold mu.
func (r *recordRepository) resolveParents() {
	for _, id := range r.order {
		rec := r.records[id]
		rec.ParentID = ""

		parentLevel, ok := rec.RiskLevel.Parent()
		if !ok || rec.ParentRisk == "" {
			continue
		}

		for _, candidateID := range r.order {
			candidate := r.records[candidateID]
			if candidate.RiskLevel == parentLevel && candidate.Title == rec.ParentRisk {
				rec.ParentID = candidate.ID
				break
			}
		}
	}
}

func (r *recordRepository) insert(record *model.RiskRecord, front bool) (*model.RiskRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := record.Clone()
	if created.ID == "" {
		created.ID = types.NewRecordID()
	}
	if _, exists := r.records[created.ID]; exists {
		return nil, goerr.New("record already exists", goerr.V("id", created.ID))
	}

	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.records[created.ID] = created
	if front {
		r.order = append([]types.RecordID{created.ID}, r.order...)
	} else {
		r.order = append(r.order, created.ID)
	}

	r.resolveParents()
	return created.Clone(), nil
}

func (r *recordRepository) Create(ctx context.Context, record *model.RiskRecord) (*model.RiskRecord, error) {
	return r.insert(record, false)
}

func (r *recordRepository) Prepend(ctx context.Context, record *model.RiskRecord) (*model.RiskRecord, error) {
	return r.insert(record, true)
}

func (r *recordRepository) Get(ctx context.Context, id types.RecordID) (*model.RiskRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "record not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return record.Clone(), nil
}

func (r *recordRepository) List(ctx context.Context) ([]*model.RiskRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.RiskRecord, 0, len(r.order))
	for _, id := range r.order {
		records = append(records, r.records[id].Clone())
	}

	return records, nil
}

func (r *recordRepository) Update(ctx context.Context, record *model.RiskRecord) (*model.RiskRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.records[record.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "record not found", goerr.V("id", record.ID))
	}

	updated := record.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.records[updated.ID] = updated
	r.resolveParents()
	return updated.Clone(), nil
}
