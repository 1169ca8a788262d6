package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gyges/pkg/domain/interfaces"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

type RecordUseCase struct {
	repo  interfaces.Repository
	clock func() time.Time

	// importGen invalidates in-flight document imports: a completion whose
	// generation no longer matches is a no-op (the user closed the dialog).
	importGen atomic.Int64
}

func NewRecordUseCase(repo interfaces.Repository, clock func() time.Time) *RecordUseCase {
	return &RecordUseCase{
		repo:  repo,
		clock: clock,
	}
}

func (uc *RecordUseCase) CreateRecord(ctx context.Context, record *model.RiskRecord) (*model.RiskRecord, error) {
	if record.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "record title is required")
	}
	if !record.RiskLevel.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid risk level", goerr.V("level", record.RiskLevel))
	}
	if record.TabCategory != "" && !record.TabCategory.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid tab category", goerr.V("category", record.TabCategory))
	}

	created, err := uc.repo.Record().Create(ctx, record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create record")
	}

	return created, nil
}

func (uc *RecordUseCase) GetRecord(ctx context.Context, id types.RecordID) (*model.RiskRecord, error) {
	record, err := uc.repo.Record().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get record")
	}

	return record, nil
}

func (uc *RecordUseCase) ListRecords(ctx context.Context) ([]*model.RiskRecord, error) {
	records, err := uc.repo.Record().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records")
	}

	return records, nil
}

// UpdateStatus sets the workflow status. Completing an assessment (moving
// into the canonical completed bucket from outside it) snapshots the prior
// state into the assessment history and stamps the completion date.
func (uc *RecordUseCase) UpdateStatus(ctx context.Context, id types.RecordID, status types.WorkflowStatus) (*model.RiskRecord, error) {
	record, err := uc.repo.Record().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get record")
	}

	if status.IsCompleted() && !record.Status.IsCompleted() {
		today := uc.clock().UTC().Format("2006-01-02")
		record.HistoricalAssessments = append(record.HistoricalAssessments, record.Snapshot(today))
		record.PreviousAssessments++
		if record.CompletionDate == "" {
			record.CompletionDate = today
		}
		record.AssessmentProgress.Assess = types.StageCompleted
	}

	record.Status = status

	updated, err := uc.repo.Record().Update(ctx, record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update record status")
	}

	return updated, nil
}

// UpdateSeverityLabel sets the categorical label of the selected severity,
// keeping the numeric score untouched.
func (uc *RecordUseCase) UpdateSeverityLabel(ctx context.Context, id types.RecordID, metric types.ScoreMetric, level types.SeverityLevel) (*model.RiskRecord, error) {
	if !level.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid severity level", goerr.V("level", level))
	}
	if !metric.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid score metric", goerr.V("metric", metric))
	}

	record, err := uc.repo.Record().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get record")
	}

	if metric == types.MetricResidual {
		record.ResidualRisk.Level = level
		record.ResidualRisk.Color = level.Color()
	} else {
		record.InherentRisk.Level = level
		record.InherentRisk.Color = level.Color()
	}

	updated, err := uc.repo.Record().Update(ctx, record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update severity label")
	}

	return updated, nil
}

func (uc *RecordUseCase) UpdateControlEffectiveness(ctx context.Context, id types.RecordID, label types.EffectivenessLabel) (*model.RiskRecord, error) {
	if !label.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid effectiveness label", goerr.V("label", label))
	}

	record, err := uc.repo.Record().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get record")
	}

	record.ControlEffectiveness = model.ControlEffectiveness{
		Label: label,
		Color: effectivenessColor(label),
	}

	updated, err := uc.repo.Record().Update(ctx, record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update control effectiveness")
	}

	return updated, nil
}

func effectivenessColor(label types.EffectivenessLabel) string {
	switch label {
	case types.EffectivenessEffective:
		return "green"
	case types.EffectivenessPartiallyEffective:
		return "yellow"
	case types.EffectivenessIneffective:
		return "red"
	default:
		return "gray"
	}
}

// BulkImport merges parsed records into the store. A record whose ID matches
// an existing one is patched (imported fields win, omitted fields retained);
// novel records are materialized with defaults and prepended, keeping their
// payload order at the front of the list.
func (uc *RecordUseCase) BulkImport(ctx context.Context, imported []*model.ImportedRecord) (added int, updated int, err error) {
	var novel []*model.ImportedRecord

	for _, item := range imported {
		if item.ID != "" {
			existing, err := uc.repo.Record().Get(ctx, item.ID)
			if err == nil {
				item.ApplyTo(existing)
				if _, err := uc.repo.Record().Update(ctx, existing); err != nil {
					return added, updated, goerr.Wrap(err, "failed to patch imported record", goerr.V("id", item.ID))
				}
				updated++
				continue
			}
		}
		novel = append(novel, item)
	}

	// Prepend in reverse so the payload order is preserved at the front
	for i := len(novel) - 1; i >= 0; i-- {
		if _, err := uc.repo.Record().Prepend(ctx, novel[i].NewRecord()); err != nil {
			return added, updated, goerr.Wrap(err, "failed to add imported record")
		}
		added++
	}

	return added, updated, nil
}

// BeginImport opens a new import generation and invalidates any in-flight one
func (uc *RecordUseCase) BeginImport() int64 {
	return uc.importGen.Add(1)
}

// AbandonImport invalidates the current import generation; a completion
// arriving afterwards becomes a no-op
func (uc *RecordUseCase) AbandonImport() {
	uc.importGen.Add(1)
}

// CompleteImport merges the import result if its generation is still
// current. Stale completions return without touching the store.
func (uc *RecordUseCase) CompleteImport(ctx context.Context, generation int64, imported []*model.ImportedRecord) (added int, updated int, err error) {
	if generation != uc.importGen.Load() {
		return 0, 0, nil
	}
	return uc.BulkImport(ctx, imported)
}
