package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/secmon-lab/gyges/pkg/domain/interfaces"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/secmon-lab/gyges/pkg/repository/memory"
)

func TestMemoryRepository(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func runRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Record().Create(ctx, &model.RiskRecord{
			Title:     "Cyber Security Exposure",
			RiskLevel: types.RiskLevel1,
		})
		if err != nil {
			t.Fatalf("failed to create record: %v", err)
		}

		if created.ID == "" {
			t.Error("expected generated ID")
		}
		if created.Title != "Cyber Security Exposure" {
			t.Errorf("expected title to round-trip, got %s", created.Title)
		}
		if created.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}
		if created.UpdatedAt.IsZero() {
			t.Error("expected non-zero UpdatedAt")
		}
	})

	t.Run("Create keeps caller-provided ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:        "RSK-001",
			Title:     "Cyber Security Exposure",
			RiskLevel: types.RiskLevel1,
		})
		if err != nil {
			t.Fatalf("failed to create record: %v", err)
		}
		if created.ID != "RSK-001" {
			t.Errorf("expected ID=RSK-001, got %s", created.ID)
		}

		if _, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:    "RSK-001",
			Title: "Duplicate",
		}); err == nil {
			t.Error("expected error for duplicate ID")
		}
	})

	t.Run("Get retrieves existing record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Record().Create(ctx, &model.RiskRecord{
			Title:     "Data Privacy Breach",
			RiskLevel: types.RiskLevel2,
			Assessors: []string{"alice"},
		})
		if err != nil {
			t.Fatalf("failed to create record: %v", err)
		}

		retrieved, err := repo.Record().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get record: %v", err)
		}
		if retrieved.Title != created.Title {
			t.Errorf("expected title=%s, got %s", created.Title, retrieved.Title)
		}

		// Returned record is a copy, not shared state.
		retrieved.Title = "mutated"
		retrieved.Assessors[0] = "mallory"
		again, err := repo.Record().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get record: %v", err)
		}
		if again.Title != "Data Privacy Breach" {
			t.Errorf("stored record mutated through returned copy: %s", again.Title)
		}
		if again.Assessors[0] != "alice" {
			t.Errorf("stored assessors mutated through returned copy: %v", again.Assessors)
		}
	})

	t.Run("Get returns ErrNotFound for missing ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Record().Get(ctx, "no-such-record")
		if err == nil {
			t.Fatal("expected error for missing record")
		}
		if !errors.Is(err, memory.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List preserves insertion order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, id := range []types.RecordID{"a", "b", "c"} {
			if _, err := repo.Record().Create(ctx, &model.RiskRecord{ID: id, Title: string(id)}); err != nil {
				t.Fatalf("failed to create %s: %v", id, err)
			}
		}

		records, err := repo.Record().List(ctx)
		if err != nil {
			t.Fatalf("failed to list records: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		for i, want := range []types.RecordID{"a", "b", "c"} {
			if records[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, records[i].ID)
			}
		}
	})

	t.Run("Prepend inserts at the front", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		if _, err := repo.Record().Create(ctx, &model.RiskRecord{ID: "old"}); err != nil {
			t.Fatalf("failed to create record: %v", err)
		}
		if _, err := repo.Record().Prepend(ctx, &model.RiskRecord{ID: "new"}); err != nil {
			t.Fatalf("failed to prepend record: %v", err)
		}

		records, err := repo.Record().List(ctx)
		if err != nil {
			t.Fatalf("failed to list records: %v", err)
		}
		if records[0].ID != "new" || records[1].ID != "old" {
			t.Errorf("expected [new old], got [%s %s]", records[0].ID, records[1].ID)
		}
	})

	t.Run("Update replaces fields and keeps CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:     "RSK-001",
			Title:  "Cyber Security Exposure",
			Status: types.StatusInProgress,
		})
		if err != nil {
			t.Fatalf("failed to create record: %v", err)
		}

		created.Status = types.StatusCompleted
		updated, err := repo.Record().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update record: %v", err)
		}
		if updated.Status != types.StatusCompleted {
			t.Errorf("expected status=%s, got %s", types.StatusCompleted, updated.Status)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("expected CreatedAt preserved, got %v", updated.CreatedAt)
		}
	})

	t.Run("Update returns ErrNotFound for missing record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Record().Update(ctx, &model.RiskRecord{ID: "ghost"})
		if !errors.Is(err, memory.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ParentID resolves by title one level up", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		parent, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:        "p1",
			Title:     "Cyber Risk",
			RiskLevel: types.RiskLevel1,
		})
		if err != nil {
			t.Fatalf("failed to create parent: %v", err)
		}

		child, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:         "c1",
			Title:      "Phishing",
			RiskLevel:  types.RiskLevel2,
			ParentRisk: "Cyber Risk",
		})
		if err != nil {
			t.Fatalf("failed to create child: %v", err)
		}
		if child.ParentID != parent.ID {
			t.Errorf("expected ParentID=%s, got %s", parent.ID, child.ParentID)
		}
	})

	t.Run("ParentID resolves when parent arrives later", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		if _, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:         "c1",
			Title:      "Phishing",
			RiskLevel:  types.RiskLevel2,
			ParentRisk: "Cyber Risk",
		}); err != nil {
			t.Fatalf("failed to create child: %v", err)
		}

		child, err := repo.Record().Get(ctx, "c1")
		if err != nil {
			t.Fatalf("failed to get child: %v", err)
		}
		if child.ParentID != "" {
			t.Errorf("expected unresolved ParentID, got %s", child.ParentID)
		}

		if _, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:        "p1",
			Title:     "Cyber Risk",
			RiskLevel: types.RiskLevel1,
		}); err != nil {
			t.Fatalf("failed to create parent: %v", err)
		}

		child, err = repo.Record().Get(ctx, "c1")
		if err != nil {
			t.Fatalf("failed to get child: %v", err)
		}
		if child.ParentID != "p1" {
			t.Errorf("expected ParentID=p1 after parent creation, got %s", child.ParentID)
		}
	})

	t.Run("ParentID first match wins for duplicate titles", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, id := range []types.RecordID{"p1", "p2"} {
			if _, err := repo.Record().Create(ctx, &model.RiskRecord{
				ID:        id,
				Title:     "Cyber Risk",
				RiskLevel: types.RiskLevel1,
			}); err != nil {
				t.Fatalf("failed to create %s: %v", id, err)
			}
		}

		child, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:         "c1",
			Title:      "Phishing",
			RiskLevel:  types.RiskLevel2,
			ParentRisk: "Cyber Risk",
		})
		if err != nil {
			t.Fatalf("failed to create child: %v", err)
		}
		if child.ParentID != "p1" {
			t.Errorf("expected first match p1, got %s", child.ParentID)
		}
	})

	t.Run("ParentID ignores same-level title matches", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		// A Level 2 record with the referenced title must not become
		// the parent of another Level 2 record.
		if _, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:        "sibling",
			Title:     "Cyber Risk",
			RiskLevel: types.RiskLevel2,
		}); err != nil {
			t.Fatalf("failed to create sibling: %v", err)
		}

		child, err := repo.Record().Create(ctx, &model.RiskRecord{
			ID:         "c1",
			Title:      "Phishing",
			RiskLevel:  types.RiskLevel2,
			ParentRisk: "Cyber Risk",
		})
		if err != nil {
			t.Fatalf("failed to create child: %v", err)
		}
		if child.ParentID != "" {
			t.Errorf("expected no parent across same level, got %s", child.ParentID)
		}
	})
}
