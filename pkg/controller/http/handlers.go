package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/secmon-lab/gyges/pkg/service/importer"
	"github.com/secmon-lab/gyges/pkg/usecase"
)

// parseFilter builds a RecordFilter from query parameters. Unknown values
// for bounded vocabularies are rejected; absent parameters impose no
// constraint.
func parseFilter(r *http.Request) (*model.RecordFilter, error) {
	q := r.URL.Query()
	filter := &model.RecordFilter{
		Search:       q.Get("search"),
		RiskID:       types.RecordID(q.Get("id")),
		Status:       q.Get("status"),
		OrgLevel:     q.Get("org"),
		Assessor:     q.Get("assessor"),
		BusinessUnit: q.Get("bu"),
	}

	if tab := q.Get("tab"); tab != "" && tab != "all" {
		category, err := types.ParseTabCategory(tab)
		if err != nil {
			return nil, err
		}
		filter.TabCategory = category
	}
	if level := q.Get("level"); level != "" && level != "all" {
		riskLevel, err := types.ParseRiskLevel(level)
		if err != nil {
			return nil, err
		}
		filter.RiskLevel = riskLevel
	}
	if deadline := q.Get("deadline"); deadline != "" {
		bucket, err := types.ParseDeadlineBucket(deadline)
		if err != nil {
			return nil, err
		}
		filter.Deadline = bucket
	}

	return filter, nil
}

func listRecordsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			badRequest(r.Context(), w, err)
			return
		}

		records, err := uc.View.Filtered(r.Context(), filter)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, map[string]any{
			"records": toRecordListResponse(records),
			"total":   len(records),
		})
	}
}

func getRecordHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RecordID(chi.URLParam(r, "id"))

		record, err := uc.Record.GetRecord(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, toRecordResponse(record))
	}
}

func createRecordHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Reuse the import decoder: record creation accepts the same
		// loosely-typed shape as document import payloads.
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			badRequest(r.Context(), w, goerr.Wrap(err, "invalid record payload"))
			return
		}

		imported, err := importer.Decode([]map[string]any{payload})
		if err != nil {
			badRequest(r.Context(), w, err)
			return
		}

		created, err := uc.Record.CreateRecord(r.Context(), imported[0].NewRecord())
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusCreated, toRecordResponse(created))
	}
}

func importHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payloads []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payloads); err != nil {
			badRequest(r.Context(), w, goerr.Wrap(err, "invalid import payload"))
			return
		}

		imported, err := importer.Decode(payloads)
		if err != nil {
			badRequest(r.Context(), w, err)
			return
		}

		added, updated, err := uc.Record.BulkImport(r.Context(), imported)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, map[string]int{
			"added":   added,
			"updated": updated,
		})
	}
}

func childScoresHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RecordID(chi.URLParam(r, "id"))

		metric, err := types.ParseScoreMetric(r.URL.Query().Get("metric"))
		if err != nil {
			badRequest(r.Context(), w, err)
			return
		}

		summary, err := uc.View.ChildScores(r.Context(), id, metric)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		if summary == nil {
			// No qualifying children: the panel is omitted, not an error
			writeJSON(r.Context(), w, http.StatusOK, map[string]any{"aggregation": nil})
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, map[string]any{
			"aggregation": childScoresResponse{
				AvgScore:   summary.AvgScore,
				MaxScore:   summary.MaxScore,
				ChildCount: summary.ChildCount,
			},
		})
	}
}

func overviewHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RecordID(chi.URLParam(r, "id"))

		agg, err := uc.View.Overview(r.Context(), id)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		if agg == nil {
			writeJSON(r.Context(), w, http.StatusOK, map[string]any{"overview": nil})
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, map[string]any{
			"overview": toOverviewResponse(agg),
		})
	}
}

func viewHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			badRequest(r.Context(), w, err)
			return
		}

		mode, err := types.ParseHierarchyMode(r.URL.Query().Get("mode"))
		if err != nil {
			badRequest(r.Context(), w, err)
			return
		}

		var expanded map[types.RecordID]bool
		if r.URL.Query().Has("expanded") {
			expanded = make(map[types.RecordID]bool)
			for _, id := range strings.Split(r.URL.Query().Get("expanded"), ",") {
				if id = strings.TrimSpace(id); id != "" {
					expanded[types.RecordID(id)] = true
				}
			}
		} else {
			// No expand state supplied: first-load default, all Level 1 open
			expanded, err = uc.View.DefaultExpansion(r.Context())
			if err != nil {
				handleError(r.Context(), w, err)
				return
			}
		}

		sequence, err := uc.View.Sequence(r.Context(), filter, expanded, mode)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, map[string]any{
			"records": toRecordListResponse(sequence),
			"total":   len(sequence),
		})
	}
}

func summaryHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tab types.TabCategory
		if v := r.URL.Query().Get("tab"); v != "" && v != "all" {
			parsed, err := types.ParseTabCategory(v)
			if err != nil {
				badRequest(r.Context(), w, err)
				return
			}
			tab = parsed
		}

		summary, err := uc.View.Summary(r.Context(), tab)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, toSummaryResponse(summary))
	}
}

func updateStatusHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RecordID(chi.URLParam(r, "id"))

		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			badRequest(r.Context(), w, goerr.Wrap(err, "invalid status payload"))
			return
		}
		if body.Status == "" {
			badRequest(r.Context(), w, goerr.New("status is required"))
			return
		}

		record, err := uc.Record.UpdateStatus(r.Context(), id, types.WorkflowStatus(body.Status))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, toRecordResponse(record))
	}
}

func updateSeverityHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RecordID(chi.URLParam(r, "id"))

		var body struct {
			Metric string `json:"metric"`
			Level  string `json:"level"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			badRequest(r.Context(), w, goerr.Wrap(err, "invalid severity payload"))
			return
		}

		metric, err := types.ParseScoreMetric(body.Metric)
		if err != nil {
			badRequest(r.Context(), w, err)
			return
		}

		record, err := uc.Record.UpdateSeverityLabel(r.Context(), id, metric, types.SeverityLevel(body.Level))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, toRecordResponse(record))
	}
}

func updateEffectivenessHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.RecordID(chi.URLParam(r, "id"))

		var body struct {
			Label string `json:"label"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			badRequest(r.Context(), w, goerr.Wrap(err, "invalid effectiveness payload"))
			return
		}

		record, err := uc.Record.UpdateControlEffectiveness(r.Context(), id, types.EffectivenessLabel(body.Label))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, toRecordResponse(record))
	}
}
