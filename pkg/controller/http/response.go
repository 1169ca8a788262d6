package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/repository/memory"
	"github.com/secmon-lab/gyges/pkg/usecase"
	"github.com/secmon-lab/gyges/pkg/utils/errutil"
	"github.com/secmon-lab/gyges/pkg/utils/logging"
	"github.com/secmon-lab/gyges/pkg/utils/safe"
)

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// handleError maps domain errors to HTTP status codes
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, memory.ErrNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidArgument):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

func badRequest(ctx context.Context, w http.ResponseWriter, err error) {
	logging.From(ctx).Warn("bad request", "error", err.Error())
	errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
}

type severityResponse struct {
	Level string  `json:"level"`
	Color string  `json:"color"`
	Score float64 `json:"score,omitempty"`
}

type trendResponse struct {
	Value string `json:"value"`
	Up    bool   `json:"up"`
}

type controlResponse struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Type                   string `json:"type"`
	Nature                 string `json:"nature"`
	KeyControl             string `json:"keyControl"`
	DesignEffectiveness    string `json:"designEffectiveness,omitempty"`
	OperatingEffectiveness string `json:"operatingEffectiveness,omitempty"`
	TestingStatus          string `json:"testingStatus,omitempty"`
}

type progressResponse struct {
	Assess          string `json:"assess"`
	ReviewChallenge string `json:"reviewChallenge"`
	Approve         string `json:"approve"`
}

type effectivenessResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type historyResponse struct {
	Date                 string                `json:"date"`
	Assessor             string                `json:"assessor"`
	InherentRisk         severityResponse      `json:"inherentRisk"`
	ResidualRisk         severityResponse      `json:"residualRisk"`
	ControlEffectiveness effectivenessResponse `json:"controlEffectiveness"`
	Status               string                `json:"status"`
	Notes                string                `json:"notes,omitempty"`
}

type recordResponse struct {
	ID                    string                `json:"id"`
	Title                 string                `json:"title"`
	RiskLevel             string                `json:"riskLevel"`
	ParentRisk            string                `json:"parentRisk,omitempty"`
	ParentID              string                `json:"parentId,omitempty"`
	BusinessUnit          string                `json:"businessUnit,omitempty"`
	Category              string                `json:"category,omitempty"`
	Owner                 string                `json:"owner,omitempty"`
	OrgLevel              string                `json:"orgLevel,omitempty"`
	Assessors             []string              `json:"assessors,omitempty"`
	DueDate               string                `json:"dueDate,omitempty"`
	LastAssessed          string                `json:"lastAssessed,omitempty"`
	CompletionDate        string                `json:"completionDate,omitempty"`
	AssessmentProgress    progressResponse      `json:"assessmentProgress"`
	InherentRisk          severityResponse      `json:"inherentRisk"`
	ResidualRisk          severityResponse      `json:"residualRisk"`
	InherentTrend         trendResponse         `json:"inherentTrend"`
	ResidualTrend         trendResponse         `json:"residualTrend"`
	RelatedControls       []controlResponse     `json:"relatedControls,omitempty"`
	ControlEffectiveness  effectivenessResponse `json:"controlEffectiveness"`
	Status                string                `json:"status"`
	TabCategory           string                `json:"tabCategory"`
	PreviousAssessments   int                   `json:"previousAssessments"`
	HistoricalAssessments []historyResponse     `json:"historicalAssessments,omitempty"`
}

func toSeverityResponse(s model.Severity) severityResponse {
	return severityResponse{
		Level: s.Level.String(),
		Color: s.Color,
		Score: s.Score,
	}
}

func toRecordResponse(r *model.RiskRecord) recordResponse {
	resp := recordResponse{
		ID:           r.ID.String(),
		Title:        r.Title,
		RiskLevel:    r.RiskLevel.String(),
		ParentRisk:   r.ParentRisk,
		ParentID:     r.ParentID.String(),
		BusinessUnit: r.BusinessUnit,
		Category:     r.Category,
		Owner:        r.Owner,
		OrgLevel:     r.OrgLevel,
		Assessors:    r.Assessors,
		DueDate:      r.DueDate,
		LastAssessed: r.LastAssessed,
		CompletionDate: r.CompletionDate,
		AssessmentProgress: progressResponse{
			Assess:          r.AssessmentProgress.Assess.Normalize().String(),
			ReviewChallenge: r.AssessmentProgress.ReviewChallenge.Normalize().String(),
			Approve:         r.AssessmentProgress.Approve.Normalize().String(),
		},
		InherentRisk:  toSeverityResponse(r.InherentRisk),
		ResidualRisk:  toSeverityResponse(r.ResidualRisk),
		InherentTrend: trendResponse{Value: r.InherentTrend.Value, Up: r.InherentTrend.Up},
		ResidualTrend: trendResponse{Value: r.ResidualTrend.Value, Up: r.ResidualTrend.Up},
		ControlEffectiveness: effectivenessResponse{
			Label: r.ControlEffectiveness.Label.Normalize().String(),
			Color: r.ControlEffectiveness.Color,
		},
		Status:              r.Status.String(),
		TabCategory:         r.TabCategory.String(),
		PreviousAssessments: r.PreviousAssessments,
	}

	for _, c := range r.RelatedControls {
		resp.RelatedControls = append(resp.RelatedControls, controlResponse{
			ID:                     c.ID,
			Name:                   c.Name,
			Type:                   c.Type,
			Nature:                 c.Nature,
			KeyControl:             c.KeyControl.String(),
			DesignEffectiveness:    c.DesignEffectiveness.String(),
			OperatingEffectiveness: c.OperatingEffectiveness.String(),
			TestingStatus:          c.TestingStatus,
		})
	}
	for _, h := range r.HistoricalAssessments {
		resp.HistoricalAssessments = append(resp.HistoricalAssessments, historyResponse{
			Date:         h.Date,
			Assessor:     h.Assessor,
			InherentRisk: toSeverityResponse(h.InherentRisk),
			ResidualRisk: toSeverityResponse(h.ResidualRisk),
			ControlEffectiveness: effectivenessResponse{
				Label: h.ControlEffectiveness.Label.Normalize().String(),
				Color: h.ControlEffectiveness.Color,
			},
			Status: h.Status.String(),
			Notes:  h.Notes,
		})
	}

	return resp
}

func toRecordListResponse(records []*model.RiskRecord) []recordResponse {
	out := make([]recordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordResponse(r))
	}
	return out
}

type childScoresResponse struct {
	AvgScore   int     `json:"avgScore"`
	MaxScore   float64 `json:"maxScore"`
	ChildCount int     `json:"childCount"`
}

type overviewResponse struct {
	DescendantCount int `json:"descendantCount"`
	Controls        struct {
		Total     int `json:"total"`
		Automated int `json:"automated"`
		Manual    int `json:"manual"`
	} `json:"controls"`
	Effectiveness struct {
		Effective          int `json:"effective"`
		PartiallyEffective int `json:"partiallyEffective"`
		Ineffective        int `json:"ineffective"`
		NotAssessed        int `json:"notAssessed"`
	} `json:"effectiveness"`
	Progress struct {
		Completed  int `json:"completed"`
		InProgress int `json:"inProgress"`
		NotStarted int `json:"notStarted"`
	} `json:"progress"`
	Status statusBreakdownResponse `json:"status"`
}

type statusBreakdownResponse struct {
	Completed       int `json:"completed"`
	Overdue         int `json:"overdue"`
	InProgress      int `json:"inProgress"`
	PendingApproval int `json:"pendingApproval"`
	Other           int `json:"other"`
}

func toOverviewResponse(agg *model.LevelOneAggregation) overviewResponse {
	var resp overviewResponse
	resp.DescendantCount = agg.DescendantCount
	resp.Controls.Total = agg.Controls.Total
	resp.Controls.Automated = agg.Controls.Automated
	resp.Controls.Manual = agg.Controls.Manual
	resp.Effectiveness.Effective = agg.Effectiveness.Effective
	resp.Effectiveness.PartiallyEffective = agg.Effectiveness.PartiallyEffective
	resp.Effectiveness.Ineffective = agg.Effectiveness.Ineffective
	resp.Effectiveness.NotAssessed = agg.Effectiveness.NotAssessed
	resp.Progress.Completed = agg.Progress.Completed
	resp.Progress.InProgress = agg.Progress.InProgress
	resp.Progress.NotStarted = agg.Progress.NotStarted
	resp.Status = toStatusBreakdownResponse(agg.Status)
	return resp
}

func toStatusBreakdownResponse(b model.StatusBreakdown) statusBreakdownResponse {
	return statusBreakdownResponse{
		Completed:       b.Completed,
		Overdue:         b.Overdue,
		InProgress:      b.InProgress,
		PendingApproval: b.PendingApproval,
		Other:           b.Other,
	}
}

type summaryResponse struct {
	Total         int                     `json:"total"`
	Overdue       int                     `json:"overdue"`
	DueThisWeek   int                     `json:"dueThisWeek"`
	DueThisMonth  int                     `json:"dueThisMonth"`
	Future        int                     `json:"future"`
	Unscheduled   int                     `json:"unscheduled"`
	Status        statusBreakdownResponse `json:"status"`
	CompletedLate int                     `json:"completedLate"`
}

func toSummaryResponse(s *model.DashboardSummary) summaryResponse {
	return summaryResponse{
		Total:         s.Total,
		Overdue:       s.Overdue,
		DueThisWeek:   s.DueThisWeek,
		DueThisMonth:  s.DueThisMonth,
		Future:        s.Future,
		Unscheduled:   s.Unscheduled,
		Status:        toStatusBreakdownResponse(s.Status),
		CompletedLate: s.CompletedLate,
	}
}
