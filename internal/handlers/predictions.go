package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/predictlab/rydercup-stats/internal/logic"
	"github.com/predictlab/rydercup-stats/internal/models"
)

// GetSummary returns overall, per-outcome and per-round accuracy
// @Summary Prediction Accuracy Summary
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.SummaryResponse
// @Router /summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.analysis.Summary())
}

// GetMatches returns annotated matches, filtered and sorted
// @Summary List Matches
// @Tags Predictions
// @Produce json
// @Param filter query string false "all, correct or incorrect"
// @Param search query string false "Substring of match id, round or outcome"
// @Param level query string false "High, Medium or Low"
// @Param round query int false "Round number"
// @Param sort query string false "round, confidence or accuracy"
// @Param order query string false "asc or desc"
// @Success 200 {object} models.MatchListResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /matches [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	q := logic.ParseMatchQuery(r.URL.Query().Get)
	if err := h.validator.Struct(q); err != nil {
		h.logger.Warnw("Invalid match query", "error", err, "query", r.URL.RawQuery)
		h.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	matches := h.analysis.Matches(q)
	h.jsonResponse(w, http.StatusOK, models.MatchListResponse{
		Total:   len(matches),
		Matches: matches,
	})
}

// GetRound returns accuracy for a single round
// @Summary Round Accuracy
// @Tags Predictions
// @Produce json
// @Param round path int true "Round number"
// @Success 200 {object} models.AccuracyBucket
// @Failure 404 {object} map[string]string "Not Found"
// @Router /rounds/{round} [get]
func (h *Handler) GetRound(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil || round < 1 {
		h.errorResponse(w, http.StatusBadRequest, "Round must be a positive integer")
		return
	}

	bucket, ok := h.analysis.Round(round)
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Round not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"round":    round,
		"accuracy": bucket,
	})
}

// GetConfusionMatrix returns predicted-vs-actual counts
// @Summary Confusion Matrix
// @Tags Predictions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /confusion-matrix [get]
func (h *Handler) GetConfusionMatrix(w http.ResponseWriter, r *http.Request) {
	snap := h.analysis.Snapshot()
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"matrix": snap.Confusion,
		"scores": snap.Scores,
	})
}

// GetConfidence returns accuracy by confidence level
// @Summary Confidence Breakdown
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.ConfidenceBreakdown
// @Router /confidence [get]
func (h *Handler) GetConfidence(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.analysis.Snapshot().Confidence)
}

// GetInsights returns narrative findings
// @Summary Model Insights
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.Insights
// @Router /insights [get]
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.analysis.Snapshot().Insights)
}

// GetExport downloads the analysis as csv, json or summary text
// @Summary Export Analysis
// @Tags Export
// @Produce plain
// @Param format path string true "csv, json or summary"
// @Success 200 {string} string "File contents"
// @Failure 400 {object} map[string]string "Unknown format"
// @Router /export/{format} [get]
func (h *Handler) GetExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")

	data, err := h.exports.Export(r.Context(), format)
	if errors.Is(err, logic.ErrUnknownFormat) {
		h.errorResponse(w, http.StatusBadRequest, "Unknown export format")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to render export", "error", err, "format", format)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to render export")
		return
	}

	w.Header().Set("Content-Type", logic.ExportContentType[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", logic.ExportFileName[format]))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid value for %s", fe.Field())
	}
	return "Invalid query"
}
