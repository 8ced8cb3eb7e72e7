package validate

import (
	"fmt"
	"strings"

	"showflow/internal/ingest"
	"showflow/internal/schedule"
)

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Recommendation is a suggested follow-up action derived from the
// validation outcome.
type Recommendation struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// QualityReport summarizes how usable an ingested schedule is. Score
// is the percentage of rows free of validation errors.
type QualityReport struct {
	TotalRows       int
	ValidRows       int
	Errors          []Issue
	Warnings        []Issue
	Suggestions     map[int]map[string]string
	Score           float64
	Recommendations []Recommendation
}

// lowConfidence marks mappings worth a second look before committing
// an import.
const lowConfidence = 0.8

// GenerateReport validates the schedule and scores it. mapping may be
// nil when the schedule did not come from an import.
func GenerateReport(list []schedule.Segment, mapping []ingest.FieldMapping) QualityReport {
	res := ValidateSchedule(list)

	errorCount := len(res.Errors)
	validRows := res.TotalRows - errorCount
	if validRows < 0 {
		validRows = 0
	}

	score := float64(res.TotalRows-errorCount) / float64(max(1, res.TotalRows)) * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return QualityReport{
		TotalRows:       res.TotalRows,
		ValidRows:       validRows,
		Errors:          res.Errors,
		Warnings:        res.Warnings,
		Suggestions:     res.Suggestions,
		Score:           score,
		Recommendations: recommendations(res, mapping),
	}
}

func recommendations(res Result, mapping []ingest.FieldMapping) []Recommendation {
	var recs []Recommendation

	if len(res.Errors) > 0 {
		recs = append(recs, Recommendation{
			Priority: PriorityHigh,
			Category: "data_errors",
			Message:  fmt.Sprintf("Fix %d data errors before proceeding", len(res.Errors)),
			Action:   "Review and correct the highlighted errors in your data",
		})
	}

	if float64(len(res.Warnings)) > float64(res.TotalRows)*0.3 {
		recs = append(recs, Recommendation{
			Priority: PriorityMedium,
			Category: "data_quality",
			Message:  "High number of warnings detected",
			Action:   "Consider reviewing your source data format and standardizing column headers",
		})
	}

	var shaky []string
	for _, m := range mapping {
		if m.Confidence < lowConfidence {
			shaky = append(shaky, string(m.Field))
		}
	}
	if len(shaky) > 0 {
		recs = append(recs, Recommendation{
			Priority: PriorityMedium,
			Category: "column_mapping",
			Message:  "Some columns were mapped with low confidence",
			Action:   "Review mapping for: " + strings.Join(shaky, ", "),
		})
	}

	if res.TotalRows == 0 {
		recs = append(recs, Recommendation{
			Priority: PriorityHigh,
			Category: "no_data",
			Message:  "No valid data rows found",
			Action:   "Check that your file contains proper headers and data rows",
		})
	}

	return recs
}
