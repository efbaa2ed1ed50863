package engine

import (
	"math"
	"strings"

	"github.com/industrylens/industrylens/internal/model"
)

// Report summarizes how predictions compare against known labels.
type Report struct {
	// Eligible counts records with a known original label and a non-error
	// prediction. Accuracy is meaningful only when Eligible > 0.
	Eligible int
	Matches  int
	// Accuracy is Matches/Eligible as a percentage, rounded to 2 decimals.
	Accuracy float64
}

// ComputeAccuracy scores predictions against their original labels. A match
// is a case-insensitive label equality, or both labels independently naming
// the IT-services industry (the one synonym class the source data needs).
func ComputeAccuracy(predictions []model.Prediction) Report {
	var report Report

	for _, p := range predictions {
		if p.OriginalIndustry == model.SentinelNoIndustry {
			continue
		}
		result := model.ClassificationResult{Label: p.Predicted}
		if result.IsError() {
			continue
		}

		report.Eligible++
		if labelsMatch(p.OriginalIndustry, p.Predicted) {
			report.Matches++
		}
	}

	if report.Eligible > 0 {
		pct := float64(report.Matches) / float64(report.Eligible) * 100
		report.Accuracy = math.Round(pct*100) / 100
	}

	return report
}

func labelsMatch(original, predicted string) bool {
	if strings.EqualFold(original, predicted) {
		return true
	}
	return isITServices(original) && isITServices(predicted)
}

// isITServices reports whether a label names the IT-services industry under
// either of its common spellings.
func isITServices(label string) bool {
	l := strings.ToLower(label)
	return strings.Contains(l, "information technology and services") ||
		strings.Contains(l, "it services")
}
