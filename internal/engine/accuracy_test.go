package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/industrylens/industrylens/internal/model"
)

func TestComputeAccuracy(t *testing.T) {
	tests := []struct {
		name         string
		predictions  []model.Prediction
		wantEligible int
		wantMatches  int
		wantAccuracy float64
	}{
		{
			name: "two exact matches plus one synonym match",
			predictions: []model.Prediction{
				{OriginalIndustry: "retail", Predicted: "Retail"},
				{OriginalIndustry: "military", Predicted: "military"},
				{OriginalIndustry: "information technology and services", Predicted: "IT Services"},
			},
			wantEligible: 3,
			wantMatches:  3,
			wantAccuracy: 100.0,
		},
		{
			name: "one mismatch out of three",
			predictions: []model.Prediction{
				{OriginalIndustry: "retail", Predicted: "retail"},
				{OriginalIndustry: "military", Predicted: "military"},
				{OriginalIndustry: "farming", Predicted: "retail"},
			},
			wantEligible: 3,
			wantMatches:  2,
			wantAccuracy: 66.67,
		},
		{
			name: "missing original labels excluded",
			predictions: []model.Prediction{
				{OriginalIndustry: model.SentinelNoIndustry, Predicted: "retail"},
				{OriginalIndustry: "retail", Predicted: "retail"},
			},
			wantEligible: 1,
			wantMatches:  1,
			wantAccuracy: 100.0,
		},
		{
			name: "error sentinels excluded",
			predictions: []model.Prediction{
				{OriginalIndustry: "retail", Predicted: model.SentinelAPIFailed},
				{OriginalIndustry: "retail", Predicted: model.SentinelNotInitialized},
				{OriginalIndustry: "retail", Predicted: "retail"},
			},
			wantEligible: 1,
			wantMatches:  1,
			wantAccuracy: 100.0,
		},
		{
			name: "no eligible records",
			predictions: []model.Prediction{
				{OriginalIndustry: model.SentinelNoIndustry, Predicted: "retail"},
			},
			wantEligible: 0,
			wantMatches:  0,
			wantAccuracy: 0.0,
		},
		{
			name:         "empty input",
			predictions:  nil,
			wantEligible: 0,
			wantMatches:  0,
			wantAccuracy: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ComputeAccuracy(tt.predictions)
			assert.Equal(t, tt.wantEligible, report.Eligible)
			assert.Equal(t, tt.wantMatches, report.Matches)
			assert.InDelta(t, tt.wantAccuracy, report.Accuracy, 0.001)
		})
	}
}

func TestLabelsMatchSynonymRule(t *testing.T) {
	tests := []struct {
		original  string
		predicted string
		want      bool
	}{
		{"information technology and services", "it services", true},
		{"IT Services", "information technology and services", true},
		{"it services", "IT SERVICES", true},
		// Synonym rule requires both sides to name IT services.
		{"information technology and services", "retail", false},
		{"retail", "it services", false},
		{"retail", "retail", true},
		{"Retail", "retail", true},
		{"retail", "farming", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, labelsMatch(tt.original, tt.predicted),
			"original=%q predicted=%q", tt.original, tt.predicted)
	}
}
