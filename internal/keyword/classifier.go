package keyword

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/industrylens/industrylens/internal/model"
)

// nonAlphanumeric matches every character the normalizer replaces with a
// space. Normalization happens on the input text only, never on the table.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)

// Classifier scores company text against a keyword table. It is pure and
// safe for concurrent use: the table is read-only after construction.
type Classifier struct {
	table *Table
}

// NewClassifier creates a classifier over the given table.
func NewClassifier(table *Table) *Classifier {
	return &Classifier{table: table}
}

// Classify implements the engine.Classifier interface. The context is
// accepted for interface symmetry with network-backed classifiers; keyword
// scoring is in-memory and never blocks.
func (c *Classifier) Classify(_ context.Context, in model.ClassificationInput) model.ClassificationResult {
	label, confidence := c.Match(in.CompanyName, in.Description)
	return model.ClassificationResult{Label: label, Confidence: confidence}
}

// Match scores the company name and description against the keyword table
// and returns the best industry with a confidence in [0, 1]. When no keyword
// from any industry appears in the text it returns ("Other", 0.0).
func (c *Classifier) Match(companyName, description string) (string, float64) {
	text := normalize(companyName + " " + description)

	best := ""
	bestScore := 0
	for _, entry := range c.table.Entries() {
		score := 0
		for _, kw := range entry.Keywords {
			score += strings.Count(text, kw)
		}
		// Strict > keeps the first industry in table order on ties.
		if score > 0 && score > bestScore {
			best = entry.Industry
			bestScore = score
		}
	}

	if bestScore == 0 {
		return model.SentinelOther, 0.0
	}

	// Confidence is the winning score over the total occurrence count of the
	// winning industry's matching keywords. Both sides are computed the same
	// way, so the ratio is 1.0 whenever any match exists; the formula is kept
	// as-is for output compatibility rather than corrected.
	denominator := 0
	for _, entry := range c.table.Entries() {
		if entry.Industry != best {
			continue
		}
		for _, kw := range entry.Keywords {
			if n := strings.Count(text, kw); n > 0 {
				denominator += n
			}
		}
	}

	confidence := 0.0
	if denominator > 0 {
		confidence = float64(bestScore) / float64(denominator)
	}

	// Flat boost when the description already names the winning industry
	// (in either containment direction). Applied against the raw lower-cased
	// description, not the normalized text.
	lowerDesc := strings.ToLower(description)
	lowerBest := strings.ToLower(best)
	if strings.Contains(lowerDesc, lowerBest) || strings.Contains(lowerBest, lowerDesc) {
		confidence = math.Min(confidence+0.20, 1.0)
	}

	confidence = math.Min(confidence, 1.0)

	return best, round2(confidence)
}

// normalize lower-cases text and replaces every character that is not a
// letter, digit, or whitespace with a single space.
func normalize(text string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(text), " ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
