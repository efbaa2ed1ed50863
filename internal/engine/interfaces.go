// Package engine orchestrates classification runs: it dispatches records to
// the selected classifier, collects predictions, and scores them against
// known labels.
package engine

import (
	"context"

	"github.com/industrylens/industrylens/internal/model"
)

// Classifier is the contract both classification strategies satisfy.
// Implementations never return an error: failures degrade to sentinel
// results so a batch run keeps going past a bad record.
type Classifier interface {
	Classify(ctx context.Context, in model.ClassificationInput) model.ClassificationResult
}

// Mode selects the classification strategy for a run.
type Mode string

// Available classification modes.
const (
	ModeKeyword Mode = "keyword"
	ModeLLM     Mode = "llm"
)

// ParseMode validates a caller-supplied mode string.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeKeyword, ModeLLM:
		return Mode(s), true
	default:
		return "", false
	}
}
