// Package server exposes classification over HTTP.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/industrylens/industrylens/internal/engine"
	"github.com/industrylens/industrylens/internal/ingest"
	"github.com/industrylens/industrylens/internal/llm"
	"github.com/industrylens/industrylens/internal/model"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	engine           *engine.Engine
	keywordLabels    []string
	llmAdapterStatus func() llm.State
}

// NewHandler creates a new HTTP handler.
func NewHandler(eng *engine.Engine, keywordLabels []string, adapterStatus func() llm.State) *Handler {
	return &Handler{
		engine:           eng,
		keywordLabels:    keywordLabels,
		llmAdapterStatus: adapterStatus,
	}
}

// HealthCheck returns the health status of the API, including whether the
// LLM adapter came up (keyword classification works either way).
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     "industrylens",
		"llm_adapter": h.llmAdapterStatus().String(),
	})
}

// Industries lists the labels each classifier can produce.
func (h *Handler) Industries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"keyword_industries": h.keywordLabels,
		"llm_industries":     llm.AllowedIndustries,
	})
}

type classifyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Hint        string `json:"hint"`
	Mode        string `json:"mode"`
}

// Classify handles single-company classification requests.
func (h *Handler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := resolveMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.engine.ClassifyOne(c.Request.Context(), mode, model.ClassificationInput{
		CompanyName:  req.Name,
		Description:  req.Description,
		IndustryHint: req.Hint,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company":    req.Name,
		"label":      result.Label,
		"confidence": result.Confidence,
	})
}

// ClassifyBatch accepts a CSV upload and classifies every row. A missing
// "name" column rejects the whole file; per-record failures degrade to
// sentinel labels without failing the batch.
func (h *Handler) ClassifyBatch(c *gin.Context) {
	mode, err := resolveMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing CSV upload in form field \"file\""})
		return
	}
	defer func() { _ = file.Close() }()

	records, err := ingest.ReadRecords(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	predictions, err := h.engine.ClassifyRecords(c.Request.Context(), mode, records, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"results": predictions}
	if report := engine.ComputeAccuracy(predictions); report.Eligible > 0 {
		resp["accuracy"] = gin.H{
			"percent":  report.Accuracy,
			"matches":  report.Matches,
			"eligible": report.Eligible,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func resolveMode(s string) (engine.Mode, error) {
	if s == "" {
		return engine.ModeKeyword, nil
	}
	mode, ok := engine.ParseMode(s)
	if !ok {
		return "", &modeError{mode: s}
	}
	return mode, nil
}

type modeError struct {
	mode string
}

func (e *modeError) Error() string {
	return "unknown mode \"" + e.mode + "\" (expected \"keyword\" or \"llm\")"
}
