package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/industrylens/industrylens/internal/common"
	"github.com/industrylens/industrylens/internal/model"
)

// State describes the adapter lifecycle.
type State int

// Adapter states. Classify is only usable in StateReady.
const (
	StateUninitialized State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// Config holds configuration for the LLM adapter.
type Config struct {
	// Provider selects the backing service: "gemini" (default) or "openai".
	Provider string
	// APIKey overrides the provider's environment credential when set.
	APIKey string
	Model  string
	// BaseURL overrides the provider endpoint (used by tests).
	BaseURL string
	// Timeout bounds each service call. Defaults to 30s.
	Timeout time.Duration
	// RequestsPerMinute paces outbound calls. Defaults to 60.
	RequestsPerMinute int
}

// Adapter classifies companies by prompting a generative-text service with
// few-shot examples and normalizing the response against AllowedIndustries.
//
// The adapter starts Uninitialized and must be initialized before use. A
// missing credential or a provider setup error leaves it Failed; Classify
// then degrades to a sentinel result instead of attempting network calls.
type Adapter struct {
	cfg     Config
	logger  *slog.Logger
	limiter *rate.Limiter

	mu     sync.Mutex
	state  State
	client Client
}

// example is one labeled few-shot pair in the prompt.
type example struct {
	input  string
	output string
}

// fewShotExamples is the fixed pool of labeled examples included in every
// prompt, chosen to span distinct canonical industries.
var fewShotExamples = []example{
	{
		input:  "Company: ibm. Description: Domain: ibm.com. Founded: 1911. Industry: information technology and services. Locality: new york, new york, united states. Country: united states. LinkedIn URL: linkedin.com/company/ibm.",
		output: "information technology and services",
	},
	{
		input:  "Company: us army. Description: Domain: goarmy.com. Founded: 1800. Industry: military. Locality: alexandria, virginia, united states. Country: united states. LinkedIn URL: linkedin.com/company/us-army.",
		output: "military",
	},
	{
		input:  "Company: ey. Description: Domain: ey.com. Founded: 1989. Industry: accounting. Locality: london, greater london, united kingdom. Country: united kingdom. LinkedIn URL: linkedin.com/company/ernstandyoung.",
		output: "accounting",
	},
	{
		input:  "Company: walmart. Description: Domain: walmartcareers.com. Founded: 1962. Industry: retail. Locality: withee, wisconsin, united states. Country: united states. LinkedIn URL: linkedin.com/company/walmart.",
		output: "retail",
	},
	{
		input:  "Company: microsoft. Description: Domain: microsoft.com. Founded: 1975. Industry: computer software. Locality: redmond, washington, united states. Country: united states. LinkedIn URL: linkedin.com/company/microsoft.",
		output: "computer software",
	},
}

// NewAdapter creates an uninitialized adapter. No credential is read and no
// network connection is made until Initialize.
func NewAdapter(cfg Config, logger *slog.Logger) *Adapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	return &Adapter{
		cfg:     cfg,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		state:   StateUninitialized,
	}
}

// Initialize resolves the provider credential and constructs the client.
// It is idempotent: calling it when already Ready is a no-op. Failure is
// recoverable for the process as a whole; the keyword classifier remains
// usable when the adapter stays down.
func (a *Adapter) Initialize(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateReady {
		return nil
	}

	apiKey := a.cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(CredentialEnvVar(a.cfg.Provider))
	}
	if apiKey == "" {
		a.state = StateFailed
		return fmt.Errorf("%w: set %s", common.ErrMissingAPIKey, CredentialEnvVar(a.cfg.Provider))
	}

	cfg := a.cfg
	cfg.APIKey = apiKey

	client, err := newClient(ctx, cfg)
	if err != nil {
		a.state = StateFailed
		return fmt.Errorf("failed to initialize LLM adapter: %w", err)
	}

	a.client = client
	a.state = StateReady

	a.logger.Info("LLM adapter initialized",
		"provider", cfg.Provider,
		"model", cfg.Model)

	return nil
}

// State returns the current adapter state.
func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Classify prompts the service for the company's industry and normalizes the
// response. All failure modes surface as sentinel results rather than
// errors: callers in a batch loop keep going, with only the affected record
// marked erroneous.
func (a *Adapter) Classify(ctx context.Context, in model.ClassificationInput) model.ClassificationResult {
	a.mu.Lock()
	client := a.client
	state := a.state
	a.mu.Unlock()

	if state != StateReady {
		a.logger.Warn("classification requested before adapter initialization",
			"company", in.CompanyName,
			"state", state.String(),
			"error", common.ErrNotInitialized)
		return model.ClassificationResult{Label: model.SentinelNotInitialized, Confidence: 0.0}
	}

	prompt := BuildPrompt(in)

	if err := a.limiter.Wait(ctx); err != nil {
		a.logger.Warn("rate limiter interrupted", "company", in.CompanyName, "error", err)
		return model.ClassificationResult{Label: model.SentinelAPIFailed, Confidence: 0.0}
	}

	callCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	// Single attempt: a retry here would silently change the cost and
	// latency profile of a batch run.
	raw, err := client.Complete(callCtx, prompt)
	if err != nil {
		a.logger.Error("LLM classification failed",
			"company", in.CompanyName,
			"error", err)
		return model.ClassificationResult{Label: model.SentinelAPIFailed, Confidence: 0.0}
	}

	label, confidence := NormalizeLabel(raw)

	a.logger.Debug("company classified",
		"company", in.CompanyName,
		"label", label,
		"confidence", confidence)

	return model.ClassificationResult{Label: label, Confidence: confidence}
}

// BuildPrompt assembles the few-shot classification prompt for one company.
//
// When the input carries an industry hint that is usable as a label (not
// blank, not the generic fallback, not already covered by the example pool)
// the current company is prepended as an extra example with the hint as its
// target. Evaluation runs use this to bias the model toward known-correct
// labels.
func BuildPrompt(in model.ClassificationInput) string {
	examples := fewShotExamples

	hint := strings.TrimSpace(in.IndustryHint)
	if hint != "" && hint != model.SentinelOther && !poolContains(hint) {
		hintExample := example{
			input:  fmt.Sprintf("Company: %s. Description: %s", in.CompanyName, in.Description),
			output: hint,
		}
		examples = append([]example{hintExample}, examples...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert industry classifier. Your task is to classify companies into one of the following predefined industry categories: %s.\n\n",
		strings.Join(AllowedIndustries, ", "))

	b.WriteString("Examples:\n")
	for _, ex := range examples {
		fmt.Fprintf(&b, "Input: %s\nOutput: %s\n", ex.input, ex.output)
	}

	fmt.Fprintf(&b, "\nClassify the following company into the most relevant category from the provided list.\nCompany: %s. Description: %s\nOutput:",
		in.CompanyName, in.Description)

	return b.String()
}

func poolContains(label string) bool {
	for _, ex := range fewShotExamples {
		if strings.EqualFold(ex.output, label) {
			return true
		}
	}
	return false
}

// NormalizeLabel maps raw response text onto a canonical industry label.
// The list is walked in order; for each entry an exact case-insensitive
// comparison is tried first, then substring containment in either direction.
// No match yields ("Other", 0.5). Confidence is a static proxy, not a
// model-derived probability.
func NormalizeLabel(raw string) (string, float64) {
	predicted := strings.TrimSpace(raw)
	// The empty string is a substring of every entry; short-circuit to the
	// fallback before containment gets a chance to match.
	if predicted == "" {
		return model.SentinelOther, 0.5
	}
	lower := strings.ToLower(predicted)

	for _, allowed := range AllowedIndustries {
		allowedLower := strings.ToLower(allowed)
		if allowedLower == lower {
			return allowed, 1.0
		}
		if strings.Contains(lower, allowedLower) || strings.Contains(allowedLower, lower) {
			return allowed, 1.0
		}
	}

	return model.SentinelOther, 0.5
}
