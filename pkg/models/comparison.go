package models

import "time"

// Scenario identifies one side of a comparison.
type Scenario string

const (
	// ScenarioTraditional resends the system prompt with every request.
	ScenarioTraditional Scenario = "traditional"
	// ScenarioBaked uses a model with the prompt encoded into its weights.
	ScenarioBaked Scenario = "baked"
)

// ScenarioMetrics holds per-request and aggregate figures for one scenario.
type ScenarioMetrics struct {
	Scenario              Scenario `json:"scenario"`
	SystemTokens          int      `json:"system_tokens"`
	UserTokens            int      `json:"user_tokens"`
	TotalTokensPerRequest int      `json:"total_tokens_per_request"`
	CostPerRequest        float64  `json:"cost_per_request"`
	CostPerVolume         float64  `json:"cost_per_volume"`
	LatencyOverheadMs     float64  `json:"latency_overhead_ms"`
}

// ComparisonResult pairs both scenarios with their derived savings.
type ComparisonResult struct {
	Traditional           ScenarioMetrics `json:"traditional"`
	Baked                 ScenarioMetrics `json:"baked"`
	TokenSavingsPct       float64         `json:"token_savings_pct"`
	CostSavingsAbsolute   float64         `json:"cost_savings_absolute"`
	CostSavingsPct        float64         `json:"cost_savings_pct"`
	LatencyImprovementPct float64         `json:"latency_improvement_pct"`
}

// ComparisonRun is a comparison result together with the inputs and metadata
// it was produced from, as persisted in the run history.
type ComparisonRun struct {
	ID         int64            `json:"id"`
	Label      string           `json:"label,omitempty"`
	PromptHash string           `json:"prompt_hash"`
	Pricing    PricingConfig    `json:"pricing"`
	Result     ComparisonResult `json:"result"`
	CreatedAt  time.Time        `json:"created_at"`
}
