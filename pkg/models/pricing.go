package models

// PricingConfig holds the pricing and latency assumptions a comparison runs
// under. RequestVolume is the number of requests the aggregate figures are
// scaled to, e.g. requests per month.
type PricingConfig struct {
	CostPerMillionInputTokens float64 `json:"cost_per_million_input_tokens" yaml:"cost_per_million_input_tokens"`
	SystemPromptOverheadMs    float64 `json:"system_prompt_processing_overhead_ms" yaml:"system_prompt_processing_overhead_ms"`
	BakedOverheadMs           float64 `json:"baked_overhead_ms" yaml:"baked_overhead_ms"`
	RequestVolume             int64   `json:"request_volume" yaml:"request_volume"`
}
