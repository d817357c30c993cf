// Package compare computes cost and latency comparisons between resending a
// system prompt with every request and baking it into model weights.
//
// Cost is computed from total tokens per request (system + user) in both
// scenarios. The absolute savings under this basis equals the cost of the
// system tokens alone, so headline savings figures match either reading.
package compare

import (
	"errors"
	"fmt"

	"github.com/bakeoff-ai/bakeoff/pkg/models"
	"github.com/bakeoff-ai/bakeoff/pkg/token"
)

// ErrInvalidInput is returned for malformed caller inputs, such as a
// negative user token estimate or a missing token counter.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidConfig is returned when a pricing field violates its constraint.
var ErrInvalidConfig = errors.New("invalid pricing config")

const tokensPerMillion = 1_000_000

// Calculator derives comparison metrics from a prompt and pricing
// assumptions. It holds no state beyond its token counter and is safe for
// concurrent use.
type Calculator struct {
	counter token.Counter
}

// New creates a Calculator using the given token counter.
func New(counter token.Counter) *Calculator {
	return &Calculator{counter: counter}
}

// BuildScenario computes per-request and aggregate figures for one scenario.
// Zero tokens yields zero cost; with a validated pricing config the costs
// are never negative.
func BuildScenario(scenario models.Scenario, systemTokens, userTokens int, pricing models.PricingConfig, overheadMs float64) models.ScenarioMetrics {
	total := systemTokens + userTokens
	costPerRequest := float64(total) / tokensPerMillion * pricing.CostPerMillionInputTokens
	return models.ScenarioMetrics{
		Scenario:              scenario,
		SystemTokens:          systemTokens,
		UserTokens:            userTokens,
		TotalTokensPerRequest: total,
		CostPerRequest:        costPerRequest,
		CostPerVolume:         costPerRequest * float64(pricing.RequestVolume),
		LatencyOverheadMs:     overheadMs,
	}
}

// Compare builds the traditional and baked scenarios for a prompt and
// returns them with derived savings. The baked scenario always carries zero
// system tokens; both scenarios share the same user token estimate.
func (c *Calculator) Compare(promptText string, userTokens int, pricing models.PricingConfig) (models.ComparisonResult, error) {
	if c.counter == nil {
		return models.ComparisonResult{}, fmt.Errorf("%w: nil token counter", ErrInvalidInput)
	}
	if userTokens < 0 {
		return models.ComparisonResult{}, fmt.Errorf("%w: negative user token estimate %d", ErrInvalidInput, userTokens)
	}
	if err := validatePricing(pricing); err != nil {
		return models.ComparisonResult{}, err
	}

	systemTokens := c.counter(promptText)
	if systemTokens < 0 {
		return models.ComparisonResult{}, fmt.Errorf("%w: counter returned negative estimate %d", ErrInvalidInput, systemTokens)
	}

	traditional := BuildScenario(models.ScenarioTraditional, systemTokens, userTokens, pricing, pricing.SystemPromptOverheadMs)
	baked := BuildScenario(models.ScenarioBaked, 0, userTokens, pricing, pricing.BakedOverheadMs)

	return models.ComparisonResult{
		Traditional:           traditional,
		Baked:                 baked,
		TokenSavingsPct:       pctReduction(float64(traditional.TotalTokensPerRequest), float64(baked.TotalTokensPerRequest)),
		CostSavingsAbsolute:   traditional.CostPerVolume - baked.CostPerVolume,
		CostSavingsPct:        pctReduction(traditional.CostPerVolume, baked.CostPerVolume),
		LatencyImprovementPct: pctReduction(traditional.LatencyOverheadMs, baked.LatencyOverheadMs),
	}, nil
}

// pctReduction returns the percentage reduction from before to after,
// defined as 0 when before is 0.
func pctReduction(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (before - after) / before * 100
}

func validatePricing(p models.PricingConfig) error {
	if p.CostPerMillionInputTokens <= 0 {
		return fmt.Errorf("%w: cost_per_million_input_tokens must be positive, got %v", ErrInvalidConfig, p.CostPerMillionInputTokens)
	}
	if p.SystemPromptOverheadMs < 0 {
		return fmt.Errorf("%w: system_prompt_processing_overhead_ms must be non-negative, got %v", ErrInvalidConfig, p.SystemPromptOverheadMs)
	}
	if p.BakedOverheadMs < 0 {
		return fmt.Errorf("%w: baked_overhead_ms must be non-negative, got %v", ErrInvalidConfig, p.BakedOverheadMs)
	}
	if p.RequestVolume <= 0 {
		return fmt.Errorf("%w: request_volume must be positive, got %d", ErrInvalidConfig, p.RequestVolume)
	}
	return nil
}
