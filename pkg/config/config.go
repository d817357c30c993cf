package config

import (
	"fmt"
	"os"

	"github.com/bakeoff-ai/bakeoff/pkg/models"
	"gopkg.in/yaml.v3"
)

// Config holds all bakeoff configuration.
type Config struct {
	DBPath          string               `yaml:"db_path"`
	ResultsPath     string               `yaml:"results_path"`
	PromptFile      string               `yaml:"prompt_file"`
	UserQueryTokens int                  `yaml:"user_query_tokens"`
	Pricing         models.PricingConfig `yaml:"pricing"`
	Bake            BakeConfig           `yaml:"bake"`
	Queries         []string             `yaml:"queries"`
}

// BakeConfig describes the baking job submitted to the baking service.
// The prompt text itself comes from PromptFile.
type BakeConfig struct {
	Name      string `yaml:"name"`
	BaseModel string `yaml:"base_model"`
	Stims     int    `yaml:"stims"`
	Rollouts  int    `yaml:"rollouts"`
	Epochs    int    `yaml:"epochs"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DBPath:          "bakeoff.db",
		ResultsPath:     "comparison_metrics.json",
		PromptFile:      "system_prompt.txt",
		UserQueryTokens: 50,
		Pricing: models.PricingConfig{
			CostPerMillionInputTokens: 0.50,
			SystemPromptOverheadMs:    120,
			BakedOverheadMs:           0,
			RequestVolume:             1_000_000,
		},
		Bake: BakeConfig{
			Name:      "expert-bake",
			BaseModel: "gpt-4",
			Stims:     200,
			Rollouts:  4,
			Epochs:    1,
		},
		Queries: defaultQueries(),
	}
}

// defaultQueries are sample user queries a baked retrieval expert would
// receive, used by the demo command.
func defaultQueries() []string {
	return []string{
		"What's the best chunking strategy for long technical documentation?",
		"Should I use hybrid search or pure vector search for my use case?",
		"How can I reduce hallucinations in my RAG system?",
		"How do I evaluate my RAG system's performance?",
		"Should I use query expansion or query decomposition?",
	}
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
