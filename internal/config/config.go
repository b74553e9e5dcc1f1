// Package config provides the explicit configuration object injected into
// every component constructor. There is no global configuration state.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config holds all tunables for the multi-resume intelligence pipeline.
// All fields are optional in the JSON file; missing values use defaults.
type Config struct {
	// Thresholds
	SemanticSimilarityThreshold    float64 `json:"semantic_similarity_threshold,omitempty" validate:"gte=0,lte=1"`
	EnhancementSimilarityThreshold float64 `json:"enhancement_similarity_threshold,omitempty" validate:"gte=0,lte=1"`
	KeywordMatchThreshold          float64 `json:"keyword_match_threshold,omitempty" validate:"gte=0,lte=1"`
	DomainClassificationConfidence float64 `json:"domain_classification_confidence,omitempty" validate:"gte=0,lte=1"`
	MinEnhancementRelevanceScore   float64 `json:"min_enhancement_relevance_score,omitempty" validate:"gte=0,lte=1"`

	// Limits
	MaxBatchSize      int `json:"max_batch_size,omitempty" validate:"gte=0"`
	LLMTimeoutSeconds int `json:"llm_timeout_seconds,omitempty" validate:"gte=0"`
	MaxEnhancements   int `json:"max_enhancements,omitempty" validate:"gte=0"`
	MaxFileSizeMB     int `json:"max_file_size_mb,omitempty" validate:"gte=0"`

	// Discovery
	SupportedResumeFormats []string `json:"supported_resume_formats,omitempty"`
	MasterFolderNames      []string `json:"master_folder_names,omitempty"`

	// Behavior
	APIKey  string `json:"api_key,omitempty"`
	Verbose bool   `json:"verbose,omitempty"`
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() *Config {
	return &Config{
		SemanticSimilarityThreshold:    0.8,
		EnhancementSimilarityThreshold: 0.2,
		KeywordMatchThreshold:          0.3,
		DomainClassificationConfidence: 0.6,
		MinEnhancementRelevanceScore:   0.5,
		MaxBatchSize:                   10,
		LLMTimeoutSeconds:              30,
		MaxEnhancements:                3,
		MaxFileSizeMB:                  10,
		SupportedResumeFormats:         []string{".pdf", ".docx", ".txt", ".doc"},
		MasterFolderNames:              []string{"master", "complete", "comprehensive"},
	}
}

// LoadConfig loads configuration from a JSON file and fills missing values
// from the defaults. Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	merged := cfg.MergeWithDefaults(*DefaultConfig())
	return &merged, nil
}

// Validate checks that all numeric fields are within their documented ranges
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	if len(c.SupportedResumeFormats) == 0 {
		return fmt.Errorf("config error: 'supported_resume_formats' must not be empty")
	}
	if len(c.MasterFolderNames) == 0 {
		return fmt.Errorf("config error: 'master_folder_names' must not be empty")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SemanticSimilarityThreshold == 0 {
		result.SemanticSimilarityThreshold = defaults.SemanticSimilarityThreshold
	}
	if result.EnhancementSimilarityThreshold == 0 {
		result.EnhancementSimilarityThreshold = defaults.EnhancementSimilarityThreshold
	}
	if result.KeywordMatchThreshold == 0 {
		result.KeywordMatchThreshold = defaults.KeywordMatchThreshold
	}
	if result.DomainClassificationConfidence == 0 {
		result.DomainClassificationConfidence = defaults.DomainClassificationConfidence
	}
	if result.MinEnhancementRelevanceScore == 0 {
		result.MinEnhancementRelevanceScore = defaults.MinEnhancementRelevanceScore
	}
	if result.MaxBatchSize == 0 {
		result.MaxBatchSize = defaults.MaxBatchSize
	}
	if result.LLMTimeoutSeconds == 0 {
		result.LLMTimeoutSeconds = defaults.LLMTimeoutSeconds
	}
	if result.MaxEnhancements == 0 {
		result.MaxEnhancements = defaults.MaxEnhancements
	}
	if result.MaxFileSizeMB == 0 {
		result.MaxFileSizeMB = defaults.MaxFileSizeMB
	}
	if len(result.SupportedResumeFormats) == 0 {
		result.SupportedResumeFormats = defaults.SupportedResumeFormats
	}
	if len(result.MasterFolderNames) == 0 {
		result.MasterFolderNames = defaults.MasterFolderNames
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// MaxFileSizeBytes converts the configured megabyte limit to bytes
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// SupportsFormat reports whether the extension (including the dot, lowercase)
// is in the supported resume format set
func (c *Config) SupportsFormat(ext string) bool {
	for _, f := range c.SupportedResumeFormats {
		if f == ext {
			return true
		}
	}
	return false
}
