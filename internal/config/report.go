package config

import "fmt"

// ReportConfig shapes the output document.
type ReportConfig struct {
	OutputFile     string `yaml:"output_file"`
	Banner         string `yaml:"banner"`
	RuleWidth      int    `yaml:"rule_width"`
	LargeThreshold int    `yaml:"large_threshold"` // entries with more newlines than this are LARGE
	FenceLanguage  string `yaml:"fence_language"`
	Noun           string `yaml:"noun"` // used in the success line
}

func (r ReportConfig) validate() error {
	if r.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if r.LargeThreshold < 0 {
		return fmt.Errorf("large_threshold must be >= 0, got %d", r.LargeThreshold)
	}
	if r.RuleWidth <= 0 {
		return fmt.Errorf("rule_width must be > 0, got %d", r.RuleWidth)
	}
	return nil
}
