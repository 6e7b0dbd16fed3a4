package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if len(c.Auth.CronSecret) < 16 {
		return fmt.Errorf("auth.cron_secret must be at least 16 characters (got %d)", len(c.Auth.CronSecret))
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if err := c.Publish.validate(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	if err := c.Scanner.validate(); err != nil {
		return fmt.Errorf("scanner: %w", err)
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	if g.ProviderTimeout <= 0 {
		return fmt.Errorf("provider_timeout must be > 0 (got %v)", g.ProviderTimeout)
	}
	if g.JudgeTimeout <= 0 {
		return fmt.Errorf("judge_timeout must be > 0 (got %v)", g.JudgeTimeout)
	}
	if g.StyleExamples < 0 {
		return fmt.Errorf("style_examples must be >= 0 (got %d)", g.StyleExamples)
	}
	if len(g.ProviderNames()) == 0 {
		return fmt.Errorf("at least one generation provider must be configured")
	}
	return nil
}

func (p *PublishConfig) validate() error {
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	if p.RetryDelay <= 0 {
		return fmt.Errorf("retry_delay must be > 0 (got %v)", p.RetryDelay)
	}
	return nil
}

func (s *ScannerConfig) validate() error {
	if s.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", s.Concurrency)
	}
	if s.SweepLimit <= 0 {
		return fmt.Errorf("sweep_limit must be > 0 (got %d)", s.SweepLimit)
	}
	return nil
}

// ProviderNames returns the generation providers that have credentials.
// A provider is considered configured if its API key is present.
func (g GenerationConfig) ProviderNames() []string {
	var names []string
	if g.OpenAIAPIKey != "" {
		names = append(names, "openai")
	}
	if g.GeminiAPIKey != "" {
		names = append(names, "gemini")
	}
	if g.GrokAPIKey != "" {
		names = append(names, "grok")
	}
	if g.AnthropicAPIKey != "" {
		names = append(names, "anthropic")
	}
	return names
}
