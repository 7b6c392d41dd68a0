package config

import (
	"os"
	"sync"
)

type CompletionConfig struct {
	Provider string // "gemini" or "openrouter"
}

var (
	completionConfig *CompletionConfig
	completionOnce   sync.Once
)

func LoadCompletionConfig() *CompletionConfig {
	completionOnce.Do(func() {
		provider := os.Getenv("COMPLETION_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
		completionConfig = &CompletionConfig{
			Provider: provider,
		}
	})
	return completionConfig
}
