package oracle

import (
	"context"

	"github.com/onewindow/helpdesk-go/internal/config"
	"go.uber.org/zap"
)

// Oracle is an optional external text-generation capability. A nil Oracle
// means "unconfigured"; every consumer must carry its own deterministic
// fallback and never let an oracle error fail the request.
type Oracle interface {
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// FromConfig builds the configured oracle implementation.
// Returns nil when no provider is configured.
func FromConfig(cfg config.OracleConfig, logger *zap.Logger) Oracle {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout(), logger)
	case "gemini":
		return NewGeminiClient(cfg.APIKey, cfg.Model, logger)
	case "":
		return nil
	default:
		logger.Warn("unknown oracle provider, oracle disabled", zap.String("provider", cfg.Provider))
		return nil
	}
}
