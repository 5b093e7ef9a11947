package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// answerCacheTTL how long an instant-help answer stays cached
const answerCacheTTL = time.Hour

// AnswerCache Redis-backed cache for the instant-help path. Repeated
// identical requests skip the pipeline. Best effort: any cache failure is
// logged and treated as a miss.
type AnswerCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewAnswerCache creates an answer cache on an existing Redis client.
func NewAnswerCache(client *redis.Client, logger *zap.Logger) *AnswerCache {
	return &AnswerCache{client: client, logger: logger}
}

// Get returns the cached help response for the text, if any.
func (c *AnswerCache) Get(ctx context.Context, text string) (*model.AIHelpResponse, bool) {
	data, err := c.client.Get(ctx, cacheKey(text)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("answer cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var resp model.AIHelpResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("answer cache entry malformed, dropping", zap.Error(err))
		c.client.Del(ctx, cacheKey(text))
		return nil, false
	}

	return &resp, true
}

// Set caches a help response for the text.
func (c *AnswerCache) Set(ctx context.Context, text string, resp model.AIHelpResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, cacheKey(text), data, answerCacheTTL).Err(); err != nil {
		c.logger.Warn("answer cache write failed", zap.Error(err))
	}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(text))))
	return "answer_cache:" + hex.EncodeToString(sum[:])
}
