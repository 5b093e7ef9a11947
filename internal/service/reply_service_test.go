package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newFallbackReplyService() *ReplyService {
	return NewReplyService(nil, time.Second, zap.NewNop())
}

func TestSummarize(t *testing.T) {
	s := newFallbackReplyService()
	ctx := context.Background()

	t.Run("short text unchanged", func(t *testing.T) {
		text := "не работает почта"
		assert.Equal(t, text, s.Summarize(ctx, text))
	})

	t.Run("long text truncated to fifteen words", func(t *testing.T) {
		words := make([]string, 30)
		for i := range words {
			words[i] = "слово"
		}
		summary := s.Summarize(ctx, strings.Join(words, " "))
		assert.True(t, strings.HasSuffix(summary, "..."))
		assert.Len(t, strings.Fields(summary), 15)
	})

	t.Run("exactly fifteen words unchanged", func(t *testing.T) {
		text := strings.TrimSpace(strings.Repeat("слово ", 15))
		assert.Equal(t, text, s.Summarize(ctx, text))
	})

	t.Run("oracle failure degrades to truncation", func(t *testing.T) {
		s := NewReplyService(stubOracle{err: errors.New("down")}, time.Second, zap.NewNop())
		text := "не работает почта"
		assert.Equal(t, text, s.Summarize(ctx, text))
	})
}

func TestSuggestReply(t *testing.T) {
	s := newFallbackReplyService()
	ctx := context.Background()

	t.Run("qualifying faq answer returned verbatim", func(t *testing.T) {
		faq := "Перезапустите очередь печати."
		assert.Equal(t, faq, s.SuggestReply(ctx, "принтер", model.CategoryHardware, faq))
	})

	t.Run("faq answer bypasses the oracle", func(t *testing.T) {
		s := NewReplyService(stubOracle{response: "перефразированный ответ"}, time.Second, zap.NewNop())
		faq := "Канонический ответ."
		assert.Equal(t, faq, s.SuggestReply(ctx, "принтер", model.CategoryHardware, faq))
	})

	t.Run("template for every category", func(t *testing.T) {
		for _, category := range model.Categories {
			reply := s.SuggestReply(ctx, "текст", category, "")
			assert.NotEmpty(t, reply, "category %s", category)
		}
	})

	t.Run("unknown category gets the default template", func(t *testing.T) {
		reply := s.SuggestReply(ctx, "текст", "Nonsense", "")
		assert.Equal(t, replyTemplates[model.CategoryOther], reply)
	})

	t.Run("oracle reply used when no faq answer", func(t *testing.T) {
		s := NewReplyService(stubOracle{response: "Добрый день! Попробуйте перезагрузить."}, time.Second, zap.NewNop())
		reply := s.SuggestReply(ctx, "принтер", model.CategoryHardware, "")
		assert.Equal(t, "Добрый день! Попробуйте перезагрузить.", reply)
	})

	t.Run("oracle failure degrades to template", func(t *testing.T) {
		s := NewReplyService(stubOracle{err: errors.New("down")}, time.Second, zap.NewNop())
		reply := s.SuggestReply(ctx, "принтер", model.CategoryHardware, "")
		assert.Equal(t, replyTemplates[model.CategoryHardware], reply)
	})
}
